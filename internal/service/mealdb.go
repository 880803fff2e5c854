package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/cookbook/backend/internal/model"
)

// listAllLetter is the first-letter filter used to list meals when nothing is searched.
const listAllLetter = "a"

// maxResponseBytes bounds the body read from TheMealDB.
const maxResponseBytes = 4 << 20

// MealService reads recipes from TheMealDB
type MealService struct {
	baseURL string
	client  *http.Client
	cache   ResponseCache
}

// NewMealService creates a client for the API rooted at baseURL. cache may be nil.
func NewMealService(baseURL string, timeout time.Duration, cache ResponseCache) *MealService {
	return &MealService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

// ListMeals returns the default browse list.
func (s *MealService) ListMeals(ctx context.Context) ([]*model.RemoteRecipe, error) {
	return s.search(ctx, url.Values{"f": {listAllLetter}})
}

// ListMealsByLetter returns meals whose name starts with letter.
func (s *MealService) ListMealsByLetter(ctx context.Context, letter string) ([]*model.RemoteRecipe, error) {
	if len(letter) != 1 || !isASCIILetter(letter[0]) {
		return nil, ErrInvalidLetter
	}
	return s.search(ctx, url.Values{"f": {strings.ToLower(letter)}})
}

// SearchMeals returns meals matching name. An empty name lists all meals.
func (s *MealService) SearchMeals(ctx context.Context, name string) ([]*model.RemoteRecipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.ListMeals(ctx)
	}
	return s.search(ctx, url.Values{"s": {name}})
}

// LookupMeal fetches a single meal by its TheMealDB id.
func (s *MealService) LookupMeal(ctx context.Context, id string) (*model.RemoteRecipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMealNotFound
	}
	resp, err := s.fetch(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, ErrMealNotFound
	}
	return resp.Meals[0].ToRemoteRecipe(), nil
}

func (s *MealService) search(ctx context.Context, query url.Values) ([]*model.RemoteRecipe, error) {
	resp, err := s.fetch(ctx, "search.php", query)
	if err != nil {
		return nil, err
	}
	return resp.Recipes(), nil
}

func (s *MealService) fetch(ctx context.Context, endpoint string, query url.Values) (*model.MealsResponse, error) {
	key := endpoint + "?" + query.Encode()

	body, cached := s.fromCache(ctx, key)
	if !cached {
		var err error
		body, err = s.get(ctx, key)
		if err != nil {
			log.Printf("[MealService] request %s failed: %v", key, err)
			return nil, err
		}
	}

	var resp model.MealsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !cached {
		s.toCache(ctx, key, body)
	}
	return &resp, nil
}

func (s *MealService) get(ctx context.Context, pathAndQuery string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (s *MealService) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	body, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[MealService] cache read for %s failed: %v", key, err)
		return nil, false
	}
	return body, ok
}

func (s *MealService) toCache(ctx context.Context, key string, body []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, body); err != nil {
		log.Printf("[MealService] cache write for %s failed: %v", key, err)
	}
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
