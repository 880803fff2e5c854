package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/internal/api"
	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/model"
	"github.com/pageza/cookbook/backend/internal/router"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/testhelpers"
)

const beefMeal = `{"meals":[{"idMeal":"52874","strMeal":"Beef and Mustard Pie","strCategory":"Beef","strArea":"British",
"strInstructions":"Preheat the oven.","strMealThumb":"https://img/pie.jpg",
"strIngredient1":"Beef","strMeasure1":"1kg","strIngredient2":"Plain Flour","strMeasure2":"2 tbs",
"strIngredient3":"","strMeasure3":""}]}`

type stack struct {
	router    *gin.Engine
	mealDBHit atomic.Int32
	token     string
}

func setupStack(t *testing.T, withRedis bool) *stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &stack{}
	mealDB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mealDBHit.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("i") == "52874" || r.URL.Query().Get("f") == "b" {
			_, _ = w.Write([]byte(beefMeal))
			return
		}
		_, _ = w.Write([]byte(`{"meals":null}`))
	}))
	t.Cleanup(mealDB.Close)

	cfg := testhelpers.TestConfig(t)
	cfg.MealDBBaseURL = mealDB.URL + "/api/json/v1/1"
	cfg.JWTSecret = "integration-secret"
	db := testhelpers.SetupTestDatabase(t)

	tokens := service.NewTokenService(cfg.JWTSecret)
	token, err := tokens.GenerateToken("integration-phone", time.Hour)
	require.NoError(t, err)
	s.token = token

	deps := api.Dependencies{
		DB:      db,
		Recipes: service.NewRecipeService(db),
		Tokens:  tokens,
	}
	var cache service.ResponseCache
	if withRedis {
		client := testhelpers.SetupTestRedis(t)
		deps.Redis = client
		cache = service.NewRedisCache(client, "mealdb:", cfg.MealDBCacheTTL)
		deps.RateLimiter = middleware.NewRateLimiter(client, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     3,
			KeyPrefix: "rate_limit:integration",
		})
	}
	deps.Meals = service.NewMealService(cfg.MealDBBaseURL, cfg.MealDBTimeout, cache)

	s.router = router.SetupRouter(cfg, deps)
	return s
}

func (s *stack) do(method, path string, body interface{}, auth bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestPersonalRecipeFlow(t *testing.T) {
	s := setupStack(t, false)

	w := s.do(http.MethodPost, "/api/v1/recipes", map[string]interface{}{"name": "Soup"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":        "Soup",
		"ingredients": []map[string]string{{"ingredient": "Onion", "measure": "1"}},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Recipe model.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Unknown", created.Recipe.Category)

	path := fmt.Sprintf("/api/v1/recipes/%d", created.Recipe.ID)
	w = s.do(http.MethodPut, path, map[string]interface{}{
		"name":         "Onion Soup",
		"category":     "Starter",
		"area":         "French",
		"instructions": "Caramelise the onions.",
		"ingredients":  []map[string]string{{"ingredient": "Onion", "measure": "4"}},
	}, true)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, path, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Caramelise the onions.")

	w = s.do(http.MethodDelete, path, nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/recipes", nil, false)
	assert.JSONEq(t, `{"recipes":[]}`, w.Body.String())
}

func TestBrowseAndSaveFlow(t *testing.T) {
	s := setupStack(t, false)

	w := s.do(http.MethodGet, "/api/v1/meals?letter=b", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beef and Mustard Pie")

	w = s.do(http.MethodPost, "/api/v1/meals/52874/save", nil, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/v1/recipes", nil, false)
	var listed struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Recipes, 1)
	assert.Equal(t, "Beef and Mustard Pie", listed.Recipes[0].Name)
	assert.Equal(t, model.Ingredients{
		{Ingredient: "Beef", Measure: "1kg"},
		{Ingredient: "Plain Flour", Measure: "2 tbs"},
	}, listed.Recipes[0].Ingredients)
}

func TestRedisBackedFlow(t *testing.T) {
	s := setupStack(t, true)

	for i := 0; i < 2; i++ {
		w := s.do(http.MethodGet, "/api/v1/meals/52874", nil, false)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, int32(1), s.mealDBHit.Load(), "second lookup should be served from the cache")

	for i := 0; i < 3; i++ {
		w := s.do(http.MethodPost, "/api/v1/recipes", map[string]string{"name": "Toast"}, true)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := s.do(http.MethodPost, "/api/v1/recipes", map[string]string{"name": "Toast"}, true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
