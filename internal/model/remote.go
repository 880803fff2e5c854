package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MaxIngredientSlots is the number of numbered ingredient/measure fields TheMealDB exposes per meal.
const MaxIngredientSlots = 20

// RemoteRecipe is a meal fetched from TheMealDB. It is never persisted as-is.
type RemoteRecipe struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Area         string      `json:"area"`
	ImageURL     string      `json:"image_url"`
	Instructions string      `json:"instructions"`
	Ingredients  Ingredients `json:"ingredients"`
}

type mealSlot struct {
	ingredient string
	measure    string
}

// MealDTO is a meal object in TheMealDB's wire format.
type MealDTO struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Thumb        string
	Instructions string
	Slots        [MaxIngredientSlots]mealSlot
}

// UnmarshalJSON reads the fixed fields and the numbered strIngredientN/strMeasureN slots.
// Any field may be null.
func (m *MealDTO) UnmarshalJSON(data []byte) error {
	var fields map[string]*string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	get := func(key string) string {
		if v := fields[key]; v != nil {
			return *v
		}
		return ""
	}

	*m = MealDTO{
		ID:           get("idMeal"),
		Name:         get("strMeal"),
		Category:     get("strCategory"),
		Area:         get("strArea"),
		Thumb:        get("strMealThumb"),
		Instructions: get("strInstructions"),
	}
	for i := range m.Slots {
		n := strconv.Itoa(i + 1)
		m.Slots[i] = mealSlot{
			ingredient: get("strIngredient" + n),
			measure:    get("strMeasure" + n),
		}
	}
	return nil
}

// ToRemoteRecipe converts the wire meal, dropping slots whose ingredient is blank.
func (m *MealDTO) ToRemoteRecipe() *RemoteRecipe {
	ingredients := make(Ingredients, 0, MaxIngredientSlots)
	for _, slot := range m.Slots {
		name := strings.TrimSpace(slot.ingredient)
		if name == "" {
			continue
		}
		ingredients = append(ingredients, Ingredient{
			Ingredient: name,
			Measure:    strings.TrimSpace(slot.measure),
		})
	}
	return &RemoteRecipe{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Area:         m.Area,
		ImageURL:     m.Thumb,
		Instructions: m.Instructions,
		Ingredients:  ingredients,
	}
}

// MealsResponse is the envelope of every TheMealDB search and lookup response.
// Meals is nil when the API returns "meals": null or omits the field.
type MealsResponse struct {
	Meals []MealDTO `json:"meals"`
}

// Recipes converts every meal in the response; the result is never nil.
func (r *MealsResponse) Recipes() []*RemoteRecipe {
	out := make([]*RemoteRecipe, 0, len(r.Meals))
	for i := range r.Meals {
		out = append(out, r.Meals[i].ToRemoteRecipe())
	}
	return out
}
