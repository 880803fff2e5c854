package model

import "strings"

// Defaults applied to a recipe on creation
const (
	DefaultName     = "Untitled"
	DefaultCategory = "Unknown"
	DefaultArea     = "Unknown"
)

// Recipe is a personal recipe stored in the local recipes table.
type Recipe struct {
	ID           int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"column:name;type:text;not null" json:"name"`
	Category     string      `gorm:"column:category;type:text;not null" json:"category"`
	Area         string      `gorm:"column:area;type:text;not null" json:"area"`
	ImageURL     string      `gorm:"column:image_url;type:text" json:"image_url"`
	Instructions string      `gorm:"column:instructions;type:text;not null" json:"instructions"`
	Ingredients  Ingredients `gorm:"column:ingredients;type:text;not null" json:"ingredients"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// ApplyDefaults fills the fields a caller left empty with their creation defaults.
func (r *Recipe) ApplyDefaults() {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = DefaultName
	}
	if strings.TrimSpace(r.Category) == "" {
		r.Category = DefaultCategory
	}
	if strings.TrimSpace(r.Area) == "" {
		r.Area = DefaultArea
	}
	if r.Ingredients == nil {
		r.Ingredients = Ingredients{}
	}
}

// FromRemote converts a meal fetched from TheMealDB into a personal recipe.
func FromRemote(m *RemoteRecipe) *Recipe {
	ingredients := make(Ingredients, len(m.Ingredients))
	copy(ingredients, m.Ingredients)
	return &Recipe{
		Name:         m.Name,
		Category:     m.Category,
		Area:         m.Area,
		ImageURL:     m.ImageURL,
		Instructions: m.Instructions,
		Ingredients:  ingredients,
	}
}
