package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Legacy column delimiters: pairs are joined by ',' and split by '|'.
const (
	legacyPairSeparator  = ","
	legacyFieldSeparator = "|"
)

// ErrLegacyDelimiter is returned when a value cannot be written in the legacy encoding.
var ErrLegacyDelimiter = errors.New("ingredient or measure contains a legacy delimiter")

// Ingredient is one ingredient line of a recipe.
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// Ingredients is the ordered ingredient list of a recipe, stored as a JSON array.
type Ingredients []Ingredient

// Names returns the ingredient names in order.
func (in Ingredients) Names() []string {
	names := make([]string, len(in))
	for i, ing := range in {
		names[i] = ing.Ingredient
	}
	return names
}

// Measures returns the measures in order.
func (in Ingredients) Measures() []string {
	measures := make([]string, len(in))
	for i, ing := range in {
		measures[i] = ing.Measure
	}
	return measures
}

// Value implements the driver.Valuer interface
func (in Ingredients) Value() (driver.Value, error) {
	if len(in) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]Ingredient(in))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface. Text that is not a JSON array
// is read with the legacy pipe/comma decoding.
func (in *Ingredients) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*in = Ingredients{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Ingredients", value)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		*in = Ingredients{}
		return nil
	}
	if out, ok := decodeJSONIngredients(trimmed); ok {
		*in = out
		return nil
	}

	*in = DecodeLegacyIngredients(string(raw))
	return nil
}

// decodeJSONIngredients reports whether b is a JSON ingredient array.
// Legacy text may itself start with '[', so the prefix alone decides nothing.
func decodeJSONIngredients(b []byte) (Ingredients, bool) {
	if b[0] != '[' {
		return nil, false
	}
	var out []Ingredient
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	if out == nil {
		out = []Ingredient{}
	}
	return out, true
}

// IsLegacyEncoded reports whether a stored ingredients value uses the legacy encoding.
func IsLegacyEncoded(stored string) bool {
	trimmed := bytes.TrimSpace([]byte(stored))
	if len(trimmed) == 0 {
		return false
	}
	_, ok := decodeJSONIngredients(trimmed)
	return !ok
}

// EncodeLegacyIngredients writes ingredients as "ingredient|measure" pairs joined by ",".
// The format has no escaping, so values containing either delimiter are rejected.
func EncodeLegacyIngredients(in Ingredients) (string, error) {
	parts := make([]string, len(in))
	for i, ing := range in {
		if strings.ContainsAny(ing.Ingredient, legacyPairSeparator+legacyFieldSeparator) ||
			strings.ContainsAny(ing.Measure, legacyPairSeparator+legacyFieldSeparator) {
			return "", fmt.Errorf("%w: pair %d (%q, %q)", ErrLegacyDelimiter, i, ing.Ingredient, ing.Measure)
		}
		parts[i] = ing.Ingredient + legacyFieldSeparator + ing.Measure
	}
	return strings.Join(parts, legacyPairSeparator), nil
}

// DecodeLegacyIngredients parses the legacy "ingredient|measure,..." encoding.
// A pair without '|' has an empty measure; empty input has no pairs.
func DecodeLegacyIngredients(s string) Ingredients {
	if s == "" {
		return Ingredients{}
	}
	pairs := strings.Split(s, legacyPairSeparator)
	out := make(Ingredients, 0, len(pairs))
	for _, pair := range pairs {
		name, measure, _ := strings.Cut(pair, legacyFieldSeparator)
		out = append(out, Ingredient{Ingredient: name, Measure: measure})
	}
	return out
}
