package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a measurement unit shared by fridge ingredients and recipe
// line items. The set is closed; upstream unit strings are matched
// against it case-sensitively and fall back to grams.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "L"
	UnitPiece      Unit = "piece"
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tbsp"
	UnitTeaspoon   Unit = "tsp"
	UnitBunch      Unit = "bunch"
)

// Units lists every valid unit.
var Units = []Unit{
	UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitPiece,
	UnitCup, UnitTablespoon, UnitTeaspoon, UnitBunch,
}

// ParseUnit matches s against the closed unit set. The match is
// case-sensitive; unrecognized strings fall back to grams.
func ParseUnit(s string) Unit {
	for _, u := range Units {
		if string(u) == s {
			return u
		}
	}
	return UnitGram
}

// Valid reports whether u is a member of the closed unit set.
func (u Unit) Valid() bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}

// IngredientCategory groups fridge items for display and quick-add.
type IngredientCategory string

const (
	CategoryMeat      IngredientCategory = "Meat"
	CategoryVegetable IngredientCategory = "Vegetable"
	CategoryFruit     IngredientCategory = "Fruit"
	CategoryDairy     IngredientCategory = "Dairy"
	CategoryGrain     IngredientCategory = "Grain"
	CategorySpice     IngredientCategory = "Spice"
	CategorySauce     IngredientCategory = "Sauce"
	CategoryOther     IngredientCategory = "Other"
)

// IngredientCategories lists every valid category.
var IngredientCategories = []IngredientCategory{
	CategoryMeat, CategoryVegetable, CategoryFruit, CategoryDairy,
	CategoryGrain, CategorySpice, CategorySauce, CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c IngredientCategory) Valid() bool {
	for _, v := range IngredientCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Ingredient is one item in the fridge.
type Ingredient struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Category   IngredientCategory `json:"category"`
	Amount     float64            `json:"amount"`
	Unit       Unit               `json:"unit"`
	ExpiryDate *time.Time         `json:"expiry_date,omitempty"`
	AddedDate  time.Time          `json:"added_date"`
}

// NewIngredient creates an ingredient with a fresh identifier and the
// added date set to now.
func NewIngredient(name string, category IngredientCategory, amount float64, unit Unit, expiry *time.Time) Ingredient {
	return Ingredient{
		ID:         uuid.New(),
		Name:       name,
		Category:   category,
		Amount:     amount,
		Unit:       unit,
		ExpiryDate: expiry,
		AddedDate:  time.Now().UTC(),
	}
}

// Equal compares every field, including expiry dates by value.
func (i Ingredient) Equal(other Ingredient) bool {
	if i.ID != other.ID || i.Name != other.Name || i.Category != other.Category ||
		i.Amount != other.Amount || i.Unit != other.Unit || !i.AddedDate.Equal(other.AddedDate) {
		return false
	}
	if (i.ExpiryDate == nil) != (other.ExpiryDate == nil) {
		return false
	}
	if i.ExpiryDate != nil && !i.ExpiryDate.Equal(*other.ExpiryDate) {
		return false
	}
	return true
}

// ExpiryStatus buckets an ingredient by how close it is to expiring.
type ExpiryStatus string

const (
	ExpiryNone    ExpiryStatus = "none"
	ExpiryGood    ExpiryStatus = "good"
	ExpirySoon    ExpiryStatus = "soon"
	ExpiryExpired ExpiryStatus = "expired"
)

// expirySoonWindow is how far ahead an expiry date counts as "soon".
const expirySoonWindow = 3 * 24 * time.Hour

// ExpiryStatusAt derives the expiry bucket of i relative to now.
func (i Ingredient) ExpiryStatusAt(now time.Time) ExpiryStatus {
	if i.ExpiryDate == nil {
		return ExpiryNone
	}
	switch {
	case i.ExpiryDate.Before(now):
		return ExpiryExpired
	case i.ExpiryDate.Sub(now) <= expirySoonWindow:
		return ExpirySoon
	default:
		return ExpiryGood
	}
}

// SortOption selects the field ingredient listings are ordered by.
type SortOption string

const (
	SortByExpiration SortOption = "expiration"
	SortByAddedDate  SortOption = "added_date"
	SortByQuantity   SortOption = "quantity"
)

// SortOrder selects the direction of an ingredient listing.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)
