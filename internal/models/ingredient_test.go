package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseUnit(t *testing.T) {
	assert.Equal(t, UnitTablespoon, ParseUnit("tbsp"))
	assert.Equal(t, UnitLiter, ParseUnit("L"))

	// The match is case-sensitive; anything else falls back to grams.
	assert.Equal(t, UnitGram, ParseUnit("Tbsp"))
	assert.Equal(t, UnitGram, ParseUnit("l"))
	assert.Equal(t, UnitGram, ParseUnit("handful"))
	assert.Equal(t, UnitGram, ParseUnit(""))
}

func TestIngredientEqual(t *testing.T) {
	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	a := NewIngredient("chicken", CategoryMeat, 500, UnitGram, &expiry)

	b := a
	assert.True(t, a.Equal(b))

	// Expiry dates compare by value, not by pointer.
	expiryCopy := expiry
	b.ExpiryDate = &expiryCopy
	assert.True(t, a.Equal(b))

	b.Amount = 250
	assert.False(t, a.Equal(b))

	c := a
	c.ExpiryDate = nil
	assert.False(t, a.Equal(c))
}

func TestExpiryStatus(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	undated := NewIngredient("salt", CategorySpice, 100, UnitGram, nil)
	assert.Equal(t, ExpiryNone, undated.ExpiryStatusAt(now))

	past := now.Add(-24 * time.Hour)
	expired := NewIngredient("milk", CategoryDairy, 1, UnitLiter, &past)
	assert.Equal(t, ExpiryExpired, expired.ExpiryStatusAt(now))

	nearby := now.Add(48 * time.Hour)
	soon := NewIngredient("yogurt", CategoryDairy, 500, UnitGram, &nearby)
	assert.Equal(t, ExpirySoon, soon.ExpiryStatusAt(now))

	far := now.Add(10 * 24 * time.Hour)
	good := NewIngredient("rice", CategoryGrain, 1, UnitKilogram, &far)
	assert.Equal(t, ExpiryGood, good.ExpiryStatusAt(now))
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategorySauce.Valid())
	assert.False(t, IngredientCategory("Snack").Valid())
}
