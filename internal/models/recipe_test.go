package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCookingTimeFilterMatches(t *testing.T) {
	cases := []struct {
		filter  CookingTimeFilter
		minutes int
		want    bool
	}{
		{FilterAll, 0, true},
		{FilterAll, 999, true},
		{FilterUnder15, 15, true},
		{FilterUnder15, 16, false},
		{FilterUnder30, 30, true},
		{FilterUnder30, 31, false},
		{FilterUnder60, 60, true},
		{FilterUnder60, 61, false},
		{FilterOver60, 60, false},
		{FilterOver60, 61, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.filter.Matches(tc.minutes), "%s with %d min", tc.filter, tc.minutes)
	}
}

func TestParseCookingTimeFilter(t *testing.T) {
	f, ok := ParseCookingTimeFilter("Under 30 min")
	assert.True(t, ok)
	assert.Equal(t, FilterUnder30, f)

	_, ok = ParseCookingTimeFilter("under30")
	assert.False(t, ok)
}

func TestSameRecipe(t *testing.T) {
	apiID := 716429
	sameAPIID := 716429
	otherAPIID := 1096010

	a := Recipe{ID: uuid.New(), SpoonacularID: &apiID}
	b := Recipe{ID: uuid.New(), SpoonacularID: &sameAPIID}
	c := Recipe{ID: uuid.New(), SpoonacularID: &otherAPIID}

	// Upstream id wins when both sides carry one.
	assert.True(t, SameRecipe(a, b))
	assert.False(t, SameRecipe(a, c))

	// Without an upstream id on either side, the local id decides.
	local := Recipe{ID: uuid.New()}
	assert.True(t, SameRecipe(local, local))
	assert.False(t, SameRecipe(local, Recipe{ID: uuid.New()}))

	// Mixed: one side has an upstream id, the other does not.
	assert.False(t, SameRecipe(a, Recipe{ID: uuid.New()}))
	assert.True(t, SameRecipe(a, Recipe{ID: a.ID}))
}
