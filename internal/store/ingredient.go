package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fridgemate/backend/internal/models"
)

// IngredientStore holds the ordered fridge contents, persisted as a
// whole JSON document on every mutation. The in-memory list stays the
// source of truth when a write fails.
type IngredientStore struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
	items  []models.Ingredient
	subs   []chan struct{}
}

// NewIngredientStore loads the persisted document at path. Any read or
// parse failure resolves to an empty fridge and is non-fatal.
func NewIngredientStore(path string, logger zerolog.Logger) *IngredientStore {
	s := &IngredientStore{
		path:   path,
		logger: logger.With().Str("component", "ingredient_store").Logger(),
	}
	if err := readDocument(path, &s.items); err != nil {
		s.logger.Debug().Err(err).Msg("no persisted ingredients, starting empty")
		s.items = nil
	}
	return s
}

// Subscribe returns a channel that receives a signal after mutations
// that should trigger a recommendation refresh.
func (s *IngredientStore) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Items returns a copy of the fridge contents in insertion order.
func (s *IngredientStore) Items() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ingredient, len(s.items))
	copy(out, s.items)
	return out
}

// List returns the fridge contents ordered by the given sort option.
func (s *IngredientStore) List(by models.SortOption, order models.SortOrder) []models.Ingredient {
	out := s.Items()
	less := func(a, b models.Ingredient) bool { return a.AddedDate.Before(b.AddedDate) }
	switch by {
	case models.SortByExpiration:
		less = func(a, b models.Ingredient) bool {
			// Undated items sort after dated ones.
			if (a.ExpiryDate == nil) != (b.ExpiryDate == nil) {
				return a.ExpiryDate != nil
			}
			if a.ExpiryDate == nil {
				return false
			}
			return a.ExpiryDate.Before(*b.ExpiryDate)
		}
	case models.SortByQuantity:
		less = func(a, b models.Ingredient) bool { return a.Amount < b.Amount }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == models.SortDescending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Get returns the ingredient with the given id.
func (s *IngredientStore) Get(id uuid.UUID) (models.Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Ingredient{}, false
}

// Add appends one ingredient and persists.
func (s *IngredientStore) Add(ingredient models.Ingredient) {
	s.mu.Lock()
	s.items = append(s.items, ingredient)
	s.persistLocked()
	s.mu.Unlock()
}

// AddMany appends all ingredients, persists, and signals subscribers
// to refresh recommendations.
func (s *IngredientStore) AddMany(ingredients []models.Ingredient) {
	s.mu.Lock()
	s.items = append(s.items, ingredients...)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// Remove deletes the ingredient with the given id, persists, and
// signals subscribers. It reports whether anything was removed.
func (s *IngredientStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	removed := false
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		s.persistLocked()
	}
	s.mu.Unlock()
	if removed {
		s.notify()
	}
	return removed
}

// Clear empties the fridge and persists.
func (s *IngredientStore) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()
}

func (s *IngredientStore) persistLocked() {
	items := s.items
	if items == nil {
		items = []models.Ingredient{}
	}
	if err := writeDocument(s.path, items); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist ingredients")
	}
}

func (s *IngredientStore) notify() {
	s.mu.Lock()
	subs := make([]chan struct{}, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
