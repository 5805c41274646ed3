package store

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fridgemate/backend/internal/models"
)

// SavedRecipeStore holds full snapshots of recipes the user
// bookmarked, independent of the live recommendation list.
type SavedRecipeStore struct {
	mu      sync.Mutex
	path    string
	logger  zerolog.Logger
	recipes []models.Recipe
}

// NewSavedRecipeStore loads the persisted document at path. Any read
// or parse failure resolves to an empty list and is non-fatal.
func NewSavedRecipeStore(path string, logger zerolog.Logger) *SavedRecipeStore {
	s := &SavedRecipeStore{
		path:   path,
		logger: logger.With().Str("component", "saved_recipe_store").Logger(),
	}
	if err := readDocument(path, &s.recipes); err != nil {
		s.logger.Debug().Err(err).Msg("no persisted saved recipes, starting empty")
		s.recipes = nil
	}
	return s
}

// List returns a copy of the saved recipes.
func (s *SavedRecipeStore) List() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Save appends the recipe unless an equal one (by the two-tier
// identity) is already stored. It reports whether the recipe was
// added.
func (s *SavedRecipeStore) Save(recipe models.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, saved := range s.recipes {
		if models.SameRecipe(recipe, saved) {
			return false
		}
	}
	s.recipes = append(s.recipes, recipe)
	s.persistLocked()
	return true
}

// Remove deletes any stored recipe matching the candidate's identity
// and reports whether one was removed.
func (s *SavedRecipeStore) Remove(recipe models.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, saved := range s.recipes {
		if models.SameRecipe(recipe, saved) {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// IsSaved reports whether a recipe matching the candidate's identity
// is stored.
func (s *SavedRecipeStore) IsSaved(recipe models.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, saved := range s.recipes {
		if models.SameRecipe(recipe, saved) {
			return true
		}
	}
	return false
}

// Find resolves an identifier from the API surface: a numeric string
// matches the upstream id, anything else is parsed as a local UUID.
func (s *SavedRecipeStore) Find(id string) (models.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if apiID, err := strconv.Atoi(id); err == nil {
		for _, saved := range s.recipes {
			if saved.SpoonacularID != nil && *saved.SpoonacularID == apiID {
				return saved, true
			}
		}
		return models.Recipe{}, false
	}
	localID, err := uuid.Parse(id)
	if err != nil {
		return models.Recipe{}, false
	}
	for _, saved := range s.recipes {
		if saved.ID == localID {
			return saved, true
		}
	}
	return models.Recipe{}, false
}

func (s *SavedRecipeStore) persistLocked() {
	recipes := s.recipes
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	if err := writeDocument(s.path, recipes); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist saved recipes")
	}
}
