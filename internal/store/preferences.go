package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/fridgemate/backend/internal/models"
)

// PreferencesStore holds the single user-preferences record, replaced
// wholesale and persisted on every update.
type PreferencesStore struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
	prefs  models.UserPreferences
}

// NewPreferencesStore loads the persisted record at path, falling back
// to the documented defaults on any failure.
func NewPreferencesStore(path string, logger zerolog.Logger) *PreferencesStore {
	s := &PreferencesStore{
		path:   path,
		logger: logger.With().Str("component", "preferences_store").Logger(),
	}
	if err := readDocument(path, &s.prefs); err != nil {
		s.logger.Debug().Err(err).Msg("no persisted preferences, using defaults")
		s.prefs = models.DefaultPreferences()
	}
	return s
}

// Get returns the current preferences record.
func (s *PreferencesStore) Get() models.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Update replaces the record and persists it. There is no partial
// update.
func (s *PreferencesStore) Update(prefs models.UserPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
	if err := writeDocument(s.path, s.prefs); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist preferences")
	}
}
