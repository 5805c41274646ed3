package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/store"
)

// PreferencesHandler exposes the single user-preferences record.
type PreferencesHandler struct {
	store *store.PreferencesStore
}

func NewPreferencesHandler(store *store.PreferencesStore) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

func (h *PreferencesHandler) RegisterRoutes(router *gin.RouterGroup) {
	preferences := router.Group("/preferences")
	{
		preferences.GET("", h.GetPreferences)
		preferences.PUT("", h.UpdatePreferences)
	}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validatePreferences(prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.Update(prefs)
	c.JSON(http.StatusOK, prefs)
}

func validatePreferences(prefs models.UserPreferences) error {
	if prefs.Nationality != nil && !prefs.Nationality.Valid() {
		return validationError("invalid nationality")
	}
	for _, p := range prefs.Preferences {
		if !p.Valid() {
			return validationError("invalid food preference: " + string(p))
		}
	}
	for _, a := range prefs.Allergies {
		if !a.Valid() {
			return validationError("invalid allergy: " + string(a))
		}
	}
	if !prefs.CookingSkillLevel.Valid() {
		return validationError("invalid cooking skill level")
	}
	for _, t := range prefs.CookingTools {
		if !t.Valid() {
			return validationError("invalid cooking tool: " + string(t))
		}
	}
	if !prefs.MaxPrepTime.Valid() {
		return validationError("invalid max prep time")
	}
	return nil
}
