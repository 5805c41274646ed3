package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fridgemate/backend/internal/models"
	"github.com/fridgemate/backend/internal/spoonacular"
)

// RecommendationSnapshot is the observable engine state published
// after each load settles.
type RecommendationSnapshot struct {
	Recipes      []models.Recipe
	IsLoading    bool
	ErrorMessage string
	Filter       models.CookingTimeFilter
}

// RecommendationService orchestrates the two-stage fetch (search by
// ingredient names, then bulk details), the client-side cooking-time
// filter, and the redundancy guard that suppresses refetches for
// unchanged inputs.
type RecommendationService struct {
	gateway RecipeGateway
	logger  zerolog.Logger

	mu         sync.Mutex
	recipes    []models.Recipe
	allRecipes []models.Recipe
	isLoading  bool
	errMsg     string
	filter     models.CookingTimeFilter

	lastIngredients []models.Ingredient
	lastFilter      models.CookingTimeFilter

	// loadGen discards publishes from superseded loads; bumped on
	// every real load and on Close.
	loadGen uint64

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewRecommendationService creates an idle engine with the all-pass
// filter active.
func NewRecommendationService(gateway RecipeGateway, logger zerolog.Logger) *RecommendationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &RecommendationService{
		gateway: gateway,
		logger:  logger.With().Str("component", "recommendations").Logger(),
		filter:  models.FilterAll,
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// Watch subscribes to ingredient-change signals and reloads on each
// one until the service is closed.
func (s *RecommendationService) Watch(src IngredientSource) {
	ch := src.Subscribe()
	go func() {
		for {
			select {
			case <-s.baseCtx.Done():
				return
			case <-ch:
				s.LoadRecipes(s.baseCtx, src.Items())
			}
		}
	}()
}

// Close tears the engine down: in-flight requests are cancelled and
// nothing is published afterwards.
func (s *RecommendationService) Close() {
	s.mu.Lock()
	s.loadGen++
	s.mu.Unlock()
	s.cancel()
}

// Snapshot returns the current observable state.
func (s *RecommendationService) Snapshot() RecommendationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipes := make([]models.Recipe, len(s.recipes))
	copy(recipes, s.recipes)
	return RecommendationSnapshot{
		Recipes:      recipes,
		IsLoading:    s.isLoading,
		ErrorMessage: s.errMsg,
		Filter:       s.filter,
	}
}

// Unfiltered returns the cached unfiltered result set.
func (s *RecommendationService) Unfiltered() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recipe, len(s.allRecipes))
	copy(out, s.allRecipes)
	return out
}

// SetFilter switches the active cooking-time filter. When cached
// unfiltered results exist the visible list is re-filtered locally;
// no network round trip happens for a filter-only change.
func (s *RecommendationService) SetFilter(filter models.CookingTimeFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filter == s.filter {
		return
	}
	s.filter = filter
	if len(s.allRecipes) > 0 {
		s.recipes = filterRecipes(s.allRecipes, filter)
		s.lastFilter = filter
	}
}

// LoadRecipes runs the recommendation pipeline for the given fridge
// contents. The call is a no-op when neither the ingredient list nor
// the filter changed since the last successful load and a non-empty
// result is already held. It blocks until the load settles; a
// concurrent newer load wins and this one publishes nothing.
func (s *RecommendationService) LoadRecipes(ctx context.Context, ingredients []models.Ingredient) {
	s.mu.Lock()
	if ingredientsEqual(ingredients, s.lastIngredients) && s.filter == s.lastFilter && len(s.recipes) > 0 {
		s.mu.Unlock()
		return
	}
	s.lastIngredients = cloneIngredients(ingredients)
	s.lastFilter = s.filter

	if len(ingredients) == 0 {
		// Supersede any in-flight load so it cannot publish over the
		// emptied fridge.
		s.loadGen++
		s.recipes = []models.Recipe{}
		s.allRecipes = nil
		s.errMsg = ""
		s.isLoading = false
		s.mu.Unlock()
		return
	}

	s.errMsg = ""
	s.isLoading = true
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	names := make([]string, len(ingredients))
	for i, ing := range ingredients {
		names[i] = ing.Name
	}
	s.logger.Info().Strs("ingredients", names).Msg("loading recipes")

	// The load must also stop when the engine itself is torn down.
	cctx, cancelLoad := context.WithCancel(ctx)
	defer cancelLoad()
	stop := context.AfterFunc(s.baseCtx, cancelLoad)
	defer stop()

	stubs, err := s.gateway.SearchByIngredients(cctx, names)
	if err != nil {
		s.publishError(gen, err)
		return
	}
	ids := make([]int, 0, len(stubs))
	for _, stub := range stubs {
		ids = append(ids, stub.ID)
	}
	if len(ids) == 0 {
		s.publishResult(gen, []models.Recipe{})
		return
	}

	details, err := s.gateway.FetchDetailsBulk(cctx, ids)
	if err != nil {
		s.publishError(gen, err)
		return
	}
	mapped := make([]models.Recipe, 0, len(details))
	for _, detail := range details {
		mapped = append(mapped, MapRecipe(detail))
	}
	s.publishResult(gen, mapped)
}

func (s *RecommendationService) publishResult(gen uint64, mapped []models.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return
	}
	s.isLoading = false
	s.errMsg = ""
	s.allRecipes = mapped
	s.recipes = filterRecipes(mapped, s.filter)
	s.logger.Info().Int("fetched", len(mapped)).Int("visible", len(s.recipes)).Msg("recipes loaded")
}

func (s *RecommendationService) publishError(gen uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return
	}
	s.isLoading = false
	// The previous result list is kept as-is.
	s.errMsg = spoonacular.UserMessage(err)
	s.logger.Warn().Err(err).Msg("recipe load failed")
}

func filterRecipes(recipes []models.Recipe, filter models.CookingTimeFilter) []models.Recipe {
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if filter.Matches(r.CookingTime) {
			out = append(out, r)
		}
	}
	return out
}

func cloneIngredients(in []models.Ingredient) []models.Ingredient {
	out := make([]models.Ingredient, len(in))
	copy(out, in)
	return out
}

func ingredientsEqual(a, b []models.Ingredient) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
