package spoonacular

// SearchResult is the lightweight stub returned by the
// find-by-ingredients endpoint. It only exists to collect ids for the
// bulk information call.
type SearchResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// APIRecipe is the full recipe record returned by the information
// endpoints.
type APIRecipe struct {
	ID                   int              `json:"id"`
	Title                string           `json:"title"`
	Image                string           `json:"image,omitempty"`
	ReadyInMinutes       *int             `json:"readyInMinutes,omitempty"`
	Servings             *int             `json:"servings,omitempty"`
	Summary              *string          `json:"summary,omitempty"`
	Cuisines             []string         `json:"cuisines,omitempty"`
	DishTypes            []string         `json:"dishTypes,omitempty"`
	Diets                []string         `json:"diets,omitempty"`
	SourceURL            *string          `json:"sourceUrl,omitempty"`
	ExtendedIngredients  []APIIngredient  `json:"extendedIngredients,omitempty"`
	AnalyzedInstructions []APIInstruction `json:"analyzedInstructions,omitempty"`
	Nutrition            *APINutrition    `json:"nutrition,omitempty"`
	UsedIngredientCount  *int             `json:"usedIngredientCount,omitempty"`
	MissedIngredients    *int             `json:"missedIngredientCount,omitempty"`
	Likes                *int             `json:"likes,omitempty"`
}

// APIIngredient is one upstream ingredient line. Original carries the
// free-text description the line was parsed from.
type APIIngredient struct {
	Name     string  `json:"name"`
	Original *string `json:"original,omitempty"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// APIInstruction is one block of analyzed instruction steps.
type APIInstruction struct {
	Steps []APIInstructionStep `json:"steps"`
}

// APIInstructionStep is a single numbered step.
type APIInstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// APINutrition wraps the nutrient list of a detail record.
type APINutrition struct {
	Nutrients []APINutrient `json:"nutrients"`
}

// APINutrient is a single nutrition fact.
type APINutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// errorEnvelope is the upstream error shape. It must be distinguished
// from a successful payload before generic decoding is attempted.
type errorEnvelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
