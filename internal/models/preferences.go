package models

// Nationality is the closed country set used both for the user's own
// nationality and for a recipe's cuisine.
type Nationality string

const (
	NationalityKorean               Nationality = "Korean"
	NationalityChinese              Nationality = "Chinese"
	NationalityJapanese             Nationality = "Japanese"
	NationalityVietnamese           Nationality = "Vietnamese"
	NationalityFilipino             Nationality = "Filipino"
	NationalityIndian               Nationality = "Indian"
	NationalityThai                 Nationality = "Thai"
	NationalityIndonesian           Nationality = "Indonesian"
	NationalityMalaysian            Nationality = "Malaysian"
	NationalityBritish              Nationality = "British"
	NationalityIrish                Nationality = "Irish"
	NationalityItalian              Nationality = "Italian"
	NationalityGreek                Nationality = "Greek"
	NationalityGerman               Nationality = "German"
	NationalityFrench               Nationality = "French"
	NationalityLebanese             Nationality = "Lebanese"
	NationalityTurkish              Nationality = "Turkish"
	NationalityEgyptian             Nationality = "Egyptian"
	NationalitySouthAfrican         Nationality = "South African"
	NationalityAustralian           Nationality = "Australian"
	NationalityNewZealander         Nationality = "New Zealander"
	NationalityAmerican             Nationality = "American"
	NationalityCanadian             Nationality = "Canadian"
	NationalityPacificIslander      Nationality = "Pacific Islander"
	NationalityIndigenousAustralian Nationality = "Indigenous Australian"
	NationalityOther                Nationality = "Other"
)

// Nationalities lists every valid nationality.
var Nationalities = []Nationality{
	NationalityKorean, NationalityChinese, NationalityJapanese,
	NationalityVietnamese, NationalityFilipino, NationalityIndian,
	NationalityThai, NationalityIndonesian, NationalityMalaysian,
	NationalityBritish, NationalityIrish, NationalityItalian,
	NationalityGreek, NationalityGerman, NationalityFrench,
	NationalityLebanese, NationalityTurkish, NationalityEgyptian,
	NationalitySouthAfrican, NationalityAustralian, NationalityNewZealander,
	NationalityAmerican, NationalityCanadian, NationalityPacificIslander,
	NationalityIndigenousAustralian, NationalityOther,
}

// ParseNationality matches s against the closed set, falling back to
// Other for anything unrecognized.
func ParseNationality(s string) Nationality {
	for _, n := range Nationalities {
		if string(n) == s {
			return n
		}
	}
	return NationalityOther
}

// Valid reports whether n is a member of the closed nationality set.
func (n Nationality) Valid() bool {
	for _, v := range Nationalities {
		if n == v {
			return true
		}
	}
	return false
}

// FoodPreference is a cuisine, food-style, or dietary-lifestyle tag.
type FoodPreference string

const (
	PrefAustralian    FoodPreference = "Australian"
	PrefBritish       FoodPreference = "British"
	PrefItalian       FoodPreference = "Italian"
	PrefGreek         FoodPreference = "Greek"
	PrefMexican       FoodPreference = "Mexican"
	PrefIndian        FoodPreference = "Indian"
	PrefChinese       FoodPreference = "Chinese"
	PrefJapanese      FoodPreference = "Japanese"
	PrefKorean        FoodPreference = "Korean"
	PrefVietnamese    FoodPreference = "Vietnamese"
	PrefThai          FoodPreference = "Thai"
	PrefMiddleEastern FoodPreference = "Middle Eastern"
	PrefBarbecue      FoodPreference = "BBQ"
	PrefSeafood       FoodPreference = "Seafood"
	PrefBakery        FoodPreference = "Bakery"
	PrefDessert       FoodPreference = "Dessert"
	PrefHealthy       FoodPreference = "Healthy"
	PrefVegetarian    FoodPreference = "Vegetarian"
	PrefVegan         FoodPreference = "Vegan"
	PrefGlutenFree    FoodPreference = "Gluten-Free"
	PrefDairyFree     FoodPreference = "Dairy-Free"
	PrefHalal         FoodPreference = "Halal"
	PrefKosher        FoodPreference = "Kosher"
	PrefLowCarb       FoodPreference = "Low-Carb"
)

// FoodPreferences lists every valid preference tag.
var FoodPreferences = []FoodPreference{
	PrefAustralian, PrefBritish, PrefItalian, PrefGreek, PrefMexican,
	PrefIndian, PrefChinese, PrefJapanese, PrefKorean, PrefVietnamese,
	PrefThai, PrefMiddleEastern, PrefBarbecue, PrefSeafood, PrefBakery,
	PrefDessert, PrefHealthy, PrefVegetarian, PrefVegan, PrefGlutenFree,
	PrefDairyFree, PrefHalal, PrefKosher, PrefLowCarb,
}

// ParseFoodPreference matches s against the closed set exactly.
func ParseFoodPreference(s string) (FoodPreference, bool) {
	for _, p := range FoodPreferences {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Valid reports whether p is a member of the closed preference set.
func (p FoodPreference) Valid() bool {
	_, ok := ParseFoodPreference(string(p))
	return ok
}

// Allergy is one of the common allergens a user can flag.
type Allergy string

const (
	AllergyGluten       Allergy = "Gluten"
	AllergyCrustacea    Allergy = "Crustacea"
	AllergyEggs         Allergy = "Eggs"
	AllergyFish         Allergy = "Fish"
	AllergyPeanuts      Allergy = "Peanuts"
	AllergySoybeans     Allergy = "Soybeans"
	AllergyMilk         Allergy = "Milk"
	AllergyTreeNuts     Allergy = "Tree Nuts"
	AllergySesameSeeds  Allergy = "Sesame Seeds"
	AllergyMustard      Allergy = "Mustard"
	AllergySulphites    Allergy = "Sulphites"
	AllergyLupin        Allergy = "Lupin"
	AllergyCelery       Allergy = "Celery"
	AllergyDairy        Allergy = "Dairy"
	AllergyShellfish    Allergy = "Shellfish"
	AllergyFishSpecific Allergy = "Fish (specific)"
	AllergySoy          Allergy = "Soy"
)

// Allergies lists every valid allergen.
var Allergies = []Allergy{
	AllergyGluten, AllergyCrustacea, AllergyEggs, AllergyFish,
	AllergyPeanuts, AllergySoybeans, AllergyMilk, AllergyTreeNuts,
	AllergySesameSeeds, AllergyMustard, AllergySulphites, AllergyLupin,
	AllergyCelery, AllergyDairy, AllergyShellfish, AllergyFishSpecific,
	AllergySoy,
}

// Valid reports whether a is a member of the closed allergen set.
func (a Allergy) Valid() bool {
	for _, v := range Allergies {
		if a == v {
			return true
		}
	}
	return false
}

// CookingSkillLevel is the user's self-assessed skill.
type CookingSkillLevel string

const (
	SkillBeginner     CookingSkillLevel = "Beginner"
	SkillIntermediate CookingSkillLevel = "Intermediate"
	SkillExpert       CookingSkillLevel = "Expert"
)

// Valid reports whether s is a member of the closed skill set.
func (s CookingSkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillExpert:
		return true
	}
	return false
}

// CookingTool is an appliance the user has available.
type CookingTool string

const (
	ToolOven       CookingTool = "Oven"
	ToolStovetop   CookingTool = "Stovetop"
	ToolMicrowave  CookingTool = "Microwave"
	ToolAirFryer   CookingTool = "Air Fryer"
	ToolBlender    CookingTool = "Blender"
	ToolRiceCooker CookingTool = "Rice Cooker"
	ToolSlowCooker CookingTool = "Slow Cooker"
	ToolGrill      CookingTool = "Grill"
)

// CookingTools lists every valid tool.
var CookingTools = []CookingTool{
	ToolOven, ToolStovetop, ToolMicrowave, ToolAirFryer,
	ToolBlender, ToolRiceCooker, ToolSlowCooker, ToolGrill,
}

// Valid reports whether t is a member of the closed tool set.
func (t CookingTool) Valid() bool {
	for _, v := range CookingTools {
		if t == v {
			return true
		}
	}
	return false
}

// PrepTime is the maximum preparation time the user is willing to spend.
type PrepTime string

const (
	PrepQuick  PrepTime = "Quick"
	PrepMedium PrepTime = "Medium"
	PrepLong   PrepTime = "Long"
)

// Valid reports whether p is a member of the closed prep-time set.
func (p PrepTime) Valid() bool {
	switch p {
	case PrepQuick, PrepMedium, PrepLong:
		return true
	}
	return false
}

// UserPreferences is the single per-installation settings record.
type UserPreferences struct {
	Nationality       *Nationality      `json:"nationality,omitempty"`
	Preferences       []FoodPreference  `json:"preferences"`
	Allergies         []Allergy         `json:"allergies"`
	CookingSkillLevel CookingSkillLevel `json:"cooking_skill_level"`
	CookingTools      []CookingTool     `json:"cooking_tools"`
	MaxPrepTime       PrepTime          `json:"max_prep_time"`
}

// DefaultPreferences is the record used when nothing is on disk.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Preferences:       []FoodPreference{},
		Allergies:         []Allergy{},
		CookingSkillLevel: SkillBeginner,
		CookingTools:      []CookingTool{},
		MaxPrepTime:       PrepQuick,
	}
}
