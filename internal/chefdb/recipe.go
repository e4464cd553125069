package chefdb

import (
	"strconv"
	"time"

	"google.golang.org/genai"
)

type RecipeStage string

const (
	// RecipeStageOnboard is the stage of a freshly extracted recipe that has
	// not been refined by the user yet.
	RecipeStageOnboard RecipeStage = "ONBOARD"
)

// Chef is the assistant persona attached to a recipe.
type Chef struct {
	// Name is the display name of the assistant.
	Name string `firestore:"name" json:"name"`

	// VoiceAssistant is the voice ID used for assistant speech.
	VoiceAssistant string `firestore:"voiceAssistant" json:"voiceAssistant"`

	// VoiceChef is the voice ID used when reading recipe steps.
	VoiceChef string `firestore:"voiceChef" json:"voiceChef"`
}

// RecipeObject is the validated structured output of transcript-to-recipe
// extraction.
type RecipeObject struct {
	// RecipeName is a short, descriptive name for the dish.
	RecipeName string `firestore:"recipe_name" json:"recipe_name"`

	// InitialRecipe is the formatted recipe text containing the ingredients,
	// equipment, and numbered step sections.
	InitialRecipe string `firestore:"initial_recipe" json:"initial_recipe"`
}

// Recipe is a recipe document stored at users/{uid}/recipes/{recipeID}.
type Recipe struct {
	// Name is the name of the dish.
	Name string `firestore:"name" json:"name"`

	// DateCreated is the time the recipe was extracted.
	DateCreated time.Time `firestore:"date_created" json:"date_created"`

	// Chef is the assistant persona for the recipe.
	Chef Chef `firestore:"chef" json:"chef"`

	// PrepType is the preparation type, unset until the user refines the
	// recipe.
	PrepType string `firestore:"prep_type" json:"prep_type"`

	// Complexity is the complexity level, unset until the user refines the
	// recipe.
	Complexity string `firestore:"complexity" json:"complexity"`

	// Stage is the lifecycle stage of the recipe.
	Stage RecipeStage `firestore:"step" json:"step"`

	// Gradient is a decorative CSS gradient shown on recipe cards.
	Gradient string `firestore:"gradient" json:"gradient"`

	// InitialRecipe is the formatted recipe text from extraction.
	InitialRecipe string `firestore:"initial_recipe" json:"initial_recipe"`

	// AdditionalInfo is free-form context provided by the user.
	AdditionalInfo string `firestore:"additional_info" json:"additional_info"`
}

// RecipeID derives a recipe document ID by encoding the creation timestamp.
// IDs for later timestamps of the same width sort after earlier ones.
func RecipeID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 36)
}

// RecipeObjectSchema constrains extraction output to exactly the two recipe
// fields.
var RecipeObjectSchema = &genai.Schema{
	Type:        "object",
	Description: "The structured result of recipe extraction.",
	Required:    []string{"recipe_name", "initial_recipe"},
	Properties: map[string]*genai.Schema{
		"recipe_name": {
			Type:        "string",
			Description: "A short, descriptive name for the dish based on the transcript.",
		},
		"initial_recipe": {
			Type:        "string",
			Description: "The complete formatted recipe text.",
		},
	},
}
