package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
)

var errMissingRecipeFields = errors.New("missing recipe_name or initial_recipe")

// SchemaError indicates model output that does not conform to the recipe
// schema. It is distinct from transport or model errors so callers can tell
// a garbled response apart from an unavailable model.
type SchemaError struct {
	// Output is the raw model output that failed validation.
	Output string

	err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("llm: model output failed schema validation: %v", e.err)
}

func (e *SchemaError) Unwrap() error {
	return e.err
}

// Provider selects the hosted model used for extraction.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderOpenAI Provider = "openai"
)

// Extractor converts noisy cooking video transcripts into structured
// recipes.
type Extractor struct {
	genAI       *genai.Client
	oai         *openai.Client
	provider    Provider
	googleModel string
	openAIModel string
}

// NewExtractor returns an Extractor using the given provider and models.
func NewExtractor(genAI *genai.Client, oai *openai.Client, provider Provider, googleModel string, openAIModel string) *Extractor {
	return &Extractor{
		genAI:       genAI,
		oai:         oai,
		provider:    provider,
		googleModel: googleModel,
		openAIModel: openAIModel,
	}
}

// ExtractRecipe synthesizes a recipe from a transcript.
func (e *Extractor) ExtractRecipe(ctx context.Context, transcript string) (*chefdb.RecipeObject, error) {
	prompt := ExtractionPrompt(transcript)
	switch e.provider {
	case ProviderOpenAI:
		return e.extractOpenAI(ctx, prompt)
	case ProviderGoogle:
		fallthrough
	default:
		return e.extractGemini(ctx, prompt)
	}
}

func (e *Extractor) extractGemini(ctx context.Context, prompt string) (*chefdb.RecipeObject, error) {
	res, err := e.genAI.Models.GenerateContent(ctx, e.googleModel, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   chefdb.RecipeObjectSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: generating content: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return nil, fmt.Errorf("llm: unexpected response from generate ai: %v", res) //nolint:err113
	}
	return parseRecipeObject(res.Candidates[0].Content.Parts[0].Text)
}

var recipeObjectJSONSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"recipe_name": map[string]any{
			"type":        "string",
			"description": "A short, descriptive name for the dish based on the transcript.",
		},
		"initial_recipe": map[string]any{
			"type":        "string",
			"description": "The complete formatted recipe text.",
		},
	},
	"required":             []string{"recipe_name", "initial_recipe"},
	"additionalProperties": false,
}

func (e *Extractor) extractOpenAI(ctx context.Context, prompt string) (*chefdb.RecipeObject, error) {
	res, err := e.oai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.openAIModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "recipe_object",
					Schema: recipeObjectJSONSchema,
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm: creating chat completion: %w", err)
	}
	if len(res.Choices) != 1 || res.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("llm: unexpected response from chat completion: %v", res) //nolint:err113
	}
	return parseRecipeObject(res.Choices[0].Message.Content)
}

func parseRecipeObject(text string) (*chefdb.RecipeObject, error) {
	var recipe chefdb.RecipeObject
	if err := json.Unmarshal([]byte(text), &recipe); err != nil {
		return nil, &SchemaError{Output: text, err: err}
	}
	if recipe.RecipeName == "" || recipe.InitialRecipe == "" {
		return nil, &SchemaError{Output: text, err: errMissingRecipeFields}
	}
	return &recipe, nil
}
