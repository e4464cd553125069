package llm

import "fmt"

// ExtractionPrompt returns the recipe reconstruction prompt with the
// transcript embedded verbatim.
func ExtractionPrompt(transcript string) string {
	return fmt.Sprintf(extractionPrompt, transcript)
}

const extractionPrompt = `You are a professional recipe reconstruction AI.

Your goal is to extract and infer a clean, structured recipe from a transcript of a YouTube or Instagram cooking video.

The transcript may contain irrelevant dialogue, filler speech, or noise — ignore anything that is not directly related to cooking actions, ingredients, or tools.

Your output must be a JSON object with the following structure:

{
  recipe_name: <A short, descriptive name for the dish based on the transcript>,
  initial_recipe: <The complete formatted recipe text below>
}

The "initial_recipe" must contain the following three sections in this exact order and format:

Ingredients Required

List all ingredients with approximate quantities (e.g., "1 cup rice", "a handful of spinach").

Equipment Required

List all necessary cooking tools and utensils mentioned or implied (e.g., "pan", "spatula", "blender").

Recipe (Step-by-Step Instructions)

Number each step clearly.
Use short, direct sentences.
Follow a logical cooking order.

Do NOT include any commentary, reasoning, or conversational text.
Only output the object with the two keys.

Transcript:
%s
`
