package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Transcript is the configuration for the external transcript extraction
// service.
type Transcript struct {
	// URL is the base URL of the transcript service, e.g. https://transcripter-api.onrender.com.
	URL string `koanf:"url"`

	// TimeoutSeconds bounds a single transcript fetch, including the body read.
	TimeoutSeconds int `koanf:"timeoutseconds"`
}

// LLM is the configuration for recipe extraction models.
type LLM struct {
	// Provider selects the model provider, "google" or "openai".
	Provider string `koanf:"provider"`

	// GoogleModel is the Gemini model used when Provider is "google".
	GoogleModel string `koanf:"googlemodel"`

	// OpenAIModel is the OpenAI model used when Provider is "openai".
	OpenAIModel string `koanf:"openaimodel"`
}

// Chef is the default assistant persona attached to new recipes.
type Chef struct {
	// Name is the display name of the assistant.
	Name string `koanf:"name"`

	// VoiceAssistant is the voice ID used for assistant speech.
	VoiceAssistant string `koanf:"voiceassistant"`

	// VoiceChef is the voice ID used when reading recipe steps.
	VoiceChef string `koanf:"voicechef"`
}

type Config struct {
	config.Common

	// Transcript is the configuration for the transcript service.
	Transcript Transcript `koanf:"transcript"`

	// LLM is the configuration for recipe extraction models.
	LLM LLM `koanf:"llm"`

	// Chef is the default assistant persona for new recipes.
	Chef Chef `koanf:"chef"`
}
