package config

import (
	"fmt"
	"os"
)

const defaultSpeechApiUrl = "https://api.openai.com/v1/audio/speech"

type OpenAIConfig struct {
	ApiUrl string
	ApiKey string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}

	apiUrl := os.Getenv("OPENAI_SPEECH_API_URL")
	if apiUrl == "" {
		apiUrl = defaultSpeechApiUrl
	}

	return &OpenAIConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
