package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/config"

	"github.com/rs/zerolog/log"
)

// Only the legacy model family honors the speed parameter; the newer
// speech models ignore it and take free-form style instructions instead.
var legacySpeechModels = map[string]bool{
	"tts-1":    true,
	"tts-1-hd": true,
}

type speechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format"`
	Speed          float64 `json:"speed,omitempty"`
	Instructions   string  `json:"instructions,omitempty"`
}

type openAISynthesizer struct {
	ContentFetcher
	openAIConfig *config.OpenAIConfig
}

func NewOpenAISynthesizer(contentFetcher ContentFetcher, openAIConfig *config.OpenAIConfig) outbound.SpeechSynthesizerPort {
	return &openAISynthesizer{
		ContentFetcher: contentFetcher,
		openAIConfig:   openAIConfig,
	}
}

func (s *openAISynthesizer) Synthesize(ctx context.Context, synthesizeReq outbound.SynthesizeRequest) ([]byte, error) {
	req, err := s.getRequest(ctx, synthesizeReq)
	if err != nil {
		log.Error().Err(err).Str("action", "Fetching Audio").Str("model", synthesizeReq.Model).Msg("Failed to construct the HTTP request for speech synthesis")
		return nil, err
	}

	return s.FetchContent(req)
}

func (s *openAISynthesizer) getRequest(ctx context.Context, synthesizeReq outbound.SynthesizeRequest) (*http.Request, error) {
	reqBody := speechRequest{
		Model:          synthesizeReq.Model,
		Input:          synthesizeReq.Text,
		Voice:          synthesizeReq.Voice,
		ResponseFormat: synthesizeReq.ResponseFormat,
		Instructions:   synthesizeReq.Instructions,
	}
	if legacySpeechModels[synthesizeReq.Model] {
		reqBody.Speed = synthesizeReq.Speed
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		log.Error().Err(err).Str("action", "Marshalling JSON").Interface("speechRequest", reqBody).Msg("Failed to marshal the request body for the speech API")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.openAIConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Error().Err(err).Str("action", "Creating HTTP Request").Str("URL", s.openAIConfig.ApiUrl).Msg("Failed to create the HTTP POST request")
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+s.openAIConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}
