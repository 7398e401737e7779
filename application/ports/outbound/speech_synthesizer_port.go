package outbound

import "context"

type SynthesizeRequest struct {
	Text           string
	Voice          string
	Model          string
	ResponseFormat string
	Speed          float64
	Instructions   string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error)
}
