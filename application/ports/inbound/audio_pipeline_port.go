package inbound

import "context"

type RunPipelineParams struct {
	Text           string
	StoryID        string
	JobID          string
	UserEmail      string
	Voice          string
	Model          string
	ResponseFormat string
	Speed          float64
	Instructions   string
}

type PipelineResult struct {
	AudioURL  string
	Key       string
	SizeBytes int
}

type AudioPipelinePort interface {
	Run(ctx context.Context, params RunPipelineParams) (PipelineResult, error)
}
