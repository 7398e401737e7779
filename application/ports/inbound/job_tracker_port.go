package inbound

import (
	"context"

	"longform-tts-worker/domain"
)

type JobTrackerPort interface {
	MarkSucceeded(ctx context.Context, jobID string, audioURL string)
	MarkFailed(ctx context.Context, jobID string, message string)
	Find(ctx context.Context, jobID string) (*domain.Job, error)
}
