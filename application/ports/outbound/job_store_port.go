package outbound

import (
	"context"

	"longform-tts-worker/domain"
)

type UpdateJobParams struct {
	JobID  string
	Status domain.JobStatus
	Error  *domain.JobError
	Result *domain.JobResult
}

type JobStorePort interface {
	Update(ctx context.Context, params UpdateJobParams) error
	// Find returns nil without error when the job does not exist.
	Find(ctx context.Context, jobID string) (*domain.Job, error)
}
