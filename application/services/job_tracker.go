package services

import (
	"context"

	"longform-tts-worker/application/ports/inbound"
	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/domain"
)

type jobTracker struct {
	logger   outbound.LoggerPort
	jobStore outbound.JobStorePort
}

func NewJobTracker(logger outbound.LoggerPort, jobStore outbound.JobStorePort) inbound.JobTrackerPort {
	return &jobTracker{
		logger:   logger,
		jobStore: jobStore,
	}
}

func (t *jobTracker) MarkSucceeded(ctx context.Context, jobID string, audioURL string) {
	t.update(ctx, outbound.UpdateJobParams{
		JobID:  jobID,
		Status: domain.SucceededJobStatus,
		Result: &domain.JobResult{AudioURL: audioURL},
	})
}

func (t *jobTracker) MarkFailed(ctx context.Context, jobID string, message string) {
	t.update(ctx, outbound.UpdateJobParams{
		JobID:  jobID,
		Status: domain.FailedJobStatus,
		Error:  &domain.JobError{Message: message},
	})
}

func (t *jobTracker) Find(ctx context.Context, jobID string) (*domain.Job, error) {
	return t.jobStore.Find(ctx, jobID)
}

// update never reports failure to the caller. By the time the job row is
// written the pipeline's outcome is fixed, so a lost status write only
// degrades observability. Runs without a job id skip the write entirely.
func (t *jobTracker) update(ctx context.Context, params outbound.UpdateJobParams) {
	if params.JobID == "" {
		return
	}

	if err := t.jobStore.Update(ctx, params); err != nil {
		t.logger.ErrorWithFields(err, "tts.job_update_failed", map[string]interface{}{
			"job_id": params.JobID,
			"status": params.Status,
		})
	}
}
