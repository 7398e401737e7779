package dto

import "longform-tts-worker/domain"

type JobResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Error     *domain.JobError  `json:"error,omitempty"`
	Result    *domain.JobResult `json:"result,omitempty"`
	UpdatedAt string            `json:"updatedAt,omitempty"`
}
