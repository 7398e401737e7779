package domain

import (
	"fmt"
	"math/rand"
	"time"
)

type JobStatus string

const (
	PendingJobStatus   JobStatus = "PENDING"
	SucceededJobStatus JobStatus = "SUCCEEDED"
	FailedJobStatus    JobStatus = "FAILED"
)

func NewSegment(text string, ordinal int) Segment {
	return Segment{
		Text:    text,
		Ordinal: ordinal,
	}
}

type Segment struct {
	Text    string
	Ordinal int
}

type Job struct {
	ID        string
	Status    JobStatus
	Error     *JobError
	Result    *JobResult
	UpdatedAt time.Time
}

type JobError struct {
	Message string `json:"message"`
}

type JobResult struct {
	AudioURL string `json:"audioUrl"`
}

type AudioArtifact struct {
	Key         string
	Content     []byte
	ContentType string
}

const artifactKeyCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewArtifactKey builds a storage key of the form
// <prefix>/audio-<epoch-millis>-<8 random chars>.<format>, unique enough
// across concurrent runs writing into the same bucket.
func NewArtifactKey(prefix string, format string) string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = artifactKeyCharset[rand.Intn(len(artifactKeyCharset))]
	}
	return fmt.Sprintf("%s/audio-%d-%s.%s", prefix, time.Now().UnixMilli(), suffix, format)
}
