package outbound

import "context"

type AttachAudioParams struct {
	StoryID   string
	UserEmail string
	AudioKey  string
	AudioURL  string
}

type StoryRepositoryPort interface {
	// AttachAudio writes the audio fields onto the story row, scoped to
	// both the story id and its owner.
	AttachAudio(ctx context.Context, params AttachAudioParams) error
}
