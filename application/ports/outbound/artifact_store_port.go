package outbound

import (
	"context"

	"longform-tts-worker/domain"
)

type ArtifactStorePort interface {
	// Save persists the artifact and returns its public URL.
	Save(ctx context.Context, artifact domain.AudioArtifact) (string, error)
}
