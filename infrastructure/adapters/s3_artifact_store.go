package adapters

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/config"
	"longform-tts-worker/domain"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

type s3ArtifactStore struct {
	s3Svc         *s3.S3
	storageConfig *config.StorageConfig
}

func NewS3ArtifactStore(s3Svc *s3.S3, storageConfig *config.StorageConfig) outbound.ArtifactStorePort {
	return &s3ArtifactStore{
		s3Svc:         s3Svc,
		storageConfig: storageConfig,
	}
}

func (s *s3ArtifactStore) Save(ctx context.Context, artifact domain.AudioArtifact) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.storageConfig.BucketName),
		Key:           aws.String(artifact.Key),
		Body:          bytes.NewReader(artifact.Content),
		ContentType:   aws.String(artifact.ContentType),
		ContentLength: aws.Int64(int64(len(artifact.Content))),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.storageConfig.BucketName).
			Str("key", artifact.Key).
			Msg("Failed to upload audio artifact")
		return "", err
	}

	audioURL := s.publicURL(artifact.Key)
	log.Debug().
		Str("audioUrl", audioURL).
		Msg("Successfully uploaded audio artifact")

	return audioURL, nil
}

func (s *s3ArtifactStore) publicURL(key string) string {
	if s.storageConfig.PublicDomain != "" {
		// A trailing slash on the domain would leave a double slash in the URL.
		return strings.TrimRight(s.storageConfig.PublicDomain, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.storageConfig.BucketName, key)
}
