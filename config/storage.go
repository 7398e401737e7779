package config

import (
	"fmt"
	"os"
)

const defaultAudioKeyPrefix = "tts-audio"

type StorageConfig struct {
	BucketName   string
	KeyPrefix    string
	PublicDomain string
}

func GetStorageConfig() (*StorageConfig, error) {
	bucketName := os.Getenv("BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("BUCKET_NAME must be set")
	}

	keyPrefix := os.Getenv("AUDIO_KEY_PREFIX")
	if keyPrefix == "" {
		keyPrefix = defaultAudioKeyPrefix
	}

	// Optional CDN domain for public artifact URLs. When empty the store
	// falls back to the plain S3 URL.
	publicDomain := os.Getenv("PUBLIC_DOMAIN")

	return &StorageConfig{
		BucketName:   bucketName,
		KeyPrefix:    keyPrefix,
		PublicDomain: publicDomain,
	}, nil
}
