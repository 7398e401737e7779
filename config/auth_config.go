package config

import (
	"fmt"
	"os"
)

type WorkerAuthConfig struct {
	SharedSecret string
}

func NewWorkerAuthConfig() (*WorkerAuthConfig, error) {
	sharedSecret := os.Getenv("WORKER_SECRET")
	if sharedSecret == "" {
		return nil, fmt.Errorf("WORKER_SECRET environment variable not set")
	}

	return &WorkerAuthConfig{
		SharedSecret: sharedSecret,
	}, nil
}
