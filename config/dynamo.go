package config

import (
	"fmt"
	"os"
)

type DynamoConfig struct {
	JobsTableName    string
	StoriesTableName string
}

func GetDynamoConfig() (*DynamoConfig, error) {
	jobsTableName := os.Getenv("JOBS_TABLE_NAME")
	if jobsTableName == "" {
		return nil, fmt.Errorf("JOBS_TABLE_NAME must be set")
	}

	storiesTableName := os.Getenv("STORIES_TABLE_NAME")
	if storiesTableName == "" {
		return nil, fmt.Errorf("STORIES_TABLE_NAME must be set")
	}

	return &DynamoConfig{
		JobsTableName:    jobsTableName,
		StoriesTableName: storiesTableName,
	}, nil
}
