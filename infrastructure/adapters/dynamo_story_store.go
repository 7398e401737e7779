package adapters

import (
	"context"
	"time"

	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

type dynamoStoryStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoStoryStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.StoryRepositoryPort {
	return &dynamoStoryStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoStoryStore) AttachAudio(ctx context.Context, params outbound.AttachAudioParams) error {
	now := time.Now().UTC().Format(time.RFC3339)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.StoriesTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {S: aws.String(params.StoryID)},
		},
		UpdateExpression: aws.String("SET audio_key = :audio_key, audio_url = :audio_url, audio_generated_at = :now, updated_at = :now"),
		// Only the owner's record may be touched. Two runs racing for the
		// same story resolve last-write-wins, no merge.
		ConditionExpression: aws.String("attribute_exists(id) AND user_id = :user_id"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":audio_key": {S: aws.String(params.AudioKey)},
			":audio_url": {S: aws.String(params.AudioURL)},
			":now":       {S: aws.String(now)},
			":user_id":   {S: aws.String(params.UserEmail)},
		},
	}

	_, err := s.dynamoSvc.UpdateItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to attach audio to story item", map[string]interface{}{
			"story_id": params.StoryID,
		})
		return err
	}

	return nil
}
