package adapters

import (
	"context"
	"encoding/json"
	"time"

	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/config"
	"longform-tts-worker/domain"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

type dynamoJobItem struct {
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	Error     string `dynamodbav:"error,omitempty"`
	Result    string `dynamodbav:"result,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type dynamoJobStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoJobStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.JobStorePort {
	return &dynamoJobStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoJobStore) Update(ctx context.Context, params outbound.UpdateJobParams) error {
	updateExpr := "SET #status = :status, updated_at = :updated_at"
	exprNames := map[string]*string{
		"#status": aws.String("status"),
	}
	exprValues := map[string]*dynamodb.AttributeValue{
		":status":     {S: aws.String(string(params.Status))},
		":updated_at": {S: aws.String(time.Now().UTC().Format(time.RFC3339))},
	}

	if params.Error != nil {
		detail, err := json.Marshal(params.Error)
		if err != nil {
			s.logger.ErrorWithFields(err, "Failed to marshal job error detail", map[string]interface{}{
				"job_id": params.JobID,
			})
			return err
		}
		updateExpr += ", #error = :error"
		exprNames["#error"] = aws.String("error")
		exprValues[":error"] = &dynamodb.AttributeValue{S: aws.String(string(detail))}
	}

	if params.Result != nil {
		detail, err := json.Marshal(params.Result)
		if err != nil {
			s.logger.ErrorWithFields(err, "Failed to marshal job result detail", map[string]interface{}{
				"job_id": params.JobID,
			})
			return err
		}
		updateExpr += ", #result = :result"
		exprNames["#result"] = aws.String("result")
		exprValues[":result"] = &dynamodb.AttributeValue{S: aws.String(string(detail))}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.JobsTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {S: aws.String(params.JobID)},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		// A status write must not create a job row the caller never made.
		ConditionExpression: aws.String("attribute_exists(id)"),
	}

	_, err := s.dynamoSvc.UpdateItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to update job item", map[string]interface{}{
			"job_id": params.JobID,
			"status": params.Status,
		})
		return err
	}

	return nil
}

func (s *dynamoJobStore) Find(ctx context.Context, jobID string) (*domain.Job, error) {
	out, err := s.dynamoSvc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.JobsTableName),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {S: aws.String(jobID)},
		},
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to load job item", map[string]interface{}{
			"job_id": jobID,
		})
		return nil, err
	}

	if out.Item == nil {
		return nil, nil
	}

	var item dynamoJobItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal job item", map[string]interface{}{
			"job_id": jobID,
		})
		return nil, err
	}

	job := &domain.Job{
		ID:     item.ID,
		Status: domain.JobStatus(item.Status),
	}

	if item.UpdatedAt != "" {
		if updatedAt, err := time.Parse(time.RFC3339, item.UpdatedAt); err == nil {
			job.UpdatedAt = updatedAt
		}
	}
	if item.Error != "" {
		var jobError domain.JobError
		if err := json.Unmarshal([]byte(item.Error), &jobError); err == nil {
			job.Error = &jobError
		}
	}
	if item.Result != "" {
		var jobResult domain.JobResult
		if err := json.Unmarshal([]byte(item.Result), &jobResult); err == nil {
			job.Result = &jobResult
		}
	}

	return job, nil
}
