package controllers

import (
	"context"

	"longform-tts-worker/application/ports/inbound"
	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/infrastructure/gin_interface/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TtsController interface {
	GenerateAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type ttsController struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.AudioPipelinePort
	jobTracker inbound.JobTrackerPort
}

func NewTtsController(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	pipeline inbound.AudioPipelinePort, jobTracker inbound.JobTrackerPort) TtsController {
	return &ttsController{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
		jobTracker: jobTracker,
	}
}

func (t *ttsController) GenerateAudio(c *gin.Context) {
	var generateRequest dto.GenerateAudioRequest
	if err := c.ShouldBindJSON(&generateRequest); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": "text is required"})
		return
	}
	generateRequest.ApplyDefaults()

	runID := generateRequest.JobID
	if runID == "" {
		runID = uuid.NewString()
	}

	t.logger.InfoWithFields("tts.accepted", map[string]interface{}{
		"run_id":   runID,
		"story_id": generateRequest.StoryID,
		"job_id":   generateRequest.JobID,
		"text_len": len(generateRequest.Text),
		"voice":    generateRequest.Voice,
	})

	jobID := generateRequest.JobID
	params := inbound.RunPipelineParams{
		Text:           generateRequest.Text,
		StoryID:        generateRequest.StoryID,
		JobID:          jobID,
		UserEmail:      generateRequest.UserEmail,
		Voice:          generateRequest.Voice,
		Model:          generateRequest.Model,
		ResponseFormat: generateRequest.ResponseFormat,
		Speed:          generateRequest.Speed,
		Instructions:   generateRequest.Instructions,
	}

	// The response never waits for the pipeline: the caller observes
	// completion only through the persisted job status. The background
	// context keeps the run alive after this request ends.
	err := t.workerPool.Submit(func() {
		ctx := context.Background()

		result, err := t.pipeline.Run(ctx, params)
		if err != nil {
			t.jobTracker.MarkFailed(ctx, jobID, err.Error())
			t.logger.ErrorWithFields(err, "tts.failed", map[string]interface{}{
				"run_id":   runID,
				"story_id": params.StoryID,
				"job_id":   jobID,
			})
			return
		}

		t.jobTracker.MarkSucceeded(ctx, jobID, result.AudioURL)
		t.logger.InfoWithFields("tts.completed", map[string]interface{}{
			"run_id":    runID,
			"story_id":  params.StoryID,
			"job_id":    jobID,
			"audio_url": result.AudioURL,
		})
	})
	if err != nil {
		c.AbortWithStatusJSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(202, dto.GenerateAudioResponse{
		Accepted: true,
		JobID:    jobID,
	})
}

func (t *ttsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/tts", t.GenerateAudio)
}
