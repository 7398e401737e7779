package controllers

import (
	"time"

	"longform-tts-worker/application/ports/inbound"
	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/infrastructure/gin_interface/dto"

	"github.com/gin-gonic/gin"
)

type JobsController interface {
	GetJob(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type jobsController struct {
	logger     outbound.LoggerPort
	jobTracker inbound.JobTrackerPort
}

func NewJobsController(logger outbound.LoggerPort, jobTracker inbound.JobTrackerPort) JobsController {
	return &jobsController{
		logger:     logger,
		jobTracker: jobTracker,
	}
}

func (j *jobsController) GetJob(c *gin.Context) {
	jobID := c.Param("id")

	job, err := j.jobTracker.Find(c.Request.Context(), jobID)
	if err != nil {
		j.logger.ErrorWithFields(err, "failed to load job", map[string]interface{}{
			"job_id": jobID,
		})
		c.AbortWithStatusJSON(500, gin.H{"error": "failed to load job"})
		return
	}
	if job == nil {
		c.AbortWithStatusJSON(404, gin.H{"error": "job not found"})
		return
	}

	response := dto.JobResponse{
		ID:     job.ID,
		Status: string(job.Status),
		Error:  job.Error,
		Result: job.Result,
	}
	if !job.UpdatedAt.IsZero() {
		response.UpdatedAt = job.UpdatedAt.Format(time.RFC3339)
	}

	c.JSON(200, response)
}

func (j *jobsController) RegisterRoutes(g *gin.Engine) {
	g.GET("/jobs/:id", j.GetJob)
}
