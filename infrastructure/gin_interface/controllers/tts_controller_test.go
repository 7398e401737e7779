package controllers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"longform-tts-worker/application/ports/inbound"
	"longform-tts-worker/domain"
	"longform-tts-worker/infrastructure/adapters"
	"longform-tts-worker/middleware"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

// syncDispatcher runs submitted tasks inline so tests observe pipeline
// side effects without sleeping.
type syncDispatcher struct{}

func (syncDispatcher) Submit(task func()) error {
	task()
	return nil
}

type fakePipeline struct {
	params []inbound.RunPipelineParams
	result inbound.PipelineResult
	err    error
}

func (f *fakePipeline) Run(_ context.Context, params inbound.RunPipelineParams) (inbound.PipelineResult, error) {
	f.params = append(f.params, params)
	return f.result, f.err
}

type fakeJobTracker struct {
	succeeded []string
	failed    []string
	messages  []string
	job       *domain.Job
	findErr   error
}

func (f *fakeJobTracker) MarkSucceeded(_ context.Context, jobID string, _ string) {
	f.succeeded = append(f.succeeded, jobID)
}

func (f *fakeJobTracker) MarkFailed(_ context.Context, jobID string, message string) {
	f.failed = append(f.failed, jobID)
	f.messages = append(f.messages, message)
}

func (f *fakeJobTracker) Find(_ context.Context, _ string) (*domain.Job, error) {
	return f.job, f.findErr
}

func newTestRouter(pipeline *fakePipeline, tracker *fakeJobTracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := adapters.NewZerologWrapper()

	router := gin.New()
	router.HandleMethodNotAllowed = true

	authHandler := middleware.NewAuthHandler(testSecret)
	router.Use(authHandler.AuthMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	NewTtsController(logger, syncDispatcher{}, pipeline, tracker).RegisterRoutes(router)
	NewJobsController(logger, tracker).RegisterRoutes(router)

	return router
}

func postTts(router *gin.Engine, body string, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/tts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(middleware.SecretHeader, secret)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestTtsController_AcceptsAndRunsPipeline(t *testing.T) {
	pipeline := &fakePipeline{result: inbound.PipelineResult{AudioURL: "https://cdn.example.com/a.mp3", Key: "tts-audio/a.mp3", SizeBytes: 3}}
	tracker := &fakeJobTracker{}
	router := newTestRouter(pipeline, tracker)

	body := `{"text":"hello there","storyId":"story-1","jobId":"job-1","userEmail":"keeper@example.com"}`
	recorder := postTts(router, body, testSecret)

	if recorder.Code != 202 {
		t.Fatalf("Expected 202, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), `"accepted":true`) {
		t.Errorf("Expected accepted response, got %s", recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), `"jobId":"job-1"`) {
		t.Errorf("Expected job id echoed back, got %s", recorder.Body.String())
	}

	if len(pipeline.params) != 1 {
		t.Fatalf("Expected 1 pipeline run, got %d", len(pipeline.params))
	}
	params := pipeline.params[0]
	if params.Voice != "onyx" || params.Model != "gpt-4o-mini-tts" || params.ResponseFormat != "mp3" || params.Speed != 0.9 {
		t.Errorf("Expected defaults applied, got %+v", params)
	}
	if params.StoryID != "story-1" || params.UserEmail != "keeper@example.com" {
		t.Error("Expected record id and owner passed through")
	}

	if len(tracker.succeeded) != 1 || tracker.succeeded[0] != "job-1" {
		t.Errorf("Expected job-1 marked succeeded, got %v", tracker.succeeded)
	}
	if len(tracker.failed) != 0 {
		t.Errorf("Expected no failures, got %v", tracker.failed)
	}
}

func TestTtsController_PipelineFailureMarksJobFailed(t *testing.T) {
	pipeline := &fakePipeline{err: fmt.Errorf("synthesize segment 0 of 2: HTTP request returned non-OK status code 429: rate limited")}
	tracker := &fakeJobTracker{}
	router := newTestRouter(pipeline, tracker)

	recorder := postTts(router, `{"text":"hello","jobId":"job-2"}`, testSecret)

	// Acceptance does not depend on the pipeline outcome.
	if recorder.Code != 202 {
		t.Fatalf("Expected 202, got %d", recorder.Code)
	}
	if len(tracker.failed) != 1 || tracker.failed[0] != "job-2" {
		t.Fatalf("Expected job-2 marked failed, got %v", tracker.failed)
	}
	if !strings.Contains(tracker.messages[0], "429") {
		t.Errorf("Expected failure detail to carry the external status, got %q", tracker.messages[0])
	}
	if len(tracker.succeeded) != 0 {
		t.Error("Expected no success write")
	}
}

func TestTtsController_MissingTextRejected(t *testing.T) {
	pipeline := &fakePipeline{}
	tracker := &fakeJobTracker{}
	router := newTestRouter(pipeline, tracker)

	for _, body := range []string{`{}`, `{"text":""}`, `not json`} {
		recorder := postTts(router, body, testSecret)
		if recorder.Code != 400 {
			t.Errorf("Expected 400 for body %q, got %d", body, recorder.Code)
		}
	}
	if len(pipeline.params) != 0 {
		t.Error("Expected no pipeline runs for rejected requests")
	}
}

func TestTtsController_SecretMismatchRejected(t *testing.T) {
	pipeline := &fakePipeline{}
	router := newTestRouter(pipeline, &fakeJobTracker{})

	for _, secret := range []string{"", "wrong-secret"} {
		recorder := postTts(router, `{"text":"hello"}`, secret)
		if recorder.Code != 401 {
			t.Errorf("Expected 401 for secret %q, got %d", secret, recorder.Code)
		}
	}
	if len(pipeline.params) != 0 {
		t.Error("Expected no pipeline runs for unauthorized requests")
	}
}

func TestTtsController_WrongMethodRejected(t *testing.T) {
	router := newTestRouter(&fakePipeline{}, &fakeJobTracker{})

	req := httptest.NewRequest("GET", "/tts", nil)
	req.Header.Set(middleware.SecretHeader, testSecret)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != 405 {
		t.Errorf("Expected 405, got %d", recorder.Code)
	}
}

func TestTtsController_HealthSkipsAuth(t *testing.T) {
	router := newTestRouter(&fakePipeline{}, &fakeJobTracker{})

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != 200 {
		t.Errorf("Expected 200 without a secret, got %d", recorder.Code)
	}
}

func TestJobsController_ReturnsJob(t *testing.T) {
	tracker := &fakeJobTracker{job: &domain.Job{
		ID:        "job-1",
		Status:    domain.SucceededJobStatus,
		Result:    &domain.JobResult{AudioURL: "https://cdn.example.com/a.mp3"},
		UpdatedAt: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
	}}
	router := newTestRouter(&fakePipeline{}, tracker)

	req := httptest.NewRequest("GET", "/jobs/job-1", nil)
	req.Header.Set(middleware.SecretHeader, testSecret)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != 200 {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"status":"SUCCEEDED"`) {
		t.Errorf("Expected status in response, got %s", recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), "cdn.example.com") {
		t.Errorf("Expected result in response, got %s", recorder.Body.String())
	}
}

func TestJobsController_UnknownJobIs404(t *testing.T) {
	router := newTestRouter(&fakePipeline{}, &fakeJobTracker{})

	req := httptest.NewRequest("GET", "/jobs/missing", nil)
	req.Header.Set(middleware.SecretHeader, testSecret)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != 404 {
		t.Errorf("Expected 404, got %d", recorder.Code)
	}
}
