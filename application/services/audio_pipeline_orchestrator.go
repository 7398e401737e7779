package services

import (
	"bytes"
	"context"
	"fmt"

	"longform-tts-worker/application/ports/inbound"
	"longform-tts-worker/application/ports/outbound"
	"longform-tts-worker/domain"
)

type audioPipelineOrchestrator struct {
	logger        outbound.LoggerPort
	segmenter     inbound.TextSegmenterPort
	synthesizer   outbound.SpeechSynthesizerPort
	artifactStore outbound.ArtifactStorePort
	storyRepo     outbound.StoryRepositoryPort
	keyPrefix     string
}

func NewAudioPipelineOrchestrator(logger outbound.LoggerPort, segmenter inbound.TextSegmenterPort,
	synthesizer outbound.SpeechSynthesizerPort, artifactStore outbound.ArtifactStorePort,
	storyRepo outbound.StoryRepositoryPort, keyPrefix string) inbound.AudioPipelinePort {
	return &audioPipelineOrchestrator{
		logger:        logger,
		segmenter:     segmenter,
		synthesizer:   synthesizer,
		artifactStore: artifactStore,
		storyRepo:     storyRepo,
		keyPrefix:     keyPrefix,
	}
}

func (p *audioPipelineOrchestrator) Run(ctx context.Context, params inbound.RunPipelineParams) (inbound.PipelineResult, error) {
	segments := p.segmenter.Segment(params.Text)

	p.logger.InfoWithFields("tts.started", map[string]interface{}{
		"story_id": params.StoryID,
		"job_id":   params.JobID,
		"segments": len(segments),
		"text_len": len(params.Text),
		"voice":    params.Voice,
		"model":    params.Model,
	})

	// Segments are synthesized one at a time, in order. The audio must be
	// concatenated in reading order, and concurrent calls against the
	// speech endpoint have corrupted binary results before. Do not fan
	// this out.
	var combined bytes.Buffer
	for _, segment := range segments {
		payload, err := p.synthesizer.Synthesize(ctx, outbound.SynthesizeRequest{
			Text:           segment.Text,
			Voice:          params.Voice,
			Model:          params.Model,
			ResponseFormat: params.ResponseFormat,
			Speed:          params.Speed,
			Instructions:   params.Instructions,
		})
		if err != nil {
			return inbound.PipelineResult{}, fmt.Errorf("synthesize segment %d of %d: %w", segment.Ordinal, len(segments), err)
		}

		combined.Write(payload)
		p.logger.InfoWithFields("tts.segment_done", map[string]interface{}{
			"story_id": params.StoryID,
			"segment":  segment.Ordinal,
			"total":    len(segments),
		})
	}

	artifact := domain.AudioArtifact{
		Key:         domain.NewArtifactKey(p.keyPrefix, params.ResponseFormat),
		Content:     combined.Bytes(),
		ContentType: "audio/" + params.ResponseFormat,
	}

	audioURL, err := p.artifactStore.Save(ctx, artifact)
	if err != nil {
		return inbound.PipelineResult{}, fmt.Errorf("persist audio artifact: %w", err)
	}

	p.logger.InfoWithFields("tts.uploaded", map[string]interface{}{
		"story_id":   params.StoryID,
		"key":        artifact.Key,
		"size_bytes": len(artifact.Content),
	})

	p.attachToStory(ctx, params, artifact.Key, audioURL)

	return inbound.PipelineResult{
		AudioURL:  audioURL,
		Key:       artifact.Key,
		SizeBytes: len(artifact.Content),
	}, nil
}

// attachToStory is best effort: the artifact is already persisted, so a
// failed or skipped record update does not change the run's outcome.
func (p *audioPipelineOrchestrator) attachToStory(ctx context.Context, params inbound.RunPipelineParams, audioKey string, audioURL string) {
	if params.StoryID == "" || params.UserEmail == "" {
		p.logger.WarnWithFields("tts.story_update_skipped", map[string]interface{}{
			"story_id": params.StoryID,
			"reason":   "missing story id or user email",
		})
		return
	}

	err := p.storyRepo.AttachAudio(ctx, outbound.AttachAudioParams{
		StoryID:   params.StoryID,
		UserEmail: params.UserEmail,
		AudioKey:  audioKey,
		AudioURL:  audioURL,
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "tts.story_update_failed", map[string]interface{}{
			"story_id": params.StoryID,
		})
		return
	}

	p.logger.InfoWithFields("tts.story_updated", map[string]interface{}{
		"story_id":  params.StoryID,
		"audio_url": audioURL,
	})
}
