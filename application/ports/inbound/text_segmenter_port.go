package inbound

import "longform-tts-worker/domain"

type TextSegmenterPort interface {
	Segment(text string) []domain.Segment
}
