package services

import (
	"strings"

	"longform-tts-worker/application/ports/inbound"
	"longform-tts-worker/domain"
)

// The speech endpoint rejects inputs over 4096 characters; 4000 leaves room.
const DefaultMaxSegmentChars = 4000

var sentenceBreaks = strings.NewReplacer(". ", ".|", "! ", "!|", "? ", "?|")

type textSegmenter struct {
	maxChars int
}

func NewTextSegmenter(maxChars int) inbound.TextSegmenterPort {
	if maxChars <= 0 {
		maxChars = DefaultMaxSegmentChars
	}
	return &textSegmenter{
		maxChars: maxChars,
	}
}

func (s *textSegmenter) Segment(text string) []domain.Segment {
	parts := s.split(text)
	segments := make([]domain.Segment, 0, len(parts))
	for i, part := range parts {
		segments = append(segments, domain.NewSegment(part, i))
	}
	return segments
}

// split accumulates whole paragraphs until the next one would push the
// segment over the limit. A paragraph that alone exceeds the limit is
// split again on sentence boundaries, and its trailing fragment is flushed
// before the next paragraph so unrelated paragraphs never share a segment.
func (s *textSegmenter) split(text string) []string {
	if len(text) <= s.maxChars {
		return []string{text}
	}

	var chunks []string
	current := ""

	for _, para := range strings.Split(text, "\n\n") {
		if len(current)+len(para)+2 <= s.maxChars {
			current = joinPieces(current, para, "\n\n")
			continue
		}

		if current != "" {
			chunks = append(chunks, current)
		}

		if len(para) <= s.maxChars {
			current = para
			continue
		}

		// Punctuation only counts as a sentence boundary when followed by
		// a space, so "Dr. Smith" stays intact. Mis-splits on unusual
		// abbreviations are an accepted imprecision.
		current = ""
		for _, sentence := range strings.Split(sentenceBreaks.Replace(para), "|") {
			if len(current)+len(sentence)+1 <= s.maxChars {
				current = joinPieces(current, sentence, " ")
			} else {
				if current != "" {
					chunks = append(chunks, current)
				}
				current = sentence
			}
		}
		if current != "" {
			chunks = append(chunks, current)
		}
		current = ""
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	// Unusual whitespace-only input can leave nothing accumulated; the
	// caller always gets at least one segment back.
	if len(chunks) == 0 {
		return []string{text}
	}

	return chunks
}

func joinPieces(current string, piece string, separator string) string {
	if current == "" {
		return piece
	}
	return strings.TrimSpace(current + separator + piece)
}
