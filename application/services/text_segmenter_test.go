package services

import (
	"strings"
	"testing"
)

func TestTextSegmenter_ShortTextReturnedUnchanged(t *testing.T) {
	segmenter := NewTextSegmenter(4000)

	text := "A short story about a lighthouse keeper."
	segments := segmenter.Segment(text)

	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Text != text {
		t.Errorf("Expected text unchanged, got %q", segments[0].Text)
	}
	if segments[0].Ordinal != 0 {
		t.Errorf("Expected ordinal 0, got %d", segments[0].Ordinal)
	}
}

func TestTextSegmenter_LongParagraphsSplitWithinLimit(t *testing.T) {
	const maxChars = 4000

	sentence := "The keeper climbed the spiral stairs and lit the lamp before dusk. "
	paragraph := strings.TrimSpace(strings.Repeat(sentence, 67)) // ~4500 chars
	text := paragraph + "\n\n" + paragraph                       // ~9000 chars

	segmenter := NewTextSegmenter(maxChars)
	segments := segmenter.Segment(text)

	if len(segments) < 2 {
		t.Fatalf("Expected at least 2 segments, got %d", len(segments))
	}
	for _, segment := range segments {
		if len(segment.Text) > maxChars {
			t.Errorf("Segment %d exceeds limit: %d chars", segment.Ordinal, len(segment.Text))
		}
		if segment.Text == "" {
			t.Errorf("Segment %d is empty", segment.Ordinal)
		}
	}
}

func TestTextSegmenter_OrdinalsAreSequential(t *testing.T) {
	sentence := "Waves crashed against the rocks all night long. "
	text := strings.Repeat(sentence, 30) + "\n\n" + strings.Repeat(sentence, 30)

	segments := NewTextSegmenter(500).Segment(text)

	for i, segment := range segments {
		if segment.Ordinal != i {
			t.Errorf("Expected ordinal %d at position %d, got %d", i, i, segment.Ordinal)
		}
	}
}

func TestTextSegmenter_ReconstructsContent(t *testing.T) {
	sentence := "Gulls wheeled overhead while the fog rolled in from the sea. "
	paragraphs := []string{
		strings.TrimSpace(strings.Repeat(sentence, 20)),
		strings.TrimSpace(strings.Repeat(sentence, 40)),
		strings.TrimSpace(strings.Repeat(sentence, 5)),
	}
	text := strings.Join(paragraphs, "\n\n")

	segments := NewTextSegmenter(800).Segment(text)

	var joined strings.Builder
	for _, segment := range segments {
		joined.WriteString(segment.Text)
		joined.WriteString(" ")
	}

	got := strings.Join(strings.Fields(joined.String()), " ")
	want := strings.Join(strings.Fields(text), " ")
	if got != want {
		t.Errorf("Segment concatenation lost or duplicated content:\nwant %d chars\ngot  %d chars", len(want), len(got))
	}
}

func TestTextSegmenter_ParagraphAtExactLimitNotSplit(t *testing.T) {
	const maxChars = 4000

	exact := strings.Repeat("a", maxChars)
	text := "An opening paragraph." + "\n\n" + exact

	segments := NewTextSegmenter(maxChars).Segment(text)

	found := false
	for _, segment := range segments {
		if segment.Text == exact {
			found = true
		}
	}
	if !found {
		t.Error("Expected the exact-limit paragraph to survive as a single segment")
	}
}

func TestTextSegmenter_SentenceSplitRequiresTrailingSpace(t *testing.T) {
	// No ". " boundaries at all: the paragraph cannot be split further and
	// comes back whole rather than being cut mid-word.
	paragraph := strings.Repeat("abc.def!ghi?jkl", 40) // 600 chars, no spaces
	text := paragraph + "\n\n" + paragraph

	segments := NewTextSegmenter(500).Segment(text)

	for _, segment := range segments {
		if segment.Text != paragraph {
			t.Errorf("Expected paragraph kept intact, got %d chars", len(segment.Text))
		}
	}
}

func TestTextSegmenter_WhitespaceOnlyInputFallsBack(t *testing.T) {
	text := strings.Repeat("\n\n", 300)

	segments := NewTextSegmenter(100).Segment(text)

	if len(segments) != 1 {
		t.Fatalf("Expected fallback to a single segment, got %d", len(segments))
	}
	if segments[0].Text != text {
		t.Error("Expected fallback segment to carry the original input")
	}
}

func TestTextSegmenter_NeverReturnsEmpty(t *testing.T) {
	inputs := []string{
		"x",
		strings.Repeat("word ", 2000),
		"one\n\ntwo\n\nthree",
		strings.Repeat("A sentence here. ", 500),
	}

	segmenter := NewTextSegmenter(4000)
	for _, input := range inputs {
		if len(segmenter.Segment(input)) == 0 {
			t.Errorf("Got empty segment list for input of %d chars", len(input))
		}
	}
}
