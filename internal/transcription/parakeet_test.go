package transcription

import (
	"math"
	"testing"

	"github.com/calldoc/transcription-service/internal/types"
)

func makeWords(texts ...string) []types.WordTimestamp {
	words := make([]types.WordTimestamp, len(texts))
	clock := 0.0
	for i, text := range texts {
		words[i] = types.WordTimestamp{
			Word:       text,
			Start:      clock,
			End:        clock + 0.3,
			Confidence: 0.9,
		}
		clock += 0.35
	}
	return words
}

// TestSegmentWordsSplitsAtSentenceBoundary verifies segments close on
// sentence-terminal words.
func TestSegmentWordsSplitsAtSentenceBoundary(t *testing.T) {
	words := makeWords("Hello", "there.", "How", "are", "you?")

	segments := segmentWords(words, "Hello there. How are you?")
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}
	if segments[0].Text != "Hello there." {
		t.Fatalf("first segment text = %q", segments[0].Text)
	}
	if segments[1].Text != "How are you?" {
		t.Fatalf("second segment text = %q", segments[1].Text)
	}
	if segments[0].Start != words[0].Start || segments[0].End != words[1].End {
		t.Fatalf("first segment bounds = [%v,%v], want [%v,%v]",
			segments[0].Start, segments[0].End, words[0].Start, words[1].End)
	}
}

// TestSegmentWordsCapsAtFifteenWords verifies the word-count segment split.
func TestSegmentWordsCapsAtFifteenWords(t *testing.T) {
	texts := make([]string, 20)
	for i := range texts {
		texts[i] = "word"
	}

	segments := segmentWords(makeWords(texts...), "")
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}
	if got := len(segments[0].Words); got != maxSegmentWords {
		t.Fatalf("first segment words = %d, want %d", got, maxSegmentWords)
	}
	if got := len(segments[1].Words); got != 5 {
		t.Fatalf("trailing segment words = %d, want 5", got)
	}
}

// TestSegmentWordsTrailingSegment verifies leftover words after the last
// sentence boundary form a final segment.
func TestSegmentWordsTrailingSegment(t *testing.T) {
	words := makeWords("Done.", "trailing", "words")

	segments := segmentWords(words, "Done. trailing words")
	if len(segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(segments))
	}
	if segments[1].Text != "trailing words" {
		t.Fatalf("trailing segment text = %q", segments[1].Text)
	}
}

// TestSegmentWordsDegradedTextOnly verifies text without word timings yields
// one zero-span segment with default confidence.
func TestSegmentWordsDegradedTextOnly(t *testing.T) {
	segments := segmentWords(nil, "full transcript without timings")
	if len(segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(segments))
	}

	seg := segments[0]
	if seg.Start != 0 || seg.End != 0 {
		t.Fatalf("segment span = [%v,%v], want [0,0]", seg.Start, seg.End)
	}
	if seg.Confidence != defaultWordConfidence {
		t.Fatalf("confidence = %v, want %v", seg.Confidence, defaultWordConfidence)
	}
	if len(seg.Words) != 0 {
		t.Fatalf("words = %d, want 0", len(seg.Words))
	}
}

// TestSegmentWordsEmpty verifies no words and no text yield no segments.
func TestSegmentWordsEmpty(t *testing.T) {
	if segments := segmentWords(nil, ""); segments != nil {
		t.Fatalf("segments = %v, want nil", segments)
	}
}

// TestSegmentWordsConfidenceMean verifies segment confidence averages its
// word confidences.
func TestSegmentWordsConfidenceMean(t *testing.T) {
	words := []types.WordTimestamp{
		{Word: "a", Start: 0, End: 0.2, Confidence: 0.8},
		{Word: "b.", Start: 0.3, End: 0.5, Confidence: 0.9},
	}

	segments := segmentWords(words, "a b.")
	if len(segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(segments))
	}
	if math.Abs(segments[0].Confidence-0.85) > 1e-4 {
		t.Fatalf("confidence = %v, want 0.85", segments[0].Confidence)
	}
}

// TestValidateAudioFormat covers the accepted and rejected extensions.
func TestValidateAudioFormat(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"call.wav", true},
		{"call.WAV", true},
		{"call.opus", true},
		{"call.ogg", true},
		{"call.webm", true},
		{"call.mp3", true},
		{"call.flac", true},
		{"clip.bmp", false},
		{"notes.txt", false},
		{"noextension", false},
	}

	for _, tc := range cases {
		if got := ValidateAudioFormat(tc.filename); got != tc.want {
			t.Errorf("ValidateAudioFormat(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}
