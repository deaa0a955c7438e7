package transcription

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/calldoc/transcription-service/internal/types"
)

// Engine modes selected once at startup.
const (
	ModeExternal  = "external"
	ModeSynthetic = "synthetic"
)

// ErrEngineUnavailable is returned when the external engine cannot be run.
var ErrEngineUnavailable = errors.New("transcription engine unavailable")

// EngineError wraps failures of the external engine (load, exec, malformed
// or empty output). The synthetic engine never produces one.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return "engine " + e.Op + ": " + e.Err.Error()
}

func (e *EngineError) Unwrap() error { return e.Err }

// Engine produces a structured transcript from a local audio file.
// Implementations do not stamp identifiers, language, or processing time;
// that is the Dispatcher's job.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) (*types.TranscriptionResult, error)
}

// round3 and round4 keep times and confidences diff-stable.
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// assembleResult derives the transcript text, overall confidence, and
// duration from an ordered segment list.
func assembleResult(segments []types.Segment) *types.TranscriptionResult {
	texts := make([]string, len(segments))
	var confSum float64
	for i, seg := range segments {
		texts[i] = seg.Text
		confSum += seg.Confidence
	}

	var confidence, duration float64
	if len(segments) > 0 {
		confidence = round4(confSum / float64(len(segments)))
		duration = round3(segments[len(segments)-1].End)
	}

	return &types.TranscriptionResult{
		Status:          "completed",
		Transcript:      strings.Join(texts, " "),
		Confidence:      confidence,
		DurationSeconds: duration,
		Language:        "en",
		Segments:        segments,
	}
}

// meanWordConfidence averages word confidences for one segment.
func meanWordConfidence(words []types.WordTimestamp) float64 {
	var sum float64
	for _, w := range words {
		sum += w.Confidence
	}
	return round4(sum / float64(len(words)))
}
