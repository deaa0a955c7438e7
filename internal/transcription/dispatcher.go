package transcription

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/types"
)

// Dispatcher is the single entry point for transcription. It wraps the
// engine selected at startup, measures wall-clock elapsed time, and stamps
// identifiers and language onto the result. Both the synchronous endpoint
// and the async worker go through it.
type Dispatcher struct {
	engine Engine
	mode   string
}

// NewDispatcher wraps an engine. Mode is ModeExternal or ModeSynthetic and
// is fixed for the process lifetime.
func NewDispatcher(engine Engine, mode string) *Dispatcher {
	return &Dispatcher{engine: engine, mode: mode}
}

// Mode returns the dispatch mode selected at startup.
func (d *Dispatcher) Mode() string { return d.mode }

// Transcribe runs the engine on a local audio file and stamps processing
// time (monotonic clock), identifiers, and language onto the result.
func (d *Dispatcher) Transcribe(ctx context.Context, audioPath, language, recordingID, jobID string) (*types.TranscriptionResult, error) {
	start := time.Now()

	result, err := d.engine.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	result.ProcessingTimeSeconds = round3(time.Since(start).Seconds())
	result.RecordingID = recordingID
	result.JobID = jobID
	result.Language = language

	logrus.Infof("Transcription completed in %s mode: %d segments, %.2fs audio, %.3fs processing",
		d.mode, len(result.Segments), result.DurationSeconds, result.ProcessingTimeSeconds)

	return result, nil
}
