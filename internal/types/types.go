package types

import "time"

// JobStatus is the lifecycle state of an async transcription job.
type JobStatus string

// Job status constants. Completed and failed are terminal.
const (
	StatusPending    JobStatus = "pending"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether a job in this status can still change.
func (s JobStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// WordTimestamp is a single recognized word with timing and confidence.
type WordTimestamp struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Segment is a contiguous span of transcript. Start/End bound its words,
// Confidence is the mean of its word confidences when words are present.
type Segment struct {
	Start      float64         `json:"start"`
	End        float64         `json:"end"`
	Text       string          `json:"text"`
	Confidence float64         `json:"confidence"`
	Words      []WordTimestamp `json:"words"`
}

// TranscriptionResult is the output of one transcription attempt.
// Transcript is the space-joined segment texts, Confidence the mean of
// segment confidences, and DurationSeconds the end time of the last segment.
type TranscriptionResult struct {
	RecordingID           string    `json:"recording_id,omitempty"`
	JobID                 string    `json:"job_id,omitempty"`
	Status                string    `json:"status"`
	Transcript            string    `json:"transcript"`
	Confidence            float64   `json:"confidence"`
	DurationSeconds       float64   `json:"duration_seconds"`
	Language              string    `json:"language"`
	Segments              []Segment `json:"segments"`
	ProcessingTimeSeconds float64   `json:"processing_time_seconds"`
}

// Job is the caller-visible view of an async transcription job.
// Result is set only on completed, Error only on failed.
type Job struct {
	JobID       string               `json:"job_id"`
	RecordingID string               `json:"recording_id"`
	Status      JobStatus            `json:"status"`
	Progress    float64              `json:"progress"`
	CreatedAt   time.Time            `json:"created_at"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	Error       string               `json:"error,omitempty"`
	Result      *TranscriptionResult `json:"result,omitempty"`
}
