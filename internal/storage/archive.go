package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/calldoc/transcription-service/internal/types"
)

// TranscriptRecord is one archived transcript row.
type TranscriptRecord struct {
	JobID          string    `json:"job_id"`
	RecordingID    string    `json:"recording_id"`
	Language       string    `json:"language"`
	Transcript     string    `json:"transcript"`
	Duration       float64   `json:"duration_seconds"`
	Confidence     float64   `json:"confidence"`
	ProcessingTime float64   `json:"processing_time_seconds"`
	WordCount      int       `json:"word_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Archive persists completed transcript metadata in SQLite. Job state itself
// stays in memory; the archive only records finished work for later lookup.
type Archive struct {
	db *sql.DB
}

// NewArchive opens (creating if needed) the archive database.
func NewArchive(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS transcripts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id TEXT NOT NULL UNIQUE,
		recording_id TEXT,
		language TEXT NOT NULL,
		transcript TEXT NOT NULL,
		duration REAL,
		confidence REAL,
		processing_time REAL,
		word_count INTEGER,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transcripts_created_at ON transcripts(created_at);
	`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create table: %v", err)
	}

	return &Archive{db: db}, nil
}

// Save inserts one completed result.
func (a *Archive) Save(result *types.TranscriptionResult) error {
	query := `
	INSERT INTO transcripts (job_id, recording_id, language, transcript, duration, confidence, processing_time, word_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := a.db.Exec(query,
		result.JobID, result.RecordingID, result.Language, result.Transcript,
		result.DurationSeconds, result.Confidence, result.ProcessingTimeSeconds,
		len(strings.Fields(result.Transcript)), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save transcript: %v", err)
	}
	return nil
}

// Get retrieves one archived transcript by job ID.
func (a *Archive) Get(jobID string) (*TranscriptRecord, error) {
	query := `
	SELECT job_id, recording_id, language, transcript, duration, confidence, processing_time, word_count, created_at
	FROM transcripts WHERE job_id = ?
	`

	var rec TranscriptRecord
	err := a.db.QueryRow(query, jobID).Scan(
		&rec.JobID, &rec.RecordingID, &rec.Language, &rec.Transcript,
		&rec.Duration, &rec.Confidence, &rec.ProcessingTime, &rec.WordCount, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %v", err)
	}
	return &rec, nil
}

// List returns the most recent archived transcripts.
func (a *Archive) List(limit int) ([]TranscriptRecord, error) {
	query := `
	SELECT job_id, recording_id, language, transcript, duration, confidence, processing_time, word_count, created_at
	FROM transcripts ORDER BY created_at DESC LIMIT ?
	`

	rows, err := a.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %v", err)
	}
	defer rows.Close()

	var records []TranscriptRecord
	for rows.Next() {
		var rec TranscriptRecord
		if err := rows.Scan(
			&rec.JobID, &rec.RecordingID, &rec.Language, &rec.Transcript,
			&rec.Duration, &rec.Confidence, &rec.ProcessingTime, &rec.WordCount, &rec.CreatedAt); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}
