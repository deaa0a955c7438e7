package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/calldoc/transcription-service/internal/storage"
)

// TranscriptsHandler serves the completed-transcript archive.
type TranscriptsHandler struct {
	archive *storage.Archive
}

// NewTranscriptsHandler creates the archive handler. archive may be nil.
func NewTranscriptsHandler(archive *storage.Archive) *TranscriptsHandler {
	return &TranscriptsHandler{archive: archive}
}

// List returns the most recent archived transcripts.
func (h *TranscriptsHandler) List(c *fiber.Ctx) error {
	if h.archive == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Transcript archive not configured",
			"code":  "ERR_NO_ARCHIVE",
		})
	}

	limit := c.QueryInt("limit", 50)
	records, err := h.archive.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "ERR_ARCHIVE_READ",
		})
	}
	return c.JSON(records)
}

// Get returns one archived transcript by job ID.
func (h *TranscriptsHandler) Get(c *fiber.Ctx) error {
	if h.archive == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Transcript archive not configured",
			"code":  "ERR_NO_ARCHIVE",
		})
	}

	record, err := h.archive.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transcript not found",
			"code":  "ERR_TRANSCRIPT_NOT_FOUND",
		})
	}
	return c.JSON(record)
}
