package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/calldoc/transcription-service/internal/queue"
)

// JobsHandler serves async job submission and polling.
type JobsHandler struct {
	store      *queue.Store
	supervisor *queue.Supervisor
}

// NewJobsHandler creates the async jobs handler.
func NewJobsHandler(store *queue.Store, supervisor *queue.Supervisor) *JobsHandler {
	return &JobsHandler{store: store, supervisor: supervisor}
}

// JobCreateRequest is the POST /jobs body.
type JobCreateRequest struct {
	RecordingID string `json:"recording_id"`
	AudioURL    string `json:"audio_url"`
	CallbackURL string `json:"callback_url"`
	Language    string `json:"language"`
}

// Create registers a pending job and launches its background worker.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "ERR_INVALID_BODY",
		})
	}

	if req.RecordingID == "" || req.AudioURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "recording_id and audio_url are required",
			"code":  "ERR_MISSING_FIELD",
		})
	}
	if req.Language == "" {
		req.Language = "en"
	}

	job := h.store.Create(req.RecordingID, queue.Metadata{
		AudioURL:    req.AudioURL,
		CallbackURL: req.CallbackURL,
		Language:    req.Language,
	})
	h.supervisor.Launch(job.JobID)

	return c.JSON(job)
}

// Get returns the current state of one job.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	jobID := c.Params("id")

	job, ok := h.store.Get(jobID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("Job not found: %s", jobID),
			"code":  "ERR_JOB_NOT_FOUND",
		})
	}
	return c.JSON(job)
}
