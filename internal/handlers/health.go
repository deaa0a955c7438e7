package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/calldoc/transcription-service/internal/queue"
	"github.com/calldoc/transcription-service/internal/transcription"
)

// HealthHandler reports process mode and job activity.
type HealthHandler struct {
	store           *queue.Store
	mode            string
	engineAvailable bool
	model           string
}

// NewHealthHandler creates a health handler. Mode and engine availability
// are resolved once at startup.
func NewHealthHandler(store *queue.Store, mode string, engineAvailable bool, model string) *HealthHandler {
	return &HealthHandler{
		store:           store,
		mode:            mode,
		engineAvailable: engineAvailable,
		model:           model,
	}
}

// Handle returns service status and active job count.
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	var model any
	if h.mode == transcription.ModeExternal {
		model = h.model
	}
	return c.JSON(fiber.Map{
		"status":           "ok",
		"mode":             h.mode,
		"engine_available": h.engineAvailable,
		"model":            model,
		"active_jobs":      h.store.ActiveCount(),
	})
}
