package handlers

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/queue"
)

// pollInterval is how often a websocket subscriber receives job snapshots.
const pollInterval = 250 * time.Millisecond

// StreamHandler pushes live job progress over a websocket until the job
// reaches a terminal state.
type StreamHandler struct {
	store *queue.Store
}

// NewStreamHandler creates the job progress stream handler.
func NewStreamHandler(store *queue.Store) *StreamHandler {
	return &StreamHandler{store: store}
}

// Handle streams snapshots of one job. A final snapshot is sent when the
// job turns terminal, then the connection closes.
func (h *StreamHandler) Handle(c *websocket.Conn) {
	defer c.Close()

	jobID := c.Params("id")
	job, ok := h.store.Get(jobID)
	if !ok {
		c.WriteJSON(map[string]string{"error": "Job not found: " + jobID})
		return
	}

	logrus.Infof("WebSocket subscriber attached to job %s", jobID)

	for {
		if err := c.WriteJSON(job); err != nil {
			return
		}
		if job.Status.IsTerminal() {
			return
		}

		time.Sleep(pollInterval)
		job, ok = h.store.Get(jobID)
		if !ok {
			return
		}
	}
}
