package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/calldoc/transcription-service/internal/callback"
	"github.com/calldoc/transcription-service/internal/queue"
	"github.com/calldoc/transcription-service/internal/transcription"
)

// newTestApp builds a fiber app wired like main, with a zero-delay
// synthetic engine so tests run fast.
func newTestApp(t *testing.T) (*fiber.App, *queue.Store) {
	t.Helper()

	engine := transcription.NewSyntheticEngineWithDelay(0, 0)
	dispatcher := transcription.NewDispatcher(engine, transcription.ModeSynthetic)
	store := queue.NewStore()
	supervisor := queue.NewSupervisor(store, dispatcher, callback.NewDeliverer(), nil, t.TempDir())
	t.Cleanup(supervisor.Shutdown)

	app := fiber.New()
	app.Get("/health", NewHealthHandler(store, transcription.ModeSynthetic, false, "").Handle)
	app.Post("/transcribe", NewTranscribeHandler(dispatcher, t.TempDir()).Handle)

	jobs := NewJobsHandler(store, supervisor)
	app.Post("/jobs", jobs.Create)
	app.Get("/jobs/:id", jobs.Get)

	return app, store
}
