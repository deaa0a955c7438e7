package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/callback"
	"github.com/calldoc/transcription-service/internal/cleanup"
	"github.com/calldoc/transcription-service/internal/config"
	"github.com/calldoc/transcription-service/internal/handlers"
	"github.com/calldoc/transcription-service/internal/queue"
	"github.com/calldoc/transcription-service/internal/storage"
	"github.com/calldoc/transcription-service/internal/transcription"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := cleanup.EnsureTempDirExists(cfg.Storage.TempDir); err != nil {
		logrus.Fatalf("Failed to create temp directory: %v", err)
	}

	// Engine selection happens once; the mode never changes at runtime.
	parakeet := transcription.NewParakeetEngine(
		cfg.Transcription.Command,
		cfg.Transcription.Module,
		cfg.Transcription.Model,
	)
	engineAvailable := parakeet.Available()

	var engine transcription.Engine = parakeet
	mode := transcription.ModeExternal
	if cfg.Transcription.Mode != transcription.ModeExternal || !engineAvailable {
		if cfg.Transcription.Mode == transcription.ModeExternal {
			logrus.Warnf("External engine command %q not found - falling back to synthetic mode", cfg.Transcription.Command)
		}
		engine = transcription.NewSyntheticEngine()
		mode = transcription.ModeSynthetic
	}
	logrus.Infof("Transcription server starting in %s mode", mode)

	dispatcher := transcription.NewDispatcher(engine, mode)

	// Transcript archive is optional; jobs run fine without it.
	var archive *storage.Archive
	if cfg.Storage.Database != "" {
		archive, err = storage.NewArchive(cfg.Storage.Database)
		if err != nil {
			logrus.Warnf("Transcript archive not available: %v", err)
			archive = nil
		} else {
			defer archive.Close()
		}
	}

	store := queue.NewStore()
	deliverer := callback.NewDeliverer()

	var archiver queue.Archiver
	if archive != nil {
		archiver = archive
	}
	supervisor := queue.NewSupervisor(store, dispatcher, deliverer, archiver, cfg.Storage.TempDir)

	cleanupScheduler := cleanup.NewScheduler(
		cfg.Storage.TempDir,
		time.Duration(cfg.Cleanup.IntervalMinutes)*time.Minute,
		time.Duration(cfg.Cleanup.MaxAgeHours)*time.Hour,
	)
	cleanupScheduler.Start()
	defer cleanupScheduler.Stop()

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.MaxFileSizeMB * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	healthHandler := handlers.NewHealthHandler(store, mode, engineAvailable, cfg.Transcription.Model)
	transcribeHandler := handlers.NewTranscribeHandler(dispatcher, cfg.Storage.TempDir)
	jobsHandler := handlers.NewJobsHandler(store, supervisor)
	streamHandler := handlers.NewStreamHandler(store)
	transcriptsHandler := handlers.NewTranscriptsHandler(archive)

	app.Get("/health", healthHandler.Handle)
	app.Post("/transcribe", transcribeHandler.Handle)
	app.Post("/jobs", jobsHandler.Create)
	app.Get("/jobs/:id", jobsHandler.Get)
	app.Get("/ws/jobs/:id", websocket.New(streamHandler.Handle))
	app.Get("/transcripts", transcriptsHandler.List)
	app.Get("/transcripts/:id", transcriptsHandler.Get)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logrus.Infof("Server starting on %s (callback base: %s)", addr, cfg.Callback.BaseURL)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logrus.Info("Shutting down gracefully...")
		app.Shutdown()
	}()

	if err := app.Listen(addr); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}

	// Sweep jobs still in flight so pollers get a terminal state.
	supervisor.Shutdown()
	logrus.Info("Transcription server stopped")
}
