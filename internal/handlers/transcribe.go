package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/transcription"
)

// TranscribeHandler serves synchronous transcription of uploaded files.
type TranscribeHandler struct {
	dispatcher *transcription.Dispatcher
	tempDir    string
}

// NewTranscribeHandler creates the sync transcription handler.
func NewTranscribeHandler(dispatcher *transcription.Dispatcher, tempDir string) *TranscribeHandler {
	return &TranscribeHandler{dispatcher: dispatcher, tempDir: tempDir}
}

// Handle accepts a multipart audio upload and returns the transcription
// result. The uploaded file is removed whether or not dispatch succeeds.
func (h *TranscribeHandler) Handle(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
			"code":  "ERR_NO_FILE",
		})
	}

	if !transcription.ValidateAudioFormat(file.Filename) {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unsupported audio format: %s. Supported: %s", ext, transcription.AllowedFormats()),
			"code":  "ERR_INVALID_FORMAT",
		})
	}

	language := c.Query("language", "en")
	recordingID := c.Query("recording_id")

	workDir, err := os.MkdirTemp(h.tempDir, "transcription_")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create working area",
			"code":  "ERR_SAVE_FAILED",
		})
	}
	defer os.RemoveAll(workDir)

	audioPath := filepath.Join(workDir, "upload"+strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, audioPath); err != nil {
		logrus.Errorf("Failed to save uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
			"code":  "ERR_SAVE_FAILED",
		})
	}

	logrus.Infof("Received file: %s (%d bytes), recording_id=%s", file.Filename, file.Size, recordingID)

	result, err := h.dispatcher.Transcribe(c.UserContext(), audioPath, language, recordingID, "")
	if err != nil {
		logrus.Errorf("Transcription failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Transcription failed: %v", err),
			"code":  "ERR_TRANSCRIPTION_FAILED",
		})
	}

	return c.JSON(result)
}
