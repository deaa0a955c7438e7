package transcription

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// allowedExtensions lists the audio formats the service accepts.
var allowedExtensions = []string{".wav", ".opus", ".ogg", ".webm", ".mp3", ".flac"}

// NormalizeAudio converts an audio file to 16kHz mono WAV via ffmpeg,
// writing the output next to the input so it shares the input's cleanup
// scope. Returns the converted file's path.
func NormalizeAudio(ctx context.Context, inputPath string) (string, error) {
	ext := filepath.Ext(inputPath)
	outputPath := strings.TrimSuffix(inputPath, ext) + "_16k.wav"

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", inputPath,
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le", // 16-bit PCM
		"-y", // Overwrite output
		outputPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg failed: %v\nOutput: %s", err, string(output))
	}

	return outputPath, nil
}

// ValidateAudioFormat checks whether the filename has a supported extension.
func ValidateAudioFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// AllowedFormats returns the supported extensions for error messages.
func AllowedFormats() string {
	return strings.Join(allowedExtensions, ", ")
}
