package transcription

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/types"
)

// maxSegmentWords caps how many words accumulate before a segment is closed
// even without a sentence boundary.
const maxSegmentWords = 15

// defaultWordConfidence is used when the engine reports no word confidence,
// and for the degraded single-segment fallback.
const defaultWordConfidence = 0.9

// ParakeetEngine invokes an external ASR helper as a subprocess. The helper
// receives the audio path and model name and prints a JSON hypothesis
// ({"text": ..., "words": [{word, start, end, confidence}, ...]}) to stdout.
type ParakeetEngine struct {
	command string
	module  string
	model   string
}

// NewParakeetEngine creates an engine around the configured helper command.
func NewParakeetEngine(command, module, model string) *ParakeetEngine {
	if command == "" {
		command = "python3"
	}
	if module == "" {
		module = "parakeet_asr"
	}
	return &ParakeetEngine{command: command, module: module, model: model}
}

// ModelName returns the configured ASR model identifier.
func (e *ParakeetEngine) ModelName() string { return e.model }

// Available reports whether the helper command can be found on PATH.
func (e *ParakeetEngine) Available() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

// hypothesis matches the helper's JSON output.
type hypothesis struct {
	Text  string `json:"text"`
	Words []struct {
		Word       string  `json:"word"`
		Start      float64 `json:"start"`
		End        float64 `json:"end"`
		Confidence float64 `json:"confidence"`
	} `json:"words"`
}

// Transcribe runs the external engine against a local audio file. Non-WAV
// input is converted to the engine's native format first.
func (e *ParakeetEngine) Transcribe(ctx context.Context, audioPath string) (*types.TranscriptionResult, error) {
	if !e.Available() {
		return nil, &EngineError{Op: "load", Err: fmt.Errorf("%w: %s not found", ErrEngineUnavailable, e.command)}
	}

	if strings.ToLower(filepath.Ext(audioPath)) != ".wav" {
		logrus.Infof("Converting non-WAV audio to WAV: %s", audioPath)
		converted, err := NormalizeAudio(ctx, audioPath)
		if err != nil {
			return nil, &EngineError{Op: "convert", Err: err}
		}
		audioPath = converted
	}

	cmd := exec.CommandContext(ctx, e.command, "-m", e.module,
		"--audio", audioPath,
		"--model", e.model,
	)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, &EngineError{Op: "exec", Err: fmt.Errorf("%s", strings.TrimSpace(string(ee.Stderr)))}
		}
		return nil, &EngineError{Op: "exec", Err: err}
	}

	var hyp hypothesis
	if err := json.Unmarshal(out, &hyp); err != nil {
		return nil, &EngineError{Op: "parse", Err: err}
	}
	if hyp.Text == "" && len(hyp.Words) == 0 {
		return nil, &EngineError{Op: "parse", Err: fmt.Errorf("empty transcription result")}
	}

	words := make([]types.WordTimestamp, len(hyp.Words))
	for i, w := range hyp.Words {
		conf := w.Confidence
		if conf <= 0 {
			conf = defaultWordConfidence
		}
		words[i] = types.WordTimestamp{
			Word:       w.Word,
			Start:      round3(w.Start),
			End:        round3(w.End),
			Confidence: round4(conf),
		}
	}

	return assembleResult(segmentWords(words, hyp.Text)), nil
}

// segmentWords groups a word sequence into segments, closing a segment when
// a word ends a sentence (., ?, !) or when maxSegmentWords accumulate.
// Trailing words form a final segment. With no words at all, the full text
// becomes a single zero-span segment with a default confidence.
func segmentWords(words []types.WordTimestamp, fullText string) []types.Segment {
	if len(words) == 0 {
		if fullText == "" {
			return nil
		}
		return []types.Segment{{
			Start:      0,
			End:        0,
			Text:       fullText,
			Confidence: defaultWordConfidence,
			Words:      []types.WordTimestamp{},
		}}
	}

	var segments []types.Segment
	var current []types.WordTimestamp

	flush := func() {
		if len(current) == 0 {
			return
		}
		texts := make([]string, len(current))
		for i, w := range current {
			texts[i] = w.Word
		}
		segments = append(segments, types.Segment{
			Start:      current[0].Start,
			End:        current[len(current)-1].End,
			Text:       strings.Join(texts, " "),
			Confidence: meanWordConfidence(current),
			Words:      current,
		})
		current = nil
	}

	for _, w := range words {
		current = append(current, w)
		if endsSentence(w.Word) || len(current) >= maxSegmentWords {
			flush()
		}
	}
	flush()

	return segments
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "?") ||
		strings.HasSuffix(word, "!")
}
