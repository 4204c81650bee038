// Package testutil holds fixtures and fakes shared by package tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/models"
)

// Config returns a valid configuration with short timings for tests.
func Config(t testing.TB) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		AppName: "adcreative-analyzer-test",
		GeminiClient: config.GeminiClientConfig{
			APIKey:         "test-key",
			Model:          "gemini-test",
			RequestTimeout: time.Minute,
		},
		Polling: config.PollingConfig{
			Interval:    time.Second,
			MaxAttempts: 5,
			MaxInterval: 3 * time.Second,
			Backoff:     "fixed",
			Deadline:    time.Minute,
		},
		Batch: config.BatchConfig{
			InputDir:   filepath.Join(dir, "inputs"),
			OutputDir:  filepath.Join(dir, "outputs"),
			OutputFile: "analysis_results.csv",
			Format:     "csv",
			Patterns:   []string{"*.mp4"},
		},
		Server: config.ServerConfig{
			Addr:        "127.0.0.1:0",
			TempDir:     filepath.Join(dir, "uploads"),
			MaxUploadMB: 1,
		},
		Prompts: config.PromptConfig{
			VideoAnalysis: config.VideoAnalysisPrompts{
				CurrentVersion: "default-v1",
				Versions:       map[string]string{"default-v1": config.DefaultTaskPrompt},
			},
		},
		Log: config.LogConfig{Level: "debug"},
	}
}

// SampleRecord returns a valid record touching every section.
func SampleRecord() *models.AnalysisRecord {
	input := models.InputDragSwerve
	pointer := models.PointerCartoonHand
	music := models.MusicUpbeatPop
	voice := models.VOHumanNarrator
	tone := models.ToneExcited
	content := models.VOContentChallenge
	return &models.AnalysisRecord{
		ArtStyle:             models.ArtStyleStylized3D,
		CameraPerspective:    models.CameraThirdPersonBack,
		VisualClutter:        models.ClutterChaotic,
		ColorPalette:         models.PaletteWarmUrgent,
		PrimaryGenre:         models.GenreHypercasualRunner,
		InputMethod:          &input,
		MechanicsPresent:     []models.GameplayMechanic{models.MechanicGateRunner, models.MechanicStacking},
		PropsDetected:        []models.GameplayProp{models.PropMathGates, models.PropCrowdSwarm},
		EmotionalHooks:       []models.EmotionTrigger{models.EmotionPowerFantasy},
		SatisfactionFactors:  []models.SatisfactionTrigger{models.SatisfyingNumberTicker},
		PointerStyle:         &pointer,
		TextHooks:            []models.TextHook{models.HookIQChallenge},
		CTAElements:          []models.CTAElement{models.CTAInstallButton},
		OCRTextRaw:           []string{"Level 5", "Only 1% can pass"},
		MusicGenre:           &music,
		SoundEffects:         []models.SoundEffect{models.SFXCoinCollect, models.SFXLevelUp},
		VoiceOverType:        &voice,
		VoiceOverTone:        &tone,
		VoiceOverContent:     &content,
		AudioTranscription:   "Can you beat level five?",
		IsFakeGameplay:       true,
		LikelyTargetAudience: "Casual Adult",
	}
}

// SampleResponse returns SampleRecord encoded the way a model answers.
func SampleResponse() string {
	raw, err := json.Marshal(SampleRecord())
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// ResponseWith returns SampleResponse with the given top-level keys
// replaced. A nil value encodes as JSON null; use Drop to remove a key.
func ResponseWith(overrides map[string]any) string {
	var doc map[string]any
	if err := json.Unmarshal([]byte(SampleResponse()), &doc); err != nil {
		panic(err)
	}
	for k, v := range overrides {
		if _, drop := v.(dropKey); drop {
			delete(doc, k)
			continue
		}
		doc[k] = v
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

type dropKey struct{}

// Drop marks a key for removal in ResponseWith.
var Drop = dropKey{}

// WriteVideo creates a small placeholder video file under dir.
func WriteVideo(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("\x00\x00\x00\x18ftypmp42"), 0o644); err != nil {
		t.Fatalf("write video fixture: %v", err)
	}
	return path
}
