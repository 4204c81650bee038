package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcreative-analyzer/internal/models"
	"adcreative-analyzer/internal/testutil"
)

func TestCoerceRecordAcceptsSample(t *testing.T) {
	rec, err := CoerceRecord(testutil.SampleResponse())
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleRecord(), rec)
}

func TestCoerceRecordStripsFencesAndProse(t *testing.T) {
	raw := "Here is the analysis:\n```json\n" + testutil.SampleResponse() + "\n```\nLet me know if you need more."
	rec, err := CoerceRecord(raw)
	require.NoError(t, err)
	assert.Equal(t, models.ArtStyleStylized3D, rec.ArtStyle)
}

func TestCoerceRecordNotObservedMarkers(t *testing.T) {
	raw := testutil.ResponseWith(map[string]any{
		"input_method":        "None",
		"pointer_style":       nil,
		"music_genre":         "n/a",
		"voice_over_type":     "null",
		"character_archetype": "",
		"voice_over_tone":     testutil.Drop,
	})
	rec, err := CoerceRecord(raw)
	require.NoError(t, err)
	assert.Nil(t, rec.InputMethod)
	assert.Nil(t, rec.PointerStyle)
	assert.Nil(t, rec.MusicGenre)
	assert.Nil(t, rec.VoiceOverType)
	assert.Nil(t, rec.CharacterArchetype)
	assert.Nil(t, rec.VoiceOverTone)
}

func TestCoerceRecordNotObservedPhrasings(t *testing.T) {
	raw := testutil.ResponseWith(map[string]any{
		"pointer_style":      "Not observed",
		"music_genre":        "N/A.",
		"voice_over_type":    "not present",
		"voice_over_content": " Not applicable! ",
		"mechanics_present":  []any{"Mechanic_GateRunner", "not detected"},
	})
	rec, err := CoerceRecord(raw)
	require.NoError(t, err)
	assert.Nil(t, rec.PointerStyle)
	assert.Nil(t, rec.MusicGenre)
	assert.Nil(t, rec.VoiceOverType)
	assert.Nil(t, rec.VoiceOverContent)
	assert.Equal(t, []models.GameplayMechanic{models.MechanicGateRunner}, rec.MechanicsPresent)
}

func TestIsNotObserved(t *testing.T) {
	for _, s := range []string{"", " ", "None", "NULL", "n/a", "N/A.", "Not observed", "not present.", "Not visible"} {
		assert.True(t, isNotObserved(s), "%q", s)
	}
	for _, s := range []string{"Pointer_Cartoon_Hand", "observed", "not sure what this is"} {
		assert.False(t, isNotObserved(s), "%q", s)
	}
}

func TestCoerceRecordNormalizesTags(t *testing.T) {
	raw := testutil.ResponseWith(map[string]any{
		"art_style":         "  style_3d_stylized ",
		"mechanics_present": []any{"Mechanic_GateRunner", "mechanic_gaterunner", "None", "Mechanic_Stacking"},
		"sound_effects":     "SFX_Coin_Collect, SFX_Level_Up",
	})
	rec, err := CoerceRecord(raw)
	require.NoError(t, err)
	assert.Equal(t, models.ArtStyleStylized3D, rec.ArtStyle)
	assert.Equal(t, []models.GameplayMechanic{models.MechanicGateRunner, models.MechanicStacking}, rec.MechanicsPresent)
	assert.Equal(t, []models.SoundEffect{models.SFXCoinCollect, models.SFXLevelUp}, rec.SoundEffects)
}

func TestCoerceRecordDefaultsListsAndParsesBools(t *testing.T) {
	raw := testutil.ResponseWith(map[string]any{
		"props_detected":   testutil.Drop,
		"emotional_hooks":  nil,
		"ocr_text_raw":     "FAIL",
		"is_fake_gameplay": "false",
	})
	rec, err := CoerceRecord(raw)
	require.NoError(t, err)
	assert.NotNil(t, rec.PropsDetected)
	assert.Empty(t, rec.PropsDetected)
	assert.NotNil(t, rec.EmotionalHooks)
	assert.Empty(t, rec.EmotionalHooks)
	assert.Equal(t, []string{"FAIL"}, rec.OCRTextRaw)
	assert.False(t, rec.IsFakeGameplay)
}

func TestCoerceRecordRejects(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{"not json", "I could not watch this video.", ""},
		{"empty", "   ", ""},
		{"array", `[1, 2, 3]`, ""},
		{"wrapped in array", "[" + testutil.SampleResponse() + "]", ""},
		{"fenced array", "```json\n[ " + testutil.SampleResponse() + " ]\n```", ""},
		{"missing required", testutil.ResponseWith(map[string]any{"art_style": testutil.Drop}), "art_style"},
		{"required marker", testutil.ResponseWith(map[string]any{"primary_genre": "None"}), "primary_genre"},
		{"unknown single", testutil.ResponseWith(map[string]any{"camera_perspective": "Camera_Drone"}), "camera_perspective"},
		{"unknown optional", testutil.ResponseWith(map[string]any{"music_genre": "Music_Polka"}), "music_genre"},
		{"unknown tag", testutil.ResponseWith(map[string]any{"props_detected": []any{"Prop_MathGates", "Prop_Spaceship"}}), "props_detected"},
		{"wrong type", testutil.ResponseWith(map[string]any{"is_fake_gameplay": "maybe"}), "is_fake_gameplay"},
		{"blank audience", testutil.ResponseWith(map[string]any{"likely_target_audience": " "}), "likely_target_audience"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := CoerceRecord(tc.raw)
			require.Error(t, err)
			assert.Nil(t, rec)

			var coerceErr *SchemaCoercionError
			require.True(t, errors.As(err, &coerceErr), "got %T", err)
			assert.Equal(t, tc.field, coerceErr.Field)
			assert.Equal(t, KindSchemaCoercion, ErrorKind(err))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("\uFEFF{\"a\":1}"))
	assert.Equal(t, `{"a":"b"}`, extractJSON("noise {\"a\":\"b\"} trailing"))
	assert.Equal(t, `{"a":"b"}`, extractJSON("{\"a\":\x01\"b\"}"))
	assert.Equal(t, "", extractJSON(""))
	assert.Equal(t, `[{"a":1}]`, extractJSON(`[{"a":1}]`))
	assert.Equal(t, `{"a":[1]}`, extractJSON("see [notes]: {\"a\":[1]}"))
}
