package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sampleRecord() *AnalysisRecord {
	return &AnalysisRecord{
		ArtStyle:             ArtStyleStylized3D,
		CameraPerspective:    CameraThirdPersonBack,
		VisualClutter:        ClutterChaotic,
		ColorPalette:         PaletteWarmUrgent,
		PrimaryGenre:         GenreHypercasualRunner,
		InputMethod:          ptr(InputDragSwerve),
		MechanicsPresent:     []GameplayMechanic{MechanicGateRunner, MechanicStacking},
		PropsDetected:        []GameplayProp{PropMathGates, PropCrowdSwarm},
		EmotionalHooks:       []EmotionTrigger{EmotionPowerFantasy},
		SatisfactionFactors:  []SatisfactionTrigger{SatisfyingNumberTicker},
		PointerStyle:         ptr(PointerCartoonHand),
		CTAElements:          []CTAElement{CTAInstallButton},
		OCRTextRaw:           []string{"Level 5", "Failed!"},
		MusicGenre:           ptr(MusicUpbeatPop),
		SoundEffects:         []SoundEffect{SFXCoinCollect},
		IsFakeGameplay:       true,
		LikelyTargetAudience: "Casual Adult",
	}
}

func TestAxesHaveUniqueWireValues(t *testing.T) {
	for _, axis := range Axes() {
		seen := make(map[string]bool, len(axis.Tags))
		for _, tag := range axis.Tags {
			assert.False(t, seen[tag.Value], "axis %s repeats %s", axis.Name, tag.Value)
			seen[tag.Value] = true
			assert.NotEmpty(t, tag.Rule, "axis %s tag %s has no rule", axis.Name, tag.Value)
		}
	}
}

func TestFieldCatalogueMatchesRecordJSON(t *testing.T) {
	raw, err := json.Marshal(sampleRecord())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	names := FieldNames()
	assert.Len(t, doc, len(names))
	for _, name := range names {
		assert.Contains(t, doc, name)
	}
	assert.Equal(t, "art_style", names[0])
	assert.Equal(t, "likely_target_audience", names[len(names)-1])
}

func TestEveryAxisIsUsedByAField(t *testing.T) {
	used := make(map[*Axis]bool)
	for _, f := range Fields() {
		if f.Axis != nil {
			used[f.Axis] = true
		}
	}
	for _, axis := range Axes() {
		assert.True(t, used[axis], "axis %s is not referenced", axis.Name)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, sampleRecord().Validate())

	tests := []struct {
		name   string
		mutate func(r *AnalysisRecord)
		field  string
	}{
		{"missing required single-select", func(r *AnalysisRecord) { r.ArtStyle = "" }, "art_style"},
		{"required outside axis", func(r *AnalysisRecord) { r.ColorPalette = "Palette_Sepia" }, "color_palette"},
		{"optional outside axis", func(r *AnalysisRecord) { r.FailScenario = ptr(FailType("Fail_Timeout")) }, "fail_scenario"},
		{"multi-select outside axis", func(r *AnalysisRecord) {
			r.PropsDetected = append(r.PropsDetected, "Prop_Dragon")
		}, "props_detected"},
		{"multi-select duplicate", func(r *AnalysisRecord) {
			r.TextHooks = []TextHook{HookTutorialStep, HookTutorialStep}
		}, "text_hooks"},
		{"blank audience", func(r *AnalysisRecord) { r.LikelyTargetAudience = "  " }, "likely_target_audience"},
		{"audio axis checked", func(r *AnalysisRecord) { r.VoiceOverTone = ptr(VoiceOverTone("VOTone_Bored")) }, "voice_over_tone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRecord()
			tt.mutate(r)
			err := r.Validate()
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidateAcceptsAbsentOptionals(t *testing.T) {
	r := sampleRecord()
	r.InputMethod = nil
	r.PointerStyle = nil
	r.MusicGenre = nil
	r.MechanicsPresent = nil
	r.AudioTranscription = ""
	assert.NoError(t, r.Validate())
}

func TestCell(t *testing.T) {
	r := sampleRecord()

	f, ok := FieldByName("mechanics_present")
	require.True(t, ok)
	assert.Equal(t, "Mechanic_GateRunner, Mechanic_Stacking", f.Cell(r))

	f, _ = FieldByName("text_hooks")
	assert.Equal(t, "", f.Cell(r))

	f, _ = FieldByName("character_archetype")
	assert.Equal(t, "", f.Cell(r))

	f, _ = FieldByName("is_fake_gameplay")
	assert.Equal(t, "true", f.Cell(r))
}

func TestRenderFieldGuideListsEveryTag(t *testing.T) {
	for _, f := range Fields() {
		guide := RenderFieldGuide(f)
		require.NotEmpty(t, guide, f.Name)
		if f.Axis == nil {
			continue
		}
		assert.True(t, strings.HasPrefix(guide, f.Instruction), f.Name)
		for _, tag := range f.Axis.Tags {
			assert.Contains(t, guide, "- '"+tag.Value+"': "+tag.Rule, f.Name)
		}
	}
}

func TestRenderInstructionsCoversCatalogue(t *testing.T) {
	text := RenderInstructions(Fields())
	for _, name := range FieldNames() {
		assert.Contains(t, text, "\n"+name+" (")
	}
	assert.Contains(t, text, "Satisfying_NumberTicker")
	assert.Contains(t, text, "Pointer_3D_Hand")
}

func TestJSONSchema(t *testing.T) {
	doc := JSONSchema()
	assert.Equal(t, JSONSchemaDraft, doc["$schema"])

	required, ok := doc["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"art_style", "camera_perspective", "visual_clutter", "color_palette",
		"primary_genre", "is_fake_gameplay", "likely_target_audience",
	}, required)

	props := doc["properties"].(map[string]any)
	mechanics := props["mechanics_present"].(map[string]any)
	assert.Equal(t, "array", mechanics["type"])
	assert.Equal(t, true, mechanics["uniqueItems"])

	input := props["input_method"].(map[string]any)
	enum := input["enum"].([]any)
	assert.Nil(t, enum[len(enum)-1])
	assert.Len(t, enum, len(InputMethodAxis.Tags)+1)

	raw, err := JSONSchemaBytes()
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestDetectVideoMIME(t *testing.T) {
	assert.Equal(t, "video/mp4", DetectVideoMIME("ad.MP4"))
	assert.Equal(t, "video/quicktime", DetectVideoMIME("/a/b/ad.mov"))
	assert.Equal(t, "video/webm", DetectVideoMIME("ad.webm"))
	assert.Equal(t, "video/mp4", DetectVideoMIME("noext"))
	assert.Equal(t, "video/mp4", DetectVideoMIME("notes.txt"))
}

func TestDescribe(t *testing.T) {
	descriptors := Describe()
	require.Len(t, descriptors, len(Fields()))

	art := descriptors[0]
	assert.Equal(t, "art_style", art.Name)
	assert.Equal(t, "single-select", art.Shape)
	assert.True(t, art.Required)
	assert.Equal(t, ArtStyleAxis.Name, art.Axis)
	assert.Len(t, art.Values, len(ArtStyleAxis.Tags))

	for _, d := range descriptors {
		assert.NotEmpty(t, d.Guidance, d.Name)
	}
}
