package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Section groups fields for display and prompt rendering.
type Section string

const (
	SectionVisual     Section = "visual"
	SectionGameplay   Section = "gameplay"
	SectionPsychology Section = "psychology"
	SectionMarketing  Section = "marketing"
	SectionAudio      Section = "audio"
	SectionInference  Section = "inference"
)

// Shape is the value shape of a field.
type Shape int

const (
	ShapeSingleSelect Shape = iota
	ShapeMultiSelect
	ShapeTextList
	ShapeText
	ShapeBool
)

func (s Shape) String() string {
	switch s {
	case ShapeSingleSelect:
		return "single-select"
	case ShapeMultiSelect:
		return "multi-select"
	case ShapeTextList:
		return "text-list"
	case ShapeText:
		return "text"
	case ShapeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// MultiSelectSeparator joins list-valued fields into one output cell.
const MultiSelectSeparator = ", "

// Field describes one AnalysisRecord field: its name on the wire, its shape,
// the axis it draws from and the guidance given to the model.
type Field struct {
	Name     string
	Section  Section
	Shape    Shape
	Required bool
	Axis     *Axis
	// Instruction heads the rendered tag list for axis-backed fields.
	Instruction string
	// Description is the full guidance for fields without an axis.
	Description string

	values func(*AnalysisRecord) []string
}

// Values returns the field's current values as strings. Absent optional
// single-selects and empty lists yield no values.
func (f Field) Values(r *AnalysisRecord) []string {
	if r == nil || f.values == nil {
		return nil
	}
	return f.values(r)
}

// Cell flattens the field into a single output cell.
func (f Field) Cell(r *AnalysisRecord) string {
	return strings.Join(f.Values(r), MultiSelectSeparator)
}

// Check validates the field on r.
func (f Field) Check(r *AnalysisRecord) error {
	values := f.Values(r)
	switch f.Shape {
	case ShapeSingleSelect:
		if len(values) == 0 {
			if f.Required {
				return &FieldError{Field: f.Name, Reason: "required value missing"}
			}
			return nil
		}
		if !f.Axis.Contains(values[0]) {
			return &FieldError{Field: f.Name, Value: values[0], Reason: fmt.Sprintf("not a %s value", f.Axis.Name)}
		}
	case ShapeMultiSelect:
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if !f.Axis.Contains(v) {
				return &FieldError{Field: f.Name, Value: v, Reason: fmt.Sprintf("not a %s value", f.Axis.Name)}
			}
			if _, dup := seen[v]; dup {
				return &FieldError{Field: f.Name, Value: v, Reason: "duplicate tag"}
			}
			seen[v] = struct{}{}
		}
	case ShapeText:
		if f.Required && (len(values) == 0 || strings.TrimSpace(values[0]) == "") {
			return &FieldError{Field: f.Name, Reason: "required text missing"}
		}
	}
	return nil
}

// FieldError reports a value that does not fit its field.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %s: %q %s", e.Field, e.Value, e.Reason)
}

// FieldNames returns the catalogue's field names in declaration order.
func FieldNames() []string {
	fields := Fields()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

// FieldByName looks up a field in the catalogue.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func one(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

func optional[T ~string](p *T) []string {
	if p == nil {
		return nil
	}
	return one(string(*p))
}

func many[T ~string](vs []T) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// Fields returns the record's field catalogue in declaration order. New
// fields are appended as optional so older outputs stay a column subset.
func Fields() []Field {
	return []Field{
		// visual
		{
			Name: "art_style", Section: SectionVisual, Shape: ShapeSingleSelect, Required: true,
			Axis: ArtStyleAxis, Instruction: "Classify the dominant visual style:",
			values: func(r *AnalysisRecord) []string { return one(string(r.ArtStyle)) },
		},
		{
			Name: "camera_perspective", Section: SectionVisual, Shape: ShapeSingleSelect, Required: true,
			Axis: CameraPerspectiveAxis, Instruction: "Identify the camera angle:",
			values: func(r *AnalysisRecord) []string { return one(string(r.CameraPerspective)) },
		},
		{
			Name: "visual_clutter", Section: SectionVisual, Shape: ShapeSingleSelect, Required: true,
			Axis: VisualClutterLevelAxis, Instruction: "Evaluate screen density:",
			values: func(r *AnalysisRecord) []string { return one(string(r.VisualClutter)) },
		},
		{
			Name: "color_palette", Section: SectionVisual, Shape: ShapeSingleSelect, Required: true,
			Axis: ColorPaletteAxis, Instruction: "Determine the color psychology:",
			values: func(r *AnalysisRecord) []string { return one(string(r.ColorPalette)) },
		},

		// gameplay
		{
			Name: "primary_genre", Section: SectionGameplay, Shape: ShapeSingleSelect, Required: true,
			Axis: GameplayGenreAxis, Instruction: "Classify the core gameplay loop:",
			values: func(r *AnalysisRecord) []string { return one(string(r.PrimaryGenre)) },
		},
		{
			Name: "input_method", Section: SectionGameplay, Shape: ShapeSingleSelect,
			Axis: InputMethodAxis, Instruction: "Identify the interaction method shown:",
			values: func(r *AnalysisRecord) []string { return optional(r.InputMethod) },
		},
		{
			Name: "mechanics_present", Section: SectionGameplay, Shape: ShapeMultiSelect,
			Axis: GameplayMechanicAxis, Instruction: "Select ALL specific actions visually detected:",
			values: func(r *AnalysisRecord) []string { return many(r.MechanicsPresent) },
		},
		{
			Name: "props_detected", Section: SectionGameplay, Shape: ShapeMultiSelect,
			Axis: GameplayPropAxis, Instruction: "Identify specific game objects:",
			values: func(r *AnalysisRecord) []string { return many(r.PropsDetected) },
		},

		// psychology
		{
			Name: "character_archetype", Section: SectionPsychology, Shape: ShapeSingleSelect,
			Axis: CharacterArchetypeAxis, Instruction: "Identify the protagonist type:",
			values: func(r *AnalysisRecord) []string { return optional(r.CharacterArchetype) },
		},
		{
			Name: "emotional_hooks", Section: SectionPsychology, Shape: ShapeMultiSelect,
			Axis: EmotionTriggerAxis, Instruction: "Identify the psychological intent:",
			values: func(r *AnalysisRecord) []string { return many(r.EmotionalHooks) },
		},
		{
			Name: "satisfaction_factors", Section: SectionPsychology, Shape: ShapeMultiSelect,
			Axis: SatisfactionTriggerAxis, Instruction: "Identify satisfying elements:",
			values: func(r *AnalysisRecord) []string { return many(r.SatisfactionFactors) },
		},
		{
			Name: "fail_scenario", Section: SectionPsychology, Shape: ShapeSingleSelect,
			Axis: FailTypeAxis, Instruction: "If a fail occurs, categorize it:",
			values: func(r *AnalysisRecord) []string { return optional(r.FailScenario) },
		},

		// marketing
		{
			Name: "pointer_style", Section: SectionMarketing, Shape: ShapeSingleSelect,
			Axis: PointerStyleAxis, Instruction: "Identify the user guidance indicator:",
			values: func(r *AnalysisRecord) []string { return optional(r.PointerStyle) },
		},
		{
			Name: "text_hooks", Section: SectionMarketing, Shape: ShapeMultiSelect,
			Axis: TextHookAxis, Instruction: "Analyze text overlays:",
			values: func(r *AnalysisRecord) []string { return many(r.TextHooks) },
		},
		{
			Name: "cta_elements", Section: SectionMarketing, Shape: ShapeMultiSelect,
			Axis: CTAElementAxis, Instruction: "Identify End Card elements:",
			values: func(r *AnalysisRecord) []string { return many(r.CTAElements) },
		},
		{
			Name: "ocr_text_raw", Section: SectionMarketing, Shape: ShapeTextList,
			Description: "Extract exact raw text strings from overlays (e.g. 'Level 5', 'Failed!').",
			values:      func(r *AnalysisRecord) []string { return many(r.OCRTextRaw) },
		},

		// audio
		{
			Name: "music_genre", Section: SectionAudio, Shape: ShapeSingleSelect,
			Axis: MusicGenreAxis, Instruction: "Classify the background music (leave empty if there is none):",
			values: func(r *AnalysisRecord) []string { return optional(r.MusicGenre) },
		},
		{
			Name: "sound_effects", Section: SectionAudio, Shape: ShapeMultiSelect,
			Axis: SoundEffectAxis, Instruction: "Select ALL sound effects clearly audible:",
			values: func(r *AnalysisRecord) []string { return many(r.SoundEffects) },
		},
		{
			Name: "voice_over_type", Section: SectionAudio, Shape: ShapeSingleSelect,
			Axis: VoiceOverTypeAxis, Instruction: "Identify how the voice-over is delivered (leave empty if nobody speaks):",
			values: func(r *AnalysisRecord) []string { return optional(r.VoiceOverType) },
		},
		{
			Name: "voice_over_tone", Section: SectionAudio, Shape: ShapeSingleSelect,
			Axis: VoiceOverToneAxis, Instruction: "Identify the voice-over tone:",
			values: func(r *AnalysisRecord) []string { return optional(r.VoiceOverTone) },
		},
		{
			Name: "voice_over_content", Section: SectionAudio, Shape: ShapeSingleSelect,
			Axis: VoiceOverContentAxis, Instruction: "Identify what the voice-over talks about:",
			values: func(r *AnalysisRecord) []string { return optional(r.VoiceOverContent) },
		},
		{
			Name: "audio_transcription", Section: SectionAudio, Shape: ShapeText,
			Description: "Transcribe the spoken words verbatim. Empty string if nothing is spoken.",
			values:      func(r *AnalysisRecord) []string { return one(r.AudioTranscription) },
		},

		// inference
		{
			Name: "is_fake_gameplay", Section: SectionInference, Shape: ShapeBool, Required: true,
			Description: "TRUE if gameplay (e.g. Pull Pin) seems unrelated to the likely core app genre (e.g. Strategy). FALSE if gameplay looks authentic.",
			values:      func(r *AnalysisRecord) []string { return []string{strconv.FormatBool(r.IsFakeGameplay)} },
		},
		{
			Name: "likely_target_audience", Section: SectionInference, Shape: ShapeText, Required: true,
			Description: "Inferred audience based on visuals (e.g. 'Children', 'Casual Adult', 'Hardcore Gamer').",
			values:      func(r *AnalysisRecord) []string { return one(r.LikelyTargetAudience) },
		},
	}
}
