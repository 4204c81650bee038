package models

// AnalysisRecord is the validated result of analyzing one ad video.
//
// Field order matches the field catalogue (see Fields) and therefore the
// output column order. Pointer fields are optional single-selects where nil
// means "not observed". Slices are multi-selects or raw text lists.
// A record is built once by the extraction service and must not be mutated
// afterwards.
type AnalysisRecord struct {
	// visual
	ArtStyle          ArtStyle           `json:"art_style" yaml:"art_style"`
	CameraPerspective CameraPerspective  `json:"camera_perspective" yaml:"camera_perspective"`
	VisualClutter     VisualClutterLevel `json:"visual_clutter" yaml:"visual_clutter"`
	ColorPalette      ColorPalette       `json:"color_palette" yaml:"color_palette"`

	// gameplay
	PrimaryGenre     GameplayGenre      `json:"primary_genre" yaml:"primary_genre"`
	InputMethod      *InputMethod       `json:"input_method" yaml:"input_method"`
	MechanicsPresent []GameplayMechanic `json:"mechanics_present" yaml:"mechanics_present"`
	PropsDetected    []GameplayProp     `json:"props_detected" yaml:"props_detected"`

	// psychology
	CharacterArchetype  *CharacterArchetype   `json:"character_archetype" yaml:"character_archetype"`
	EmotionalHooks      []EmotionTrigger      `json:"emotional_hooks" yaml:"emotional_hooks"`
	SatisfactionFactors []SatisfactionTrigger `json:"satisfaction_factors" yaml:"satisfaction_factors"`
	FailScenario        *FailType             `json:"fail_scenario" yaml:"fail_scenario"`

	// marketing
	PointerStyle *PointerStyle `json:"pointer_style" yaml:"pointer_style"`
	TextHooks    []TextHook    `json:"text_hooks" yaml:"text_hooks"`
	CTAElements  []CTAElement  `json:"cta_elements" yaml:"cta_elements"`
	OCRTextRaw   []string      `json:"ocr_text_raw" yaml:"ocr_text_raw"`

	// audio
	MusicGenre         *MusicGenre       `json:"music_genre" yaml:"music_genre"`
	SoundEffects       []SoundEffect     `json:"sound_effects" yaml:"sound_effects"`
	VoiceOverType      *VoiceOverType    `json:"voice_over_type" yaml:"voice_over_type"`
	VoiceOverTone      *VoiceOverTone    `json:"voice_over_tone" yaml:"voice_over_tone"`
	VoiceOverContent   *VoiceOverContent `json:"voice_over_content" yaml:"voice_over_content"`
	AudioTranscription string            `json:"audio_transcription" yaml:"audio_transcription"`

	// inference
	IsFakeGameplay       bool   `json:"is_fake_gameplay" yaml:"is_fake_gameplay"`
	LikelyTargetAudience string `json:"likely_target_audience" yaml:"likely_target_audience"`
}

// Validate checks every field against the catalogue. The first violation is
// returned as a *FieldError; a record is either fully valid or rejected.
func (r *AnalysisRecord) Validate() error {
	for _, f := range Fields() {
		if err := f.Check(r); err != nil {
			return err
		}
	}
	return nil
}

// FillEmptyLists replaces nil slices with empty ones so JSON output renders []
// rather than null.
func (r *AnalysisRecord) FillEmptyLists() {
	if r.MechanicsPresent == nil {
		r.MechanicsPresent = []GameplayMechanic{}
	}
	if r.PropsDetected == nil {
		r.PropsDetected = []GameplayProp{}
	}
	if r.EmotionalHooks == nil {
		r.EmotionalHooks = []EmotionTrigger{}
	}
	if r.SatisfactionFactors == nil {
		r.SatisfactionFactors = []SatisfactionTrigger{}
	}
	if r.TextHooks == nil {
		r.TextHooks = []TextHook{}
	}
	if r.CTAElements == nil {
		r.CTAElements = []CTAElement{}
	}
	if r.OCRTextRaw == nil {
		r.OCRTextRaw = []string{}
	}
	if r.SoundEffects == nil {
		r.SoundEffects = []SoundEffect{}
	}
}
