package models

// Psychology and emotion layer.

type CharacterArchetype string

const (
	CharStickman    CharacterArchetype = "Char_Stickman"
	CharNoob        CharacterArchetype = "Char_Noob"
	CharPro         CharacterArchetype = "Char_Pro"
	CharWorkerMiner CharacterArchetype = "Char_Worker"
	CharMomVsDad    CharacterArchetype = "Char_Mom_vs_Dad"
	CharDamsel      CharacterArchetype = "Char_Damsel"
	CharBossMonster CharacterArchetype = "Char_Boss"
)

var CharacterArchetypeAxis = &Axis{Name: "CharacterArchetype", Tags: []Tag{
	{string(CharStickman), "Generic, single-color figure."},
	{string(CharNoob), "Character failing, looking confused, or dressed poorly."},
	{string(CharPro), "Character with high-level gear/skins playing well."},
	{string(CharWorkerMiner), "Character with hardhat/tools (Drill/Idle games)."},
	{string(CharMomVsDad), "Two characters compared at the top of the screen."},
	{string(CharDamsel), "Character in distress, tied up, or crying."},
	{string(CharBossMonster), "Large enemy character."},
}}

type SatisfactionTrigger string

const (
	SatisfyingCleanMap      SatisfactionTrigger = "Satisfying_CleanMap"
	SatisfyingPerfectFit    SatisfactionTrigger = "Satisfying_PerfectFit"
	SatisfyingNumberTicker  SatisfactionTrigger = "Satisfying_NumberTicker"
	SatisfyingSmoothPhysics SatisfactionTrigger = "Satisfying_SmoothPhysics"
)

var SatisfactionTriggerAxis = &Axis{Name: "SatisfactionTrigger", Tags: []Tag{
	{string(SatisfyingCleanMap), "Converting a dirty/foggy map to a clean one."},
	{string(SatisfyingPerfectFit), "Objects sliding perfectly into slots."},
	{string(SatisfyingNumberTicker), "Counters, damage numbers or currency rapidly ticking upward."},
	{string(SatisfyingSmoothPhysics), "Jelly-like movement or smooth stacking."},
}}

type EmotionTrigger string

const (
	EmotionFrustration  EmotionTrigger = "Emotion_Frustration"
	EmotionOCD          EmotionTrigger = "Emotion_OCD"
	EmotionPowerFantasy EmotionTrigger = "Emotion_Power"
	EmotionUrgency      EmotionTrigger = "Emotion_Urgency"
	EmotionCuriosity    EmotionTrigger = "Emotion_Curiosity"
)

var EmotionTriggerAxis = &Axis{Name: "EmotionTrigger", Tags: []Tag{
	{string(EmotionFrustration), "Player plays badly on purpose to annoy viewer."},
	{string(EmotionOCD), "Slight misalignments or 'missed one spot' scenarios."},
	{string(EmotionPowerFantasy), "Effortlessly destroying massive amounts of enemies."},
	{string(EmotionUrgency), "Countdowns, rising hazards, flashing red."},
	{string(EmotionCuriosity), "Mystery boxes or 'What happens next?' hooks."},
}}

type FailType string

const (
	FailLogic   FailType = "Fail_Logic"
	FailSkill   FailType = "Fail_Skill"
	FailPhysics FailType = "Fail_Physics"
	FailStuck   FailType = "Fail_Stuck"
)

var FailTypeAxis = &Axis{Name: "FailType", Tags: []Tag{
	{string(FailLogic), "Player makes an obviously wrong puzzle choice."},
	{string(FailSkill), "Player reacts too slowly or has bad aim."},
	{string(FailPhysics), "A structure collapses or balance is lost."},
	{string(FailStuck), "Player wanders aimlessly, unable to find the objective."},
}}
