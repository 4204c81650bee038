package models

// Marketing and UI layer.

type PointerStyle string

const (
	PointerRealHand    PointerStyle = "Pointer_RealHand"
	PointerCartoonHand PointerStyle = "Pointer_CartoonHand"
	PointerArrow       PointerStyle = "Pointer_Arrow"
	PointerGhostTouch  PointerStyle = "Pointer_Ghost"
	Pointer3DHand      PointerStyle = "Pointer_3D_Hand"
)

var PointerStyleAxis = &Axis{Name: "PointerStyle", Tags: []Tag{
	{string(PointerRealHand), "Video footage of a human hand."},
	{string(PointerCartoonHand), "2D vector graphic hand."},
	{string(PointerArrow), "Mouse cursor or simple arrow."},
	{string(PointerGhostTouch), "Interaction happens without visible indicator."},
	{string(Pointer3DHand), "3D model hand."},
}}

type TextHook string

const (
	HookIQChallenge        TextHook = "Hook_IQ_Challenge"
	HookHardBait           TextHook = "Hook_Hard_Bait"
	HookTutorialStep       TextHook = "Hook_Tutorial"
	HookEvolutionNarrative TextHook = "Hook_Evolution"
	HookTabooShock         TextHook = "Hook_Taboo"
)

var TextHookAxis = &Axis{Name: "TextHook", Tags: []Tag{
	{string(HookIQChallenge), "Claims of difficulty ('Only 1% pass')."},
	{string(HookHardBait), "Claims of specific failure ('I can't reach Pink')."},
	{string(HookTutorialStep), "Instructions ('Hold to dig')."},
	{string(HookEvolutionNarrative), "Progression narratives ('Lvl 1 vs Lvl 50')."},
	{string(HookTabooShock), "Shocking stories (Cheating, Divorce)."},
}}

type CTAElement string

const (
	CTAFailRetry     CTAElement = "CTA_Fail_Retry"
	CTAInstallButton CTAElement = "CTA_Install"
	CTAFakePlayable  CTAElement = "CTA_FakePlayable"
	CTAStoreBadge    CTAElement = "CTA_StoreBadge"
)

var CTAElementAxis = &Axis{Name: "CTAElement", Tags: []Tag{
	{string(CTAFailRetry), "'Try Again' or 'Revive' prompt."},
	{string(CTAInstallButton), "Standard 'Download'/'Install' button."},
	{string(CTAFakePlayable), "Prompt to play that redirects to store."},
	{string(CTAStoreBadge), "Apple/Google store icons."},
}}
