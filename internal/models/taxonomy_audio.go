package models

// Audio layer.

type MusicGenre string

const (
	MusicUpbeatPop      MusicGenre = "Music_Upbeat_Pop"
	MusicEpicOrchestral MusicGenre = "Music_Epic_Orchestral"
	MusicChillLoFi      MusicGenre = "Music_Chill_LoFi"
	MusicTenseSuspense  MusicGenre = "Music_Tense_Suspense"
	MusicComedicQuirky  MusicGenre = "Music_Comedic_Quirky"
	MusicHipHopTrap     MusicGenre = "Music_HipHop_Trap"
	MusicRetroChiptune  MusicGenre = "Music_Retro_Chiptune"
	MusicTrendingViral  MusicGenre = "Music_Trending_Viral"
)

var MusicGenreAxis = &Axis{Name: "MusicGenre", Tags: []Tag{
	{string(MusicUpbeatPop), "Energetic pop or EDM with a driving beat."},
	{string(MusicEpicOrchestral), "Cinematic strings, brass and drums (war/strategy trailers)."},
	{string(MusicChillLoFi), "Relaxed lo-fi, acoustic or ambient background (cozy/decor)."},
	{string(MusicTenseSuspense), "Low drones, ticking or rising tension cues."},
	{string(MusicComedicQuirky), "Pizzicato, kazoo or cartoon-style playful music."},
	{string(MusicHipHopTrap), "Hip-hop or trap beat with heavy bass."},
	{string(MusicRetroChiptune), "8-bit or 16-bit game-console style music."},
	{string(MusicTrendingViral), "Recognizable trending social-media track or meme sound."},
}}

type SoundEffect string

const (
	SFXCoinCollect   SoundEffect = "SFX_Coin_Collect"
	SFXExplosion     SoundEffect = "SFX_Explosion"
	SFXPopMerge      SoundEffect = "SFX_Pop_Merge"
	SFXLevelUp       SoundEffect = "SFX_Level_Up"
	SFXFailBuzzer    SoundEffect = "SFX_Fail_Buzzer"
	SFXWhoosh        SoundEffect = "SFX_Whoosh"
	SFXCrunchASMR    SoundEffect = "SFX_Crunch_ASMR"
	SFXCrowdReaction SoundEffect = "SFX_Crowd_Reaction"
	SFXUIClick       SoundEffect = "SFX_UI_Click"
	SFXCountdownTick SoundEffect = "SFX_Countdown_Tick"
)

var SoundEffectAxis = &Axis{Name: "SoundEffect", Tags: []Tag{
	{string(SFXCoinCollect), "Coin, cash register or pickup chimes."},
	{string(SFXExplosion), "Explosions, impacts or destruction booms."},
	{string(SFXPopMerge), "Pops or bubbles when items merge or clear."},
	{string(SFXLevelUp), "Fanfare or jingle on level-up, upgrade or win."},
	{string(SFXFailBuzzer), "Buzzer, sad trombone or error tone on failure."},
	{string(SFXWhoosh), "Swooshes on transitions or fast movement."},
	{string(SFXCrunchASMR), "Crunching, slicing, squishing or other tactile ASMR sounds."},
	{string(SFXCrowdReaction), "Cheering, gasps, laughter or crowd noise."},
	{string(SFXUIClick), "Taps, clicks or button presses."},
	{string(SFXCountdownTick), "Clock ticking or countdown beeps."},
}}

type VoiceOverType string

const (
	VOHumanNarrator   VoiceOverType = "VO_Human_Narrator"
	VOSyntheticTTS    VoiceOverType = "VO_AI_TTS"
	VOCharacterVoice  VoiceOverType = "VO_Character_Voice"
	VOCreatorReaction VoiceOverType = "VO_UGC_Reaction"
	VOWhisperASMR     VoiceOverType = "VO_Whisper_ASMR"
)

var VoiceOverTypeAxis = &Axis{Name: "VoiceOverType", Tags: []Tag{
	{string(VOHumanNarrator), "Off-screen human narrator."},
	{string(VOSyntheticTTS), "Synthetic text-to-speech voice (flat, robotic cadence)."},
	{string(VOCharacterVoice), "A game character speaks in-world."},
	{string(VOCreatorReaction), "A creator talks or reacts on camera (influencer style)."},
	{string(VOWhisperASMR), "Whispered or ASMR-style close-mic delivery."},
}}

type VoiceOverTone string

const (
	ToneExcited    VoiceOverTone = "VOTone_Excited"
	ToneFrustrated VoiceOverTone = "VOTone_Frustrated"
	ToneCalm       VoiceOverTone = "VOTone_Calm"
	ToneSarcastic  VoiceOverTone = "VOTone_Sarcastic"
	ToneUrgent     VoiceOverTone = "VOTone_Urgent"
	ToneMysterious VoiceOverTone = "VOTone_Mysterious"
)

var VoiceOverToneAxis = &Axis{Name: "VoiceOverTone", Tags: []Tag{
	{string(ToneExcited), "Hyped, enthusiastic, high energy."},
	{string(ToneFrustrated), "Annoyed or exasperated at a failure."},
	{string(ToneCalm), "Relaxed, instructional, even pace."},
	{string(ToneSarcastic), "Mocking or ironic commentary."},
	{string(ToneUrgent), "Fast, pressing, 'hurry up' delivery."},
	{string(ToneMysterious), "Low, teasing, suspenseful delivery."},
}}

type VoiceOverContent string

const (
	VOContentTutorial   VoiceOverContent = "VOContent_Tutorial"
	VOContentChallenge  VoiceOverContent = "VOContent_Challenge"
	VOContentStory      VoiceOverContent = "VOContent_Story"
	VOContentReaction   VoiceOverContent = "VOContent_Reaction"
	VOContentOfferCTA   VoiceOverContent = "VOContent_Offer_CTA"
	VOContentCommentary VoiceOverContent = "VOContent_Gameplay_Commentary"
)

var VoiceOverContentAxis = &Axis{Name: "VoiceOverContent", Tags: []Tag{
	{string(VOContentTutorial), "Explains how to play."},
	{string(VOContentChallenge), "Dares the viewer ('Bet you can't pass level 3')."},
	{string(VOContentStory), "Narrates a story or drama around the characters."},
	{string(VOContentReaction), "Reacts to what happens on screen."},
	{string(VOContentOfferCTA), "Asks the viewer to download, install or play now."},
	{string(VOContentCommentary), "Describes the gameplay as it happens."},
}}
