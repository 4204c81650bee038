package models

// Gameplay and mechanics layer.

type GameplayGenre string

const (
	GenreHypercasualRunner GameplayGenre = "Genre_HC_Runner"
	GenreArcadeIdle        GameplayGenre = "Genre_ArcadeIdle"
	GenrePuzzleLogic       GameplayGenre = "Genre_Puzzle_Logic"
	GenreStrategy4X        GameplayGenre = "Genre_Strategy_4X"
	GenreSimulationTycoon  GameplayGenre = "Genre_Sim_Tycoon"
	GenreMerge2            GameplayGenre = "Genre_Merge2"
)

var GameplayGenreAxis = &Axis{Name: "GameplayGenre", Tags: []Tag{
	{string(GenreHypercasualRunner), "Auto-forward movement, player steers L/R."},
	{string(GenreArcadeIdle), "Joystick movement, resource gathering, base building."},
	{string(GenrePuzzleLogic), "Static screen, pin pulling, drawing, or riddles."},
	{string(GenreStrategy4X), "Base management, army massing, top-down map."},
	{string(GenreSimulationTycoon), "Menu-heavy management, money counters."},
	{string(GenreMerge2), "Dragging two identical items together on a grid."},
}}

type InputMethod string

const (
	InputJoystick   InputMethod = "Input_Joystick"
	InputTapTiming  InputMethod = "Input_TapTiming"
	InputDragSwerve InputMethod = "Input_DragSwerve"
	InputDrawing    InputMethod = "Input_Drawing"
	InputOneTap     InputMethod = "Input_OneTap"
)

var InputMethodAxis = &Axis{Name: "InputMethod", Tags: []Tag{
	{string(InputJoystick), "Virtual circle pad or free 360 movement."},
	{string(InputTapTiming), "Tapping at specific moments to jump/stop."},
	{string(InputDragSwerve), "Finger holds screen to slide character L/R."},
	{string(InputDrawing), "Finger draws visible lines on screen."},
	{string(InputOneTap), "Simple tap interaction (Flappy Bird style)."},
}}

type GameplayMechanic string

const (
	MechanicDigging       GameplayMechanic = "Mechanic_Digging"
	MechanicVacuum        GameplayMechanic = "Mechanic_Vacuum"
	MechanicStacking      GameplayMechanic = "Mechanic_Stacking"
	MechanicBaseExpansion GameplayMechanic = "Mechanic_BaseExpansion"
	MechanicPullPin       GameplayMechanic = "Mechanic_PullPin"
	MechanicGateRunner    GameplayMechanic = "Mechanic_GateRunner"
	MechanicDrawToSave    GameplayMechanic = "Mechanic_DrawToSave"
	MechanicMerging       GameplayMechanic = "Mechanic_Merging"
	MechanicSorting       GameplayMechanic = "Mechanic_Sorting"
	MechanicCrushing      GameplayMechanic = "Mechanic_Crushing"
)

var GameplayMechanicAxis = &Axis{Name: "GameplayMechanic", Tags: []Tag{
	{string(MechanicDigging), "Breaking blocks or removing soil/terrain."},
	{string(MechanicVacuum), "Using a tool to suck up objects."},
	{string(MechanicStacking), "Character carrying a vertical pile of items."},
	{string(MechanicBaseExpansion), "Unlocking new floor tiles/zones (often gray to colored)."},
	{string(MechanicPullPin), "Sliding keys/pins to move fluids or objects."},
	{string(MechanicGateRunner), "Passing through gates with math (+, x, -)."},
	{string(MechanicDrawToSave), "Drawing ink lines to shield a character."},
	{string(MechanicMerging), "Dragging two items together to form a new one."},
	{string(MechanicSorting), "Organizing items by color or type into containers."},
	{string(MechanicCrushing), "Hydraulic press, shredding, or destroying items."},
}}

type GameplayProp string

const (
	PropHazardLava      GameplayProp = "Prop_Hazard_Lava"
	PropHazardSpikes    GameplayProp = "Prop_Hazard_Spikes"
	PropHazardSaws      GameplayProp = "Prop_Hazard_Saws"
	PropMathGates       GameplayProp = "Prop_MathGates"
	PropEvolutionDoor   GameplayProp = "Prop_EvolutionDoor"
	PropConveyorBelt    GameplayProp = "Prop_ConveyorBelt"
	PropMoneyStacks     GameplayProp = "Prop_MoneyStacks"
	PropResourceNodes   GameplayProp = "Prop_ResourceNodes"
	PropCollectibleGems GameplayProp = "Prop_Collectible_Gems"
	PropRewardChest     GameplayProp = "Prop_RewardChest"
	PropWeaponHeld      GameplayProp = "Prop_Weapon"
	PropVehicle         GameplayProp = "Prop_Vehicle"
	PropCrowdSwarm      GameplayProp = "Prop_CrowdSwarm"
	PropLockedAreaGray  GameplayProp = "Prop_LockedArea"
	PropLiquidGeneric   GameplayProp = "Prop_Liquid_Generic"
	PropDebrisTrash     GameplayProp = "Prop_Debris_Trash"
)

var GameplayPropAxis = &Axis{Name: "GameplayProp", Tags: []Tag{
	// hazards
	{string(PropHazardLava), "Red/Orange liquid danger zones."},
	{string(PropHazardSpikes), "Stationary sharp obstacles."},
	{string(PropHazardSaws), "Moving circular saws or spinning blades."},
	// modifiers
	{string(PropMathGates), "Translucent gates displaying math operations (+, x, /)."},
	{string(PropEvolutionDoor), "Gates labeled with years (1900->2000) or status (Poor->Rich)."},
	{string(PropConveyorBelt), "Moving floors transporting items (common in factory/idle)."},
	// resources and items
	{string(PropMoneyStacks), "Piles of cash, gold bars, or coins visibly sitting on the ground."},
	{string(PropResourceNodes), "Breakable environment objects like trees, rocks, or ore veins."},
	{string(PropCollectibleGems), "Floating items like diamonds, stars, or keys to be collected."},
	{string(PropRewardChest), "Treasure chests, gift boxes, or safes (often at the end level)."},
	{string(PropWeaponHeld), "Held items like guns, swords, giant hammers, or bats."},
	{string(PropVehicle), "Cars, tanks, or planes driven by the character."},
	// environment and crowd
	{string(PropCrowdSwarm), "Large groups of stickmen or units moving as a liquid mass."},
	{string(PropLockedAreaGray), "Grayed-out or silhouette zones waiting to be unlocked."},
	{string(PropLiquidGeneric), "Blue water, green acid, or purple slime (Distinct from Lava)."},
	{string(PropDebrisTrash), "Scattered garbage, dust, or stains meant to be cleaned."},
}}
