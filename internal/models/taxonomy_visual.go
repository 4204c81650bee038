package models

// Visual and technical layer.

type ArtStyle string

const (
	ArtStyleFlat2D        ArtStyle = "Style_2D_Flat"
	ArtStyleHandDrawn2D   ArtStyle = "Style_2D_HandDrawn"
	ArtStylePixelArt      ArtStyle = "Style_PixelArt"
	ArtStyleLowPoly3D     ArtStyle = "Style_3D_LowPoly"
	ArtStyleVoxel3D       ArtStyle = "Style_3D_Voxel"
	ArtStyleStylized3D    ArtStyle = "Style_3D_Stylized"
	ArtStyleCelShaded     ArtStyle = "Style_CelShaded"
	ArtStyleRealistic     ArtStyle = "Style_Realistic"
	ArtStyleUGCLiveAction ArtStyle = "Style_UGC_LiveAction"
	ArtStyleMixedReality  ArtStyle = "Style_Mixed_Reality"
)

var ArtStyleAxis = &Axis{Name: "ArtStyle", Tags: []Tag{
	{string(ArtStyleFlat2D), "Zero depth, paper/flash look."},
	{string(ArtStyleHandDrawn2D), "Artistic, brush strokes."},
	{string(ArtStylePixelArt), "Visible retro pixels."},
	{string(ArtStyleLowPoly3D), "Sharp geometric edges, minimal detail."},
	{string(ArtStyleVoxel3D), "Cube-based blocks (Minecraft style)."},
	{string(ArtStyleStylized3D), "Smooth, rounded, high-fidelity cartoon (Mid-core)."},
	{string(ArtStyleCelShaded), "3D with black comic-book outlines."},
	{string(ArtStyleRealistic), "High-res textures, attempts photorealism."},
	{string(ArtStyleUGCLiveAction), "Real humans or video footage."},
	{string(ArtStyleMixedReality), "Game UI overlaid on real-world footage."},
}}

type CameraPerspective string

const (
	CameraIsometric       CameraPerspective = "Cam_Isometric"
	CameraTopDown         CameraPerspective = "Cam_TopDown"
	CameraSideScroll      CameraPerspective = "Cam_SideScroll"
	CameraFirstPerson     CameraPerspective = "Cam_FirstPerson"
	CameraThirdPersonBack CameraPerspective = "Cam_ThirdPerson"
	CameraSplitScreen     CameraPerspective = "Cam_SplitScreen"
)

var CameraPerspectiveAxis = &Axis{Name: "CameraPerspective", Tags: []Tag{
	{string(CameraIsometric), "Angled top-down (~45°), grid-like view."},
	{string(CameraTopDown), "Directly overhead (90°)."},
	{string(CameraSideScroll), "2D view from the side (Platformer)."},
	{string(CameraFirstPerson), "View from character's eyes."},
	{string(CameraThirdPersonBack), "Camera follows behind the character's back."},
	{string(CameraSplitScreen), "Two distinct video feeds shown simultaneously."},
}}

type VisualClutterLevel string

const (
	ClutterMinimalist VisualClutterLevel = "Clutter_Low"
	ClutterBalanced   VisualClutterLevel = "Clutter_Medium"
	ClutterChaotic    VisualClutterLevel = "Clutter_High"
)

var VisualClutterLevelAxis = &Axis{Name: "VisualClutterLevel", Tags: []Tag{
	{string(ClutterMinimalist), "Plain background, single focus object."},
	{string(ClutterBalanced), "Standard detailed environment."},
	{string(ClutterChaotic), "Screen filled with swarms, massive particle effects, or hundreds of items."},
}}

type ColorPalette string

const (
	PaletteWarmUrgent   ColorPalette = "Palette_Warm_RedOrange"
	PaletteCoolCalm     ColorPalette = "Palette_Cool_BlueGreen"
	PaletteNeonCyber    ColorPalette = "Palette_Neon"
	PalettePastelCozy   ColorPalette = "Palette_Pastel"
	PaletteHighContrast ColorPalette = "Palette_HighContrast"
)

var ColorPaletteAxis = &Axis{Name: "ColorPalette", Tags: []Tag{
	{string(PaletteWarmUrgent), "Dominant reds/oranges/yellows (Urgency/Danger)."},
	{string(PaletteCoolCalm), "Dominant blues/greens (Calm/Strategy)."},
	{string(PaletteNeonCyber), "Glowing brights on dark backgrounds (Cyberpunk)."},
	{string(PalettePastelCozy), "Soft, desaturated colors (ASMR/Decor)."},
	{string(PaletteHighContrast), "Stark Black/White/Red (Stickman style)."},
}}
