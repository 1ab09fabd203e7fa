package promptgen

import (
	"fmt"
	"strings"

	"lookbook/internal/domain"
)

// Prompt document identity. FormatVersion advances whenever the shape or the
// section wording changes in a way the image model would notice.
const (
	PromptFormat        = "lookbook.shoot"
	PromptFormatVersion = 2
)

// DefaultScene is the frame used when neither an explicit frame nor location
// frame defaults are supplied.
var DefaultScene = domain.Frame{
	Label: "Default scene",
	Technical: domain.FrameParams{
		ShotSize:        "medium_full",
		CameraAngle:     "eye_level",
		PoseType:        "static",
		Composition:     "rule_of_thirds",
		PoseDescription: "standing relaxed, weight shifted onto one leg, arms loose",
	},
}

// Frame sources recorded on the assembled frame block.
const (
	FrameSourceExplicit        = "explicit"
	FrameSourceLocationDefault = "location_default"
	FrameSourceDefaultScene    = "default_scene"
)

// ShootInputs is everything the builder needs for one generation call. All
// entity pointers may be nil; the builder degrades to placeholders instead of
// failing.
type ShootInputs struct {
	Universe       *domain.Universe
	StyleVariantID string
	Mode           string
	Location       *domain.Location
	Frame          *domain.Frame

	ModelCount            int
	HasModelReferences    bool
	HasClothingReferences bool

	HasPoseReference bool
	PoseAdherence    string
	PosingStyle      string

	AntiAiLevelOverride string
	EmotionID           string
	CustomEmotion       string
	Extra               string
}

// ShootPromptJSON is the assembled prompt document: an immutable record of
// what was asked of the image model. It is never persisted as an entity of
// its own, though generated frames may keep a copy for audit.
type ShootPromptJSON struct {
	Format        string         `json:"format"`
	FormatVersion int            `json:"formatVersion"`
	HardRules     []string       `json:"hardRules"`
	Universe      UniverseBlock  `json:"universe"`
	Location      LocationBlock  `json:"location"`
	Identity      IdentityBlock  `json:"identity"`
	Clothing      ClothingBlock  `json:"clothing"`
	Frame         FrameBlock     `json:"frame"`
	FrameRules    []string       `json:"frameRules"`
	PoseReference PoseReference  `json:"poseReference"`
	PosingStyle   string         `json:"posingStyle"`
	Emotion       EmotionBlock   `json:"emotion"`
	Action        ActionBlock    `json:"action"`
	Textures      string         `json:"textures"`
	ClothingFocus string         `json:"clothingFocus"`
	AntiAi        AntiAiBlock    `json:"antiAi"`
	Extra         string         `json:"extra"`
}

type UniverseBlock struct {
	Label          string `json:"label"`
	ArtisticVision string `json:"artisticVision"`
	Mode           string `json:"mode"`
	Narrative      string `json:"narrative"`
	Anchors        string `json:"anchors"`
}

type LocationBlock struct {
	Label           string   `json:"label"`
	Category        string   `json:"category"`
	EnvironmentType string   `json:"environmentType"`
	LightingType    string   `json:"lightingType"`
	TimeOfDay       string   `json:"timeOfDay"`
	Surface         string   `json:"surface"`
	Props           []string `json:"props"`
	Snippet         string   `json:"snippet"`
}

type IdentityBlock struct {
	ModelCount    int      `json:"modelCount"`
	HasReferences bool     `json:"hasReferences"`
	Rules         []string `json:"rules"`
}

type ClothingBlock struct {
	HasReferences bool     `json:"hasReferences"`
	Rules         []string `json:"rules"`
}

type FrameBlock struct {
	Source          string `json:"source"`
	Label           string `json:"label"`
	ShotSize        string `json:"shotSize"`
	CameraAngle     string `json:"cameraAngle"`
	PoseType        string `json:"poseType"`
	Composition     string `json:"composition"`
	FocusPoint      string `json:"focusPoint"`
	PoseDescription string `json:"poseDescription"`
}

type PoseReference struct {
	Provided  bool   `json:"provided"`
	Adherence string `json:"adherence"`
}

// Emotion sources, in precedence order: custom beats preset beats default.
const (
	EmotionSourceCustom  = "custom"
	EmotionSourcePreset  = "preset"
	EmotionSourceDefault = "default"
)

type EmotionBlock struct {
	Source      string `json:"source"`
	Description string `json:"description"`
}

type ActionBlock struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type AntiAiBlock struct {
	Level string   `json:"level"`
	Rules []string `json:"rules"`
}

// BuildShootPromptJSON assembles the complete prompt document. Pure data
// transformation: no I/O, no failure path. Missing entities produce
// placeholder blocks so every key is always present for downstream readers.
func BuildShootPromptJSON(in ShootInputs) ShootPromptJSON {
	frame, frameSource := resolveFrame(in.Frame, in.Location)
	params := resolveParams(in)

	textures := frame.Textures
	if textures == "" && in.Universe != nil {
		textures = paragraph(in.Universe.Texture.SkinDetail, in.Universe.Texture.FabricDetail, in.Universe.Texture.Notes)
	}

	return ShootPromptJSON{
		Format:        PromptFormat,
		FormatVersion: PromptFormatVersion,
		HardRules:     buildHardRules(in.ModelCount),
		Universe:      buildUniverseBlock(in.Universe, params, in.Mode),
		Location:      buildLocationBlock(in.Location),
		Identity:      buildIdentityBlock(in.ModelCount, in.HasModelReferences),
		Clothing:      buildClothingBlock(in.HasClothingReferences),
		Frame:         buildFrameBlock(frame, frameSource),
		FrameRules:    buildFrameRules(),
		PoseReference: PoseReference{Provided: in.HasPoseReference, Adherence: poseAdherenceOrDefault(in)},
		PosingStyle:   in.PosingStyle,
		Emotion:       buildEmotionBlock(in.CustomEmotion, in.EmotionID, frame.Emotion),
		Action:        buildActionBlock(frame.Action),
		Textures:      textures,
		ClothingFocus: frame.ClothingFocus,
		AntiAi:        buildAntiAiBlock(antiAiLevel(in), antiAiCustomRules(in.Universe)),
		Extra:         in.Extra,
	}
}

// resolveFrame applies the frame precedence: explicit frame first, then a
// frame synthesized from the location's defaults, then the fixed default
// scene.
func resolveFrame(frame *domain.Frame, location *domain.Location) (domain.Frame, string) {
	if frame != nil {
		return *frame, FrameSourceExplicit
	}
	if location != nil && location.DefaultFrameParams != nil {
		return domain.Frame{
			Label:     "Default for " + location.Label,
			Technical: *location.DefaultFrameParams,
		}, FrameSourceLocationDefault
	}
	return DefaultScene, FrameSourceDefaultScene
}

func resolveParams(in ShootInputs) UniverseParams {
	params := ParamsFromUniverse(in.Universe)
	if in.Universe != nil && in.StyleVariantID != "" {
		for _, variant := range in.Universe.StyleVariants {
			if variant.ID == in.StyleVariantID {
				params = ApplyVariant(params, variant)
				break
			}
		}
	}
	if in.AntiAiLevelOverride != "" {
		params.AntiAiLevel = in.AntiAiLevelOverride
	}
	return params
}

func antiAiLevel(in ShootInputs) string {
	if in.AntiAiLevelOverride != "" {
		return in.AntiAiLevelOverride
	}
	if in.Universe != nil && in.Universe.AntiAi.Level != "" {
		return in.Universe.AntiAi.Level
	}
	return "off"
}

func antiAiCustomRules(u *domain.Universe) []string {
	if u == nil {
		return nil
	}
	return u.AntiAi.CustomRules
}

func poseAdherenceOrDefault(in ShootInputs) string {
	if in.PoseAdherence != "" {
		return in.PoseAdherence
	}
	if in.HasPoseReference {
		return "loose"
	}
	return ""
}

func buildHardRules(modelCount int) []string {
	identity := "Keep the SAME model identity across every frame of this shoot."
	if modelCount > 1 {
		identity = fmt.Sprintf("Keep the SAME %d model identities across every frame of this shoot.", modelCount)
	}
	return []string{
		"Photorealistic photography only. The result must read as a real photograph, never an illustration or render.",
		"ONE single continuous photograph from ONE camera. No split frames, grids, or collages.",
		identity,
		"Clothing must match the reference garments exactly: cut, color, fabric, closures.",
		"Never invent garments, logos, or accessories that are not in the references.",
	}
}

func buildUniverseBlock(u *domain.Universe, params UniverseParams, mode string) UniverseBlock {
	if u == nil {
		return UniverseBlock{Mode: modeOrDefault(mode)}
	}
	return UniverseBlock{
		Label:          u.Label,
		ArtisticVision: u.ArtisticVision,
		Mode:           modeOrDefault(mode),
		Narrative:      BuildUniverseNarrativeByMode(params, mode),
		Anchors:        BuildVisualAnchorsPrompt(BuildVisualAnchors(params)),
	}
}

func modeOrDefault(mode string) string {
	if mode == ModeStrict {
		return ModeStrict
	}
	return ModeSoft
}

func buildLocationBlock(l *domain.Location) LocationBlock {
	if l == nil {
		return LocationBlock{}
	}
	snippet := l.PromptSnippet
	if snippet == "" {
		snippet = l.DeriveSnippet()
	}
	return LocationBlock{
		Label:           l.Label,
		Category:        l.Category,
		EnvironmentType: l.EnvironmentType,
		LightingType:    l.Lighting.Type,
		TimeOfDay:       l.Lighting.TimeOfDay,
		Surface:         l.Surface,
		Props:           append([]string(nil), l.Props...),
		Snippet:         snippet,
	}
}

func buildIdentityBlock(modelCount int, hasReferences bool) IdentityBlock {
	if modelCount <= 0 {
		modelCount = 1
	}
	rules := []string{
		"Face, bone structure, skin tone, and body proportions come from the identity reference images.",
		"Do not beautify, slim, or otherwise edit the person: reproduce them as photographed.",
	}
	if !hasReferences {
		rules = []string{"No identity references were supplied; keep one consistent invented person across all frames."}
	}
	return IdentityBlock{ModelCount: modelCount, HasReferences: hasReferences, Rules: rules}
}

func buildClothingBlock(hasReferences bool) ClothingBlock {
	rules := []string{
		"Every garment and accessory in the reference images is worn, complete and visible.",
		"Reproduce fabric behaviour honestly: weight, drape, and wrinkle where the body bends.",
	}
	if !hasReferences {
		rules = []string{"No clothing references were supplied; style the outfit from the universe and location context."}
	}
	return ClothingBlock{HasReferences: hasReferences, Rules: rules}
}

func buildFrameBlock(frame domain.Frame, source string) FrameBlock {
	return FrameBlock{
		Source:          source,
		Label:           frame.Label,
		ShotSize:        frame.Technical.ShotSize,
		CameraAngle:     frame.Technical.CameraAngle,
		PoseType:        frame.Technical.PoseType,
		Composition:     frame.Technical.Composition,
		FocusPoint:      frame.Technical.FocusPoint,
		PoseDescription: frame.Technical.PoseDescription,
	}
}

// buildFrameRules is the fixed invariant list separating frame semantics from
// location semantics. This is a prompt-level contract for the image model,
// not something the builder can enforce in software.
func buildFrameRules() []string {
	return []string{
		"The FRAME block describes pose, camera, and composition only.",
		"The FRAME never carries location or environment information; the scene comes exclusively from the LOCATION block.",
		"If the pose description mentions surroundings, treat those words as pose context and ignore them as scene direction.",
	}
}

// buildEmotionBlock resolves the emotion with custom-first precedence: a
// custom description wins outright and the preset id is not even looked up.
func buildEmotionBlock(customDescription, emotionID, frameEmotion string) EmotionBlock {
	if desc := strings.TrimSpace(customDescription); desc != "" {
		return EmotionBlock{Source: EmotionSourceCustom, Description: desc}
	}
	if emotionID != "" {
		if desc, ok := emotionPresetDict[emotionID]; ok {
			return EmotionBlock{Source: EmotionSourcePreset, Description: desc}
		}
	}
	if frameEmotion != "" {
		return EmotionBlock{Source: EmotionSourcePreset, Description: frameEmotion}
	}
	return EmotionBlock{Source: EmotionSourceDefault, Description: "calm, grounded confidence; soft eyes, no forced expression"}
}

func buildActionBlock(action string) ActionBlock {
	action = strings.TrimSpace(action)
	if action == "" {
		return ActionBlock{Type: "static", Description: "held pose, no movement implied"}
	}
	return ActionBlock{Type: "action", Description: action}
}

// antiAiRuleLadder orders the progressive realism rules. Level counts: low
// takes 1, medium 4, high all 7; minimal takes none beyond the base line.
var antiAiRuleLadder = []string{
	"Skin shows pores, fine lines, and subtle unevenness.",
	"Hair includes flyaways and imperfect strands.",
	"Fabric creases and wrinkles where the body bends.",
	"Lighting contains honest imperfection: slight spill, uneven falloff.",
	"Framing may sit a degree off-level, as a handheld camera would.",
	"Background detail stays believable and slightly untidy.",
	"Add subtle sensor grain, consistent across the whole frame.",
}

func buildAntiAiBlock(level string, customRules []string) AntiAiBlock {
	if level == "" || level == "off" {
		return AntiAiBlock{Level: "off"}
	}

	rules := []string{"Avoid the obvious AI tells: waxy skin, dead eyes, melted detail."}
	var take int
	switch level {
	case "low":
		take = 1
	case "medium":
		take = 4
	case "high":
		take = len(antiAiRuleLadder)
	}
	rules = append(rules, antiAiRuleLadder[:take]...)
	rules = append(rules, customRules...)

	return AntiAiBlock{Level: level, Rules: rules}
}

// JSONPromptToText flattens the document into the plain-text block submitted
// to the image model. The section headers and their order are a fixed
// contract; changing them changes generation quality.
func JSONPromptToText(p ShootPromptJSON) string {
	var b strings.Builder

	writeSection(&b, "HARD RULES:", bulleted(p.HardRules))

	var universe []string
	if p.Universe.Label != "" {
		universe = append(universe, "Universe: "+p.Universe.Label)
	}
	if p.Universe.ArtisticVision != "" {
		universe = append(universe, p.Universe.ArtisticVision)
	}
	if p.Universe.Narrative != "" {
		universe = append(universe, p.Universe.Narrative)
	}
	if p.Universe.Anchors != "" {
		universe = append(universe, p.Universe.Anchors)
	}
	writeSection(&b, "UNIVERSE (VISUAL DNA):", universe)

	var location []string
	if p.Location.Snippet != "" {
		location = append(location, p.Location.Snippet)
	}
	if p.Location.LightingType != "" {
		light := "Ambient light: " + p.Location.LightingType
		if p.Location.TimeOfDay != "" {
			light += " at " + p.Location.TimeOfDay
		}
		location = append(location, light)
	}
	if len(location) == 0 {
		location = append(location, "No location specified; choose a neutral, believable setting consistent with the universe.")
	}
	writeSection(&b, "LOCATION:", location)

	identity := bulleted(p.Identity.Rules)
	identity = append(identity, fmt.Sprintf("- Models in frame: %d", p.Identity.ModelCount))
	writeSection(&b, "IDENTITY (MUST MATCH EXACTLY):", identity)

	writeSection(&b, "CLOTHING (MUST MATCH EXACTLY):", bulleted(p.Clothing.Rules))

	frame := []string{
		"- Shot size: " + orUnspecified(p.Frame.ShotSize),
		"- Camera angle: " + orUnspecified(p.Frame.CameraAngle),
		"- Pose type: " + orUnspecified(p.Frame.PoseType),
		"- Composition: " + orUnspecified(p.Frame.Composition),
	}
	if p.Frame.FocusPoint != "" {
		frame = append(frame, "- Focus point: "+p.Frame.FocusPoint)
	}
	if p.Frame.PoseDescription != "" {
		frame = append(frame, "- Pose: "+p.Frame.PoseDescription)
	}
	if p.PosingStyle != "" {
		frame = append(frame, "- Posing style: "+p.PosingStyle)
	}
	if p.PoseReference.Provided {
		frame = append(frame, "- A pose reference image is attached; adherence: "+p.PoseReference.Adherence)
	}
	frame = append(frame, "- Emotion: "+p.Emotion.Description)
	frame = append(frame, "- Action: "+p.Action.Description)
	if p.Textures != "" {
		frame = append(frame, "- Textures: "+p.Textures)
	}
	if p.ClothingFocus != "" {
		frame = append(frame, "- Clothing focus: "+p.ClothingFocus)
	}
	frame = append(frame, bulleted(p.FrameRules)...)
	writeSection(&b, "FRAME / SHOT:", frame)

	if len(p.AntiAi.Rules) > 0 {
		writeSection(&b, "ANTI-AI MARKERS:", bulleted(p.AntiAi.Rules))
	}

	if strings.TrimSpace(p.Extra) != "" {
		writeSection(&b, "ADDITIONAL INSTRUCTIONS:", []string{strings.TrimSpace(p.Extra)})
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, header string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString(header)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func bulleted(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}

func orUnspecified(v string) string {
	if v == "" {
		return "unspecified"
	}
	return v
}
