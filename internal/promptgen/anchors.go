package promptgen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AnchorBundle is the derived, read-only snapshot of concrete targets that
// must stay constant across every frame of a shoot. It is recomputed on every
// build and never persisted; it is purely a function of the parameters.
type AnchorBundle struct {
	Color    ColorAnchors    `json:"color"`
	Lighting LightingAnchors `json:"lighting"`
	Lens     LensAnchors     `json:"lens"`
	Skin     SkinAnchor      `json:"skin"`
}

type ColorAnchors struct {
	Temperature *TemperatureAnchor `json:"temperature,omitempty"`
	Shadows     *ToneAnchor        `json:"shadows,omitempty"`
	Highlights  *ToneAnchor        `json:"highlights,omitempty"`
	Contrast    *ContrastAnchor    `json:"contrast,omitempty"`
}

type TemperatureAnchor struct {
	Kelvin int    `json:"kelvin"`
	Label  string `json:"label"`
}

type ToneAnchor struct {
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

type ContrastAnchor struct {
	Ratio string `json:"ratio"`
	Label string `json:"label"`
}

type LightingAnchors struct {
	Source    string `json:"source,omitempty"`
	Direction string `json:"direction,omitempty"`
	Quality   string `json:"quality,omitempty"`
	TimeOfDay string `json:"timeOfDay,omitempty"`
	Weather   string `json:"weather,omitempty"`
}

type LensAnchors struct {
	FocalLength *FocalAnchor    `json:"focalLength,omitempty"`
	Aperture    *ApertureAnchor `json:"aperture,omitempty"`
}

type FocalAnchor struct {
	MM string `json:"mm"`
}

type ApertureAnchor struct {
	FStop        string `json:"fStop"`
	DepthOfField string `json:"depthOfField"`
}

type SkinAnchor struct {
	Tone      string `json:"tone"`
	Rendering string `json:"rendering"`
}

// BuildVisualAnchors resolves the parameter set into concrete numeric and hex
// targets. Pure and total: a missing or unknown enum value leaves that
// sub-field empty instead of erroring, because partially filled style specs
// are expected while a universe is being edited.
func BuildVisualAnchors(p UniverseParams) AnchorBundle {
	var b AnchorBundle

	if spec, ok := whiteBalanceDict[p.WhiteBalance]; ok {
		b.Color.Temperature = &TemperatureAnchor{Kelvin: spec.Kelvin, Label: spec.Label}
	}
	if spec, ok := shadowToneDict[p.ShadowTone]; ok {
		b.Color.Shadows = &ToneAnchor{Hex: spec.Hex, Label: spec.Label}
	}
	if spec, ok := highlightToneDict[p.HighlightTone]; ok {
		b.Color.Highlights = &ToneAnchor{Hex: spec.Hex, Label: spec.Label}
	}
	if spec, ok := contrastDict[p.Contrast]; ok {
		b.Color.Contrast = &ContrastAnchor{Ratio: spec.Ratio, Label: spec.Label}
	}

	b.Lighting = LightingAnchors{
		Source:    lightSourceDict[p.LightSource],
		Direction: lightDirectionDict[p.LightDirection],
		Quality:   lightQualityDict[p.LightQuality],
		TimeOfDay: timeOfDayDict[p.TimeOfDay],
		Weather:   weatherDict[p.Weather],
	}

	if spec, ok := focalRangeDict[p.FocalRange]; ok {
		b.Lens.FocalLength = &FocalAnchor{MM: spec.MM}
	}
	if spec, ok := apertureDict[p.ApertureIntent]; ok {
		b.Lens.Aperture = &ApertureAnchor{FStop: spec.FStop, DepthOfField: spec.DepthOfField}
	}

	tone, rendering := skinAnchorFor(p.WhiteBalance)
	b.Skin = SkinAnchor{Tone: tone, Rendering: rendering}

	return b
}

// BuildVisualAnchorsPrompt renders the bundle as the machine-facing block
// embedded in prompts. Empty sub-fields are skipped; an entirely empty bundle
// renders to an empty string.
func BuildVisualAnchorsPrompt(b AnchorBundle) string {
	var lines []string
	add := func(key, value string) {
		if value != "" {
			lines = append(lines, "- "+key+": "+value)
		}
	}

	if t := b.Color.Temperature; t != nil {
		add("Color temperature", fmt.Sprintf("%dK (%s)", t.Kelvin, t.Label))
	}
	if s := b.Color.Shadows; s != nil {
		add("Shadow tone", s.Hex+" ("+s.Label+")")
	}
	if h := b.Color.Highlights; h != nil {
		add("Highlight tone", h.Hex+" ("+h.Label+")")
	}
	if c := b.Color.Contrast; c != nil {
		add("Contrast ratio", c.Ratio+" ("+c.Label+")")
	}
	if f := b.Lens.FocalLength; f != nil {
		add("Focal length", f.MM)
	}
	if a := b.Lens.Aperture; a != nil {
		add("Aperture", a.FStop+", "+a.DepthOfField)
	}
	add("Light source", b.Lighting.Source)
	add("Light direction", b.Lighting.Direction)
	add("Light quality", b.Lighting.Quality)
	add("Time of day", b.Lighting.TimeOfDay)
	add("Weather", b.Lighting.Weather)
	add("Skin", b.Skin.Tone+" skin anchor: "+b.Skin.Rendering)

	if len(lines) == 0 {
		return ""
	}
	return "VISUAL ANCHORS (hold constant across all frames):\n" + strings.Join(lines, "\n")
}

// AnchorItem is one row of the editor-facing anchor list.
type AnchorItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var anchorTitleCaser = cases.Title(language.English)

// AnchorsForUI renders the same bundle as a human-readable list for the
// editing UI. Same data as the prompt block, friendlier labels.
func AnchorsForUI(b AnchorBundle) []AnchorItem {
	items := make([]AnchorItem, 0, 12)
	add := func(key, value string) {
		if value != "" {
			items = append(items, AnchorItem{Label: humanizeLabel(key), Value: value})
		}
	}

	if t := b.Color.Temperature; t != nil {
		add("color_temperature", fmt.Sprintf("%dK · %s", t.Kelvin, t.Label))
	}
	if s := b.Color.Shadows; s != nil {
		add("shadow_tone", s.Hex+" · "+s.Label)
	}
	if h := b.Color.Highlights; h != nil {
		add("highlight_tone", h.Hex+" · "+h.Label)
	}
	if c := b.Color.Contrast; c != nil {
		add("contrast_ratio", c.Ratio+" · "+c.Label)
	}
	if f := b.Lens.FocalLength; f != nil {
		add("focal_length", f.MM)
	}
	if a := b.Lens.Aperture; a != nil {
		add("aperture", a.FStop+" · "+a.DepthOfField)
	}
	add("light_source", b.Lighting.Source)
	add("light_direction", b.Lighting.Direction)
	add("light_quality", b.Lighting.Quality)
	add("time_of_day", b.Lighting.TimeOfDay)
	add("weather", b.Lighting.Weather)
	add("skin_anchor", b.Skin.Tone+" · "+b.Skin.Rendering)

	return items
}

// humanizeLabel turns a snake_case key into a title-cased UI label.
func humanizeLabel(key string) string {
	return anchorTitleCaser.String(strings.ReplaceAll(key, "_", " "))
}
