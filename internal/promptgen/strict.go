package promptgen

import (
	"fmt"
	"strings"
)

// Strict mode restates every parameter as a directive bullet with a hard
// fallback: a recognized section never loses a constraint line just because
// the parameter was left empty. The image model gets the same instruction
// shape every time.

// Hardcoded strict-mode fallbacks, used when a parameter is absent or
// unrecognized.
const (
	fallbackAperture     = "f/5.6-f/8"
	fallbackFocalLength  = "50mm"
	fallbackKelvin       = 5500
	fallbackShadowHex    = "#3C3C40"
	fallbackHighlightHex = "#F4F4F1"
	fallbackContrast     = "4:1"
)

var baseForbidden = []string{
	"Split frames, collages, diptychs, or duplicated subjects",
	"Watermarks, logos, or overlaid text",
	"HDR halos and over-processed tone mapping",
	"Oversaturated neon color grading",
	"Extra limbs, warped hands, or melted anatomy",
}

// Appended for anti-AI levels medium and high.
var realismForbidden = []string{
	"Plastic, poreless skin",
	"Perfect bilateral symmetry in face or pose",
}

// Appended for anti-AI level high only.
var highForbidden = []string{
	"Studio-perfect cleanliness on streetwear or outdoor scenes",
	"Identical fabric folds repeated across frames",
}

// Appended for the contemporary era: retro texture would read as a grading
// mistake there. Kept as data so the era coupling stays in one place.
var contemporaryForbidden = []string{
	"Film grain overlays or vintage color casts",
}

// BuildStrictUniverseNarrative renders the directive-bullet form of the
// universe. Total for any parameter set including the zero value.
func BuildStrictUniverseNarrative(p UniverseParams) string {
	sections := []string{
		strictConstraintsSection(p),
		strictAnchorsSection(p),
		strictLightingSection(p),
		strictForbiddenSection(p),
		strictApproachSection(p),
	}
	if realism := strictRealismSection(p); realism != "" {
		sections = append(sections, realism)
	}
	return strings.Join(sections, "\n\n")
}

func strictConstraintsSection(p UniverseParams) string {
	exposure := exposureDict[p.ExposureIntent]
	if exposure == "" {
		exposure = "exposure balanced for the midtones"
	}

	contrast := fallbackContrast
	if spec, ok := contrastDict[p.Contrast]; ok {
		contrast = spec.Ratio + " (" + spec.Label + ")"
	}

	aperture := fallbackAperture + ", moderate depth"
	if spec, ok := apertureDict[p.ApertureIntent]; ok {
		aperture = spec.FStop + ", " + spec.DepthOfField
	}

	saturation := saturationDict[p.Saturation]
	if saturation == "" {
		saturation = "saturation stays natural"
	}

	_, skin := skinAnchorFor(p.WhiteBalance)

	focal := fallbackFocalLength
	if spec, ok := focalRangeDict[p.FocalRange]; ok {
		focal = spec.MM
	}

	proximity := proximityDict[p.Proximity]
	if proximity == "" {
		proximity = "a conversational working distance"
	}

	motion := shutterDict[p.ShutterIntent]
	if motion == "" {
		motion = "natural handheld micro-motion, no deliberate blur"
	}

	distortion := distortionDict[p.DistortionPolicy]
	if distortion == "" {
		distortion = "verticals kept true, no perspective warping"
	}

	return section("ABSOLUTE CONSTRAINTS",
		"Exposure: "+exposure,
		"Contrast: "+contrast,
		"Depth of field: "+aperture,
		"Saturation: "+saturation,
		"Skin rendering: "+skin,
		"Focal length: "+focal,
		"Proximity: "+proximity,
		"Motion: "+motion,
		"Distortion: "+distortion,
	)
}

func strictAnchorsSection(p UniverseParams) string {
	kelvin := fallbackKelvin
	tempLabel := "neutral daylight"
	if spec, ok := whiteBalanceDict[p.WhiteBalance]; ok {
		kelvin = spec.Kelvin
		tempLabel = spec.Label
	}

	shadowHex, shadowLabel := fallbackShadowHex, "neutral shadows"
	if spec, ok := shadowToneDict[p.ShadowTone]; ok {
		shadowHex, shadowLabel = spec.Hex, spec.Label
	}

	highlightHex, highlightLabel := fallbackHighlightHex, "neutral highlights"
	if spec, ok := highlightToneDict[p.HighlightTone]; ok {
		highlightHex, highlightLabel = spec.Hex, spec.Label
	}

	camera := cameraClassDict[p.CameraClass]
	if camera == "" {
		camera = "rendered like 35mm film, organic and unclinical"
	}

	processing := processingDict[p.ProcessingIntent]
	if processing == "" {
		processing = "a filmic grade with soft curve shoulders"
	}

	era := eraDict[p.Era]
	if era == "" {
		era = "firmly contemporary"
	}

	context := paragraph(decadeDict[p.Decade], culturalContextDict[p.CulturalContext])
	if context == "" {
		context = "No specific decade or cultural context."
	}

	return section("VISUAL ANCHORS",
		fmt.Sprintf("Color temperature: %dK (%s)", kelvin, tempLabel),
		"Shadow tone: "+shadowHex+" ("+shadowLabel+")",
		"Highlight tone: "+highlightHex+" ("+highlightLabel+")",
		"Camera rendering: "+camera,
		"Processing: "+processing,
		"Era: "+era,
		"Context: "+context,
	)
}

func strictLightingSection(p UniverseParams) string {
	source := lightSourceDict[p.LightSource]
	if source == "" {
		source = "window light only"
	}
	direction := lightDirectionDict[p.LightDirection]
	if direction == "" {
		direction = "classic three-quarter light"
	}
	quality := lightQualityDict[p.LightQuality]
	if quality == "" {
		quality = "soft wrapped light"
	}
	timeOfDay := timeOfDayDict[p.TimeOfDay]
	if timeOfDay == "" {
		timeOfDay = "golden hour, long warm shadows"
	}
	weather := weatherDict[p.Weather]
	if weather == "" {
		weather = "clear weather"
	}

	return section("LIGHTING (LOCKED ACROSS ALL FRAMES)",
		"Source: "+source,
		"Direction: "+direction,
		"Quality: "+quality,
		"Time of day: "+timeOfDay,
		"Weather: "+weather,
	)
}

func strictForbiddenSection(p UniverseParams) string {
	items := append([]string(nil), baseForbidden...)
	switch p.AntiAiLevel {
	case "medium":
		items = append(items, realismForbidden...)
	case "high":
		items = append(items, realismForbidden...)
		items = append(items, highForbidden...)
	}
	if p.Era == "contemporary" {
		items = append(items, contemporaryForbidden...)
	}
	return section("FORBIDDEN", items...)
}

func strictApproachSection(p UniverseParams) string {
	text := paragraph(
		shootingApproachDict[p.ShootingApproach],
		energyDict[p.Energy],
		spontaneityDict[p.Spontaneity],
		productDisciplineDict[p.ProductDiscipline],
		emotionalVectorDict[p.EmotionalVector],
		focusDict[p.Focus],
	)
	if text == "" {
		text = "Shot like a magazine editorial. Calm energy, every pose deliberate."
	}
	return "APPROACH & ENERGY:\n" + text
}

// strictRealismSection is present only when the anti-AI level is on; when the
// level is off the section is omitted entirely, not left empty.
func strictRealismSection(p UniverseParams) string {
	narrative := BuildAntiAiNarrative(p)
	if narrative == "" {
		return ""
	}
	return "REALISM (Anti-AI):\n" + narrative
}

func section(header string, bullets ...string) string {
	lines := make([]string, 0, len(bullets)+1)
	lines = append(lines, header+":")
	for _, b := range bullets {
		lines = append(lines, "- "+b)
	}
	return strings.Join(lines, "\n")
}
