package promptgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The narrative composer turns parameter values into prose paragraphs, one
// per topic. Each builder tolerates any subset of its inputs being absent: a
// dictionary miss skips the clause, it never emits an empty fragment.

// paragraph joins non-empty clauses into one sentence-per-clause paragraph,
// capitalizing each sentence. Clauses arrive without trailing periods, so no
// cleanup pass is ever needed afterwards.
func paragraph(clauses ...string) string {
	kept := make([]string, 0, len(clauses))
	for _, c := range clauses {
		c = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(c), "."))
		if c != "" {
			kept = append(kept, capitalize(c))
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// capitalize upper-cases the first rune. Rune-aware: clauses may start with
// accented vocabulary from user-supplied texture or context fields.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// BuildTechNarrative covers approach, camera, exposure, shutter, processing.
func BuildTechNarrative(p UniverseParams) string {
	return paragraph(
		shootingApproachDict[p.ShootingApproach],
		cameraClassDict[p.CameraClass],
		exposureDict[p.ExposureIntent],
		shutterDict[p.ShutterIntent],
		processingDict[p.ProcessingIntent],
	)
}

// BuildEraNarrative covers era, decade, and cultural context.
func BuildEraNarrative(p UniverseParams) string {
	return paragraph(
		eraDict[p.Era],
		decadeDict[p.Decade],
		culturalContextDict[p.CulturalContext],
	)
}

// BuildColorNarrative covers temperature, grading, saturation, and tonality.
func BuildColorNarrative(p UniverseParams) string {
	var temp string
	if spec, ok := whiteBalanceDict[p.WhiteBalance]; ok {
		temp = spec.Narrative
	}
	var shadows, highlights string
	if spec, ok := shadowToneDict[p.ShadowTone]; ok {
		shadows = spec.Narrative
	}
	if spec, ok := highlightToneDict[p.HighlightTone]; ok {
		highlights = spec.Narrative
	}
	var contrast string
	if spec, ok := contrastDict[p.Contrast]; ok {
		contrast = spec.Narrative
	}
	return paragraph(
		temp,
		colorShiftDict[p.ColorShift],
		saturationDict[p.Saturation],
		contrast,
		shadows,
		highlights,
	)
}

// BuildLensNarrative covers focal range, aperture, proximity, distortion.
func BuildLensNarrative(p UniverseParams) string {
	var focal, aperture string
	if spec, ok := focalRangeDict[p.FocalRange]; ok {
		focal = spec.Narrative
	}
	if spec, ok := apertureDict[p.ApertureIntent]; ok {
		aperture = spec.Narrative
	}
	return paragraph(
		focal,
		aperture,
		proximityDict[p.Proximity],
		distortionDict[p.DistortionPolicy],
	)
}

// BuildMoodNarrative covers the emotional register of the shoot.
func BuildMoodNarrative(p UniverseParams) string {
	return paragraph(
		emotionalVectorDict[p.EmotionalVector],
		energyDict[p.Energy],
		spontaneityDict[p.Spontaneity],
		focusDict[p.Focus],
		productDisciplineDict[p.ProductDiscipline],
	)
}

// BuildAntiAiNarrative covers the realism directives. Level "off" (or unset)
// suppresses the topic entirely and returns the empty string. Flag clauses
// are appended only at medium and high.
func BuildAntiAiNarrative(p UniverseParams) string {
	level := p.AntiAiLevel
	if level == "" || level == "off" {
		return ""
	}
	base, ok := antiAiLevelDict[level]
	if !ok {
		return ""
	}
	clauses := []string{base}
	if level == "medium" || level == "high" {
		for _, flag := range p.AntiAiFlags {
			if desc, found := antiAiFlagDict[flag]; found {
				clauses = append(clauses, desc)
			}
		}
	}
	return paragraph(clauses...)
}

// BuildUnifiedUniverseNarrative is the soft assembly mode: the six topic
// paragraphs joined as flowing prose with blank-line separation.
func BuildUnifiedUniverseNarrative(p UniverseParams) string {
	paragraphs := []string{
		BuildTechNarrative(p),
		BuildEraNarrative(p),
		BuildColorNarrative(p),
		BuildLensNarrative(p),
		BuildMoodNarrative(p),
		BuildAntiAiNarrative(p),
	}
	kept := paragraphs[:0]
	for _, para := range paragraphs {
		if para != "" {
			kept = append(kept, para)
		}
	}
	return strings.Join(kept, "\n\n")
}

// Narrative assembly modes. The mode is always an explicit caller choice,
// never inferred from the parameters.
const (
	ModeSoft   = "soft"
	ModeStrict = "strict"
)

// BuildUniverseNarrativeByMode dispatches on the explicit mode flag. Unknown
// modes fall back to soft prose. Total for any parameter set including the
// zero value.
func BuildUniverseNarrativeByMode(p UniverseParams, mode string) string {
	if mode == ModeStrict {
		return BuildStrictUniverseNarrative(p)
	}
	return BuildUnifiedUniverseNarrative(p)
}
