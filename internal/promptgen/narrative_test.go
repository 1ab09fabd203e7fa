package promptgen

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParagraphJoinsAndCapitalizes(t *testing.T) {
	got := paragraph("", "shadows lean cool teal rather than neutral black", " ", "saturation stays natural")
	want := "Shadows lean cool teal rather than neutral black. Saturation stays natural."
	if got != want {
		t.Fatalf("paragraph = %q, want %q", got, want)
	}
	if strings.Contains(got, "..") || strings.Contains(got, ". .") {
		t.Fatalf("paragraph produced doubled separators: %q", got)
	}
}

func TestParagraphCapitalizesMultiByteLeadingRune(t *testing.T) {
	got := paragraph("élégance in every fold", "fabric kept honest")
	want := "Élégance in every fold. Fabric kept honest."
	if got != want {
		t.Fatalf("paragraph = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("paragraph produced invalid UTF-8: %q", got)
	}
}

func TestParagraphEmptyInput(t *testing.T) {
	if got := paragraph("", "  ", ""); got != "" {
		t.Fatalf("paragraph of empty clauses = %q, want empty", got)
	}
}

func TestNarrativeBuildersTolerateEmptyParams(t *testing.T) {
	p := UniverseParams{}
	builders := map[string]func(UniverseParams) string{
		"tech":  BuildTechNarrative,
		"era":   BuildEraNarrative,
		"color": BuildColorNarrative,
		"lens":  BuildLensNarrative,
		"mood":  BuildMoodNarrative,
		"anti":  BuildAntiAiNarrative,
	}
	for name, build := range builders {
		if got := build(p); got != "" {
			t.Fatalf("%s narrative on empty params = %q, want empty", name, got)
		}
	}
}

func TestBuildUniverseNarrativeByModeTotal(t *testing.T) {
	for _, mode := range []string{ModeSoft, ModeStrict, "bogus", ""} {
		got := BuildUniverseNarrativeByMode(UniverseParams{}, mode)
		if mode == ModeStrict && got == "" {
			t.Fatalf("strict mode on empty params should still emit constraints")
		}
	}
}

func TestModeIndependenceOnWhiteBalance(t *testing.T) {
	p := UniverseParams{WhiteBalance: "cool_daylight"}

	strict := BuildStrictUniverseNarrative(p)
	if !strings.Contains(strict, "Color temperature: 6500K") {
		t.Fatalf("strict mode missing color temperature line:\n%s", strict)
	}
	if soft := BuildColorNarrative(p); soft == "" {
		t.Fatalf("soft color paragraph empty while whiteBalance is set")
	}
}

func TestStrictModeFallbacks(t *testing.T) {
	strict := BuildStrictUniverseNarrative(UniverseParams{ApertureIntent: "pinhole"})

	checks := []string{
		"ABSOLUTE CONSTRAINTS:",
		"Depth of field: f/5.6-f/8",
		"Color temperature: 5500K",
		"Shadow tone: #3C3C40",
		"LIGHTING (LOCKED ACROSS ALL FRAMES):",
		"FORBIDDEN:",
		"APPROACH & ENERGY:",
	}
	for _, expect := range checks {
		if !strings.Contains(strict, expect) {
			t.Fatalf("strict output missing %q:\n%s", expect, strict)
		}
	}
}

func TestAntiAiNarrativeSuppressedWhenOff(t *testing.T) {
	p := UniverseParams{AntiAiLevel: "off", AntiAiFlags: []string{"visible_pores"}}

	if got := BuildAntiAiNarrative(p); got != "" {
		t.Fatalf("anti-AI narrative at level off = %q, want empty", got)
	}
	strict := BuildStrictUniverseNarrative(p)
	if strings.Contains(strict, "REALISM (Anti-AI):") {
		t.Fatalf("strict output contains realism section at level off:\n%s", strict)
	}
	soft := BuildUnifiedUniverseNarrative(p)
	if strings.Contains(soft, "imperfection") {
		t.Fatalf("soft output leaked anti-AI prose at level off:\n%s", soft)
	}
}

func TestAntiAiFlagsAppendedOnlyAtMediumAndHigh(t *testing.T) {
	flags := []string{"flyaway_hairs"}

	low := BuildAntiAiNarrative(UniverseParams{AntiAiLevel: "low", AntiAiFlags: flags})
	if strings.Contains(low, "flyaway") {
		t.Fatalf("low level should not append flag clauses: %q", low)
	}
	medium := BuildAntiAiNarrative(UniverseParams{AntiAiLevel: "medium", AntiAiFlags: flags})
	if !strings.Contains(medium, "flyaway") {
		t.Fatalf("medium level should append flag clauses: %q", medium)
	}
	high := BuildAntiAiNarrative(UniverseParams{AntiAiLevel: "high", AntiAiFlags: flags})
	if !strings.Contains(high, "flyaway") {
		t.Fatalf("high level should append flag clauses: %q", high)
	}
}

func TestStrictRealismSectionPresentWhenOn(t *testing.T) {
	strict := BuildStrictUniverseNarrative(UniverseParams{AntiAiLevel: "medium"})
	if !strings.Contains(strict, "REALISM (Anti-AI):") {
		t.Fatalf("strict output missing realism section at level medium:\n%s", strict)
	}
}

func TestForbiddenListEraCoupling(t *testing.T) {
	contemporary := BuildStrictUniverseNarrative(UniverseParams{Era: "contemporary"})
	if !strings.Contains(contemporary, "Film grain overlays or vintage color casts") {
		t.Fatalf("contemporary era should forbid film grain:\n%s", contemporary)
	}
	nineties := BuildStrictUniverseNarrative(UniverseParams{Era: "nineties"})
	if strings.Contains(nineties, "Film grain overlays or vintage color casts") {
		t.Fatalf("non-contemporary era should not forbid film grain:\n%s", nineties)
	}
}

func TestForbiddenListLevelCoupling(t *testing.T) {
	base := BuildStrictUniverseNarrative(UniverseParams{Era: "nineties"})
	if strings.Contains(base, "Plastic, poreless skin") {
		t.Fatalf("forbidden extensions should not appear without medium/high level:\n%s", base)
	}
	high := BuildStrictUniverseNarrative(UniverseParams{Era: "nineties", AntiAiLevel: "high"})
	for _, expect := range []string{"Plastic, poreless skin", "Identical fabric folds repeated across frames"} {
		if !strings.Contains(high, expect) {
			t.Fatalf("high level forbidden list missing %q:\n%s", expect, high)
		}
	}
}

func TestSoftModeJoinsTopicsWithBlankLines(t *testing.T) {
	p := UniverseParams{WhiteBalance: "warm_tungsten", FocalRange: "wide", Era: "seventies"}
	got := BuildUnifiedUniverseNarrative(p)

	if !strings.Contains(got, "\n\n") {
		t.Fatalf("soft mode should separate paragraphs with blank lines: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("soft mode emitted stray blank paragraphs: %q", got)
	}
	for _, expect := range []string{"Tungsten-warm", "Wide focal lengths", "seventies warmth"} {
		if !strings.Contains(got, expect) {
			t.Fatalf("soft narrative missing %q:\n%s", expect, got)
		}
	}
}

func TestNormalizeAppliesDocumentedDefaults(t *testing.T) {
	p := &UniverseParams{WhiteBalance: "warm_golden"}
	p.Normalize()

	if p.WhiteBalance != "warm_golden" {
		t.Fatalf("Normalize overwrote explicit whiteBalance: %q", p.WhiteBalance)
	}
	if p.Contrast != DefaultContrast {
		t.Fatalf("Contrast = %q, want default %q", p.Contrast, DefaultContrast)
	}
	if p.AntiAiLevel != DefaultAntiAiLevel {
		t.Fatalf("AntiAiLevel = %q, want default %q", p.AntiAiLevel, DefaultAntiAiLevel)
	}
	if p.ColorShift != "" {
		t.Fatalf("ColorShift should stay empty (no default), got %q", p.ColorShift)
	}
}
