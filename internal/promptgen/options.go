package promptgen

import "sort"

// ParamOption is one selectable value for an enumerated universe parameter.
type ParamOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionCatalog lists every valid value per enumerated parameter, keyed by the
// flat parameter names style variants use for overrides. Built fresh on each
// call; callers may mutate the result.
func OptionCatalog() map[string][]ParamOption {
	catalog := map[string][]ParamOption{
		"shootingApproach":  plainOptions(shootingApproachDict),
		"cameraClass":       plainOptions(cameraClassDict),
		"exposureIntent":    plainOptions(exposureDict),
		"shutterIntent":     plainOptions(shutterDict),
		"processingIntent":  plainOptions(processingDict),
		"colorShift":        plainOptions(colorShiftDict),
		"saturation":        plainOptions(saturationDict),
		"proximity":         plainOptions(proximityDict),
		"distortionPolicy":  plainOptions(distortionDict),
		"emotionalVector":   plainOptions(emotionalVectorDict),
		"energy":            plainOptions(energyDict),
		"spontaneity":       plainOptions(spontaneityDict),
		"focus":             plainOptions(focusDict),
		"productDiscipline": plainOptions(productDisciplineDict),
		"lightSource":       plainOptions(lightSourceDict),
		"lightDirection":    plainOptions(lightDirectionDict),
		"lightQuality":      plainOptions(lightQualityDict),
		"timeOfDay":         plainOptions(timeOfDayDict),
		"weather":           plainOptions(weatherDict),
		"era":               plainOptions(eraDict),
		"decade":            plainOptions(decadeDict),
		"culturalContext":   plainOptions(culturalContextDict),
		"antiAiLevel":       plainOptions(antiAiLevelDict),
		"antiAiFlags":       plainOptions(antiAiFlagDict),
		"emotionPreset":     plainOptions(emotionPresetDict),
	}

	var whiteBalance []ParamOption
	for value, spec := range whiteBalanceDict {
		whiteBalance = append(whiteBalance, ParamOption{Value: value, Label: spec.Label})
	}
	catalog["whiteBalance"] = sorted(whiteBalance)

	var shadows []ParamOption
	for value, spec := range shadowToneDict {
		shadows = append(shadows, ParamOption{Value: value, Label: spec.Label})
	}
	catalog["shadowTone"] = sorted(shadows)

	var highlights []ParamOption
	for value, spec := range highlightToneDict {
		highlights = append(highlights, ParamOption{Value: value, Label: spec.Label})
	}
	catalog["highlightTone"] = sorted(highlights)

	var contrast []ParamOption
	for value, spec := range contrastDict {
		contrast = append(contrast, ParamOption{Value: value, Label: spec.Label})
	}
	catalog["contrast"] = sorted(contrast)

	var focal []ParamOption
	for value, spec := range focalRangeDict {
		focal = append(focal, ParamOption{Value: value, Label: spec.MM})
	}
	catalog["focalRange"] = sorted(focal)

	var aperture []ParamOption
	for value, spec := range apertureDict {
		aperture = append(aperture, ParamOption{Value: value, Label: spec.FStop})
	}
	catalog["apertureIntent"] = sorted(aperture)

	return catalog
}

// plainOptions derives display labels from the value itself; the narrative
// clauses in the plain dictionaries are prompt text, not UI text.
func plainOptions(dict map[string]string) []ParamOption {
	out := make([]ParamOption, 0, len(dict))
	for value := range dict {
		out = append(out, ParamOption{Value: value, Label: humanizeLabel(value)})
	}
	return sorted(out)
}

func sorted(options []ParamOption) []ParamOption {
	sort.Slice(options, func(i, j int) bool { return options[i].Value < options[j].Value })
	return options
}
