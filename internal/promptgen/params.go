package promptgen

import (
	"lookbook/internal/domain"
)

// UniverseParams is the flat parameter set every builder in this package
// consumes. All fields are enumerated strings looked up in the dictionaries;
// an absent or unknown value never fails a build. Soft narrative skips the
// clause, strict mode substitutes the documented fallback.
type UniverseParams struct {
	ShootingApproach string `json:"shootingApproach"`
	CameraClass      string `json:"cameraClass"`
	ExposureIntent   string `json:"exposureIntent"`
	ShutterIntent    string `json:"shutterIntent"`
	ProcessingIntent string `json:"processingIntent"`

	WhiteBalance  string `json:"whiteBalance"`
	ColorShift    string `json:"colorShift"`
	Saturation    string `json:"saturation"`
	Contrast      string `json:"contrast"`
	ShadowTone    string `json:"shadowTone"`
	HighlightTone string `json:"highlightTone"`

	FocalRange       string `json:"focalRange"`
	ApertureIntent   string `json:"apertureIntent"`
	Proximity        string `json:"proximity"`
	DistortionPolicy string `json:"distortionPolicy"`

	EmotionalVector   string `json:"emotionalVector"`
	Energy            string `json:"energy"`
	Spontaneity       string `json:"spontaneity"`
	Focus             string `json:"focus"`
	ProductDiscipline string `json:"productDiscipline"`

	LightSource    string `json:"lightSource"`
	LightDirection string `json:"lightDirection"`
	LightQuality   string `json:"lightQuality"`
	TimeOfDay      string `json:"timeOfDay"`
	Weather        string `json:"weather"`

	Era             string `json:"era"`
	Decade          string `json:"decade"`
	CulturalContext string `json:"culturalContext"`

	AntiAiLevel string   `json:"antiAiLevel"`
	AntiAiFlags []string `json:"antiAiFlags"`
}

// Documented fallback defaults. Normalize applies them when an editor saves a
// partially filled universe; the builders themselves stay total without them.
const (
	DefaultShootingApproach = "editorial"
	DefaultCameraClass      = "film_35mm"
	DefaultExposureIntent   = "balanced"
	DefaultShutterIntent    = "natural"
	DefaultProcessingIntent = "filmic"
	DefaultWhiteBalance     = "neutral"
	DefaultSaturation       = "natural"
	DefaultContrast         = "medium"
	DefaultFocalRange       = "standard"
	DefaultApertureIntent   = "balanced"
	DefaultProximity        = "conversational"
	DefaultDistortion       = "natural_edges"
	DefaultEnergy           = "calm"
	DefaultLightSource      = "natural_window"
	DefaultLightDirection   = "three_quarter"
	DefaultLightQuality     = "soft"
	DefaultTimeOfDay        = "golden_hour"
	DefaultWeather          = "clear"
	DefaultEra              = "contemporary"
	DefaultAntiAiLevel      = "medium"
)

// Normalize fills empty fields with their documented defaults. Fields with no
// default (color shift, tones, mood vector, decade, context) stay empty and
// the builders treat them as "not specified".
func (p *UniverseParams) Normalize() {
	if p == nil {
		return
	}
	setDefault(&p.ShootingApproach, DefaultShootingApproach)
	setDefault(&p.CameraClass, DefaultCameraClass)
	setDefault(&p.ExposureIntent, DefaultExposureIntent)
	setDefault(&p.ShutterIntent, DefaultShutterIntent)
	setDefault(&p.ProcessingIntent, DefaultProcessingIntent)
	setDefault(&p.WhiteBalance, DefaultWhiteBalance)
	setDefault(&p.Saturation, DefaultSaturation)
	setDefault(&p.Contrast, DefaultContrast)
	setDefault(&p.FocalRange, DefaultFocalRange)
	setDefault(&p.ApertureIntent, DefaultApertureIntent)
	setDefault(&p.Proximity, DefaultProximity)
	setDefault(&p.DistortionPolicy, DefaultDistortion)
	setDefault(&p.Energy, DefaultEnergy)
	setDefault(&p.LightSource, DefaultLightSource)
	setDefault(&p.LightDirection, DefaultLightDirection)
	setDefault(&p.LightQuality, DefaultLightQuality)
	setDefault(&p.TimeOfDay, DefaultTimeOfDay)
	setDefault(&p.Weather, DefaultWeather)
	setDefault(&p.Era, DefaultEra)
	setDefault(&p.AntiAiLevel, DefaultAntiAiLevel)
}

func setDefault(field *string, fallback string) {
	if *field == "" {
		*field = fallback
	}
}

// ParamsFromUniverse flattens the universe's technical sub-objects into the
// parameter set the builders consume.
func ParamsFromUniverse(u *domain.Universe) UniverseParams {
	if u == nil {
		return UniverseParams{}
	}
	return UniverseParams{
		ShootingApproach: u.Capture.ShootingApproach,
		CameraClass:      u.Capture.CameraClass,
		ExposureIntent:   u.Capture.ExposureIntent,
		ShutterIntent:    u.Capture.ShutterIntent,
		ProcessingIntent: u.PostProcess.ProcessingIntent,

		WhiteBalance:  u.Color.WhiteBalance,
		ColorShift:    u.Color.ColorShift,
		Saturation:    u.Color.Saturation,
		Contrast:      u.Color.Contrast,
		ShadowTone:    u.Color.ShadowTone,
		HighlightTone: u.Color.HighlightTone,

		FocalRange:       u.Optical.FocalRange,
		ApertureIntent:   u.Optical.ApertureIntent,
		Proximity:        u.Optical.Proximity,
		DistortionPolicy: u.Optical.DistortionPolicy,

		EmotionalVector:   u.Mood.EmotionalVector,
		Energy:            u.Mood.Energy,
		Spontaneity:       u.Mood.Spontaneity,
		Focus:             u.Mood.Focus,
		ProductDiscipline: u.Mood.ProductDiscipline,

		LightSource:    u.Light.Source,
		LightDirection: u.Light.Direction,
		LightQuality:   u.Light.Quality,
		TimeOfDay:      u.Light.TimeOfDay,
		Weather:        u.Light.Weather,

		Era:             u.Era.Era,
		Decade:          u.Era.Decade,
		CulturalContext: u.Era.CulturalContext,

		AntiAiLevel: u.AntiAi.Level,
		AntiAiFlags: append([]string(nil), u.AntiAi.Flags...),
	}
}

// NormalizeUniverse applies the documented defaults to a universe in place.
// Called when an editor saves, so stored universes are always complete; the
// builders remain total for universes that predate a default.
func NormalizeUniverse(u *domain.Universe) {
	if u == nil {
		return
	}
	p := ParamsFromUniverse(u)
	p.Normalize()

	u.Capture.ShootingApproach = p.ShootingApproach
	u.Capture.CameraClass = p.CameraClass
	u.Capture.ExposureIntent = p.ExposureIntent
	u.Capture.ShutterIntent = p.ShutterIntent
	u.PostProcess.ProcessingIntent = p.ProcessingIntent
	u.Color.WhiteBalance = p.WhiteBalance
	u.Color.Saturation = p.Saturation
	u.Color.Contrast = p.Contrast
	u.Optical.FocalRange = p.FocalRange
	u.Optical.ApertureIntent = p.ApertureIntent
	u.Optical.Proximity = p.Proximity
	u.Optical.DistortionPolicy = p.DistortionPolicy
	u.Mood.Energy = p.Energy
	u.Light.Source = p.LightSource
	u.Light.Direction = p.LightDirection
	u.Light.Quality = p.LightQuality
	u.Light.TimeOfDay = p.TimeOfDay
	u.Light.Weather = p.Weather
	u.Era.Era = p.Era
	u.AntiAi.Level = p.AntiAiLevel
}

// ApplyVariant overlays a style variant's flat overrides onto a copy of the
// parameters. Unknown keys are ignored so stale variants never break a build.
func ApplyVariant(p UniverseParams, v domain.StyleVariant) UniverseParams {
	for key, value := range v.Overrides {
		if value == "" {
			continue
		}
		switch key {
		case "shootingApproach":
			p.ShootingApproach = value
		case "cameraClass":
			p.CameraClass = value
		case "exposureIntent":
			p.ExposureIntent = value
		case "shutterIntent":
			p.ShutterIntent = value
		case "processingIntent":
			p.ProcessingIntent = value
		case "whiteBalance":
			p.WhiteBalance = value
		case "colorShift":
			p.ColorShift = value
		case "saturation":
			p.Saturation = value
		case "contrast":
			p.Contrast = value
		case "shadowTone":
			p.ShadowTone = value
		case "highlightTone":
			p.HighlightTone = value
		case "focalRange":
			p.FocalRange = value
		case "apertureIntent":
			p.ApertureIntent = value
		case "proximity":
			p.Proximity = value
		case "distortionPolicy":
			p.DistortionPolicy = value
		case "emotionalVector":
			p.EmotionalVector = value
		case "energy":
			p.Energy = value
		case "spontaneity":
			p.Spontaneity = value
		case "focus":
			p.Focus = value
		case "productDiscipline":
			p.ProductDiscipline = value
		case "lightSource":
			p.LightSource = value
		case "lightDirection":
			p.LightDirection = value
		case "lightQuality":
			p.LightQuality = value
		case "timeOfDay":
			p.TimeOfDay = value
		case "weather":
			p.Weather = value
		case "era":
			p.Era = value
		case "decade":
			p.Decade = value
		case "culturalContext":
			p.CulturalContext = value
		case "antiAiLevel":
			p.AntiAiLevel = value
		}
	}
	return p
}
