package domain

import "time"

// Universe is a saved, reusable bundle of visual-style parameters applied to
// an entire shoot. The technical sub-objects mirror the flat parameter set the
// prompt builders consume; they are grouped here so editors can save and diff
// them per concern.
type Universe struct {
	ID             string        `json:"id"`
	Label          string        `json:"label"`
	Description    string        `json:"description"`
	ArtisticVision string        `json:"artisticVision"`
	Capture        CaptureSpec   `json:"capture"`
	Light          LightSpec     `json:"light"`
	Color          ColorSpec     `json:"color"`
	Texture        TextureSpec   `json:"texture"`
	Optical        OpticalSpec   `json:"optical"`
	Composition    Composition   `json:"composition"`
	PostProcess    PostProcess   `json:"postProcess"`
	Era            EraSpec       `json:"era"`
	Mood           MoodSpec      `json:"mood"`
	AntiAi         AntiAiConfig  `json:"antiAi"`
	Locations      []Location    `json:"locations"`
	StyleVariants  []StyleVariant `json:"styleVariants"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CaptureSpec describes how the virtual photographer works the camera.
type CaptureSpec struct {
	ShootingApproach string `json:"shootingApproach"`
	CameraClass      string `json:"cameraClass"`
	ExposureIntent   string `json:"exposureIntent"`
	ShutterIntent    string `json:"shutterIntent"`
}

// LightSpec pins the light physics for the whole shoot.
type LightSpec struct {
	Source    string `json:"source"`
	Direction string `json:"direction"`
	Quality   string `json:"quality"`
	TimeOfDay string `json:"timeOfDay"`
	Weather   string `json:"weather"`
}

// ColorSpec is the color-science layer: temperature, tonal targets, grading.
type ColorSpec struct {
	WhiteBalance  string `json:"whiteBalance"`
	ColorShift    string `json:"colorShift"`
	Saturation    string `json:"saturation"`
	Contrast      string `json:"contrast"`
	ShadowTone    string `json:"shadowTone"`
	HighlightTone string `json:"highlightTone"`
}

// TextureSpec feeds the textures line of the assembled prompt.
type TextureSpec struct {
	SkinDetail   string `json:"skinDetail"`
	FabricDetail string `json:"fabricDetail"`
	Notes        string `json:"notes"`
}

// OpticalSpec fixes the lens behaviour.
type OpticalSpec struct {
	FocalRange       string `json:"focalRange"`
	ApertureIntent   string `json:"apertureIntent"`
	Proximity        string `json:"proximity"`
	DistortionPolicy string `json:"distortionPolicy"`
}

// Composition carries universe-wide framing preferences. Per-frame framing
// lives on the Frame entity and wins over these.
type Composition struct {
	Framing       string `json:"framing"`
	NegativeSpace string `json:"negativeSpace"`
}

// PostProcess describes the processing/grading intent applied after capture.
type PostProcess struct {
	ProcessingIntent string `json:"processingIntent"`
}

// EraSpec places the shoot in time and cultural context.
type EraSpec struct {
	Era             string `json:"era"`
	Decade          string `json:"decade"`
	CulturalContext string `json:"culturalContext"`
}

// MoodSpec is the emotional register of the shoot.
type MoodSpec struct {
	EmotionalVector   string `json:"emotionalVector"`
	Energy            string `json:"energy"`
	Spontaneity       string `json:"spontaneity"`
	Focus             string `json:"focus"`
	ProductDiscipline string `json:"productDiscipline"`
}

// AntiAiConfig pushes the image model away from telltale AI artifacts.
// Level is one of off, minimal, low, medium, high.
type AntiAiConfig struct {
	Level       string   `json:"level"`
	Flags       []string `json:"flags"`
	CustomRules []string `json:"customRules"`
}

// StyleVariant is a named partial override of the universe parameters,
// keyed by the flat parameter names the prompt builders understand.
type StyleVariant struct {
	ID        string            `json:"id"`
	Label     string            `json:"label"`
	Overrides map[string]string `json:"overrides"`
}

// Touch advances UpdatedAt. The ID is immutable after creation; every other
// mutation must go through Touch so UpdatedAt advances monotonically.
func (u *Universe) Touch(now time.Time) {
	if now.After(u.UpdatedAt) {
		u.UpdatedAt = now
	} else {
		u.UpdatedAt = u.UpdatedAt.Add(time.Millisecond)
	}
}
