package domain

import (
	"strings"
	"time"
)

// Location is a physical or virtual place description, usable standalone from
// the global catalog or embedded inside a Universe.
type Location struct {
	ID              string           `json:"id"`
	Label           string           `json:"label"`
	Category        string           `json:"category"`
	EnvironmentType string           `json:"environmentType"`
	Lighting        LocationLighting `json:"lighting"`
	Surface         string           `json:"surface"`
	Props           []string         `json:"props"`
	// PromptSnippet is derivable from the other fields; stores cache it.
	PromptSnippet      string       `json:"promptSnippet,omitempty"`
	DefaultFrameParams *FrameParams `json:"defaultFrameParams,omitempty"`
	// SourceUniverseID / OriginUniverseID are non-owning back-references:
	// deleting the universe must not cascade-delete the location.
	SourceUniverseID string    `json:"sourceUniverseId,omitempty"`
	OriginUniverseID string    `json:"originUniverseId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// LocationLighting describes the ambient light the place provides on its own.
type LocationLighting struct {
	Type        string `json:"type"`
	TimeOfDay   string `json:"timeOfDay"`
	Description string `json:"description"`
}

// DeriveSnippet builds the one-line scene description injected into prompts
// when no hand-written snippet exists. Pure function of the location fields.
func (l Location) DeriveSnippet() string {
	var parts []string
	if l.Label != "" {
		parts = append(parts, l.Label)
	}
	if l.EnvironmentType != "" {
		parts = append(parts, l.EnvironmentType+" environment")
	}
	if l.Surface != "" {
		parts = append(parts, l.Surface+" underfoot")
	}
	if l.Lighting.Description != "" {
		parts = append(parts, l.Lighting.Description)
	} else if l.Lighting.Type != "" {
		light := l.Lighting.Type + " light"
		if l.Lighting.TimeOfDay != "" {
			light += " at " + l.Lighting.TimeOfDay
		}
		parts = append(parts, light)
	}
	if len(l.Props) > 0 {
		parts = append(parts, "props: "+strings.Join(l.Props, ", "))
	}
	return strings.Join(parts, "; ")
}
