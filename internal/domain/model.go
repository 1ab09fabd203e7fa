package domain

import "time"

// RefImage is a pre-loaded reference image handed to the image provider.
type RefImage struct {
	MimeType string `json:"mimeType"`
	Base64   string `json:"base64"`
}

// Model is a saved model identity: the person whose face and build every
// generated frame must preserve.
type Model struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Images      []RefImage `json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LookItem is one garment or accessory inside a look.
type LookItem struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// Look is a saved outfit: the clothing and accessories the model wears,
// with reference images the generated frames must match exactly.
type Look struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Items       []LookItem `json:"items"`
	Images      []RefImage `json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
