package image

import "context"

// Reference is a base64 image pinned into the generation request so identity
// and clothing stay constant across frames.
type Reference struct {
	MimeType   string
	DataBase64 string
}

// GenerateRequest asks for a single rendered frame.
type GenerateRequest struct {
	Prompt      string
	References  []Reference
	AspectRatio string
	RequestID   string
}

// Asset is one generated frame.
type Asset struct {
	Format string
	Width  int
	Height int
	Data   []byte
}

// Generator renders frames from assembled prompts.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Asset, error)
}
