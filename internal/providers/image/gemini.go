package image

import (
	"context"

	"lookbook/internal/providers/genai"
)

type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	refs := make([]genai.Reference, 0, len(req.References))
	for _, ref := range req.References {
		refs = append(refs, genai.Reference{MimeType: ref.MimeType, Data: ref.DataBase64})
	}
	asset, err := g.client.GenerateFrame(ctx, genai.FrameRequest{
		Prompt:      req.Prompt,
		References:  refs,
		AspectRatio: req.AspectRatio,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return nil, err
	}
	return &Asset{
		Format: asset.Format,
		Width:  asset.Width,
		Height: asset.Height,
		Data:   asset.Data,
	}, nil
}

var _ Generator = (*GeminiGenerator)(nil)
