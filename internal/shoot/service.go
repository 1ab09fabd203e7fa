package shoot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"lookbook/internal/domain"
	"lookbook/internal/infra"
	"lookbook/internal/promptgen"
	"lookbook/internal/providers/image"
	"lookbook/internal/store"
)

// Request describes one shoot: which saved entities to load and the per-shoot
// knobs that tune the assembled prompts.
type Request struct {
	UniverseID     string         `json:"universeId"`
	StyleVariantID string         `json:"styleVariantId"`
	Mode           string         `json:"mode"`
	LocationID     string         `json:"locationId"`
	ModelID        string         `json:"modelId"`
	LookID         string         `json:"lookId"`
	Frames         []domain.Frame `json:"frames"`

	ModelCount          int    `json:"modelCount"`
	AspectRatio         string `json:"aspectRatio"`
	PoseAdherence       string `json:"poseAdherence"`
	PosingStyle         string `json:"posingStyle"`
	AntiAiLevelOverride string `json:"antiAiLevelOverride"`
	EmotionID           string `json:"emotionId"`
	CustomEmotion       string `json:"customEmotion"`
	Extra               string `json:"extra"`
}

// GeneratedFrame is one rendered frame plus the exact prompt that produced
// it, kept for audit.
type GeneratedFrame struct {
	Index      int                       `json:"index"`
	FrameLabel string                    `json:"frameLabel"`
	Prompt     promptgen.ShootPromptJSON `json:"prompt"`
	PromptText string                    `json:"promptText"`
	Format     string                    `json:"format"`
	Width      int                       `json:"width"`
	Height     int                       `json:"height"`
	Data       []byte                    `json:"data"`
}

// Result is a completed shoot.
type Result struct {
	ShootID string           `json:"shootId"`
	Frames  []GeneratedFrame `json:"frames"`
}

// Preview is the assembled prompt for one frame, without generation.
type Preview struct {
	FrameLabel string                    `json:"frameLabel"`
	Prompt     promptgen.ShootPromptJSON `json:"prompt"`
	PromptText string                    `json:"promptText"`
}

// Service runs shoots: it loads the saved entities, assembles one prompt per
// frame, and generates frames sequentially with a pacing interval between
// provider calls.
type Service struct {
	store     *store.Store
	generator image.Generator
	logger    *infra.Logger
	limiter   *rate.Limiter
}

// NewService wires a shoot service. pacing is the minimum interval between
// consecutive provider calls within one shoot; zero disables pacing.
func NewService(st *store.Store, gen image.Generator, logger *infra.Logger, pacing time.Duration) *Service {
	limit := rate.Inf
	if pacing > 0 {
		limit = rate.Every(pacing)
	}
	return &Service{
		store:     st,
		generator: gen,
		logger:    logger,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

type entities struct {
	universe *domain.Universe
	location *domain.Location
	model    *domain.Model
	look     *domain.Look
}

// load resolves the referenced entities. A missing id is fine; a dangling id
// surfaces the store's not-found error.
func (s *Service) load(req Request) (entities, error) {
	var e entities
	var err error
	if req.UniverseID != "" {
		if e.universe, err = s.store.GetUniverse(req.UniverseID); err != nil {
			return e, fmt.Errorf("universe %s: %w", req.UniverseID, err)
		}
	}
	if req.LocationID != "" {
		if e.location, err = s.store.GetLocation(req.LocationID); err != nil {
			return e, fmt.Errorf("location %s: %w", req.LocationID, err)
		}
	}
	if req.ModelID != "" {
		if e.model, err = s.store.GetModel(req.ModelID); err != nil {
			return e, fmt.Errorf("model %s: %w", req.ModelID, err)
		}
	}
	if req.LookID != "" {
		if e.look, err = s.store.GetLook(req.LookID); err != nil {
			return e, fmt.Errorf("look %s: %w", req.LookID, err)
		}
	}
	return e, nil
}

func (s *Service) inputsFor(req Request, e entities, frame *domain.Frame) promptgen.ShootInputs {
	return promptgen.ShootInputs{
		Universe:              e.universe,
		StyleVariantID:        req.StyleVariantID,
		Mode:                  req.Mode,
		Location:              e.location,
		Frame:                 frame,
		ModelCount:            req.ModelCount,
		HasModelReferences:    e.model != nil && len(e.model.Images) > 0,
		HasClothingReferences: e.look != nil && len(e.look.Images) > 0,
		PoseAdherence:         req.PoseAdherence,
		PosingStyle:           req.PosingStyle,
		AntiAiLevelOverride:   req.AntiAiLevelOverride,
		EmotionID:             req.EmotionID,
		CustomEmotion:         req.CustomEmotion,
		Extra:                 req.Extra,
	}
}

// PreviewPrompts assembles the prompt for every frame without touching the
// image provider.
func (s *Service) PreviewPrompts(req Request) ([]Preview, error) {
	e, err := s.load(req)
	if err != nil {
		return nil, err
	}

	frames := req.Frames
	if len(frames) == 0 {
		frames = []domain.Frame{{}}
	}

	previews := make([]Preview, 0, len(frames))
	for i := range frames {
		frame := framePtr(req.Frames, i)
		doc := promptgen.BuildShootPromptJSON(s.inputsFor(req, e, frame))
		previews = append(previews, Preview{
			FrameLabel: doc.Frame.Label,
			Prompt:     doc,
			PromptText: promptgen.JSONPromptToText(doc),
		})
	}
	return previews, nil
}

// Generate runs the full shoot: one provider call per frame, sequential, with
// the pacing limiter between calls so consecutive frames never hammer the
// provider.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	e, err := s.load(req)
	if err != nil {
		return nil, err
	}

	frames := req.Frames
	if len(frames) == 0 {
		frames = []domain.Frame{{}}
	}

	shootID := uuid.NewString()
	result := &Result{ShootID: shootID, Frames: make([]GeneratedFrame, 0, len(frames))}

	for i := range frames {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		frame := framePtr(req.Frames, i)
		doc := promptgen.BuildShootPromptJSON(s.inputsFor(req, e, frame))
		text := promptgen.JSONPromptToText(doc)

		asset, err := s.generator.Generate(ctx, image.GenerateRequest{
			Prompt:      text,
			References:  collectReferences(e),
			AspectRatio: req.AspectRatio,
			RequestID:   fmt.Sprintf("%s-%02d", shootID, i+1),
		})
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("shoot_id", shootID).
				Int("frame", i+1).
				Msg("shoot: frame generation failed")
			return nil, fmt.Errorf("frame %d: %w", i+1, domain.ErrProviderFailure)
		}

		result.Frames = append(result.Frames, GeneratedFrame{
			Index:      i + 1,
			FrameLabel: doc.Frame.Label,
			Prompt:     doc,
			PromptText: text,
			Format:     asset.Format,
			Width:      asset.Width,
			Height:     asset.Height,
			Data:       asset.Data,
		})

		s.logger.Info().
			Str("shoot_id", shootID).
			Int("frame", i+1).
			Int("of", len(frames)).
			Str("frame_source", doc.Frame.Source).
			Msg("shoot: frame generated")
	}

	return result, nil
}

// framePtr returns a pointer into the caller's frame list, or nil when the
// shoot runs on synthesized frames (location defaults or the default scene).
func framePtr(frames []domain.Frame, i int) *domain.Frame {
	if i < len(frames) {
		return &frames[i]
	}
	return nil
}

// collectReferences pins identity images first, then clothing. Order matters:
// the provider weighs earlier references more heavily.
func collectReferences(e entities) []image.Reference {
	var refs []image.Reference
	if e.model != nil {
		for _, img := range e.model.Images {
			refs = append(refs, image.Reference{MimeType: img.MimeType, DataBase64: img.Base64})
		}
	}
	if e.look != nil {
		for _, img := range e.look.Images {
			refs = append(refs, image.Reference{MimeType: img.MimeType, DataBase64: img.Base64})
		}
	}
	return refs
}
