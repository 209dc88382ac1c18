package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

// ITextGenerator is the generative-AI collaborator (Gemini).
type ITextGenerator interface {
	Generate(ctx context.Context, req entities.TextGenerationRequest) (entities.TextGenerationResponse, error)
}
