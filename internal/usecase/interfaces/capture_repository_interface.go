package interfaces

import (
	"context"

	"meditrack_pro/internal/domain/entities"
)

// ICaptureRepository stores camera captures. List returns the newest first.
type ICaptureRepository interface {
	Create(ctx context.Context, c entities.Capture) (entities.Capture, error)
	GetByID(ctx context.Context, id string) (entities.Capture, error)
	List(ctx context.Context) ([]entities.Capture, error)
}
