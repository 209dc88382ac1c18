package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/datauri"
	"meditrack_pro/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCapture  = errors.New("invalid capture")
	ErrCaptureNotFound = errors.New("capture not found")
)

type ICaptureUseCase interface {
	Save(ctx context.Context, dataURI string) (entities.Capture, error)
	List(ctx context.Context) ([]entities.Capture, error)
}

type CaptureUseCase struct {
	repo  interfaces.ICaptureRepository
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

var _ ICaptureUseCase = (*CaptureUseCase)(nil)

func NewCaptureUseCase(repo interfaces.ICaptureRepository, log *zap.Logger) *CaptureUseCase {
	return &CaptureUseCase{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		log:   logger.Component(log, "capture.usecase"),
	}
}

// Save validates a base64 PNG/JPEG data URI before storing it.
func (u *CaptureUseCase) Save(ctx context.Context, dataURI string) (entities.Capture, error) {
	img, err := datauri.DecodeImage(dataURI)
	if err != nil {
		u.log.Info("rejecting capture", zap.Error(err))
		return entities.Capture{}, fmt.Errorf("%w: %v", ErrInvalidCapture, err)
	}

	c := entities.Capture{
		ID:         u.newID(),
		MimeType:   img.MimeType,
		DataURI:    strings.TrimSpace(dataURI),
		SizeBytes:  len(img.Data),
		CapturedAt: u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("capture create failed", zap.Error(err))
		return entities.Capture{}, err
	}
	u.log.Info("capture stored", zap.String("capture_id", created.ID), zap.Int("size_bytes", created.SizeBytes))
	return created, nil
}

func (u *CaptureUseCase) List(ctx context.Context) ([]entities.Capture, error) {
	return u.repo.List(ctx)
}
