package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"meditrack_pro/internal/domain/entities"
	mock_interfaces "meditrack_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCaptureUseCase_Save(t *testing.T) {
	t.Run("rejects non image", func(t *testing.T) {
		uc := NewCaptureUseCase(nil, nil)
		_, err := uc.Save(context.Background(), "data:text/plain;base64,aGk=")
		if !errors.Is(err, ErrInvalidCapture) {
			t.Fatalf("expected ErrInvalidCapture, got %v", err)
		}
	})

	t.Run("stores capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaptureRepository(ctrl)
		uc := NewCaptureUseCase(repo, nil)
		uc.now = func() time.Time { return fixedNow }
		uc.newID = func() string { return "cap-1" }

		uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg!"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Capture) (entities.Capture, error) { return c, nil })

		got, err := uc.Save(context.Background(), uri)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "cap-1" || got.MimeType != "image/jpeg" || got.SizeBytes != 5 || !got.CapturedAt.Equal(fixedNow) {
			t.Fatalf("unexpected capture: %+v", got)
		}
	})
}
