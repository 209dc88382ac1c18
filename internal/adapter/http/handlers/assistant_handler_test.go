package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meditrack_pro/internal/adapter/http/handlers/mocks"
	"meditrack_pro/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssistantHandler_Chat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/v1/assistant/chat", h.Chat)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reply with sources", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/v1/assistant/chat", h.Chat)

		uc.EXPECT().Chat(gomock.Any(), "Qual a dose usual de dipirona?").Return(entities.ChatReply{
			Text:    "Depende do paciente.",
			Sources: []entities.Source{{Title: "Bula", URI: "https://example.org/bula"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assistant/chat", bytes.NewBufferString(`{"message":"Qual a dose usual de dipirona?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body entities.ChatReply
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Text != "Depende do paciente." || len(body.Sources) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
