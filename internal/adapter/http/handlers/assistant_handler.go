package handlers

import (
	"errors"
	"net/http"

	request "meditrack_pro/internal/adapter/http/dto/request"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Message is required", http.StatusBadRequest)

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// Chat answers 200 with a fallback reply when the assistant is unreachable.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.Chat(c.Request.Context(), payload.Message)
	if err != nil {
		appErr := internalError(err)
		if errors.Is(err, usecase.ErrEmptyChatMessage) {
			appErr = errInvalidChatPayload
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, reply)
}
