package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monevo/internal/chat"
	apperrors "monevo/internal/errors"
)

// ChatHandler handles free-text conversational requests.
type ChatHandler struct {
	processor *chat.Processor
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(processor *chat.Processor) *ChatHandler {
	return &ChatHandler{processor: processor}
}

// ChatRequest represents a free-text message from the user.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ProcessMessage parses the text, executes the recognized intent and
// returns the reply that would be shown in the conversation.
func (h *ChatHandler) ProcessMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, err := h.processor.Process(userID, req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
