package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monevo/internal/errors"
	"monevo/internal/models"
	"monevo/internal/services"
)

// MovementHandler handles movement-related requests.
type MovementHandler struct {
	facade *services.Facade
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(facade *services.Facade) *MovementHandler {
	return &MovementHandler{facade: facade}
}

// RecordMovementRequest represents the request payload for recording an
// expense or income.
type RecordMovementRequest struct {
	Category string  `json:"category" binding:"required"`
	Kind     string  `json:"kind" binding:"required,movement_kind"`
	Amount   float64 `json:"amount" binding:"required"`
	Memo     string  `json:"memo"`
}

// RecordMovement handles appending a movement against a budget's category.
func (h *MovementHandler) RecordMovement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var ok bool
	var msg string
	if models.MovementKind(req.Kind) == models.MovementIncome {
		ok, msg, err = h.facade.RecordIncome(userID, req.Category, req.Amount, req.Memo)
	} else {
		ok, msg, err = h.facade.RecordExpense(userID, req.Category, req.Amount, req.Memo)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !ok {
		respondWithResult(c, false, msg)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": msg})
}

// GetHistory handles listing a category's movements, newest first.
func (h *MovementHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ok, msg, movements, err := h.facade.History(userID, c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !ok {
		respondWithResult(c, false, msg)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msg, "movements": movements})
}
