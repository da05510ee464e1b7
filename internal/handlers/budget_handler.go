package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monevo/internal/errors"
	"monevo/internal/models"
	"monevo/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	facade *services.Facade
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(facade *services.Facade) *BudgetHandler {
	return &BudgetHandler{facade: facade}
}

// CreateBudgetRequest represents the request payload for creating a budget.
// Binding tags gate shape only; the service layer owns the business rules.
type CreateBudgetRequest struct {
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Periodicity string  `json:"periodicity" binding:"omitempty,periodicity"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Periodicity *string `json:"periodicity" binding:"omitempty,periodicity"`
}

// CreateBudget handles the creation of a new budget.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ok, msg, err := h.facade.CreateBudget(userID, req.Category, req.Amount, models.Periodicity(req.Periodicity))
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

// UpdateBudget handles updating an existing budget's amount and periodicity.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var periodicity *models.Periodicity
	if req.Periodicity != nil {
		p := models.Periodicity(*req.Periodicity)
		periodicity = &p
	}

	ok, msg, err := h.facade.UpdateBudget(userID, c.Param("category"), req.Amount, periodicity)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithResult(c, ok, msg)
}

// DeleteBudget handles deleting a budget and all of its movements.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ok, msg, err := h.facade.DeleteBudget(userID, c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithResult(c, ok, msg)
}

// GetSummary handles listing the balance summary of every budget the user owns.
func (h *BudgetHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.facade.Summary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// used_percentage is derived; expose it alongside the summary fields.
	out := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, gin.H{
			"category":        s.Category,
			"initial_amount":  s.InitialAmount,
			"total_expenses":  s.TotalExpenses,
			"total_income":    s.TotalIncome,
			"balance":         s.Balance,
			"periodicity":     s.Periodicity,
			"used_percentage": s.UsedPercentage(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"summaries": out})
}

// BudgetExists handles the existence predicate for one category.
func (h *BudgetHandler) BudgetExists(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	exists, err := h.facade.BudgetExists(userID, c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
