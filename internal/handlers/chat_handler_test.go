package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"monevo/internal/chat"
	apperrors "monevo/internal/errors"
	"monevo/internal/models"
	"monevo/internal/services"
)

func setupChatRouter(handler *ChatHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.POST("/chat", handler.ProcessMessage)
	return r
}

func TestChatHandler_ProcessMessage(t *testing.T) {
	t.Run("returns reply for recognized intent", func(t *testing.T) {
		movements := &mockMovementService{
			recordExpenseFn: func(userID, category string, amount float64, memo string) (bool, string, error) {
				if category != "moto" || amount != 3000 || memo != "gasolina" {
					t.Errorf("unexpected args: %s %f %s", category, amount, memo)
				}
				return true, "💸 Gasto registrado: $3,000 en moto - gasolina", nil
			},
		}
		facade := services.NewFacadeWith(&mockBudgetService{}, movements)
		handler := NewChatHandler(chat.NewProcessor(facade, nil))
		r := setupChatRouter(handler)

		rec := doRequest(r, "POST", "/chat", `{"text":"Gasté 3000 de moto por gasolina"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["reply"] != "💸 Gasto registrado: $3,000 en moto - gasolina" {
			t.Errorf("unexpected reply %v", result["reply"])
		}
	})

	t.Run("returns help for unrecognized text", func(t *testing.T) {
		facade := services.NewFacadeWith(&mockBudgetService{}, &mockMovementService{})
		handler := NewChatHandler(chat.NewProcessor(facade, nil))
		r := setupChatRouter(handler)

		rec := doRequest(r, "POST", "/chat", `{"text":"hola que tal"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if !strings.HasPrefix(result["reply"].(string), "❌ No entendí el mensaje.") {
			t.Errorf("expected help message, got %v", result["reply"])
		}
	})

	t.Run("returns 400 on missing text", func(t *testing.T) {
		facade := services.NewFacadeWith(&mockBudgetService{}, &mockMovementService{})
		handler := NewChatHandler(chat.NewProcessor(facade, nil))
		r := setupChatRouter(handler)

		rec := doRequest(r, "POST", "/chat", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 500 with generic apology on storage fault", func(t *testing.T) {
		budgets := &mockBudgetService{
			summaryFn: func(string) ([]models.BudgetSummary, error) {
				return nil, apperrors.Wrap(apperrors.ErrStorage, errors.New("connection reset"))
			},
		}
		facade := services.NewFacadeWith(budgets, &mockMovementService{})
		handler := NewChatHandler(chat.NewProcessor(facade, nil))
		r := setupChatRouter(handler)

		rec := doRequest(r, "POST", "/chat", `{"text":"Ver presupuesto moto"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_ERROR")
	})
}
