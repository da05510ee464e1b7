package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"monevo/internal/models"
	"monevo/internal/services"
)

func setupMovementRouter(handler *MovementHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID("user-1"))
	auth.POST("/movements", handler.RecordMovement)
	auth.GET("/budgets/:category/movements", handler.GetHistory)
	return r
}

func TestMovementHandler_RecordMovement(t *testing.T) {
	t.Run("dispatches expense", func(t *testing.T) {
		var called bool
		movements := &mockMovementService{
			recordExpenseFn: func(userID, category string, amount float64, memo string) (bool, string, error) {
				called = true
				if category != "moto" || amount != 3000 || memo != "gasolina" {
					t.Errorf("unexpected args: %s %f %s", category, amount, memo)
				}
				return true, "💸 Gasto registrado: $3,000 en moto - gasolina", nil
			},
		}
		handler := NewMovementHandler(services.NewFacadeWith(&mockBudgetService{}, movements))
		r := setupMovementRouter(handler)

		rec := doRequest(r, "POST", "/movements",
			`{"category":"moto","kind":"expense","amount":3000,"memo":"gasolina"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !called {
			t.Error("expense path was not called")
		}
	})

	t.Run("dispatches income", func(t *testing.T) {
		var called bool
		movements := &mockMovementService{
			recordIncomeFn: func(userID, category string, amount float64, memo string) (bool, string, error) {
				called = true
				return true, "ok", nil
			},
		}
		handler := NewMovementHandler(services.NewFacadeWith(&mockBudgetService{}, movements))
		r := setupMovementRouter(handler)

		rec := doRequest(r, "POST", "/movements",
			`{"category":"inversión","kind":"income","amount":5000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !called {
			t.Error("income path was not called")
		}
	})

	t.Run("returns 400 on unknown kind", func(t *testing.T) {
		handler := NewMovementHandler(services.NewFacadeWith(&mockBudgetService{}, &mockMovementService{}))
		r := setupMovementRouter(handler)

		rec := doRequest(r, "POST", "/movements",
			`{"category":"moto","kind":"transfer","amount":3000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 422 when budget missing", func(t *testing.T) {
		movements := &mockMovementService{
			recordExpenseFn: func(string, string, float64, string) (bool, string, error) {
				return false, "No existe presupuesto 'moto'. Créalo primero con /crear", nil
			},
		}
		handler := NewMovementHandler(services.NewFacadeWith(&mockBudgetService{}, movements))
		r := setupMovementRouter(handler)

		rec := doRequest(r, "POST", "/movements",
			`{"category":"moto","kind":"expense","amount":3000}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestMovementHandler_GetHistory(t *testing.T) {
	t.Run("returns movements", func(t *testing.T) {
		movements := &mockMovementService{
			historyFn: func(userID, category string) (bool, string, []models.Movement, error) {
				m, _ := models.NewMovement(userID, category, models.MovementExpense, 3000, "gasolina")
				return true, "Historial obtenido exitosamente", []models.Movement{*m}, nil
			},
		}
		handler := NewMovementHandler(services.NewFacadeWith(&mockBudgetService{}, movements))
		r := setupMovementRouter(handler)

		rec := doRequest(r, "GET", "/budgets/moto/movements", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if list := result["movements"].([]interface{}); len(list) != 1 {
			t.Errorf("expected 1 movement, got %d", len(list))
		}
	})

	t.Run("returns 422 with distinct empty-history message", func(t *testing.T) {
		movements := &mockMovementService{
			historyFn: func(string, string) (bool, string, []models.Movement, error) {
				return false, "No hay movimientos registrados para 'moto'", nil, nil
			},
		}
		handler := NewMovementHandler(services.NewFacadeWith(&mockBudgetService{}, movements))
		r := setupMovementRouter(handler)

		rec := doRequest(r, "GET", "/budgets/moto/movements", "")

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "No hay movimientos registrados para 'moto'" {
			t.Errorf("unexpected message %v", result["message"])
		}
	})
}
