package services

import (
	"fmt"

	apperrors "monevo/internal/errors"
	"monevo/internal/models"
	"monevo/internal/store"
)

// movementService handles movement-related business logic. The budget
// existence precondition is checked through the BudgetServicer, not the
// store, so business rules stay in one place.
type movementService struct {
	ledger  store.Ledger
	budgets BudgetServicer
}

// NewMovementService creates a new MovementServicer.
func NewMovementService(ledger store.Ledger, budgets BudgetServicer) MovementServicer {
	return &movementService{ledger: ledger, budgets: budgets}
}

// RecordExpense records an expense against the category's budget.
func (s *movementService) RecordExpense(userID, category string, amount float64, memo string) (bool, string, error) {
	return s.record(userID, category, models.MovementExpense, amount, memo)
}

// RecordIncome records an income against the category's budget.
func (s *movementService) RecordIncome(userID, category string, amount float64, memo string) (bool, string, error) {
	return s.record(userID, category, models.MovementIncome, amount, memo)
}

func (s *movementService) record(userID, category string, kind models.MovementKind, amount float64, memo string) (bool, string, error) {
	normalized := models.NormalizeCategory(category)

	exists, err := s.budgets.Exists(userID, category)
	if err != nil {
		return false, "", err
	}
	if !exists {
		return false, fmt.Sprintf("No existe presupuesto '%s'. Créalo primero con /crear", normalized), nil
	}
	if amount <= 0 {
		return false, "El monto debe ser mayor a 0", nil
	}

	movement, err := models.NewMovement(userID, category, kind, amount, memo)
	if err != nil {
		// Construction re-validates the kind; a failure here is an
		// internal-consistency guard, recovered like any rejection.
		var appErr *apperrors.AppError
		if ok := asAppError(err, &appErr); ok {
			return false, appErr.Message, nil
		}
		return false, "", err
	}

	if err := s.ledger.RecordMovement(movement); err != nil {
		return false, "", err
	}

	label := "Gasto registrado"
	if kind == models.MovementIncome {
		label = "Ingreso registrado"
	}
	msg := fmt.Sprintf("💸 %s: $%s en %s", label, FormatAmount(amount), normalized)
	if memo != "" {
		msg += " - " + memo
	}
	return true, msg, nil
}

// History returns the full movement history for a category, newest first.
// A missing budget and an empty history yield distinct messages.
func (s *movementService) History(userID, category string) (bool, string, []models.Movement, error) {
	normalized := models.NormalizeCategory(category)

	exists, err := s.budgets.Exists(userID, category)
	if err != nil {
		return false, "", nil, err
	}
	if !exists {
		return false, fmt.Sprintf("No existe presupuesto '%s'", normalized), nil, nil
	}

	movements, err := s.ledger.ListMovements(userID, category)
	if err != nil {
		return false, "", nil, err
	}
	if len(movements) == 0 {
		return false, fmt.Sprintf("No hay movimientos registrados para '%s'", normalized), nil, nil
	}
	return true, "Historial obtenido exitosamente", movements, nil
}
