package services

import (
	"fmt"
	"strings"

	"monevo/internal/models"
	"monevo/internal/store"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	ledger store.Ledger
}

// NewBudgetService creates a new BudgetServicer backed by the given ledger.
func NewBudgetService(ledger store.Ledger) BudgetServicer {
	return &budgetService{ledger: ledger}
}

// Create validates and creates a new budget. A store-level "already exists"
// becomes a conflict message, distinct from the validation messages.
func (s *budgetService) Create(userID, category string, amount float64, periodicity models.Periodicity) (bool, string, error) {
	if strings.TrimSpace(category) == "" {
		return false, "La categoría no puede estar vacía", nil
	}
	if amount <= 0 {
		return false, "El monto debe ser mayor a 0", nil
	}
	if periodicity == "" {
		periodicity = models.PeriodicityMonthly
	}
	if !periodicity.Valid() {
		return false, "Periodicidad debe ser: daily, weekly, monthly, yearly", nil
	}

	budget := models.NewBudget(userID, category, amount, periodicity)
	created, err := s.ledger.CreateBudget(budget)
	if err != nil {
		return false, "", err
	}
	if !created {
		return false, fmt.Sprintf("Ya existe un presupuesto para '%s'", budget.Category), nil
	}
	return true, fmt.Sprintf("Presupuesto '%s' creado exitosamente", budget.Category), nil
}

// Update changes the amount and, when supplied, the periodicity of an
// existing budget. "Not found" is a distinct message from validation failure.
func (s *budgetService) Update(userID, category string, amount float64, periodicity *models.Periodicity) (bool, string, error) {
	if amount <= 0 {
		return false, "El monto debe ser mayor a 0", nil
	}
	if periodicity != nil && !periodicity.Valid() {
		return false, "Periodicidad debe ser: daily, weekly, monthly, yearly", nil
	}

	normalized := models.NormalizeCategory(category)
	updated, err := s.ledger.UpdateBudget(userID, category, amount, periodicity)
	if err != nil {
		return false, "", err
	}
	if !updated {
		return false, fmt.Sprintf("No existe presupuesto '%s'", normalized), nil
	}
	return true, fmt.Sprintf("Presupuesto '%s' actualizado exitosamente", normalized), nil
}

// Delete removes a budget and all of its movements.
func (s *budgetService) Delete(userID, category string) (bool, string, error) {
	normalized := models.NormalizeCategory(category)
	deleted, err := s.ledger.DeleteBudget(userID, category)
	if err != nil {
		return false, "", err
	}
	if !deleted {
		return false, fmt.Sprintf("No existe presupuesto '%s'", normalized), nil
	}
	return true, fmt.Sprintf("Presupuesto '%s' eliminado exitosamente", normalized), nil
}

// Summary returns a summary for every budget the user owns; empty slice (not
// an error) when there are none.
func (s *budgetService) Summary(userID string) ([]models.BudgetSummary, error) {
	return s.ledger.Summarize(userID)
}

// Exists reports whether a budget exists for the key.
func (s *budgetService) Exists(userID, category string) (bool, error) {
	return s.ledger.BudgetExists(userID, category)
}
