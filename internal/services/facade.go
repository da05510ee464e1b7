package services

import (
	"monevo/internal/models"
	"monevo/internal/store"
)

// Facade unifies the budget and movement services behind a single dependency
// for external callers. Pure composition: it adds no logic and duplicates no
// validation.
type Facade struct {
	budgets   BudgetServicer
	movements MovementServicer
}

// NewFacade wires both services on top of one ledger.
func NewFacade(ledger store.Ledger) *Facade {
	budgets := NewBudgetService(ledger)
	return &Facade{
		budgets:   budgets,
		movements: NewMovementService(ledger, budgets),
	}
}

// NewFacadeWith composes pre-built services; used by tests that substitute
// one side.
func NewFacadeWith(budgets BudgetServicer, movements MovementServicer) *Facade {
	return &Facade{budgets: budgets, movements: movements}
}

func (f *Facade) CreateBudget(userID, category string, amount float64, periodicity models.Periodicity) (bool, string, error) {
	return f.budgets.Create(userID, category, amount, periodicity)
}

func (f *Facade) UpdateBudget(userID, category string, amount float64, periodicity *models.Periodicity) (bool, string, error) {
	return f.budgets.Update(userID, category, amount, periodicity)
}

func (f *Facade) DeleteBudget(userID, category string) (bool, string, error) {
	return f.budgets.Delete(userID, category)
}

func (f *Facade) Summary(userID string) ([]models.BudgetSummary, error) {
	return f.budgets.Summary(userID)
}

func (f *Facade) BudgetExists(userID, category string) (bool, error) {
	return f.budgets.Exists(userID, category)
}

func (f *Facade) RecordExpense(userID, category string, amount float64, memo string) (bool, string, error) {
	return f.movements.RecordExpense(userID, category, amount, memo)
}

func (f *Facade) RecordIncome(userID, category string, amount float64, memo string) (bool, string, error) {
	return f.movements.RecordIncome(userID, category, amount, memo)
}

func (f *Facade) History(userID, category string) (bool, string, []models.Movement, error) {
	return f.movements.History(userID, category)
}
