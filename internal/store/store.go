// Package store provides durable keyed storage for budgets and movements.
// One store instance serves a deployment; it must be safe under concurrent
// access from independent user ids.
package store

import "monevo/internal/models"

// Ledger is the narrow capability interface the service layer depends on.
// Categories are normalized before every lookup or write, so callers may pass
// raw user input. Every operation reports storage faults as an
// *errors.AppError with code STORAGE_ERROR; boolean results cover the
// expected not-found / already-exists outcomes.
type Ledger interface {
	// CreateBudget persists the budget, returning false when a budget for
	// the same (user_id, category) already exists. Check-then-insert is a
	// single atomic unit: no partial state on failure.
	CreateBudget(b *models.Budget) (bool, error)

	// UpdateBudget sets the amount and, when periodicity is non-nil, the
	// periodicity of an existing budget. Returns false when absent.
	UpdateBudget(userID, category string, amount float64, periodicity *models.Periodicity) (bool, error)

	// DeleteBudget removes the budget row and all movements for the key in
	// one transaction. Returns false when absent.
	DeleteBudget(userID, category string) (bool, error)

	// BudgetExists is a pure predicate on the (user_id, category) key.
	BudgetExists(userID, category string) (bool, error)

	// RecordMovement appends a movement. It performs no budget existence
	// check; that precondition belongs to the service layer.
	RecordMovement(m *models.Movement) error

	// ListMovements returns all movements for the key ordered by timestamp
	// descending, newest first. Empty slice when none.
	ListMovements(userID, category string) ([]models.Movement, error)

	// Summarize builds a BudgetSummary for every budget owned by userID,
	// summing expense and income movement amounts (0 when none).
	Summarize(userID string) ([]models.BudgetSummary, error)
}
