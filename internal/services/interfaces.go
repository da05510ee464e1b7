package services

import "monevo/internal/models"

// BudgetServicer defines the contract for budget-related business logic.
// Methods return (ok, message): business-rule rejections are (false, specific
// message, nil error); the error is non-nil only for storage faults, which
// the caller logs and answers with a generic apology.
type BudgetServicer interface {
	Create(userID, category string, amount float64, periodicity models.Periodicity) (bool, string, error)
	Update(userID, category string, amount float64, periodicity *models.Periodicity) (bool, string, error)
	Delete(userID, category string) (bool, string, error)
	Summary(userID string) ([]models.BudgetSummary, error)
	Exists(userID, category string) (bool, error)
}

// MovementServicer defines the contract for movement-related business logic.
type MovementServicer interface {
	RecordExpense(userID, category string, amount float64, memo string) (bool, string, error)
	RecordIncome(userID, category string, amount float64, memo string) (bool, string, error)
	History(userID, category string) (bool, string, []models.Movement, error)
}
