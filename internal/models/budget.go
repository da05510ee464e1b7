package models

import "strings"

// Periodicity is the descriptive period label of a budget. It is not
// enforced by any scheduler.
type Periodicity string

const (
	PeriodicityDaily   Periodicity = "daily"
	PeriodicityWeekly  Periodicity = "weekly"
	PeriodicityMonthly Periodicity = "monthly"
	PeriodicityYearly  Periodicity = "yearly"
)

// Valid reports whether p is one of the four known period labels.
func (p Periodicity) Valid() bool {
	switch p {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly, PeriodicityYearly:
		return true
	}
	return false
}

// Budget represents a per-user, per-category spending allowance.
// The (user_id, category) pair is unique system-wide.
type Budget struct {
	Base
	UserID      string      `gorm:"index;uniqueIndex:idx_budgets_user_category;not null" json:"user_id"`
	Category    string      `gorm:"uniqueIndex:idx_budgets_user_category;not null" json:"category"`
	Amount      float64     `gorm:"not null" json:"amount"`
	Periodicity Periodicity `gorm:"not null;default:'monthly'" json:"periodicity"`
}

// NormalizeCategory lowercases and trims a category name. Every store lookup
// and write goes through this, so "  Moto " and "MOTO" resolve to the same
// budget. The operation is idempotent.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NewBudget builds a Budget with a normalized category. Business validation
// (positive amount, known periodicity) lives in the service layer.
func NewBudget(userID, category string, amount float64, periodicity Periodicity) *Budget {
	return &Budget{
		UserID:      userID,
		Category:    NormalizeCategory(category),
		Amount:      amount,
		Periodicity: periodicity,
	}
}
