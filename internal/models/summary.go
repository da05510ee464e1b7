package models

// BudgetSummary is the derived balance view for one budget. It is computed
// on demand from the budget row and its movements and is never persisted.
type BudgetSummary struct {
	Category      string      `json:"category"`
	InitialAmount float64     `json:"initial_amount"`
	TotalExpenses float64     `json:"total_expenses"`
	TotalIncome   float64     `json:"total_income"`
	Balance       float64     `json:"balance"`
	Periodicity   Periodicity `json:"periodicity"`
}

// NewBudgetSummary derives a summary from a budget and its movement totals.
// Balance is initial + income - expenses.
func NewBudgetSummary(b Budget, totalExpenses, totalIncome float64) BudgetSummary {
	return BudgetSummary{
		Category:      b.Category,
		InitialAmount: b.Amount,
		TotalExpenses: totalExpenses,
		TotalIncome:   totalIncome,
		Balance:       b.Amount + totalIncome - totalExpenses,
		Periodicity:   b.Periodicity,
	}
}

// UsedPercentage is the share of the initial amount consumed by expenses
// alone; income is deliberately ignored, so the value can exceed 100. A zero
// initial amount yields 0 instead of a division error.
func (s BudgetSummary) UsedPercentage() float64 {
	if s.InitialAmount == 0 {
		return 0
	}
	return s.TotalExpenses / s.InitialAmount * 100
}
