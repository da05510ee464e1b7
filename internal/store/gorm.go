package store

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "monevo/internal/errors"
	"monevo/internal/logger"
	"monevo/internal/models"
)

// GormLedger implements Ledger on top of a *gorm.DB. The connection must be
// opened with TranslateError enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey (see database.NewManager and testutil.SetupTestDB).
type GormLedger struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewGormLedger creates a Ledger backed by the given database.
func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db, log: logger.Named("store")}
}

// CreateBudget inserts the budget. The unique index on (user_id, category)
// makes the existence check and the insert one atomic unit: two
// near-simultaneous creations for the same key cannot both succeed.
func (l *GormLedger) CreateBudget(b *models.Budget) (bool, error) {
	b.Category = models.NormalizeCategory(b.Category)

	if err := l.db.Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	l.log.Debugw("budget created",
		"user_id", b.UserID,
		"category", b.Category,
		"amount", b.Amount,
		"periodicity", b.Periodicity,
	)
	return true, nil
}

// UpdateBudget updates the amount and optionally the periodicity. A nil
// periodicity preserves the stored value.
func (l *GormLedger) UpdateBudget(userID, category string, amount float64, periodicity *models.Periodicity) (bool, error) {
	category = models.NormalizeCategory(category)

	updates := map[string]interface{}{"amount": amount}
	if periodicity != nil {
		updates["periodicity"] = *periodicity
	}

	res := l.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ?", userID, category).
		Updates(updates)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteBudget removes the budget row and every movement for the key in one
// transaction; both deletions succeed or neither does. Deletes are hard:
// a soft-deleted row would still hold the unique (user_id, category) slot
// and block re-creation.
func (l *GormLedger) DeleteBudget(userID, category string) (bool, error) {
	category = models.NormalizeCategory(category)

	deleted := false
	err := l.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("user_id = ? AND category = ?", userID, category).
			Delete(&models.Budget{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Unscoped().
			Where("user_id = ? AND category = ?", userID, category).
			Delete(&models.Movement{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	if deleted {
		l.log.Debugw("budget deleted with movements",
			"user_id", userID,
			"category", category,
		)
	}
	return deleted, nil
}

// BudgetExists reports whether a budget exists for the key.
func (l *GormLedger) BudgetExists(userID, category string) (bool, error) {
	category = models.NormalizeCategory(category)

	var count int64
	err := l.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ?", userID, category).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return count > 0, nil
}

// RecordMovement appends the movement. Prior rows are never mutated.
func (l *GormLedger) RecordMovement(m *models.Movement) error {
	m.Category = models.NormalizeCategory(m.Category)

	if err := l.db.Create(m).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// ListMovements returns all movements for the key, newest first.
func (l *GormLedger) ListMovements(userID, category string) ([]models.Movement, error) {
	category = models.NormalizeCategory(category)

	movements := []models.Movement{}
	err := l.db.Where("user_id = ? AND category = ?", userID, category).
		Order("timestamp DESC").
		Find(&movements).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return movements, nil
}

// Summarize computes a BudgetSummary for every budget owned by userID.
func (l *GormLedger) Summarize(userID string) ([]models.BudgetSummary, error) {
	var budgets []models.Budget
	if err := l.db.Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	summaries := make([]models.BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		expenses, err := l.sumMovements(userID, b.Category, models.MovementExpense)
		if err != nil {
			return nil, err
		}
		income, err := l.sumMovements(userID, b.Category, models.MovementIncome)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.NewBudgetSummary(b, expenses, income))
	}
	return summaries, nil
}

func (l *GormLedger) sumMovements(userID, category string, kind models.MovementKind) (float64, error) {
	var total float64
	err := l.db.Model(&models.Movement{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category = ? AND kind = ?", userID, category, kind).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return total, nil
}

var _ Ledger = (*GormLedger)(nil)
