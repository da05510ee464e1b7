package models

import (
	"time"

	apperrors "monevo/internal/errors"
)

// MovementKind represents the type of a movement.
type MovementKind string

const (
	MovementExpense MovementKind = "expense"
	MovementIncome  MovementKind = "income"
)

// Valid reports whether k is one of the two known movement kinds.
func (k MovementKind) Valid() bool {
	return k == MovementExpense || k == MovementIncome
}

// Movement represents a single expense or income event against a budget's
// category. Movements are append-only: they are never updated or individually
// deleted, only bulk-removed when the owning budget is deleted. The budget
// sharing the (user_id, category) key is a soft reference, looked up by key.
type Movement struct {
	Base
	UserID    string       `gorm:"index:idx_movements_user_category;not null" json:"user_id"`
	Category  string       `gorm:"index:idx_movements_user_category;not null" json:"category"`
	Kind      MovementKind `gorm:"not null" json:"kind"`
	Amount    float64      `gorm:"not null" json:"amount"`
	Memo      string       `gorm:"default:''" json:"memo"`
	Timestamp time.Time    `gorm:"not null;index" json:"timestamp"`
}

// NewMovement constructs a Movement with a normalized category and the
// current time. It re-validates the kind: services already gate user input,
// so an invalid kind here is an internal-consistency fault, reported as
// INVALID_MOVEMENT_KIND rather than silently stored.
func NewMovement(userID, category string, kind MovementKind, amount float64, memo string) (*Movement, error) {
	if !kind.Valid() {
		return nil, apperrors.ErrInvalidMovementKind
	}
	return &Movement{
		UserID:    userID,
		Category:  NormalizeCategory(category),
		Kind:      kind,
		Amount:    amount,
		Memo:      memo,
		Timestamp: time.Now(),
	}, nil
}
