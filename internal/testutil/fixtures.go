package testutil

import (
	"fmt"
	"testing"
	"time"

	"monevo/internal/models"

	"gorm.io/gorm"
)

// CreateTestBudget creates a monthly budget for the given user and category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string, amount float64) *models.Budget {
	t.Helper()

	budget := models.NewBudget(userID, category, amount, models.PeriodicityMonthly)
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestMovement creates a movement with the given kind and amount.
func CreateTestMovement(t *testing.T, db *gorm.DB, userID, category string, kind models.MovementKind, amount float64) *models.Movement {
	t.Helper()

	movement, err := models.NewMovement(userID, category, kind, amount, fmt.Sprintf("test movement %d", nextID()))
	if err != nil {
		t.Fatalf("failed to build test movement: %v", err)
	}
	if err := db.Create(movement).Error; err != nil {
		t.Fatalf("failed to create test movement: %v", err)
	}
	return movement
}

// CreateTestMovementAt creates a movement with an explicit timestamp, useful
// for asserting ordering.
func CreateTestMovementAt(t *testing.T, db *gorm.DB, userID, category string, kind models.MovementKind, amount float64, ts time.Time) *models.Movement {
	t.Helper()

	movement := CreateTestMovement(t, db, userID, category, kind, amount)
	if err := db.Model(movement).Update("timestamp", ts).Error; err != nil {
		t.Fatalf("failed to set movement timestamp: %v", err)
	}
	movement.Timestamp = ts
	return movement
}
