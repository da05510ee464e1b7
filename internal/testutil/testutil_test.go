package testutil_test

import (
	"testing"

	"monevo/internal/errors"
	"monevo/internal/models"
	"monevo/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"budgets", "movements"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	budget := testutil.CreateTestBudget(t, db, "user-1", "Moto", 100000)
	if budget.ID == 0 {
		t.Fatal("budget should have a non-zero ID")
	}
	if budget.Category != "moto" {
		t.Errorf("expected normalized category %q, got %q", "moto", budget.Category)
	}

	movement := testutil.CreateTestMovement(t, db, "user-1", "moto", models.MovementExpense, 3000)
	if movement.ID == 0 {
		t.Fatal("movement should have a non-zero ID")
	}
	if movement.Kind != models.MovementExpense {
		t.Errorf("expected expense movement, got %s", movement.Kind)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
