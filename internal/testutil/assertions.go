package testutil

import (
	"errors"
	"testing"

	apperrors "monevo/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertRejected checks a service result for a business-rule rejection with
// the expected message. Rejections never carry an error.
func AssertRejected(t *testing.T, ok bool, msg string, err error, expectedMsg string) {
	t.Helper()

	AssertNoError(t, err)
	if ok {
		t.Fatalf("expected rejection %q, got success with message %q", expectedMsg, msg)
	}
	if msg != expectedMsg {
		t.Errorf("expected rejection message %q, got %q", expectedMsg, msg)
	}
}
