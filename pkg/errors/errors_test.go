// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/griddle/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "arity_mismatch_error",
			code:    errors.ErrArityMismatch,
			message: "expected 3 values, found 2",
			wantStr: "[ARITY_MISMATCH] expected 3 values, found 2",
		},
		{
			name:    "box_invalid_error",
			code:    errors.ErrBoxInvalid,
			message: "zone must have 4 glyphs",
			wantStr: "[BOX_INVALID] zone must have 4 glyphs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("boom")

	err := errors.Wrap(inner, errors.ErrStyleFormat, "cannot parse style")
	if err == nil {
		t.Fatal("Wrap() returned nil for non-nil error")
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is on the inner error")
	}

	if got := err.Error(); got != "[STYLE_FORMAT] cannot parse style: boom" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrStyleFormat, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrArityMismatch, "expected %d values, found %d", 2, 3)

	if !errors.IsErrorCode(err, errors.ErrArityMismatch) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrNoColumns) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrArityMismatch) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrBoxNotFound, "no such box style")
	if got := errors.GetErrorCode(err); got != errors.ErrBoxNotFound {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrBoxNotFound)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() on plain error = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrArityMismatch, "bad row").
		WithDetail("expected", 2).
		WithDetail("found", 5)

	if err.Details["expected"] != 2 || err.Details["found"] != 5 {
		t.Errorf("WithDetail() details = %v", err.Details)
	}
}
