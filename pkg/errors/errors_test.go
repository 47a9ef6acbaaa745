package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeMissingField, "column %q not found", "aisle")
	want := `MISSING_FIELD: column "aisle" not found`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeInternal, cause, "write labels.pdf")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeUnsupportedFormat, "unsupported file format: .txt")

	if !Is(err, ErrCodeUnsupportedFormat) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeMissingField) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping by the standard library.
	wrapped := fmt.Errorf("read table: %w", err)
	if !Is(wrapped, ErrCodeUnsupportedFormat) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidGeometry, "grid overflows page")); got != ErrCodeInvalidGeometry {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidGeometry)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidPath, "output path cannot be empty")
	if got := UserMessage(err); got != "output path cannot be empty" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain error")); got != "plain error" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"labels.pdf", false},
		{"out/labels.pdf", false},
		{"", true},
		{"bad\x00name.pdf", true},
		{string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		err := ValidateOutputPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestValidateColumnName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"aisle", false},
		{"qr_value", false},
		{"", true},
		{" aisle", true},
		{"aisle ", true},
	}

	for _, tt := range tests {
		err := ValidateColumnName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateColumnName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
