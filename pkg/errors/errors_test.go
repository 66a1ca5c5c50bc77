package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "invalid scene name: %s", "foo")

	if got := err.Error(); got != "INVALID_INPUT: invalid scene name: foo" {
		t.Errorf("Error() = %q", got)
	}
	if err.Cause != nil {
		t.Error("New() should not set a cause")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeRender, cause, "failed to render %s", "IntakePlate")

	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, should include cause", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeSceneNotFound, "no such scene")

	if !Is(err, ErrCodeSceneNotFound) {
		t.Error("Is() should match the error's code")
	}
	if Is(err, ErrCodeRender) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeSceneNotFound) {
		t.Error("Is() should not match plain errors")
	}

	// Matches through wrapping layers
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeSceneNotFound) {
		t.Error("Is() should unwrap standard wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidQuality, "bad")); got != ErrCodeInvalidQuality {
		t.Errorf("GetCode() = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format")
	if got := UserMessage(err); got != "unknown format" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateSceneName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "CoincidentLine", false},
		{"valid with digits", "Plate2", false},
		{"empty", "", true},
		{"starts with digit", "2Plate", true},
		{"contains space", "Intake Plate", true},
		{"contains slash", "design/plate", true},
		{"too long", strings.Repeat("A", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSceneName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSceneName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("validation error should carry INVALID_INPUT, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "media", false},
		{"valid nested", "out/renders", false},
		{"empty", "", true},
		{"traversal", "../outside", true},
		{"null byte", "out\x00dir", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
