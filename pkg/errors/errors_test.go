package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSyntax, "unexpected %q at offset %d", ")", 4)

	if err.Code != ErrCodeSyntax {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSyntax)
	}
	if !strings.Contains(err.Error(), "SYNTAX_ERROR") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
	if !strings.Contains(err.Error(), `")" at offset 4`) {
		t.Errorf("Error() = %q, want formatted message", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(ErrCodeInternal, cause, "sealing graph")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if got := errors.Unwrap(err); got != cause {
		t.Errorf("Unwrap = %v, want %v", got, cause)
	}
	if !strings.Contains(err.Error(), "underlying failure") {
		t.Errorf("Error() = %q, want cause text", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"Match", New(ErrCodeIllegalContext, "negative"), ErrCodeIllegalContext, true},
		{"Mismatch", New(ErrCodeIllegalContext, "negative"), ErrCodeSyntax, false},
		{"Wrapped", fmt.Errorf("outer: %w", New(ErrCodeNotFound, "gone")), ErrCodeNotFound, true},
		{"Plain", errors.New("plain"), ErrCodeSyntax, false},
		{"Nil", nil, ErrCodeSyntax, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"Structured", New(ErrCodeDuplicateDefinition, "x"), ErrCodeDuplicateDefinition},
		{"Wrapped", fmt.Errorf("ctx: %w", New(ErrCodeUndefinedVariable, "y")), ErrCodeUndefinedVariable},
		{"Plain", errors.New("plain"), Code("")},
		{"Nil", nil, Code("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeInvalidFormat, errors.New("gory io detail"), "decode corpus")
	msg := UserMessage(err)

	if !strings.Contains(msg, "decode corpus") {
		t.Errorf("UserMessage = %q, want message text", msg)
	}
	if strings.Contains(msg, "gory io detail") {
		t.Errorf("UserMessage = %q, should not leak cause text", msg)
	}
}
