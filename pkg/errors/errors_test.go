package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidParams, "number of points must be at least %d", 4),
			want: "INVALID_PARAMS: number of points must be at least 4",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeInternal, stderrors.New("boom"), "generation failed"),
			want: "INTERNAL_ERROR: generation failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDescRange, "number out of range")

	if !Is(err, ErrCodeDescRange) {
		t.Error("Is(err, ErrCodeDescRange) = false, want true")
	}
	if Is(err, ErrCodeDescSyntax) {
		t.Error("Is(err, ErrCodeDescSyntax) = true, want false")
	}
	if Is(stderrors.New("plain"), ErrCodeDescRange) {
		t.Error("Is(plain, ErrCodeDescRange) = true, want false")
	}

	// The code survives wrapping with %w.
	wrapped := fmt.Errorf("while validating: %w", err)
	if !Is(wrapped, ErrCodeDescRange) {
		t.Error("Is(wrapped, ErrCodeDescRange) = false, want true")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeMoveSyntax, "bad token")); got != ErrCodeMoveSyntax {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeMoveSyntax)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNoSolution, "solution not known for this puzzle")
	if got := UserMessage(err); got != "solution not known for this puzzle" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
