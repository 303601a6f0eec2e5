package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessagePrecedence(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"wrapped error wins", New(404, "code", errors.New("boom")), "boom"},
		{"code when no error", New(404, "some_code", nil), "some_code"},
		{"status fallback", New(418, "", nil), "api error (418)"},
		{"bare", &Error{}, "api error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestKindConstructors(t *testing.T) {
	if e := NotFound("x", nil); e.Status != http.StatusNotFound {
		t.Fatalf("NotFound status %d", e.Status)
	}
	if e := Forbidden("x", nil); e.Status != http.StatusForbidden {
		t.Fatalf("Forbidden status %d", e.Status)
	}
	if e := Conflict("x", nil); e.Status != http.StatusConflict {
		t.Fatalf("Conflict status %d", e.Status)
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("inner")
	wrapped := fmt.Errorf("outer: %w", NotFound("x", inner))
	var ae *Error
	if !errors.As(wrapped, &ae) {
		t.Fatalf("errors.As failed through wrapping")
	}
	if !errors.Is(wrapped, inner) {
		t.Fatalf("errors.Is failed to reach inner error")
	}
}
