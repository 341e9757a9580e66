package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "plain new",
			err:  New(KindNotFound, "user not found"),
			want: KindNotFound,
		},
		{
			name: "wrapped cause",
			err:  Wrap(KindUnavailable, "query failed", errors.New("connection refused")),
			want: KindUnavailable,
		},
		{
			name: "double wrapped",
			err:  fmt.Errorf("outer: %w", New(KindExpired, "invalid or expired invite code")),
			want: KindExpired,
		},
		{
			name: "foreign error",
			err:  errors.New("something else"),
			want: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	err := Wrap(KindUnavailable, "failed to create user", errors.New("duplicate key"))

	// The presentable message must not leak the cause.
	if got := Message(err); got != "failed to create user" {
		t.Errorf("Message() = %q", got)
	}
	// The full error string keeps it for logs.
	if got := err.Error(); got != "failed to create user: duplicate key" {
		t.Errorf("Error() = %q", got)
	}

	if got := Message(errors.New("raw")); got != "internal error" {
		t.Errorf("Message(foreign) = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUnavailable, "query failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindValidation, "validation"},
		{KindUnauthorized, "unauthorized"},
		{KindNotFound, "not_found"},
		{KindConflict, "conflict"},
		{KindExpired, "expired"},
		{KindUnavailable, "unavailable"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
