package serrors_test

import (
	"errors"
	"fmt"
	"lifeguard/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "check %d not found", 42)
	require.Equal(t, "scan 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting check")
	require.Equal(t, "getting check: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  500,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "kind sentinel directly",
			err:     serrors.ErrNotFound,
			status:  404,
			code:    "NOT_FOUND",
			message: "resource not found",
		},
		{
			name:    "kind with message",
			err:     serrors.With(serrors.ErrBadRequest, "invalid payload: missing url"),
			status:  400,
			code:    "BAD_REQUEST",
			message: "invalid payload: missing url",
		},
		{
			name:    "wrapped cause is not exposed",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"),
			status:  401,
			code:    "UNAUTHORIZED",
			message: "unauthorized",
		},
		{
			name:    "kind only falls back to default message",
			err:     serrors.KindOnly(serrors.ErrRateLimited),
			status:  429,
			code:    "RATE_LIMITED",
			message: "too many requests",
		},
		{
			name:    "internal kind hides message",
			err:     serrors.With(serrors.ErrInternal, "db password is hunter2"),
			status:  500,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "semantic error wrapped with fmt",
			err:     fmt.Errorf("could not delete check: %w", serrors.With(serrors.ErrNotFound, "check not found")),
			status:  404,
			code:    "NOT_FOUND",
			message: "check not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, message := serrors.Describe(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, code)
			require.Equal(t, tc.message, message)
		})
	}
}
