package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bangsafe/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKinds(t *testing.T) {
	tests := []struct {
		kind   *serrors.Kind
		code   string
		status int
	}{
		{serrors.ErrBadRequest, "BAD_REQUEST", http.StatusBadRequest},
		{serrors.ErrMalformedInput, "MALFORMED_INPUT", http.StatusBadRequest},
		{serrors.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{serrors.ErrTimeout, "TIMEOUT", http.StatusRequestTimeout},
		{serrors.ErrStoreCorrupt, "STORE_CORRUPT", http.StatusInternalServerError},
		{serrors.ErrInternal, "INTERNAL", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			require.Equal(t, tt.code, tt.kind.Code())
			require.Equal(t, tt.code, tt.kind.Error())
			require.Equal(t, tt.status, tt.kind.Status())
		})
	}

	// same code and status, still a different kind
	require.NotErrorIs(t, serrors.With(serrors.NewKind("BAD_REQUEST", 400), "x"), serrors.ErrBadRequest)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	e1 := serrors.With(serrors.ErrBadRequest, "field %q is required", "url")
	require.Equal(t, `field "url" is required`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrStoreCorrupt, base, "reading reports")
	require.Equal(t, "reading reports: disk full", e2.Error())

	e3 := &serrors.Error{Kind: serrors.ErrNotFound}
	require.Equal(t, "NOT_FOUND", e3.Error())

	e4 := serrors.Wrap(serrors.ErrInternal, base, "")
	require.Equal(t, "disk full", e4.Error())
}

func TestIsMatchesKindAndCause(t *testing.T) {
	base := customError{"root cause"}
	e := fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrStoreCorrupt, base, "reading"))

	require.ErrorIs(t, e, serrors.ErrStoreCorrupt)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest)
}

func TestAsExtractsKindAndCause(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k *serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Same(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))

	wrapped := fmt.Errorf("could not scan: %w", serrors.With(serrors.ErrBadRequest, "Empty URL"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))

	// the outermost kind wins
	nested := serrors.Wrap(serrors.ErrBadRequest, serrors.With(serrors.ErrMalformedInput, ""), "Invalid JSON body")
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(nested))
	require.ErrorIs(t, nested, serrors.ErrMalformedInput)
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "fallback", serrors.MessageOf(errors.New("plain"), "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(&serrors.Error{Kind: serrors.ErrInternal}, "fallback"))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "Missing url"))
	require.Equal(t, "Missing url", serrors.MessageOf(wrapped, "fallback"))

	// an outer error without a message defers to the inner one
	inner := serrors.Wrap(serrors.ErrBadRequest, serrors.With(serrors.ErrMalformedInput, "Invalid JSON body"), "")
	require.Equal(t, "Invalid JSON body", serrors.MessageOf(inner, "fallback"))
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, serrors.StatusOf(serrors.With(serrors.ErrBadRequest, "Empty URL")))
	require.Equal(t, http.StatusNotFound, serrors.StatusOf(fmt.Errorf("x: %w", serrors.ErrNotFound)))
	require.Equal(t, http.StatusRequestTimeout, serrors.StatusOf(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	require.Equal(t, http.StatusInternalServerError, serrors.StatusOf(errors.New("boom")))
	require.Equal(t, http.StatusInternalServerError, serrors.StatusOf(serrors.Wrap(serrors.ErrStoreCorrupt, errors.New("eof"), "")))
}
