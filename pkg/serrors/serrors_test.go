package serrors_test

import (
	"errors"
	"prospector/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrSchemaViolation,
		serrors.ErrMissingItems,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	e1 := serrors.With(serrors.ErrSchemaViolation, "expected %d enrichments", 2)
	require.Equal(t, "expected 2 enrichments", e1.Error())

	e2 := serrors.Wrap(serrors.ErrSchemaViolation, base, "reading table")
	require.Equal(t, "reading table: disk full", e2.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := errors.New("root cause")
	e := serrors.Wrap(serrors.ErrMissingItems, base, "fetching webset")

	require.ErrorIs(t, e, serrors.ErrMissingItems)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrSchemaViolation)
}

func TestKindAccessor(t *testing.T) {
	e := serrors.With(serrors.ErrBadRequest, "vertical must not be empty")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
}
