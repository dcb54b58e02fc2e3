package guard_test

import (
	"errors"
	"testing"

	"vendororders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero-value guard returns provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		sentinel := errors.New("object must be created via NewObject")

		err := g.Validate(sentinel)

		require.Error(t, err)
		assert.Equal(t, sentinel, err)
	})

	t.Run("zero-value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}
