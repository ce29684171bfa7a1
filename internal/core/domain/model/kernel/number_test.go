package kernel_test

import (
	"testing"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("should accept digits-only value", func(t *testing.T) {
		n, err := kernel.NewOrderNumber("00042")

		require.NoError(t, err)
		assert.Equal(t, "00042", n.String())
		require.NoError(t, n.Validate())
	})

	t.Run("should reject non-digit value", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("ABC")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "only digits")
	})

	t.Run("should reject mixed value", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("12A34")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNextOrderNumber(t *testing.T) {
	t.Run("should zero-pad sequence value", func(t *testing.T) {
		n, err := kernel.NextOrderNumber(7)

		require.NoError(t, err)
		assert.Equal(t, "00007", n.String())
	})

	t.Run("should keep wider values intact", func(t *testing.T) {
		n, err := kernel.NextOrderNumber(1234567)

		require.NoError(t, err)
		assert.Equal(t, "1234567", n.String())
	})

	t.Run("should reject non-positive sequence value", func(t *testing.T) {
		_, err := kernel.NextOrderNumber(0)

		require.Error(t, err)
	})
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var n kernel.OrderNumber

		err := n.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderNumberIsNotConstructed, err)
	})
}

func TestNewLabelNumber(t *testing.T) {
	t.Run("should accept conforming value", func(t *testing.T) {
		n, err := kernel.NewLabelNumber("L000001")

		require.NoError(t, err)
		assert.Equal(t, "L000001", n.String())
		require.NoError(t, n.Validate())
	})

	t.Run("should reject value without prefix", func(t *testing.T) {
		_, err := kernel.NewLabelNumber("000001")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject value with trailing letters", func(t *testing.T) {
		_, err := kernel.NewLabelNumber("ABC123")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "L000001")
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := kernel.NewLabelNumber("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNextLabelNumber(t *testing.T) {
	t.Run("should format and validate sequence value", func(t *testing.T) {
		n, err := kernel.NextLabelNumber(42)

		require.NoError(t, err)
		assert.Equal(t, "L000042", n.String())
	})

	t.Run("should produce sequential numbers", func(t *testing.T) {
		n1, err := kernel.NextLabelNumber(1)
		require.NoError(t, err)
		n2, err := kernel.NextLabelNumber(2)
		require.NoError(t, err)

		assert.Equal(t, "L000001", n1.String())
		assert.Equal(t, "L000002", n2.String())
		assert.False(t, n1.IsEqual(n2))
	})

	t.Run("should reject non-positive sequence value", func(t *testing.T) {
		_, err := kernel.NextLabelNumber(-1)

		require.Error(t, err)
	})
}

func TestLabelNumber_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var n kernel.LabelNumber

		err := n.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrLabelNumberIsNotConstructed, err)
	})
}
