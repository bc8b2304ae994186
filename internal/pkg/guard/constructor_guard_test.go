package guard_test

import (
	"errors"
	"testing"

	"patternbook/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Quote struct {
		costCents int
		guard     guard.ConstructorGuard
	}

	var errQuoteNotConstructed = errors.New("Quote must be created via NewQuote")

	newQuote := func(costCents int) (Quote, error) {
		if costCents < 0 {
			return Quote{}, errors.New("cost cannot be negative")
		}
		return Quote{
			costCents: costCents,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	validateQuote := func(q Quote) error {
		return q.guard.Validate(errQuoteNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		quote, err := newQuote(1500)

		require.NoError(t, err)
		require.NoError(t, validateQuote(quote))
		assert.Equal(t, 1500, quote.costCents)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var quote Quote // zero value

		err := validateQuote(quote)

		require.Error(t, err)
		assert.Equal(t, errQuoteNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newQuote(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cost cannot be negative")
	})
}

func TestConstructorGuardCanBePassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	guardCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}
