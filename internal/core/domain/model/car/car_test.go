package car_test

import (
	"testing"

	"patternbook/internal/core/domain/model/car"
	"patternbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Make(t *testing.T) {
	factory := car.NewFactory()

	t.Run("builds car whose components equal the input", func(t *testing.T) {
		components := map[string]string{
			"battery": "LiFePO4",
			"engine":  "electric",
		}

		c, err := factory.Make(components)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, components, c.Components())
	})

	t.Run("works for any non-empty component set", func(t *testing.T) {
		sets := []map[string]string{
			{"battery": "NMC"},
			{"wheels": "4", "doors": "2"},
			{"battery": "solid-state", "engine": "hybrid", "trim": "sport"},
		}

		for _, components := range sets {
			c, err := factory.Make(components)

			require.NoError(t, err)
			assert.Equal(t, components, c.Components())
		}
	})

	t.Run("fails with empty component set", func(t *testing.T) {
		_, err := factory.Make(map[string]string{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with nil component set", func(t *testing.T) {
		_, err := factory.Make(nil)

		require.Error(t, err)
	})

	t.Run("is stateless across calls", func(t *testing.T) {
		first, err := factory.Make(map[string]string{"battery": "LiFePO4"})
		require.NoError(t, err)

		second, err := factory.Make(map[string]string{"battery": "NMC"})
		require.NoError(t, err)

		assert.Equal(t, "LiFePO4", first.Components()["battery"])
		assert.Equal(t, "NMC", second.Components()["battery"])
	})
}

func TestCar_Immutability(t *testing.T) {
	factory := car.NewFactory()

	t.Run("input map mutation does not change the car", func(t *testing.T) {
		components := map[string]string{"battery": "LiFePO4"}
		c, err := factory.Make(components)
		require.NoError(t, err)

		components["battery"] = "lead-acid"

		assert.Equal(t, "LiFePO4", c.Components()["battery"])
	})

	t.Run("read map mutation does not change the car", func(t *testing.T) {
		c, err := factory.Make(map[string]string{"battery": "LiFePO4"})
		require.NoError(t, err)

		read := c.Components()
		read["battery"] = "lead-acid"

		assert.Equal(t, "LiFePO4", c.Components()["battery"])
	})
}

func TestCar_Component(t *testing.T) {
	factory := car.NewFactory()
	c, err := factory.Make(map[string]string{"battery": "LiFePO4"})
	require.NoError(t, err)

	value, ok := c.Component("battery")
	assert.True(t, ok)
	assert.Equal(t, "LiFePO4", value)

	_, ok = c.Component("spoiler")
	assert.False(t, ok)
}

func TestCar_Validate(t *testing.T) {
	t.Run("zero value car fails validation", func(t *testing.T) {
		var c car.Car

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, car.ErrCarIsNotConstructed, err)
	})
}
