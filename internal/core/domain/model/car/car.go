// Package car provides the Car value object and the factory that constructs
// it. The factory hides the concrete construction logic from callers: demos
// only ever obtain cars through Factory.Make.
package car

import (
	"errors"
	"maps"

	"patternbook/internal/pkg/errs"
	"patternbook/internal/pkg/guard"
)

var (
	// ErrCarIsNotConstructed indicates that the Car was not produced by the
	// factory. Directly instantiated zero values fail validation.
	ErrCarIsNotConstructed = errors.New("Car must be created via Factory.Make")

	// ErrComponentsAreRequired is returned when the factory is asked to build
	// a car from an empty component set.
	ErrComponentsAreRequired = errs.NewValueIsRequiredError("components")
)

// Car is an identifier-less value object holding a set of named components
// (for example a battery chemistry or an engine type). A Car is fully
// constructed at creation time and immutable thereafter: the component map
// is defensively copied both on construction and on read.
//
// Example usage:
//
//	factory := car.NewFactory()
//	c, err := factory.Make(map[string]string{
//	    "battery": "LiFePO4",
//	    "engine":  "electric",
//	})
//	if err != nil {
//	    // Handle construction error
//	}
//	fmt.Println(c.Component("battery")) // Output: LiFePO4 true
type Car struct {
	// components holds the named parts the car was assembled from
	components map[string]string

	// guard ensures the car was produced by the factory
	guard guard.ConstructorGuard
}

// Validate ensures the Car was produced by the factory.
// Returns ErrCarIsNotConstructed for zero values.
func (c Car) Validate() error {
	return c.guard.Validate(ErrCarIsNotConstructed)
}

// Components returns a copy of the car's named components. Mutating the
// returned map does not affect the car.
func (c Car) Components() map[string]string {
	components := make(map[string]string, len(c.components))
	maps.Copy(components, c.components)
	return components
}

// Component returns the value of a single named component and whether the
// component is present.
func (c Car) Component(name string) (string, bool) {
	value, ok := c.components[name]
	return value, ok
}

// Factory constructs Car values from named component sets, hiding the
// concrete construction logic from callers. The factory holds no mutable
// state between calls, so a single instance may serve any number of
// independent callers.
type Factory struct{}

// NewFactory creates a new Car factory.
func NewFactory() Factory {
	return Factory{}
}

// Make constructs a fully-initialized Car from the given component set.
// The component set must be non-empty; the map is copied, so callers may
// reuse or mutate it afterwards.
//
// Returns:
//   - Car: The assembled car
//   - error: ErrComponentsAreRequired if the component set is empty
func (f Factory) Make(components map[string]string) (Car, error) {
	if len(components) == 0 {
		return Car{}, ErrComponentsAreRequired
	}

	owned := make(map[string]string, len(components))
	maps.Copy(owned, components)

	return Car{
		components: owned,
		guard:      guard.NewConstructorGuard(),
	}, nil
}
