package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"patternbook/internal/pkg/errs"
	"patternbook/internal/pkg/guard"
)

// Coordinate represents a position value on the delivery grid.
// Valid coordinates range from AddressMinX/Y to AddressMaxX/Y inclusive.
type Coordinate int8

const (
	// AddressMinX is the minimum valid X coordinate on the delivery grid.
	AddressMinX Coordinate = 1
	// AddressMinY is the minimum valid Y coordinate on the delivery grid.
	AddressMinY Coordinate = 1
	// AddressMaxX is the maximum valid X coordinate on the delivery grid.
	AddressMaxX Coordinate = 10
	// AddressMaxY is the maximum valid Y coordinate on the delivery grid.
	AddressMaxY Coordinate = 10
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created using NewAddress or
// NewRandomAddress constructors to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or NewRandomAddress constructors")

// Address represents a delivery destination on the grid with validated
// coordinates. Address is an immutable value object that ensures coordinates
// are always within valid bounds. The zero value of Address is invalid and
// will fail validation; use the constructors to create instances.
//
// Delivery strategies consume an Address and turn the distance from the
// depot into a cost and a duration.
//
// Example:
//
//	addr, err := kernel.NewAddress(5, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Destination: %s", addr) // Output: Address(5,7)
type Address struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified coordinates.
// Both coordinates must be within the valid grid bounds.
//
// Parameters:
//   - x: The X coordinate (between AddressMinX and AddressMaxX inclusive)
//   - y: The Y coordinate (between AddressMinY and AddressMaxY inclusive)
//
// Returns:
//   - Address: A valid address instance
//   - error: Validation error if either coordinate is out of bounds
func NewAddress(x Coordinate, y Coordinate) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setX(x), addr.setY(y)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// NewRandomAddress creates a new Address with randomly generated coordinates.
// The coordinates are guaranteed to be within valid grid bounds. This
// function is used to seed demo data and in tests.
func NewRandomAddress() (Address, error) {
	x := Coordinate(rand.IntN(int(AddressMaxX-AddressMinX+1)) + int(AddressMinX)) //nolint:gosec // it's ok
	y := Coordinate(rand.IntN(int(AddressMaxY-AddressMinY+1)) + int(AddressMinY)) //nolint:gosec // it's ok
	return NewAddress(x, y)
}

// Validate checks if the Address was properly constructed using a
// constructor. The zero value of Address is invalid and will fail this
// validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// X returns the X coordinate of the address.
func (a Address) X() Coordinate {
	return a.x
}

// Y returns the Y coordinate of the address.
func (a Address) Y() Coordinate {
	return a.y
}

// String returns a human-readable representation in the format
// "Address(x,y)". This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("Address(%d,%d)", a.x, a.y)
}

// IsEqual compares two addresses for equality.
// Two addresses are considered equal if they have the same X and Y
// coordinates. Both addresses must pass validation for the comparison to
// succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// Distance calculates the Manhattan distance between two addresses: the sum
// of the absolute differences of their coordinates, |x1-x2| + |y1-y2|. Both
// addresses must pass validation for the calculation to succeed.
//
// Example:
//
//	a, _ := kernel.NewAddress(1, 1)
//	b, _ := kernel.NewAddress(4, 5)
//
//	distance, err := a.Distance(b)
//	// distance = 7 (|1-4| + |1-5| = 3 + 4 = 7), err = nil
func (a Address) Distance(other Address) (int, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(a.x - other.x)
	dy := abs(a.y - other.y)
	return int(dx + dy), nil
}

// setX sets the x coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so that the constructor can run self-encapsulated
// validation while building the value.
func (a *Address) setX(x Coordinate) error {
	if x < AddressMinX || x > AddressMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, AddressMinX, AddressMaxX)
	}

	a.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (a *Address) setY(y Coordinate) error {
	if y < AddressMinY || y > AddressMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, AddressMinY, AddressMaxY)
	}

	a.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
