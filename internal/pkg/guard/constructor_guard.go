// Package guard provides the constructor guard pattern used by domain
// value objects and entities to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. Embedding a guard in a
// struct makes the zero value detectable: only constructors that call
// NewConstructorGuard produce instances that pass validation.
//
// Example usage:
//
//	var ErrCarNotConstructed = errors.New("Car must be created via the factory")
//
//	type Car struct {
//	    components map[string]string
//	    guard      guard.ConstructorGuard
//	}
//
//	func newCar(components map[string]string) Car {
//	    return Car{
//	        components: components,
//	        guard:      guard.NewConstructorGuard(),
//	    }
//	}
//
//	func (c Car) Validate() error {
//	    return c.guard.Validate(ErrCarNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
