// Package order provides the Order entity shared by every pattern demo.
// It implements the order aggregate with encapsulated state and validated
// mutation.
//
// The package includes:
//   - Order: The aggregate root holding identity, client reference, a
//     free-form details payload, and the fulfillment flag
//   - OrderChange: A partial-change description applied by the repository's
//     update operation
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty client
//   - The identifier is immutable once assigned
//   - Details are merged, not replaced: keys absent from a change survive
//   - The fulfillment flag defaults to false on creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
