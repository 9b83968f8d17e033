// Package kernel provides the immutable value-object primitives of the
// application and the contract they share.
//
// The package includes:
//   - The ValueObject contract and the Equals helper for type-discriminating
//     structural equality
//   - Field, Represent and HashFields: explicit, per-variant field lists that
//     drive representation synthesis and hashing
//   - Concrete variants: CurrencyCode, Money, GeographicCoordinate, Email,
//     UserID and UUID
//
// Every variant is constructed through a validating constructor and is
// immutable afterwards; "modification" always means constructing a new
// instance. Equality compares the exact concrete variant plus all of its
// declared fields, hashing combines exactly the fields equality uses, and the
// debug representation is a deterministic rendering of the variant name and
// its field values. Because nothing is mutated after construction, all
// operations are safe for concurrent use without coordination.
package kernel
