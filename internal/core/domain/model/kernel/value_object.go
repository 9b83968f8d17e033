package kernel

// ValueObject is the contract immutable domain values satisfy.
// Value objects compare by the values of their attributes, they don't have
// an identity.
type ValueObject[T any] interface {
	// SameValueAs returns true if the attributes of both objects are the same.
	SameValueAs(other T) bool
}

var (
	_ ValueObject[CurrencyCode]         = CurrencyCode{}
	_ ValueObject[Money]                = Money{}
	_ ValueObject[GeographicCoordinate] = GeographicCoordinate{}
	_ ValueObject[Email]                = Email{}
	_ ValueObject[UserID]               = UserID{}
	_ ValueObject[UUID]                 = UUID{}
)

// Equals reports whether other is the same concrete variant as v with all
// corresponding fields equal. The comparison starts with a type assertion,
// not an attribute probe: a variant with a single field named "value" never
// equals a different variant that also happens to have a field named "value".
// Comparing against a foreign type returns false, it never fails.
func Equals[T comparable](v T, other any) bool {
	o, ok := other.(T)
	return ok && v == o
}
