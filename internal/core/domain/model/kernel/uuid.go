package kernel

import (
	"fmt"

	"valuekit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID or UUIDFromString")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation to provide
// domain-specific behavior and ensure immutability.
//
// The zero value of UUID is invalid and must be constructed using NewUUID or
// UUIDFromString. Unlike the other variants a UUID is its own representation:
// String returns the canonical textual form, which UUIDFromString accepts
// back.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats, with or without braces, hyphens or a
// urn:uuid: prefix. Returns an error if the string is not a valid UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// String returns the standard textual representation of the UUID,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func (u UUID) String() string {
	return u.id.String()
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// SameValueAs compares two UUIDs by value.
func (u UUID) SameValueAs(other UUID) bool {
	return u.id == other.id
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.SameValueAs(other)
}

// Equals reports whether other is a UUID with the same value.
func (u UUID) Equals(other any) bool {
	return Equals(u, other)
}

// Fields returns the declared field list.
func (u UUID) Fields() []Field {
	return []Field{{Name: "id", Value: u.id.String()}}
}

// Hash combines the fields equality uses.
func (u UUID) Hash() uint64 {
	return HashFields("UUID", u.Fields()...)
}
