package kernel

import (
	"errors"
	"strings"

	"valuekit/internal/pkg/errs"
	"valuekit/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email. Emails must be created via the NewEmail constructor.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// ErrUserIDIsNotConstructed is returned when attempting to use an improperly
// initialized UserID. User IDs must be created via the NewUserID constructor.
var ErrUserIDIsNotConstructed = errs.NewValueIsRequiredError(
	"user ID must be created via NewUserID constructor")

// Email is an immutable email address. Email and UserID both wrap a single
// string, yet they are distinct variants: an Email never equals a UserID
// holding the same string.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email from the supplied address. The address is
// required and must contain exactly one "@" with non-empty local and domain
// parts.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	local, domain, found := strings.Cut(value, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			errors.New("email must contain one @ with non-empty local and domain parts"))
	}

	return Email{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the address exactly as supplied to the constructor.
func (e Email) Value() string {
	return e.value
}

// Validate checks if the Email was properly constructed.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// SameValueAs compares two emails by their address.
func (e Email) SameValueAs(other Email) bool {
	return e.value == other.value
}

// Equals reports whether other is an Email with the same address.
func (e Email) Equals(other any) bool {
	return Equals(e, other)
}

// Fields returns the declared field list.
func (e Email) Fields() []Field {
	return []Field{{Name: "value", Value: e.value}}
}

// Hash combines the fields equality uses.
func (e Email) Hash() uint64 {
	return HashFields("Email", e.Fields()...)
}

// String implements fmt.Stringer, e.g. Email(value="john@example.com").
func (e Email) String() string {
	return Represent("Email", e.Fields()...)
}

// UserID is an immutable user identifier.
type UserID struct {
	value string
	guard guard.ConstructorGuard
}

// NewUserID creates a UserID from the supplied value, which is required.
func NewUserID(value string) (UserID, error) {
	if value == "" {
		return UserID{}, errs.NewValueIsRequiredError("userID")
	}

	return UserID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the identifier exactly as supplied to the constructor.
func (u UserID) Value() string {
	return u.value
}

// Validate checks if the UserID was properly constructed.
func (u UserID) Validate() error {
	return u.guard.Validate(ErrUserIDIsNotConstructed)
}

// SameValueAs compares two user IDs by their value.
func (u UserID) SameValueAs(other UserID) bool {
	return u.value == other.value
}

// Equals reports whether other is a UserID with the same value.
func (u UserID) Equals(other any) bool {
	return Equals(u, other)
}

// Fields returns the declared field list.
func (u UserID) Fields() []Field {
	return []Field{{Name: "value", Value: u.value}}
}

// Hash combines the fields equality uses.
func (u UserID) Hash() uint64 {
	return HashFields("UserID", u.Fields()...)
}

// String implements fmt.Stringer, e.g. UserID(value="123").
func (u UserID) String() string {
	return Represent("UserID", u.Fields()...)
}
