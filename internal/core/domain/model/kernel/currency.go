package kernel

import (
	"errors"
	"unicode"

	"valuekit/internal/pkg/errs"
	"valuekit/internal/pkg/guard"
)

// CurrencyCodeLength is the required length of an alphabetic currency code.
const CurrencyCodeLength = 3

// ErrCurrencyCodeIsNotConstructed is returned when attempting to use an
// improperly initialized CurrencyCode. Codes must be created via the
// NewCurrencyCode constructor.
var ErrCurrencyCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"currency code must be created via NewCurrencyCode constructor")

// CurrencyCode is an immutable value object holding a 3-letter alphabetic
// currency code such as "USD". The zero value is invalid and will fail
// validation - use the constructor to create instances.
//
// Example:
//
//	code, err := kernel.NewCurrencyCode("USD")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(code) // Output: CurrencyCode(code="USD")
type CurrencyCode struct {
	code  string
	guard guard.ConstructorGuard
}

// NewCurrencyCode creates a CurrencyCode from the supplied code.
// The code must be exactly 3 letters; anything else fails construction and
// no instance is observable.
func NewCurrencyCode(code string) (CurrencyCode, error) {
	if code == "" {
		return CurrencyCode{}, errs.NewValueIsRequiredError("code")
	}
	if !isAlphabeticCode(code) {
		return CurrencyCode{}, errs.NewValueIsInvalidErrorWithCause("code",
			errors.New("currency code must be 3 letters"))
	}

	return CurrencyCode{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Code returns the currency code exactly as supplied to the constructor.
func (c CurrencyCode) Code() string {
	return c.code
}

// Validate checks if the CurrencyCode was properly constructed.
func (c CurrencyCode) Validate() error {
	return c.guard.Validate(ErrCurrencyCodeIsNotConstructed)
}

// SameValueAs compares two currency codes by their code value.
func (c CurrencyCode) SameValueAs(other CurrencyCode) bool {
	return c.code == other.code
}

// Equals reports whether other is a CurrencyCode with the same code.
// Any other variant compares unequal, even one that also wraps a string.
func (c CurrencyCode) Equals(other any) bool {
	return Equals(c, other)
}

// Fields returns the declared field list used by equality, hashing and
// representation.
func (c CurrencyCode) Fields() []Field {
	return []Field{{Name: "code", Value: c.code}}
}

// Hash combines the fields equality uses. Equal codes always hash equally.
func (c CurrencyCode) Hash() uint64 {
	return HashFields("CurrencyCode", c.Fields()...)
}

// String implements fmt.Stringer with the canonical synthesized form,
// e.g. CurrencyCode(code="USD").
func (c CurrencyCode) String() string {
	return Represent("CurrencyCode", c.Fields()...)
}

func isAlphabeticCode(code string) bool {
	runes := []rune(code)
	if len(runes) != CurrencyCodeLength {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
