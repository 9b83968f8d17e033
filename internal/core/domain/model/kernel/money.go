package kernel

import (
	"errors"
	"math"

	"valuekit/internal/pkg/errs"
	"valuekit/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or
// NewMoneyWithExchangeRate.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyWithExchangeRate constructors")

// Money is an immutable monetary amount in minor units (e.g. cents) of a
// currency, optionally annotated with a positive exchange rate. It is a
// composite value object: the currency it holds is itself a value object,
// contained by value.
//
// Example:
//
//	usd, _ := kernel.NewCurrencyCode("USD")
//	money, err := kernel.NewMoneyWithExchangeRate(9999, usd, 1.25)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(money)
//	// Output: Money(amount=9999, currency=CurrencyCode(code="USD"), exchangeRate=1.25)
type Money struct { //nolint:recvcheck // pointer receivers used for construction-time setters
	amount          int64
	currency        CurrencyCode
	exchangeRate    float64
	hasExchangeRate bool
	guard           guard.ConstructorGuard
}

// NewMoney creates Money from a non-negative amount in minor units and a
// constructed currency code.
func NewMoney(amount int64, currency CurrencyCode) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewMoneyWithExchangeRate creates Money carrying an exchange rate.
// The rate must be strictly positive.
func NewMoneyWithExchangeRate(amount int64, currency CurrencyCode, exchangeRate float64) (Money, error) {
	m, err := NewMoney(amount, currency)
	if err != nil {
		return Money{}, err
	}

	if math.IsNaN(exchangeRate) || exchangeRate <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("exchangeRate",
			errors.New("exchange rate must be positive"))
	}
	m.exchangeRate = exchangeRate
	m.hasExchangeRate = true

	return m, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the contained currency code.
func (m Money) Currency() CurrencyCode {
	return m.currency
}

// ExchangeRate returns the exchange rate and whether one was supplied.
func (m Money) ExchangeRate() (float64, bool) {
	return m.exchangeRate, m.hasExchangeRate
}

// Validate checks if the Money was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// SameValueAs compares two monetary amounts field by field.
func (m Money) SameValueAs(other Money) bool {
	return m.amount == other.amount &&
		m.currency.SameValueAs(other.currency) &&
		m.exchangeRate == other.exchangeRate &&
		m.hasExchangeRate == other.hasExchangeRate
}

// Equals reports whether other is a Money with all fields equal.
func (m Money) Equals(other any) bool {
	return Equals(m, other)
}

// Fields returns the declared field list. The exchange rate only appears
// when one was supplied, mirroring equality: amounts with and without a rate
// never compare equal, so their field lists never coincide either.
func (m Money) Fields() []Field {
	fields := []Field{
		{Name: "amount", Value: m.amount},
		{Name: "currency", Value: m.currency},
	}
	if m.hasExchangeRate {
		fields = append(fields, Field{Name: "exchangeRate", Value: m.exchangeRate})
	}
	return fields
}

// Hash combines exactly the fields equality uses, including the nested
// currency code.
func (m Money) Hash() uint64 {
	return HashFields("Money", m.Fields()...)
}

// String implements fmt.Stringer with the canonical synthesized form. The
// nested currency renders through its own representation.
func (m Money) String() string {
	return Represent("Money", m.Fields()...)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("amount cannot be negative"))
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency CurrencyCode) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}
