package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedCurrency is returned when a currency code is outside the supported set
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency is an ISO-like currency code
type Currency string

// Supported currencies
const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	CAN Currency = "CAN"
)

// Exchange rates are expressed relative to USD.
var (
	toUSDRates = map[Currency]float64{
		USD: 1.0,
		GBP: 2.0,
		EUR: 2.0 / 3.0,
		CAN: 0.8,
	}
	fromUSDRates = map[Currency]float64{
		USD: 1.0,
		GBP: 0.5,
		EUR: 1.5,
		CAN: 1.25,
	}
)

// MaxAmount is the largest magnitude that converts between any pair of
// supported currencies without leaving the int64 range.
const MaxAmount int64 = 1 << 61

// SupportedCurrencies returns the supported currency codes in a stable order
func SupportedCurrencies() []Currency {
	return []Currency{USD, GBP, EUR, CAN}
}

// ParseCurrency converts external input into a Currency.
// Unlike NewMoney it never panics; use it wherever the code comes from a user.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// IsValid reports whether the currency is one of the supported codes
func (c Currency) IsValid() bool {
	_, ok := toUSDRates[c]
	return ok
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}

// Money is an integer amount in a given currency
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney creates a Money value. It panics if the currency is not supported.
func NewMoney(amount int64, currency Currency) Money {
	mustSupport(currency)
	return Money{Amount: amount, Currency: currency}
}

// Convert returns the equivalent amount in the target currency, rounded half away from zero.
// It panics if the result does not fit in an int64; amounts within MaxAmount always fit.
func (m Money) Convert(target Currency) Money {
	mustSupport(m.Currency)
	mustSupport(target)

	inUSD := float64(m.Amount) * toUSDRates[m.Currency]
	converted := math.Round(inUSD * fromUSDRates[target])
	if converted >= 1<<63 || converted < -(1<<63) {
		panic(fmt.Sprintf("models: converting %s to %s overflows int64", m, target))
	}
	return Money{Amount: int64(converted), Currency: target}
}

// Add converts m into other's currency and returns the sum in that currency
func (m Money) Add(other Money) Money {
	converted := m.Convert(other.Currency)
	return NewMoney(converted.Amount+other.Amount, other.Currency)
}

// Subtract converts m into other's currency and returns m - other in that currency
func (m Money) Subtract(other Money) Money {
	converted := m.Convert(other.Currency)
	return NewMoney(converted.Amount-other.Amount, other.Currency)
}

// String formats the money as "<amount> <currency>"
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

func mustSupport(c Currency) {
	if !c.IsValid() {
		panic(fmt.Sprintf("models: %v: %q", ErrUnsupportedCurrency, string(c)))
	}
}
