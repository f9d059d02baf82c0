package validation

import (
	"fmt"
	"math"
	"strings"

	"familyfinance/internal/models"
)

// MaxAge is the oldest age accepted from external input
const MaxAge = 150

// Pay kinds accepted from external input
const (
	PayKindHourly = "hourly"
	PayKindSalary = "salary"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName checks that at least one name component is present
func ValidateName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" && strings.TrimSpace(lastName) == "" {
		return ValidationError{Field: "name", Message: "first name or last name is required"}
	}
	return nil
}

// ValidateAge checks that an age is within a plausible range
func ValidateAge(age int) error {
	if age < 0 {
		return ValidationError{Field: "age", Message: "age cannot be negative"}
	}
	if age > MaxAge {
		return ValidationError{Field: "age", Message: fmt.Sprintf("age cannot exceed %d", MaxAge)}
	}
	return nil
}

// ValidateHours checks that hours worked is not negative
func ValidateHours(hours int) error {
	if hours < 0 {
		return ValidationError{Field: "hours", Message: "hours cannot be negative"}
	}
	return nil
}

// ValidateAmount checks that an amount can be converted between any two currencies
func ValidateAmount(amount int64) error {
	if amount > models.MaxAmount || amount < -models.MaxAmount {
		return ValidationError{Field: "amount", Message: fmt.Sprintf("amount must be between %d and %d", -models.MaxAmount, models.MaxAmount)}
	}
	return nil
}

// ValidateRaise checks that a raise value is a finite number
func ValidateRaise(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ValidationError{Field: "raise", Message: "raise must be a finite number"}
	}
	return nil
}

// ValidateCurrency parses a currency code for the given field
func ValidateCurrency(field, code string) (models.Currency, error) {
	if strings.TrimSpace(code) == "" {
		return "", ValidationError{Field: field, Message: "currency is required"}
	}
	c, err := models.ParseCurrency(code)
	if err != nil {
		return "", ValidationError{Field: field, Message: fmt.Sprintf("unsupported currency %q", code)}
	}
	return c, nil
}

// ValidatePayType builds a pay type from its external description
func ValidatePayType(kind string, rate float64, salary int64) (models.PayType, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case PayKindHourly:
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, ValidationError{Field: "rate", Message: "rate must be a finite number"}
		}
		return models.Hourly{Rate: rate}, nil
	case PayKindSalary:
		if salary < 0 {
			return nil, ValidationError{Field: "salary", Message: "salary cannot be negative"}
		}
		return models.Salary{Amount: uint64(salary)}, nil
	case "":
		return nil, ValidationError{Field: "type", Message: "pay type is required"}
	default:
		return nil, ValidationError{Field: "type", Message: fmt.Sprintf("unknown pay type %q", kind)}
	}
}
