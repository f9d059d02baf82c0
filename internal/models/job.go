package models

import (
	"fmt"
	"math"
	"strconv"
)

// PayType is how a job pays. It is either Hourly or Salary.
type PayType interface {
	fmt.Stringer
	isPayType()
}

// Hourly pays Rate for every hour worked
type Hourly struct {
	Rate float64
}

// MaxSalary is the largest salary a raise can produce; it keeps income within int64
const MaxSalary uint64 = math.MaxInt64

// Salary pays a fixed Amount regardless of hours worked
type Salary struct {
	Amount uint64
}

func (Hourly) isPayType() {}
func (Salary) isPayType() {}

// String renders the rate with at least one decimal place, e.g. "Hourly(15.0)"
func (h Hourly) String() string {
	return "Hourly(" + formatRate(h.Rate) + ")"
}

// String renders the salary, e.g. "Salary(1000)"
func (s Salary) String() string {
	return "Salary(" + strconv.FormatUint(s.Amount, 10) + ")"
}

// Job is a titled position with a pay structure.
// The title never changes; the pay type is replaced by raises.
type Job struct {
	Title string
	Type  PayType
}

// NewJob creates a job with the given pay type
func NewJob(title string, payType PayType) *Job {
	return &Job{Title: title, Type: payType}
}

// NewHourlyJob creates an hourly job
func NewHourlyJob(title string, rate float64) *Job {
	return NewJob(title, Hourly{Rate: rate})
}

// NewSalaryJob creates a salaried job
func NewSalaryJob(title string, amount uint64) *Job {
	return NewJob(title, Salary{Amount: amount})
}

// CalculateIncome returns the income for the given hours.
// Hourly pay is truncated toward zero; salaries ignore hours.
func (j *Job) CalculateIncome(hours int) int64 {
	switch t := j.Type.(type) {
	case Hourly:
		return truncToInt64(t.Rate * float64(hours))
	case Salary:
		return int64(min(t.Amount, MaxSalary))
	default:
		return 0
	}
}

// RaiseByAmount adds delta to the rate or, for salaries, the truncated delta to the amount
func (j *Job) RaiseByAmount(delta float64) {
	switch t := j.Type.(type) {
	case Hourly:
		j.Type = Hourly{Rate: t.Rate + delta}
	case Salary:
		j.Type = Salary{Amount: addToSalary(t.Amount, math.Trunc(delta))}
	}
}

// RaiseByPercent scales the pay by (1 + percent); 0.1 is a ten percent raise
func (j *Job) RaiseByPercent(percent float64) {
	switch t := j.Type.(type) {
	case Hourly:
		j.Type = Hourly{Rate: t.Rate * (1 + percent)}
	case Salary:
		j.Type = Salary{Amount: clampSalary(float64(t.Amount) * (1 + percent))}
	}
}

// addToSalary adds a whole-number delta using integer arithmetic,
// clamping the result to [0, MaxSalary].
func addToSalary(amount uint64, delta float64) uint64 {
	amount = min(amount, MaxSalary)
	switch {
	case math.IsNaN(delta):
		return amount
	case delta >= 0:
		if delta >= float64(MaxSalary) || uint64(delta) > MaxSalary-amount {
			return MaxSalary
		}
		return amount + uint64(delta)
	default:
		if -delta >= float64(MaxSalary) || uint64(-delta) >= amount {
			return 0
		}
		return amount - uint64(-delta)
	}
}

// clampSalary truncates toward zero and clamps to [0, MaxSalary]
func clampSalary(v float64) uint64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= float64(MaxSalary) {
		return MaxSalary
	}
	return uint64(v)
}

// truncToInt64 truncates toward zero, saturating at the int64 bounds. NaN becomes 0.
func truncToInt64(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= 1<<63:
		return math.MaxInt64
	case v < -(1 << 63):
		return math.MinInt64
	}
	return int64(v)
}

func formatRate(rate float64) string {
	if rate == math.Trunc(rate) && !math.IsInf(rate, 0) {
		return strconv.FormatFloat(rate, 'f', 1, 64)
	}
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
