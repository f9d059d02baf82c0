package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateIncome(t *testing.T) {
	tests := []struct {
		name  string
		job   *Job
		hours int
		want  int64
	}{
		{name: "salary ignores hours", job: NewSalaryJob("Guest Lecturer", 1000), hours: 50, want: 1000},
		{name: "salary ignores more hours", job: NewSalaryJob("Guest Lecturer", 1000), hours: 100, want: 1000},
		{name: "salary with zero hours", job: NewSalaryJob("Guest Lecturer", 1000), hours: 0, want: 1000},
		{name: "hourly 10 hours", job: NewHourlyJob("Janitor", 15.0), hours: 10, want: 150},
		{name: "hourly 20 hours", job: NewHourlyJob("Janitor", 15.0), hours: 20, want: 300},
		{name: "fractional rate", job: NewHourlyJob("Barista", 13.75), hours: 4, want: 55},
		{name: "fractional result truncates", job: NewHourlyJob("Barista", 13.75), hours: 1, want: 13},
		{name: "hourly zero hours", job: NewHourlyJob("Cook", 20.0), hours: 0, want: 0},
		{name: "household hours", job: NewHourlyJob("Cook", 10.0), hours: HouseholdHours, want: 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.CalculateIncome(tt.hours))
		})
	}
}

func TestSalariedRaise(t *testing.T) {
	job := NewSalaryJob("Guest Lecturer", 1000)
	assert.Equal(t, int64(1000), job.CalculateIncome(50))

	job.RaiseByAmount(1000)
	assert.Equal(t, int64(2000), job.CalculateIncome(50))

	job.RaiseByPercent(0.1)
	assert.Equal(t, int64(2200), job.CalculateIncome(50))
	assert.Equal(t, "Guest Lecturer", job.Title)
}

func TestHourlyRaise(t *testing.T) {
	job := NewHourlyJob("Janitor", 15.0)
	assert.Equal(t, int64(150), job.CalculateIncome(10))

	job.RaiseByAmount(1.0)
	assert.Equal(t, int64(160), job.CalculateIncome(10))

	job.RaiseByPercent(1.0)
	assert.Equal(t, int64(320), job.CalculateIncome(10))
}

func TestRaiseByZeroPercent(t *testing.T) {
	jobs := []*Job{NewHourlyJob("Cashier", 10.0), NewSalaryJob("Clerk", 1500)}
	for _, job := range jobs {
		before := job.CalculateIncome(10)
		job.RaiseByPercent(0.0)
		assert.Equal(t, before, job.CalculateIncome(10), job.Title)
	}
}

func TestSalaryRaiseTruncatesDelta(t *testing.T) {
	job := NewSalaryJob("Engineer", 1000)
	job.RaiseByAmount(10.9)
	assert.Equal(t, Salary{Amount: 1010}, job.Type)

	job.RaiseByAmount(-10.9)
	assert.Equal(t, Salary{Amount: 1000}, job.Type)
}

func TestNegativeSalaryRaise(t *testing.T) {
	job := NewSalaryJob("Engineer", 1000)
	job.RaiseByPercent(-0.1)
	assert.Equal(t, int64(900), job.CalculateIncome(0))
}

func TestNegativeHourlyRaise(t *testing.T) {
	job := NewHourlyJob("Tutor", 10.0)
	job.RaiseByAmount(-15.0)
	assert.Equal(t, int64(-50), job.CalculateIncome(10))
}

// Salaries cannot be represented below zero, so they stop at zero.
func TestSalaryRaiseBelowZeroStopsAtZero(t *testing.T) {
	byAmount := NewSalaryJob("Intern", 100)
	byAmount.RaiseByAmount(-500)
	assert.Equal(t, int64(0), byAmount.CalculateIncome(0))

	byPercent := NewSalaryJob("Intern", 100)
	byPercent.RaiseByPercent(-2.0)
	assert.Equal(t, int64(0), byPercent.CalculateIncome(0))
}

func TestSalaryRaiseKeepsLargeSalariesExact(t *testing.T) {
	const large = 1<<53 + 1

	job := NewSalaryJob("Exec", large)
	job.RaiseByAmount(0)
	assert.Equal(t, Salary{Amount: large}, job.Type)

	job.RaiseByAmount(2.7)
	assert.Equal(t, Salary{Amount: large + 2}, job.Type)

	job.RaiseByAmount(-1)
	assert.Equal(t, Salary{Amount: large + 1}, job.Type)
}

func TestSalaryRaiseStopsAtMaxSalary(t *testing.T) {
	byAmount := NewSalaryJob("Exec", MaxSalary-10)
	byAmount.RaiseByAmount(1e19)
	assert.Equal(t, Salary{Amount: MaxSalary}, byAmount.Type)
	assert.Equal(t, int64(math.MaxInt64), byAmount.CalculateIncome(0))

	byPercent := NewSalaryJob("Exec", 1<<62)
	byPercent.RaiseByPercent(10)
	assert.Equal(t, Salary{Amount: MaxSalary}, byPercent.Type)
	assert.Equal(t, int64(math.MaxInt64), byPercent.CalculateIncome(0))

	oversized := NewSalaryJob("Exec", math.MaxUint64)
	assert.Equal(t, int64(math.MaxInt64), oversized.CalculateIncome(0))
}

func TestHourlyIncomeSaturates(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), NewHourlyJob("Broker", 1e300).CalculateIncome(2000))
	assert.Equal(t, int64(math.MinInt64), NewHourlyJob("Broker", -1e300).CalculateIncome(2000))
	assert.Equal(t, int64(0), NewHourlyJob("Broker", math.NaN()).CalculateIncome(2000))
}

func TestPayTypeString(t *testing.T) {
	assert.Equal(t, "Hourly(15.0)", Hourly{Rate: 15}.String())
	assert.Equal(t, "Hourly(13.75)", Hourly{Rate: 13.75}.String())
	assert.Equal(t, "Salary(1000)", Salary{Amount: 1000}.String())
}
