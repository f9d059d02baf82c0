package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Minimum ages for age-gated changes
const (
	MinWorkingAge  = 16
	MinMarriageAge = 18
)

// Person is an individual who may hold a job and have a spouse.
// The spouse is a back-reference to a Person owned by the caller.
type Person struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Age       int

	job    *Job
	spouse *Person
}

// NewPerson creates a person. It panics if both name components are empty.
func NewPerson(firstName, lastName string, age int) *Person {
	if firstName == "" && lastName == "" {
		panic("models: at least one of firstName or lastName must be provided")
	}
	return &Person{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}
}

// Job returns the person's job, or nil
func (p *Person) Job() *Job {
	return p.job
}

// SetJob assigns a job when the person is at least MinWorkingAge.
// Younger people keep their current job; the call is a no-op and returns false.
func (p *Person) SetJob(job *Job) bool {
	if p.Age < MinWorkingAge {
		return false
	}
	p.job = job
	return true
}

// Spouse returns the person's spouse, or nil
func (p *Person) Spouse() *Person {
	return p.spouse
}

// SetSpouse links a spouse when the person is at least MinMarriageAge.
// Only this side of the relationship is updated.
func (p *Person) SetSpouse(spouse *Person) bool {
	if p.Age < MinMarriageAge {
		return false
	}
	p.spouse = spouse
	return true
}

// Describe returns a one-line summary of the person
func (p *Person) Describe() string {
	job := "none"
	if p.job != nil && p.job.Type != nil {
		job = p.job.Type.String()
	}
	spouse := "none"
	if p.spouse != nil {
		spouse = p.spouse.FirstName
	}
	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]",
		p.FirstName, p.LastName, p.Age, job, spouse)
}

// String implements fmt.Stringer
func (p *Person) String() string {
	return p.Describe()
}
