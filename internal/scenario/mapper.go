package scenario

import (
	"fmt"

	"familyfinance/internal/service"
	"familyfinance/internal/validation"
)

// ToScenario maps a household DTO onto a service scenario.
// Only structural problems are reported here; field values are validated by the service.
func (h Household) ToScenario() (service.Scenario, error) {
	if len(h.Spouses) != 2 {
		return service.Scenario{}, invalidField("spouses", fmt.Sprintf("exactly two spouses are required, got %d", len(h.Spouses)))
	}

	sc := service.Scenario{
		Name:     h.Name,
		Currency: h.Currency,
		Children: make([]service.PersonSpec, 0, len(h.Children)),
	}

	for i, p := range h.Spouses {
		spec, err := p.toSpec(fmt.Sprintf("spouses[%d]", i))
		if err != nil {
			return service.Scenario{}, err
		}
		sc.Spouses[i] = spec
	}
	for i, p := range h.Children {
		spec, err := p.toSpec(fmt.Sprintf("children[%d]", i))
		if err != nil {
			return service.Scenario{}, err
		}
		sc.Children = append(sc.Children, spec)
	}
	return sc, nil
}

func (p Person) toSpec(field string) (service.PersonSpec, error) {
	spec := service.PersonSpec{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
	}
	if p.Job == nil {
		return spec, nil
	}
	job, err := p.Job.ToSpec(field + ".job")
	if err != nil {
		return service.PersonSpec{}, err
	}
	spec.Job = &job
	return spec, nil
}

// ToSpec maps a job DTO onto a service job spec.
// Each raise must set exactly one of amount or percent.
func (j Job) ToSpec(field string) (service.JobSpec, error) {
	spec := service.JobSpec{
		Title:  j.Title,
		Type:   j.Type,
		Rate:   j.Rate,
		Salary: j.Salary,
	}
	for i, r := range j.Raises {
		raiseField := fmt.Sprintf("%s.raises[%d]", field, i)
		switch {
		case r.Amount != nil && r.Percent != nil:
			return service.JobSpec{}, invalidField(raiseField, "set either amount or percent, not both")
		case r.Amount != nil:
			spec.Raises = append(spec.Raises, service.RaiseSpec{Kind: service.RaiseByAmount, Value: *r.Amount})
		case r.Percent != nil:
			spec.Raises = append(spec.Raises, service.RaiseSpec{Kind: service.RaiseByPercent, Value: *r.Percent})
		default:
			return service.JobSpec{}, invalidField(raiseField, "amount or percent is required")
		}
	}
	return spec, nil
}

func invalidField(field, msg string) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidScenario, validation.ValidationError{Field: field, Message: msg})
}
