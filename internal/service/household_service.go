package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"familyfinance/internal/logger"
	"familyfinance/internal/metrics"
	"familyfinance/internal/models"
	"familyfinance/internal/validation"
)

var (
	ErrInvalidScenario = errors.New("invalid household scenario")
	ErrInvalidJob      = errors.New("invalid job")
)

// Raise kinds accepted in a RaiseSpec
const (
	RaiseByAmount  = "amount"
	RaiseByPercent = "percent"
)

// Member roles in a report
const (
	RoleSpouse = "spouse"
	RoleChild  = "child"
)

// RaiseSpec describes a raise applied to a job after it is created
type RaiseSpec struct {
	Kind  string
	Value float64
}

// JobSpec describes a job from external input
type JobSpec struct {
	Title  string
	Type   string
	Rate   float64
	Salary int64
	Raises []RaiseSpec
}

// PersonSpec describes a person from external input
type PersonSpec struct {
	FirstName string
	LastName  string
	Age       int
	Job       *JobSpec
}

// Scenario describes a household to evaluate
type Scenario struct {
	Name     string
	Spouses  [2]PersonSpec
	Children []PersonSpec
	Currency string
}

// MemberReport summarises one family member
type MemberReport struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	JobRejected bool      `json:"job_rejected"`
	Married     bool      `json:"married"`
	Income      int64     `json:"income"`
}

// Report is the result of evaluating a Scenario
type Report struct {
	Name             string          `json:"name,omitempty"`
	Members          []MemberReport  `json:"members"`
	RejectedChildren []string        `json:"rejected_children"`
	HouseholdIncome  float64         `json:"household_income"`
	BaseCurrency     models.Currency `json:"base_currency"`
	Total            models.Money    `json:"total"`
}

// JobIncome is the income of a single job
type JobIncome struct {
	Title  string `json:"title"`
	Pay    string `json:"pay"`
	Hours  int    `json:"hours"`
	Income int64  `json:"income"`
}

// HouseholdService builds families from external descriptions and reports on them
type HouseholdService struct {
	baseCurrency models.Currency
	metrics      *metrics.Metrics
	log          *logger.Logger
}

// NewHouseholdService creates a new household service.
// Household incomes are treated as amounts in baseCurrency.
func NewHouseholdService(baseCurrency models.Currency, m *metrics.Metrics, log *logger.Logger) *HouseholdService {
	if log == nil {
		log = logger.NewNop()
	}
	return &HouseholdService{
		baseCurrency: baseCurrency,
		metrics:      m,
		log:          log,
	}
}

// BaseCurrency returns the currency household incomes are expressed in
func (s *HouseholdService) BaseCurrency() models.Currency {
	return s.baseCurrency
}

// Evaluate builds the family described by the scenario and reports its income
func (s *HouseholdService) Evaluate(sc Scenario) (*Report, error) {
	report, err := s.evaluate(sc)
	if err != nil {
		s.metrics.IncrementHouseholdsEvaluated("invalid")
		return nil, err
	}
	s.metrics.IncrementHouseholdsEvaluated("ok")
	s.log.Debug("household evaluated",
		"name", sc.Name,
		"members", len(report.Members),
		"rejected_children", len(report.RejectedChildren),
		"income", report.HouseholdIncome,
	)
	return report, nil
}

func (s *HouseholdService) evaluate(sc Scenario) (*Report, error) {
	target := s.baseCurrency
	if strings.TrimSpace(sc.Currency) != "" {
		c, err := validation.ValidateCurrency("currency", sc.Currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
		target = c
	}

	// Validate everything before building anything
	for i, spec := range sc.Spouses {
		if err := validatePerson(spec); err != nil {
			return nil, fmt.Errorf("%w: spouse %d: %w", ErrInvalidScenario, i+1, err)
		}
	}
	for i, spec := range sc.Children {
		if err := validatePerson(spec); err != nil {
			return nil, fmt.Errorf("%w: child %d: %w", ErrInvalidScenario, i+1, err)
		}
	}

	spouse1, rejected1 := s.buildPerson(sc.Spouses[0])
	spouse2, rejected2 := s.buildPerson(sc.Spouses[1])
	jobRejected := map[*models.Person]bool{spouse1: rejected1, spouse2: rejected2}

	family := models.NewFamily(spouse1, spouse2)
	for _, p := range []*models.Person{spouse1, spouse2} {
		if p.Spouse() == nil {
			s.metrics.IncrementAgeGateRejection("spouse")
		}
	}

	report := &Report{
		Name:             sc.Name,
		RejectedChildren: []string{},
		BaseCurrency:     s.baseCurrency,
	}
	for _, spec := range sc.Children {
		child, rejected := s.buildPerson(spec)
		added := family.HaveChild(child)
		s.metrics.IncrementChildAdded(added)
		if !added {
			report.RejectedChildren = append(report.RejectedChildren, child.Describe())
			continue
		}
		jobRejected[child] = rejected
	}

	spouseA, spouseB := family.Spouses()
	for _, member := range []*models.Person{spouseA, spouseB} {
		report.Members = append(report.Members, memberReport(member, RoleSpouse, jobRejected[member]))
	}
	for _, member := range family.Children() {
		report.Members = append(report.Members, memberReport(member, RoleChild, jobRejected[member]))
	}

	report.HouseholdIncome = family.HouseholdIncome()
	if math.Abs(report.HouseholdIncome) > float64(models.MaxAmount) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario,
			validation.ValidationError{Field: "income", Message: "household income is too large to convert"})
	}
	total := models.NewMoney(int64(math.Round(report.HouseholdIncome)), s.baseCurrency)
	report.Total = s.convert(total, target)
	return report, nil
}

// Convert converts an amount between two currency codes
func (s *HouseholdService) Convert(amount int64, from, to string) (models.Money, error) {
	source, err := validation.ValidateCurrency("from", from)
	if err != nil {
		return models.Money{}, err
	}
	target, err := validation.ValidateCurrency("to", to)
	if err != nil {
		return models.Money{}, err
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return models.Money{}, err
	}
	return s.convert(models.NewMoney(amount, source), target), nil
}

// Income builds the described job, applies its raises in order and returns the income for hours
func (s *HouseholdService) Income(spec JobSpec, hours int) (*JobIncome, error) {
	if err := validation.ValidateHours(hours); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	job, err := buildJob(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return &JobIncome{
		Title:  job.Title,
		Pay:    job.Type.String(),
		Hours:  hours,
		Income: job.CalculateIncome(hours),
	}, nil
}

func (s *HouseholdService) convert(m models.Money, target models.Currency) models.Money {
	s.metrics.IncrementConversion(m.Currency.String(), target.String())
	return m.Convert(target)
}

func memberReport(member *models.Person, role string, jobRejected bool) MemberReport {
	var income int64
	if job := member.Job(); job != nil {
		income = job.CalculateIncome(models.HouseholdHours)
	}
	return MemberReport{
		ID:          member.ID,
		Role:        role,
		Description: member.Describe(),
		JobRejected: jobRejected,
		Married:     member.Spouse() != nil,
		Income:      income,
	}
}

// buildPerson creates a validated person and offers them their job.
// The second result reports whether the age gate dropped the job.
func (s *HouseholdService) buildPerson(spec PersonSpec) (*models.Person, bool) {
	p := models.NewPerson(strings.TrimSpace(spec.FirstName), strings.TrimSpace(spec.LastName), spec.Age)
	if spec.Job == nil {
		return p, false
	}
	// Jobs were validated with the person, so buildJob cannot fail here
	job, _ := buildJob(*spec.Job)
	if !p.SetJob(job) {
		s.metrics.IncrementAgeGateRejection("job")
		return p, true
	}
	return p, false
}

func validatePerson(spec PersonSpec) error {
	if err := validation.ValidateName(spec.FirstName, spec.LastName); err != nil {
		return err
	}
	if err := validation.ValidateAge(spec.Age); err != nil {
		return err
	}
	if spec.Job != nil {
		if _, err := buildJob(*spec.Job); err != nil {
			return err
		}
	}
	return nil
}

func buildJob(spec JobSpec) (*models.Job, error) {
	payType, err := validation.ValidatePayType(spec.Type, spec.Rate, spec.Salary)
	if err != nil {
		return nil, err
	}
	job := models.NewJob(spec.Title, payType)
	for _, raise := range spec.Raises {
		if err := validation.ValidateRaise(raise.Value); err != nil {
			return nil, err
		}
		switch strings.ToLower(strings.TrimSpace(raise.Kind)) {
		case RaiseByAmount:
			job.RaiseByAmount(raise.Value)
		case RaiseByPercent:
			job.RaiseByPercent(raise.Value)
		default:
			return nil, validation.ValidationError{Field: "raise", Message: fmt.Sprintf("unknown raise kind %q", raise.Kind)}
		}
	}
	return job, nil
}
