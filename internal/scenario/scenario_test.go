package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyfinance/internal/service"
	"familyfinance/internal/validation"
)

func TestLoadFile(t *testing.T) {
	sc, err := LoadFile("testdata/neward.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Neward", sc.Name)
	assert.Equal(t, "EUR", sc.Currency)
	assert.Equal(t, "Ted", sc.Spouses[0].FirstName)
	require.NotNil(t, sc.Spouses[0].Job)
	assert.Equal(t, []service.RaiseSpec{
		{Kind: service.RaiseByAmount, Value: 1000},
		{Kind: service.RaiseByPercent, Value: 0.1},
	}, sc.Spouses[0].Job.Raises)
	assert.Equal(t, 15.0, sc.Spouses[1].Job.Rate)
	require.Len(t, sc.Children, 2)
	assert.Equal(t, 15, sc.Children[1].Age)
}

func TestLoadFileEvaluates(t *testing.T) {
	sc, err := LoadFile("testdata/neward.yaml")
	require.NoError(t, err)

	report, err := service.NewHouseholdService("USD", nil, nil).Evaluate(sc)
	require.NoError(t, err)

	assert.Equal(t, 59700.0, report.HouseholdIncome)
	assert.Equal(t, int64(89550), report.Total.Amount)
	assert.True(t, report.Members[3].JobRejected)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{name: "empty document", input: ""},
		{name: "unknown field", input: "name: x\nspouse: []\n"},
		{
			name:  "one spouse",
			input: "spouses:\n  - first_name: Solo\n    age: 30\n",
			field: "spouses",
		},
		{
			name: "raise with both kinds",
			input: `spouses:
  - first_name: A
    age: 30
    job: {title: T, type: hourly, rate: 10, raises: [{amount: 1, percent: 0.1}]}
  - first_name: B
    age: 30
`,
			field: "spouses[0].job.raises[0]",
		},
		{
			name: "raise with no kind",
			input: `spouses:
  - first_name: A
    age: 30
  - first_name: B
    age: 30
    job: {title: T, type: salary, salary: 10, raises: [{}]}
`,
			field: "spouses[1].job.raises[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrInvalidScenario))
			if tt.field != "" {
				var vErr validation.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.field, vErr.Field)
			}
		})
	}
}

func TestNonFiniteRaiseIsRejected(t *testing.T) {
	sc, err := Parse([]byte(`spouses:
  - first_name: A
    age: 30
    job: {title: T, type: hourly, rate: 10, raises: [{percent: .nan}]}
  - first_name: B
    age: 30
`))
	require.NoError(t, err)

	_, err = service.NewHouseholdService("USD", nil, nil).Evaluate(sc)
	require.True(t, errors.Is(err, service.ErrInvalidScenario))
	var vErr validation.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "raise", vErr.Field)
}

func TestToScenarioChildren(t *testing.T) {
	h := Household{
		Spouses: []Person{{FirstName: "A", Age: 30}, {FirstName: "B", Age: 30}},
		Children: []Person{
			{FirstName: "C", Age: 2},
			{FirstName: "D", Age: 17, Job: &Job{Title: "Tutor", Type: "hourly", Rate: 12}},
		},
	}

	sc, err := h.ToScenario()
	require.NoError(t, err)
	require.Len(t, sc.Children, 2)
	assert.Nil(t, sc.Children[0].Job)
	require.NotNil(t, sc.Children[1].Job)
	assert.Equal(t, "Tutor", sc.Children[1].Job.Title)
}
