package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"familyfinance/internal/models"
	"familyfinance/internal/service"
)

func incomeCmd(opts *rootOptions) *cobra.Command {
	var spec service.JobSpec
	var hours int
	var raises []string

	c := &cobra.Command{
		Use:   "income",
		Short: "Calculate the income of a single job",
		Example: `  household income --type hourly --rate 15 --hours 10
  household income --type salary --salary 1000 --raise amount:1000 --raise percent:0.1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range raises {
				raise, err := parseRaise(r)
				if err != nil {
					return err
				}
				spec.Raises = append(spec.Raises, raise)
			}

			svc, cleanup, err := opts.newService()
			if err != nil {
				return err
			}
			defer cleanup()

			income, err := svc.Income(spec, hours)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %d hours: %d\n", income.Title, income.Pay, income.Hours, income.Income)
			return nil
		},
	}

	c.Flags().StringVar(&spec.Title, "title", "Job", "Job title")
	c.Flags().StringVar(&spec.Type, "type", "", "Pay type: hourly or salary (required)")
	c.Flags().Float64Var(&spec.Rate, "rate", 0, "Hourly rate")
	c.Flags().Int64Var(&spec.Salary, "salary", 0, "Yearly salary")
	c.Flags().IntVar(&hours, "hours", models.HouseholdHours, "Hours worked")
	c.Flags().StringArrayVar(&raises, "raise", nil, "Raise applied in order, as amount:<n> or percent:<p> (repeatable)")

	_ = c.MarkFlagRequired("type")
	return c
}

// parseRaise parses "amount:100" or "percent:0.1"
func parseRaise(s string) (service.RaiseSpec, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		return service.RaiseSpec{}, fmt.Errorf("invalid raise %q: expected kind:value", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return service.RaiseSpec{}, fmt.Errorf("invalid raise %q: %w", s, err)
	}
	return service.RaiseSpec{Kind: strings.TrimSpace(kind), Value: v}, nil
}
