package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"familyfinance/internal/scenario"
	"familyfinance/internal/service"
)

func evaluateCmd(opts *rootOptions) *cobra.Command {
	var file string
	var currency string
	var asJSON bool

	c := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a household scenario file and print its income report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runScenario(opts, file, currency)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if report.Name != "" {
				fmt.Fprintf(out, "Household: %s\n", report.Name)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ROLE\tMEMBER\tINCOME\tNOTE")
			for _, m := range report.Members {
				note := ""
				if m.JobRejected {
					note = "job dropped: under working age"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.Role, m.Description, m.Income, note)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			for _, child := range report.RejectedChildren {
				fmt.Fprintf(out, "Rejected child: %s\n", child)
			}
			fmt.Fprintf(out, "Household income: %.0f %s\n", report.HouseholdIncome, report.BaseCurrency)
			fmt.Fprintf(out, "Total: %s\n", report.Total)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Scenario YAML file (required)")
	c.Flags().StringVarP(&currency, "currency", "c", "", "Report currency (overrides the scenario's)")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	_ = c.MarkFlagRequired("file")
	return c
}

func describeCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "describe",
		Short: "Print a one-line description of every family member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runScenario(opts, file, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range report.Members {
				fmt.Fprintln(out, m.Description)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Scenario YAML file (required)")
	_ = c.MarkFlagRequired("file")
	return c
}

func runScenario(opts *rootOptions, file, currency string) (*service.Report, error) {
	sc, err := scenario.LoadFile(file)
	if err != nil {
		return nil, err
	}
	if currency != "" {
		sc.Currency = currency
	}

	svc, cleanup, err := opts.newService()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return svc.Evaluate(sc)
}
