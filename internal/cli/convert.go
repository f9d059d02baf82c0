package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"familyfinance/internal/models"
)

func convertCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <amount> <from> <to>",
		Short:   "Convert an amount between USD, GBP, EUR and CAN",
		Example: "  household convert 10 USD GBP",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("amount must be a whole number: %q", args[0])
			}

			svc, cleanup, err := opts.newService()
			if err != nil {
				return err
			}
			defer cleanup()

			converted, err := svc.Convert(amount, args[1], args[2])
			if err != nil {
				return err
			}
			source, _ := models.ParseCurrency(args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", models.NewMoney(amount, source), converted)
			return nil
		},
	}
}
