package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"familyfinance/internal/config"
	"familyfinance/internal/logger"
	"familyfinance/internal/models"
	"familyfinance/internal/service"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	base  string
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "household",
		Short:        "Evaluate household incomes, jobs and currency conversions",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.base, "base", config.Load().BaseCurrency, "currency household incomes are expressed in (env BASE_CURRENCY)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		evaluateCmd(opts),
		describeCmd(opts),
		convertCmd(opts),
		incomeCmd(opts),
	)
	return cmd
}

// newService builds the household service for a single command run.
// The returned cleanup flushes the logger.
func (o *rootOptions) newService() (*service.HouseholdService, func(), error) {
	base, err := models.ParseCurrency(o.base)
	if err != nil {
		return nil, nil, fmt.Errorf("--base: %w", err)
	}

	log := logger.NewNop()
	if o.debug {
		log, err = logger.New("development")
		if err != nil {
			return nil, nil, err
		}
	}
	return service.NewHouseholdService(base, nil, log), log.Sync, nil
}
