package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/adapters/out/gaterunner"
	"github.com/bnema/hoist/internal/domain"
	"github.com/bnema/hoist/internal/usecase/gate"
)

// newGatesCmd creates the gates command.
func newGatesCmd(opts *rootOptions) *cobra.Command {
	var external []string

	cmd := &cobra.Command{
		Use:   "gates",
		Short: "Run every quality gate and aggregate the results",
		Long: `Run the configured gates in parallel. Statuses of checks that ran elsewhere
can be added with --external name=status; only "success" passes.
Exits non-zero when any gate failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			ext, err := gate.ParseExternal(external)
			if err != nil {
				return err
			}

			runner := gaterunner.NewRunner(opts.workDir, cmd.ErrOrStderr(), cmd.ErrOrStderr())
			svc := gate.NewService(runner, s.cfg.PublishPolicy())

			report := svc.RunGates(s.ctx, s.cfg.GateSpecs())
			report.Results = append(report.Results, ext...)
			renderGates(cmd.OutOrStdout(), report)

			if !report.Passed() {
				return fmt.Errorf("%w: %v", domain.ErrGateFailed, report.Failed())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&external, "external", nil, "External gate status as name=status (repeatable)")
	return cmd
}
