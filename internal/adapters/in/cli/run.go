package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/app"
	"github.com/bnema/hoist/internal/domain"
	"github.com/bnema/hoist/internal/usecase/gate"
)

// newRunCmd creates the run command.
func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		trigger  triggerFlags
		runID    string
		external []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a complete release in this process",
		Long: `Run gates and builds concurrently, apply the publish policy, then publish.
Equivalent to "build", "gates" and "publish" on a single machine.`,
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

			t, err := trigger.resolve(s, opts)
			if err != nil {
				return err
			}

			a, err := s.wire(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			report, err := a.Pipeline.Run(s.ctx, domain.RunRequest{
				RunID:    app.ResolveRunID(runID, os.Getenv),
				Trigger:  t,
				External: ext,
			})
			renderReport(cmd, report)
			return err
		},
	}

	trigger.register(cmd)
	runIDFlag(cmd, &runID)
	cmd.Flags().StringSliceVar(&external, "external", nil, "External gate status as name=status (repeatable)")
	return cmd
}

func renderReport(cmd *cobra.Command, report domain.RunReport) {
	w := cmd.OutOrStdout()
	renderGates(w, report.Gates)
	if len(report.Builds) > 0 {
		renderBuilds(w, report.Builds)
	}
	switch report.Outcome {
	case domain.OutcomePublished:
		renderManifests(w, report.Manifests)
	case domain.OutcomeSkipped:
		renderSkip(w, report.SkipReason)
	}
}
