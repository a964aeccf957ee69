package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/app"
	"github.com/bnema/hoist/internal/domain"
)

// newPublishCmd creates the publish command.
func newPublishCmd(opts *rootOptions) *cobra.Command {
	var (
		trigger triggerFlags
		runID   string
		purge   bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a run's archived images as manifest lists",
		Long: `Recover every archived image of the run, push the architecture-qualified
images, then write one manifest list per derived tag. Pull requests, bot
actors and skipped branches publish nothing and exit successfully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			t, err := trigger.resolve(s, opts)
			if err != nil {
				return err
			}

			a, err := s.wire(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			w := cmd.OutOrStdout()
			if decision := a.Gates.EvaluatePolicy(s.ctx, t); !decision.Allowed {
				renderSkip(w, decision.Reason)
				return nil
			}
			tags := domain.DeriveTags(t.Ref, s.cfg.TagPolicy())
			if len(tags) == 0 {
				renderSkip(w, domain.SkipNoTags)
				return nil
			}

			expected, err := s.cfg.Platforms()
			if err != nil {
				return err
			}

			id := app.ResolveRunID(runID, os.Getenv)
			archives, err := a.Archives.List(s.ctx, id)
			if err != nil {
				return err
			}

			result, err := a.Publish.Publish(s.ctx, domain.PublishRequest{
				RunID:    id,
				Target:   s.cfg.Target(),
				Tags:     tags,
				Archives: archives,
				Expected: expected,
			})
			if err != nil {
				return err
			}
			renderManifests(w, result.Manifests)

			if purge || s.cfg.Artifacts.Purge {
				if err := a.Archives.Purge(s.ctx, id); err != nil {
					_ = cliWriteLine(cmd.ErrOrStderr(), cliRenderWarning("failed to purge artifacts: "+err.Error()))
				}
			}
			return nil
		},
	}

	trigger.register(cmd)
	runIDFlag(cmd, &runID)
	cmd.Flags().BoolVar(&purge, "purge", false, "Remove the run's archives after publishing")
	return cmd
}
