package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/app"
	"github.com/bnema/hoist/internal/domain"
)

// newBuildCmd creates the build command.
func newBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		runID     string
		platforms []string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and archive images for one or more platforms",
		Long: `Build the image for each platform, archive it under the run's artifacts,
and report every result. In a CI matrix each job passes its own --platform.
Without --platform every configured platform is built.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			a, err := s.wire(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			req, err := a.BuildRequest(app.ResolveRunID(runID, os.Getenv))
			if err != nil {
				return err
			}
			if len(platforms) > 0 {
				req.Platforms, err = domain.ParsePlatforms(platforms)
				if err != nil {
					return err
				}
			}

			results, err := a.Builds.BuildAll(s.ctx, req)
			renderBuilds(cmd.OutOrStdout(), results)
			if err != nil {
				return err
			}
			_ = cliWriteLine(cmd.OutOrStdout(), cliRenderMeta("run", req.RunID))
			return nil
		},
	}

	runIDFlag(cmd, &runID)
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Platform to build (repeatable, default all configured)")
	return cmd
}
