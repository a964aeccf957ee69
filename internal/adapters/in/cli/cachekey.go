package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/domain"
)

// newCacheKeyCmd creates the cache-key command.
func newCacheKeyCmd(opts *rootOptions) *cobra.Command {
	var (
		platform string
		day      string
	)

	cmd := &cobra.Command{
		Use:   "cache-key",
		Short: "Print the build cache key of a platform",
		Long: `Print the primary cache key, then every restore key prefix, one per line.
CI cache steps can use them to save and restore the build-layer cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := domain.ParsePlatform(platform)
			if err != nil {
				return err
			}

			when := time.Now()
			if day != "" {
				when, err = time.Parse(time.DateOnly, day)
				if err != nil {
					return fmt.Errorf("%w: --day must be YYYY-MM-DD", domain.ErrInvalidConfig)
				}
			}

			key := domain.NewCacheKey(s.cfg.Build.RunnerOS, p, when)
			_ = cliWriteLine(cmd.OutOrStdout(), key.Primary)
			for _, restore := range key.RestoreKeys {
				_ = cliWriteLine(cmd.OutOrStdout(), restore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Target platform, e.g. linux/arm64")
	cmd.Flags().StringVar(&day, "day", "", "Cache generation day (default today)")
	_ = cmd.MarkFlagRequired("platform")
	return cmd
}
