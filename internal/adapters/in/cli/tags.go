package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/domain"
)

// newTagsCmd creates the tags command.
func newTagsCmd(opts *rootOptions) *cobra.Command {
	var trigger triggerFlags

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print the tags a reference publishes",
		Long: `Print the publish tags derived from the triggering reference, one per line.
Nothing is printed when the reference publishes nothing.`,
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

			platforms, err := s.cfg.Platforms()
			if err != nil {
				return err
			}
			tags := domain.DeriveTags(t.Ref, s.cfg.TagPolicy())
			if err := domain.ValidateTags(tags, platforms); err != nil {
				return err
			}

			for _, tag := range tags {
				_ = cliWriteLine(cmd.OutOrStdout(), tag.String())
			}
			return nil
		},
	}

	trigger.register(cmd)
	return cmd
}
