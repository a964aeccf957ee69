// Package cli implements the CLI adapter for hoist.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/zerowrap"
	"github.com/spf13/cobra"

	"github.com/bnema/hoist/internal/adapters/out/gitref"
	"github.com/bnema/hoist/internal/app"
	"github.com/bnema/hoist/internal/domain"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// rootOptions are flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
	workDir    string
}

// NewRootCmd creates the root command for the hoist CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "hoist",
		Short: "hoist - multi-architecture container release orchestrator",
		Long: `hoist builds a container image for every configured platform, moves the
images between CI jobs as compressed archives, and publishes them together
as one manifest list per release tag once every quality gate has passed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default ./hoist.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override logging.level")
	rootCmd.PersistentFlags().StringVarP(&opts.workDir, "workdir", "C", ".", "Project directory")

	rootCmd.AddCommand(newTagsCmd(opts))
	rootCmd.AddCommand(newCacheKeyCmd(opts))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newGatesCmd(opts))
	rootCmd.AddCommand(newPublishCmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "hoist %s\n", Version)
			_, _ = fmt.Fprintf(w, "Commit: %s\n", Commit)
			_, _ = fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}

// Execute runs the CLI and returns the process exit code.
// Published and skipped runs exit 0; every failure exits 1.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cliRenderError(err.Error()))
		return 1
	}
	return 0
}

// session is the loaded configuration and logger of one command.
type session struct {
	cfg     app.Config
	log     zerowrap.Logger
	ctx     context.Context
	cleanup func()
}

func (s *session) close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func loadSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	_, cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log, cleanup, err := app.InitLogger(cfg)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &session{
		cfg:     cfg,
		log:     log,
		ctx:     zerowrap.WithCtx(ctx, log),
		cleanup: cleanup,
	}, nil
}

// wire builds the full application for commands that touch docker or storage.
func (s *session) wire(cmd *cobra.Command, opts *rootOptions) (*app.App, error) {
	return app.New(s.ctx, s.cfg, s.log, app.Options{
		Output:  cmd.ErrOrStderr(),
		WorkDir: opts.workDir,
	})
}

// triggerFlags are the explicit trigger overrides.
type triggerFlags struct {
	input app.TriggerInput
}

func (f *triggerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.input.Ref, "ref", "", "Git reference (default from CI environment or HEAD)")
	cmd.Flags().StringVar(&f.input.Actor, "actor", "", "User or bot that triggered the run")
	cmd.Flags().StringVar(&f.input.Event, "event", "", "Triggering event (push, pull_request)")
}

func (f *triggerFlags) resolve(s *session, opts *rootOptions) (domain.Trigger, error) {
	return app.ResolveTrigger(s.ctx, f.input, os.Getenv, gitref.NewSource(opts.workDir))
}

// runIDFlag registers --run-id.
func runIDFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "run-id", "", "Run identifier shared by all jobs (default from CI environment)")
}

