package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"prtrain.dev/prtrain/internal/actions/merge"
	"prtrain.dev/prtrain/internal/cli/helpers"
	"prtrain.dev/prtrain/internal/config"
	prerrors "prtrain.dev/prtrain/internal/errors"
	"prtrain.dev/prtrain/internal/runtime"
	"prtrain.dev/prtrain/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "prtrain",
		Short: "Merge a train of numbered branches into each other and into a combined branch",
		Long: `prtrain merges a PR train: branches named <root>/1, <root>/2, ... <root>/N.

Run it from any branch of the train (or from <root>/combined). Each step is merged
into the next one in order, then the last step is merged into <root>/combined,
which is created if needed. The branch you started on is checked out again at the end.

Configuration is read from ~/.config/prtrain/prtrain.yaml, .git/prtrain.yaml and
PRTRAIN_* environment variables; flags take precedence.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return runTrain(ctx, dryRun)
			})
		},
	}

	flags := rootCmd.Flags()
	flags.BoolP("push", "p", false, "Push the train and the combined branch after merging")
	flags.StringP("remote", "r", config.DefaultRemote, "Remote to push to")
	flags.Duration("settle-delay", config.DefaultSettleDelay, "Pause after each merge")
	flags.Int("push-concurrency", 0, "Maximum number of simultaneous pushes (0 = unlimited)")
	flags.Bool(config.NoBannerFlag, false, "Do not print the banner")
	flags.BoolVar(&dryRun, "dry-run", false, "Show the merges without performing them")

	_ = rootCmd.RegisterFlagCompletionFunc("remote", helpers.CompleteRemotes)

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
// Errors the command has not already reported are printed to stderr.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return prerrors.ExitCode(err)
}

func runTrain(ctx *runtime.Context, dryRun bool) error {
	splog := ctx.Splog

	tui.ConfigureColor()
	if ctx.Config.Banner {
		tui.PrintBanner(splog)
	}

	opts := merge.OptionsFromConfig(ctx.Config)
	opts.DryRun = dryRun
	opts.Reporter = tui.NewMergeReporter(splog)
	if opts.Push && !dryRun {
		opts.PushReporter = tui.NewPushProgressUI(splog)
	}

	result, err := merge.Action(ctx, opts)
	if err != nil {
		reportError(splog, err)
		return &reportedError{err: err}
	}

	if dryRun && result.Plan != nil {
		tui.PrintPlan(splog, result.Plan.Describe())
	}
	return nil
}
