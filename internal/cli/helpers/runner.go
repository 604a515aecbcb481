package helpers

import (
	"github.com/spf13/cobra"

	"prtrain.dev/prtrain/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function.
// The context is closed once fn returns.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), cmd.OutOrStdout(), cmd.Flags())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}
