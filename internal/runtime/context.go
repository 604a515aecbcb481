package runtime

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"prtrain.dev/prtrain/internal/config"
	"prtrain.dev/prtrain/internal/git"
	"prtrain.dev/prtrain/internal/tui"
)

// Context provides access to the backend, output and configuration for commands
type Context struct {
	Context  context.Context
	Backend  git.Backend
	Splog    *tui.Splog
	Config   *config.Config
	RepoRoot string
}

// NewContext creates a new context with the given backend.
// A nil splog logs to stdout and a nil cfg uses the defaults.
func NewContext(ctx context.Context, backend git.Backend, splog *tui.Splog, cfg *config.Config) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if splog == nil {
		splog = tui.NewSplog()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Context: ctx,
		Backend: backend,
		Splog:   splog,
		Config:  cfg,
	}
}

// GetContext builds the context for the repository containing the working directory,
// writing console output to out. A missing repository is not an error here; the
// merge action reports it so that it maps to its own exit code.
func GetContext(ctx context.Context, out io.Writer, flags *pflag.FlagSet) (*Context, error) {
	backend := git.NewGitBackend("")

	repoRoot := ""
	if root, err := backend.RepoRoot(); err == nil {
		repoRoot = root
	}

	cfg, err := config.Load(repoRoot, flags)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(out, tui.GetLogFilePath())
	if err != nil {
		splog, _ = tui.NewSplogWithConfig(out, "")
		splog.Debug("file logging disabled: %v", err)
	}
	splog.Debug("using %s", backend)

	rctx := NewContext(ctx, backend, splog, cfg)
	rctx.RepoRoot = repoRoot
	return rctx, nil
}

// Close releases resources held by the context
func (c *Context) Close() error {
	return c.Splog.Close()
}
