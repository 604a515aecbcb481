package runtime_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prtrain.dev/prtrain/internal/config"
	"prtrain.dev/prtrain/internal/git"
	"prtrain.dev/prtrain/internal/runtime"
	"prtrain.dev/prtrain/testhelpers"
)

func TestNewContext(t *testing.T) {
	ctx := runtime.NewContext(context.Background(), git.NewGitBackend(t.TempDir()), nil, nil)

	require.NotNil(t, ctx.Context)
	require.NotNil(t, ctx.Splog)
	require.Equal(t, config.Default(), ctx.Config)
}

func TestGetContext(t *testing.T) {
	t.Setenv("PRTRAIN_LOG_FILE", filepath.Join(t.TempDir(), "prtrain.log"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Run("inside a repository", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		var out bytes.Buffer
		ctx, err := runtime.GetContext(context.Background(), &out, nil)
		require.NoError(t, err)
		defer ctx.Close()

		require.True(t, ctx.Backend.IsRepository())
		require.NotEmpty(t, ctx.RepoRoot)
		require.Equal(t, config.DefaultRemote, ctx.Config.Remote)
	})

	t.Run("outside a repository", func(t *testing.T) {
		t.Chdir(t.TempDir())

		var out bytes.Buffer
		ctx, err := runtime.GetContext(context.Background(), &out, nil)
		require.NoError(t, err)
		defer ctx.Close()

		require.False(t, ctx.Backend.IsRepository())
		require.Empty(t, ctx.RepoRoot)
	})
}
