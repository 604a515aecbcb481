package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	prerrors "prtrain.dev/prtrain/internal/errors"
)

// ErrPushRejected indicates that the remote refused the update, usually because it is not a fast-forward
var ErrPushRejected = errors.New("push rejected by remote")

// PushBranch pushes a local branch to the branch of the same name on remote
func (r *CommandRunner) PushBranch(ctx context.Context, remote, branchName string) error {
	_, err := r.Run(ctx, "push", remote, branchName)
	if err == nil {
		return nil
	}

	var gitErr *prerrors.GitCommandError
	if errors.As(err, &gitErr) && isRejection(gitErr.Stderr) {
		return fmt.Errorf("failed to push branch %s to %s: %w: %w", branchName, remote, ErrPushRejected, err)
	}
	return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
}

func isRejection(stderr string) bool {
	return strings.Contains(stderr, "[rejected]") || strings.Contains(stderr, "non-fast-forward")
}
