package git

import (
	"context"
	"fmt"
)

// CheckoutBranch checks out an existing branch
func (r *CommandRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates a branch at HEAD and checks it out
func (r *CommandRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// MergeBranch merges source into the currently checked out branch.
// The default merge commit message is used; conflicts are left in place.
func (r *CommandRunner) MergeBranch(ctx context.Context, source string) error {
	_, err := r.Run(ctx, "merge", "--no-edit", source)
	if err != nil {
		return fmt.Errorf("merge of %s failed: %w", source, err)
	}
	return nil
}
