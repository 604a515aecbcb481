package git

import (
	"context"
	"fmt"
)

// Backend is the version-control contract the merge orchestrator and publisher depend on.
// This allows the orchestrator to be used with both real git and fake implementations.
type Backend interface {
	// Repository state
	IsRepository() bool
	CurrentBranchName() (string, error)
	ListLocalBranches() ([]string, error)

	// Mutations of the working tree
	Checkout(ctx context.Context, branchName string) error
	CreateAndCheckout(ctx context.Context, branchName string) error
	Merge(ctx context.Context, source string) error

	// Remote operations
	Push(ctx context.Context, remote, branchName string) error
}

// GitBackend implements Backend with go-git for reads and the git CLI for mutations
type GitBackend struct {
	dir    string
	runner *CommandRunner
	// pushRunner never prompts for credentials
	pushRunner *CommandRunner
	repo       *Repository
}

// NewGitBackend returns a Backend rooted at dir ("" means the process working directory).
// Opening the repository is deferred so that IsRepository can report a missing repository.
func NewGitBackend(dir string) *GitBackend {
	runner := NewCommandRunner(dir)
	return &GitBackend{
		dir:        dir,
		runner:     runner,
		pushRunner: runner.WithEnv("GIT_TERMINAL_PROMPT=0"),
	}
}

func (b *GitBackend) open() (*Repository, error) {
	if b.repo != nil {
		return b.repo, nil
	}
	dir := b.dir
	if dir == "" {
		dir = "."
	}
	repo, err := OpenRepository(dir)
	if err != nil {
		return nil, err
	}
	b.repo = repo
	return repo, nil
}

// IsRepository reports whether the backend directory is inside a git repository
func (b *GitBackend) IsRepository() bool {
	_, err := b.open()
	return err == nil
}

// RepoRoot returns the top-level directory of the repository
func (b *GitBackend) RepoRoot() (string, error) {
	repo, err := b.open()
	if err != nil {
		return "", err
	}
	return repo.GetRepoRoot(), nil
}

// CurrentBranchName returns the checked out branch
func (b *GitBackend) CurrentBranchName() (string, error) {
	repo, err := b.open()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

// ListLocalBranches returns every local branch name
func (b *GitBackend) ListLocalBranches() ([]string, error) {
	repo, err := b.open()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}

// Checkout checks out an existing branch
func (b *GitBackend) Checkout(ctx context.Context, branchName string) error {
	return b.runner.CheckoutBranch(ctx, branchName)
}

// CreateAndCheckout creates branchName at HEAD and checks it out
func (b *GitBackend) CreateAndCheckout(ctx context.Context, branchName string) error {
	return b.runner.CreateAndCheckoutBranch(ctx, branchName)
}

// Merge merges source into the checked out branch
func (b *GitBackend) Merge(ctx context.Context, source string) error {
	return b.runner.MergeBranch(ctx, source)
}

// Push pushes branchName to remote
func (b *GitBackend) Push(ctx context.Context, remote, branchName string) error {
	return b.pushRunner.PushBranch(ctx, remote, branchName)
}

var _ Backend = (*GitBackend)(nil)

// String implements fmt.Stringer for debug logging
func (b *GitBackend) String() string {
	return fmt.Sprintf("git(%s)", b.runner.WorkingDir())
}
