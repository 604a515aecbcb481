// Package errors provides sentinel errors and custom error types for the prtrain application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNotPartOfTrain indicates that the current branch does not follow the train naming convention
	ErrNotPartOfTrain = errors.New("current branch is not part of a PR train")

	// ErrNotInTrain indicates that a branch name has no train root
	ErrNotInTrain = errors.New("branch name has no train segment")

	// ErrNotAStep indicates that a branch name does not end in a numeric step segment
	ErrNotAStep = errors.New("branch name is not a train step")

	// ErrDuplicateStep indicates that two branches of a train share a step index
	ErrDuplicateStep = errors.New("duplicate train step")

	// ErrMergeFailed indicates that merging one branch into another failed
	ErrMergeFailed = errors.New("merge failed")

	// ErrPushFailed indicates that pushing one or more branches failed
	ErrPushFailed = errors.New("push failed")

	// ErrRestoreFailed indicates that the original branch could not be checked out again
	ErrRestoreFailed = errors.New("failed to restore original branch")
)

// Exit codes returned by the prtrain binary.
const (
	ExitOK              = 0
	ExitNotARepository  = 1
	ExitNotPartOfTrain  = 2
	ExitMergeFailed     = 3
	ExitPushFailed      = 4
	ExitDuplicateStep   = 5
	ExitRestoreFailed   = 6
	ExitUnexpectedError = 10
)

// ExitCode maps an error to the process exit code.
// Merge failures take precedence over push and restore failures since they
// are what the user has to act on first.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNotARepository):
		return ExitNotARepository
	case errors.Is(err, ErrNotPartOfTrain):
		return ExitNotPartOfTrain
	case errors.Is(err, ErrDuplicateStep):
		return ExitDuplicateStep
	case errors.Is(err, ErrMergeFailed):
		return ExitMergeFailed
	case errors.Is(err, ErrPushFailed):
		return ExitPushFailed
	case errors.Is(err, ErrRestoreFailed):
		return ExitRestoreFailed
	default:
		return ExitUnexpectedError
	}
}

// DuplicateStepError represents two or more branches resolving to the same step index
type DuplicateStepError struct {
	Index    int
	Branches []string
}

func (e *DuplicateStepError) Error() string {
	return fmt.Sprintf("branches %s share step index %d", strings.Join(e.Branches, ", "), e.Index)
}

// Is returns true if the target error is ErrDuplicateStep
func (e *DuplicateStepError) Is(target error) bool {
	return target == ErrDuplicateStep
}

// NewDuplicateStepError creates a new DuplicateStepError
func NewDuplicateStepError(index int, branches ...string) *DuplicateStepError {
	return &DuplicateStepError{Index: index, Branches: branches}
}

// MergeFailedError represents a failed merge of one branch into another
type MergeFailedError struct {
	From string
	To   string
	Err  error
}

func (e *MergeFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to merge %s into %s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("failed to merge %s into %s", e.From, e.To)
}

// Is returns true if the target error is ErrMergeFailed
func (e *MergeFailedError) Is(target error) bool {
	return target == ErrMergeFailed
}

func (e *MergeFailedError) Unwrap() error {
	return e.Err
}

// NewMergeFailedError creates a new MergeFailedError
func NewMergeFailedError(from, to string, err error) *MergeFailedError {
	return &MergeFailedError{From: from, To: to, Err: err}
}

// PushFailedError collects every branch that failed to push to a remote
type PushFailedError struct {
	Remote   string
	Failures map[string]error
}

func (e *PushFailedError) Error() string {
	branches := e.Branches()
	var b strings.Builder
	fmt.Fprintf(&b, "failed to push %d branch(es) to %s", len(branches), e.Remote)
	for _, branch := range branches {
		fmt.Fprintf(&b, "\n  %s: %v", branch, e.Failures[branch])
	}
	return b.String()
}

// Branches returns the failed branch names in sorted order
func (e *PushFailedError) Branches() []string {
	branches := make([]string, 0, len(e.Failures))
	for branch := range e.Failures {
		branches = append(branches, branch)
	}
	sort.Strings(branches)
	return branches
}

// Is returns true if the target error is ErrPushFailed
func (e *PushFailedError) Is(target error) bool {
	return target == ErrPushFailed
}

// Unwrap exposes the individual push errors to errors.Is and errors.As
func (e *PushFailedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, branch := range e.Branches() {
		errs = append(errs, e.Failures[branch])
	}
	return errs
}

// NewPushFailedError creates a new PushFailedError
func NewPushFailedError(remote string, failures map[string]error) *PushFailedError {
	return &PushFailedError{Remote: remote, Failures: failures}
}

// RestoreFailedError represents a failure to check out the branch the run started on
type RestoreFailedError struct {
	BranchName string
	Err        error
}

func (e *RestoreFailedError) Error() string {
	return fmt.Sprintf("failed to restore branch %s: %v", e.BranchName, e.Err)
}

// Is returns true if the target error is ErrRestoreFailed
func (e *RestoreFailedError) Is(target error) bool {
	return target == ErrRestoreFailed
}

func (e *RestoreFailedError) Unwrap() error {
	return e.Err
}

// NewRestoreFailedError creates a new RestoreFailedError
func NewRestoreFailedError(branchName string, err error) *RestoreFailedError {
	return &RestoreFailedError{BranchName: branchName, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
