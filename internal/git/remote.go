package git

import (
	"fmt"
	"sort"
)

// GetRemoteNames returns the configured remote names, sorted
func (r *Repository) GetRemoteNames() ([]string, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}

// ListRemotes returns the configured remote names
func (b *GitBackend) ListRemotes() ([]string, error) {
	repo, err := b.open()
	if err != nil {
		return nil, err
	}
	return repo.GetRemoteNames()
}
