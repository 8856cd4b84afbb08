package git

import (
	"testing"

	"go.abhg.dev/log/silog/silogtest"
)

// NewFakeRepository builds a Repository and Worktree rooted at dir
// without touching disk or running Git.
// It is intended for tests that script Git command execution
// with a fake [Execer].
func NewFakeRepository(t testing.TB, dir string, exec Execer) (*Repository, *Worktree) {
	log := silogtest.New(t)
	repo := newRepository(dir, dir, log, exec)
	wt := newWorktree(dir, dir, repo, log, exec)
	return repo, wt
}

// NewTestConfig builds a [Config] that runs Git commands
// with the given [Execer].
func NewTestConfig(t testing.TB, exec Execer) *Config {
	return NewConfig(ConfigOptions{
		Log:  silogtest.New(t),
		exec: exec,
	})
}
