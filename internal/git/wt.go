package git

import (
	"context"

	"go.abhg.dev/log/silog"
)

// Worktree is a checkout of a Git repository at a specific path.
// Operations that touch the working tree or the index
// are only available on the worktree.
type Worktree struct {
	gitDir  string // absolute path to the worktree's .git directory
	rootDir string // absolute path to the root directory of the worktree
	repo    *Repository

	log  *silog.Logger
	exec Execer
}

func newWorktree(gitDir, rootDir string, repo *Repository, log *silog.Logger, exec Execer) *Worktree {
	return &Worktree{
		gitDir:  gitDir,
		rootDir: rootDir,
		repo:    repo,
		log:     log,
		exec:    exec,
	}
}

func (w *Worktree) gitCmd(ctx context.Context, args ...string) *gitCmd {
	return newGitCmd(ctx, w.log, args...).Dir(w.rootDir)
}

// RootDir returns the absolute path to the root directory of the worktree.
func (w *Worktree) RootDir() string {
	return w.rootDir
}

// Repository returns the Git repository that this worktree belongs to.
func (w *Worktree) Repository() *Repository {
	return w.repo
}
