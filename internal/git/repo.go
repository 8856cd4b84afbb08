package git

import (
	"context"
	"fmt"
	"strings"

	"go.abhg.dev/log/silog"
)

// OpenOptions configures the behavior of Open.
type OpenOptions struct {
	// Log specifies the logger to use for messages.
	// If nil, no messages are logged.
	Log *silog.Logger

	exec Execer
}

// Open opens the repository that the given directory belongs to.
// If dir is empty, the current working directory is used.
func Open(ctx context.Context, dir string, opts OpenOptions) (*Repository, error) {
	if opts.exec == nil {
		opts.exec = DefaultExecer
	}
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	out, err := newGitCmd(ctx, opts.Log,
		"rev-parse",
		"--show-toplevel",
		"--absolute-git-dir",
	).Dir(dir).OutputString(opts.exec)
	if err != nil {
		return nil, err
	}

	root, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return nil, fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}

	return newRepository(root, gitDir, opts.Log, opts.exec), nil
}

// OpenWorktree opens the worktree checked out at the given directory,
// along with the repository it belongs to.
func OpenWorktree(ctx context.Context, dir string, opts OpenOptions) (*Worktree, error) {
	repo, err := Open(ctx, dir, opts)
	if err != nil {
		return nil, err
	}

	return newWorktree(repo.gitDir, repo.root, repo, repo.log, repo.exec), nil
}

// Repository is a handle to a Git repository.
// It provides access to state that is shared between worktrees.
type Repository struct {
	root   string
	gitDir string

	log  *silog.Logger
	exec Execer
}

func newRepository(root, gitDir string, log *silog.Logger, exec Execer) *Repository {
	return &Repository{
		root:   root,
		gitDir: gitDir,
		log:    log,
		exec:   exec,
	}
}

// gitCmd returns a gitCmd that will run
// with the repository's root as the working directory.
func (r *Repository) gitCmd(ctx context.Context, args ...string) *gitCmd {
	return newGitCmd(ctx, r.log, args...).Dir(r.root)
}
