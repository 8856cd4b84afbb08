package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// StageAll stages all changes in the worktree:
// modifications, new files, and deletions.
// It is the equivalent of 'git add --all' at the worktree root.
func (w *Worktree) StageAll(ctx context.Context) error {
	if err := w.gitCmd(ctx, "add", "--all").Run(w.exec); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// HasStagedChanges reports whether the index differs from HEAD,
// that is, whether a commit made right now would contain any changes.
// It does not mutate any repository state.
//
// On an unborn branch, where HEAD does not point to a commit yet,
// any entry in the index counts as a staged change.
func (w *Worktree) HasStagedChanges(ctx context.Context) (bool, error) {
	if _, err := w.Head(ctx); err != nil {
		// No commits yet.
		out, err := w.gitCmd(ctx, "ls-files", "--cached").OutputString(w.exec)
		if err != nil {
			return false, fmt.Errorf("ls-files: %w", err)
		}
		return len(out) > 0, nil
	}

	err := w.gitCmd(ctx, "diff-index", "--cached", "--quiet", "HEAD").Run(w.exec)
	if err == nil {
		return false, nil
	}

	// diff-index --quiet exits with 1 if there are differences.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("diff-index: %w", err)
}
