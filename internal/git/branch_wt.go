package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrDetachedHead indicates that the worktree is
// unexpectedly in detached HEAD state.
var ErrDetachedHead = errors.New("in detached HEAD state")

// CurrentBranch reports the name of the currently checked out branch.
// It returns [ErrDetachedHead] if the worktree is in detached HEAD state.
func (w *Worktree) CurrentBranch(ctx context.Context) (string, error) {
	name, err := w.gitCmd(ctx, "branch", "--show-current").
		OutputString(w.exec)
	if err != nil {
		return "", fmt.Errorf("git branch: %w", err)
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		// Per man git-branch, --show-current prints nothing
		// if the worktree is in detached HEAD state.
		return "", ErrDetachedHead
	}
	return name, nil
}
