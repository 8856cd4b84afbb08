package git

import (
	"context"
	"fmt"
)

// CommitRequest is a request to commit staged changes.
// It relies on the 'git commit' command.
type CommitRequest struct {
	// Message is the commit message, used verbatim.
	Message string // required

	// NoVerify bypasses the pre-commit and commit-msg hooks.
	NoVerify bool
}

// Commit runs the 'git commit' command,
// recording the staged changes with the given message.
func (w *Worktree) Commit(ctx context.Context, req CommitRequest) error {
	if req.Message == "" {
		return fmt.Errorf("empty commit message")
	}

	args := []string{"commit", "-m", req.Message}
	if req.NoVerify {
		args = append(args, "--no-verify")
	}

	if err := w.gitCmd(ctx, args...).Run(w.exec); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
