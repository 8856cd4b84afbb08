package git

import (
	"context"
	"errors"
	"fmt"
)

// PushOptions specifies options for the Push operation.
type PushOptions struct {
	// Remote is the remote to push to.
	//
	// If empty, the default remote for the current branch is used.
	// If the current branch does not have a remote configured,
	// the operation fails.
	Remote string

	// Refspec is the refspec to push.
	// If empty, the current branch is pushed to the remote.
	Refspec string

	// SetUpstream records the pushed branch
	// as the upstream tracking branch for the local branch.
	SetUpstream bool
}

// Push pushes objects and refs to a remote repository.
func (w *Worktree) Push(ctx context.Context, opts PushOptions) error {
	if opts.Remote == "" && opts.Refspec == "" {
		return errors.New("push: no remote or refspec specified")
	}

	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	if opts.Refspec != "" {
		args = append(args, opts.Refspec)
	}

	if err := w.gitCmd(ctx, args...).Run(w.exec); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}
