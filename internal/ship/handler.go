// Package ship implements the stage-commit-push workflow:
// stage all changes in the worktree, commit them with a message
// supplied by the user, and push the current branch to a remote
// with upstream tracking.
package ship

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.abhg.dev/log/silog"
	"go.abhg.dev/shipit/internal/git"
	"go.abhg.dev/shipit/internal/ui"
)

//go:generate mockgen -package ship -destination mocks_test.go -write_package_comment=false -typed . GitWorktree

// DefaultRemote is the remote that branches are pushed to
// when no remote is specified by the user or their configuration.
const DefaultRemote = "origin"

// ErrNoMessage indicates that the input stream ended
// before a commit message could be read.
// No commit is attempted in that case.
var ErrNoMessage = errors.New("no commit message provided")

// GitWorktree provides access to the Git worktree operations
// that the workflow needs.
type GitWorktree interface {
	StageAll(ctx context.Context) error
	HasStagedChanges(ctx context.Context) (bool, error)
	Commit(ctx context.Context, req git.CommitRequest) error
	CurrentBranch(ctx context.Context) (string, error)
	Push(ctx context.Context, opts git.PushOptions) error
}

var _ GitWorktree = (*git.Worktree)(nil)

// GitRepository provides access to repository-level Git operations.
type GitRepository interface {
	ListRemotes(ctx context.Context) ([]string, error)
}

var _ GitRepository = (*git.Repository)(nil)

// Handler runs the stage-commit-push workflow.
type Handler struct {
	Log      *silog.Logger // required
	View     ui.View       // required
	Worktree GitWorktree   // required

	// Repository holds the repository the worktree belongs to.
	// If set, it is used to list known remotes
	// when a push fails.
	Repository GitRepository // optional

	// Stdin supplies the commit message
	// when the view is not interactive.
	Stdin io.Reader // required
}

// Options defines options for the Ship method.
// These are exposed as flags in the CLI.
type Options struct {
	Message string `short:"m" placeholder:"MSG" help:"Use the given message as the commit message."`

	NoVerify bool `config:"noVerify" help:"Bypass pre-commit and commit-msg hooks."`
}

// Request is a request to run the workflow once.
type Request struct {
	// Remote is the remote to push to.
	// If empty, [DefaultRemote] is used.
	Remote string

	Options *Options
}

// ResolveRemote picks the remote to push to:
// the given name if any, or [DefaultRemote].
func ResolveRemote(remote string) string {
	return cmp.Or(remote, DefaultRemote)
}

// Ship runs the workflow once:
//
//	stage all changes
//	  -> nothing staged? report and stop
//	  -> read the commit message
//	  -> commit
//	  -> push the current branch with upstream tracking
//
// The first failing step aborts the run.
// Nothing is retried.
func (h *Handler) Ship(ctx context.Context, req *Request) error {
	opts := cmp.Or(req.Options, &Options{})

	if err := h.Worktree.StageAll(ctx); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}

	staged, err := h.Worktree.HasStagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("check staged changes: %w", err)
	}
	if !staged {
		fmt.Fprintln(h.View, "Nothing to commit.")
		return nil
	}

	msg := opts.Message
	if msg == "" {
		msg, err = h.readMessage()
		if err != nil {
			return err
		}
	}

	if err := h.Worktree.Commit(ctx, git.CommitRequest{
		Message:  msg,
		NoVerify: opts.NoVerify,
	}); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	branch, err := h.Worktree.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("get current branch: %w", err)
	}

	remote := ResolveRemote(req.Remote)
	h.Log.Debug("Pushing to remote", "remote", remote, "branch", branch)
	if err := h.Worktree.Push(ctx, git.PushOptions{
		Remote:      remote,
		Refspec:     branch,
		SetUpstream: true,
	}); err != nil {
		if h.Repository != nil {
			if remotes, lerr := h.Repository.ListRemotes(ctx); lerr == nil {
				h.Log.Debug("Known remotes", "remotes", remotes)
			}
		}
		return fmt.Errorf("push: %w", err)
	}

	h.Log.Infof("Pushed %v to %v", branch, remote)
	return nil
}

// readMessage obtains a single-line commit message from the user:
// with an interactive prompt if the view allows it,
// or by reading one line from Stdin otherwise.
//
// The trailing newline is stripped.
// Everything else is kept verbatim.
func (h *Handler) readMessage() (string, error) {
	if ui.Interactive(h.View) {
		var msg string
		field := ui.NewInput().
			WithValue(&msg).
			WithTitle("Commit message").
			WithValidate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("message must not be blank")
				}
				return nil
			})
		if err := ui.Run(h.View, field); err != nil {
			return "", fmt.Errorf("prompt for message: %w", err)
		}
		return msg, nil
	}

	fmt.Fprint(h.View, "Commit message: ")
	line, err := bufio.NewReader(h.Stdin).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read message: %w", err)
		}
		if len(line) > 0 {
			// Last line of input without a trailing newline.
			return line, nil
		}
		return "", ErrNoMessage
	}
	return strings.TrimSuffix(line, "\n"), nil
}
