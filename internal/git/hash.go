package git

import (
	"context"
	"fmt"
)

// Hash is a Git object ID in hex form.
type Hash string

// ZeroHash is the hash of an empty Git object.
// It is used to represent the absence of a hash.
const ZeroHash Hash = "0000000000000000000000000000000000000000"

func (h Hash) String() string { return string(h) }

// Zero reports whether the hash is the zero hash.
func (h Hash) Zero() bool { return h == ZeroHash || h == "" }

// Head reports the commit that HEAD currently points to.
// It fails if the current branch does not have any commits yet.
func (w *Worktree) Head(ctx context.Context) (Hash, error) {
	out, err := w.gitCmd(ctx, "rev-parse", "--verify", "--quiet", "HEAD^{commit}").
		OutputString(w.exec)
	if err != nil {
		return ZeroHash, fmt.Errorf("rev-parse: %w", err)
	}
	return Hash(out), nil
}
