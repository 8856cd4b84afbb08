package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os/exec"
	"strings"

	"go.abhg.dev/log/silog"
)

// gitCmd provides a fluent API around exec.Cmd for running Git commands.
//
// Stderr of the command is handled as follows:
//
//   - if the logger is at Debug level or lower,
//     stderr is streamed to the logger as the command runs;
//   - otherwise, stderr is captured in-memory
//     and attached to the error if the command fails.
//
// This keeps expected failures quiet while still surfacing
// the underlying Git diagnostic when something goes wrong.
type gitCmd struct {
	cmd *exec.Cmd

	// Wraps an error with the recorded stderr output.
	wrap func(error) error
}

func newGitCmd(ctx context.Context, log *silog.Logger, args ...string) *gitCmd {
	name := "git"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name += " " + args[0]
	}

	stderr, wrap := stderrWriter(name, log)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stderr = stderr

	return &gitCmd{
		cmd:  cmd,
		wrap: wrap,
	}
}

// Dir sets the working directory for the command.
func (c *gitCmd) Dir(dir string) *gitCmd {
	c.cmd.Dir = dir
	return c
}

// AppendEnv appends environment variables to the command,
// on top of the parent process's environment.
func (c *gitCmd) AppendEnv(env ...string) *gitCmd {
	if len(env) == 0 {
		return c
	}

	if c.cmd.Env == nil {
		c.cmd.Env = c.cmd.Environ()
	}
	c.cmd.Env = append(c.cmd.Env, env...)
	return c
}

// Stdin supplies the command's standard input.
func (c *gitCmd) Stdin(r io.Reader) *gitCmd {
	c.cmd.Stdin = r
	return c
}

// StdinString supplies the given string as the command's standard input.
func (c *gitCmd) StdinString(s string) *gitCmd {
	return c.Stdin(strings.NewReader(s))
}

// Stdout redirects the command's standard output to the given writer.
func (c *gitCmd) Stdout(w io.Writer) *gitCmd {
	c.cmd.Stdout = w
	return c
}

// StdoutPipe returns a pipe that will be connected
// to the command's standard output when it starts.
func (c *gitCmd) StdoutPipe() (io.ReadCloser, error) {
	return c.cmd.StdoutPipe()
}

// Run runs the command, blocking until it completes.
func (c *gitCmd) Run(exec Execer) error {
	return c.wrap(exec.Run(c.cmd))
}

// Start starts the command without waiting for it.
func (c *gitCmd) Start(exec Execer) error {
	return c.wrap(exec.Start(c.cmd))
}

// Wait waits for a command started with Start to finish.
func (c *gitCmd) Wait(exec Execer) error {
	return c.wrap(exec.Wait(c.cmd))
}

// Kill terminates a command started with Start.
func (c *gitCmd) Kill(exec Execer) error {
	return c.wrap(exec.Kill(c.cmd))
}

// Output runs the command and returns its standard output.
func (c *gitCmd) Output(exec Execer) ([]byte, error) {
	out, err := exec.Output(c.cmd)
	return out, c.wrap(err)
}

// OutputString runs the command and returns its standard output
// with the trailing newline, if any, removed.
func (c *gitCmd) OutputString(exec Execer) (string, error) {
	out, err := c.Output(exec)
	out, _ = bytes.CutSuffix(out, []byte{'\n'})
	return string(out), err
}

// Scan starts the command and yields tokens from its standard output,
// split with the given bufio.SplitFunc.
// The command is killed if iteration stops early.
func (c *gitCmd) Scan(exec Execer, split bufio.SplitFunc) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		stdout, err := c.StdoutPipe()
		if err != nil {
			yield(nil, fmt.Errorf("pipe stdout: %w", err))
			return
		}

		if err := c.Start(exec); err != nil {
			yield(nil, fmt.Errorf("start: %w", err))
			return
		}

		scanner := bufio.NewScanner(stdout)
		scanner.Split(split)
		for scanner.Scan() {
			if !yield(scanner.Bytes(), nil) {
				_ = c.Kill(exec)
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("scan: %w", err))
			return
		}

		if err := c.Wait(exec); err != nil {
			yield(nil, err)
		}
	}
}

// Returns an io.Writer to receive stderr of a command,
// and a function that wraps a command error
// with whatever was written to that writer.
func stderrWriter(cmd string, log *silog.Logger) (w io.Writer, wrap func(error) error) {
	if log != nil && log.Level() <= silog.LevelDebug {
		// Stream to the logger as the command runs.
		w, flush := silog.Writer(log.WithPrefix(cmd), silog.LevelDebug)
		return w, func(err error) error {
			flush()
			return err
		}
	}

	// Otherwise, buffer it all in-memory to put into the error.
	var buf bytes.Buffer
	return &buf, func(err error) error {
		stderr := bytes.TrimSpace(buf.Bytes())
		if err == nil || len(stderr) == 0 {
			return err
		}

		return errors.Join(err, fmt.Errorf("stderr:\n%s", stderr))
	}
}
