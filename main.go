// shipit is a command line tool that stages all changes in the current
// Git worktree, commits them, and pushes the current branch to a remote
// with upstream tracking.
package main

import (
	"cmp"
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/log/silog"
	"go.abhg.dev/shipit/internal/git"
	"go.abhg.dev/shipit/internal/ship"
	"go.abhg.dev/shipit/internal/ui"
)

func main() {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
			logger.Info("Cleaning up. Press Ctrl-C again to exit immediately.")
			cancel()
		case <-ctx.Done():
		}
	}()

	isTerminal := isatty.IsTerminal(os.Stdin.Fd())

	// Configuration is read from git-config before flag parsing
	// so that it can fill in defaults for flags.
	// Running outside a repository, or without git installed,
	// leaves the configuration empty;
	// the workflow itself reports a better error for those.
	shipitConfig, err := ship.LoadConfig(ctx, git.NewConfig(git.ConfigOptions{
		Log: logger,
	}), ship.ConfigOptions{Log: logger})
	if err != nil {
		logger.Debug("Could not load configuration", "error", err)
		shipitConfig = new(ship.Config)
	}

	var cmd mainCmd
	parser, err := kong.New(&cmd,
		kong.Name("shipit"),
		kong.Description("shipit stages all changes, commits them with a message "+
			"you provide, and pushes the current branch to a remote, "+
			"setting it up to track the pushed branch."),
		kong.Bind(logger),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{
			// Default to non-interactive mode
			// if we're not in a terminal.
			"nonInteractive": strconv.FormatBool(!isTerminal),
			"defaultRemote":  ship.DefaultRemote,
		},
		kong.Resolvers(shipitConfig),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		logger.Fatalf("shipit: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Fatalf("shipit: %v", err)
	}
}

type mainCmd struct {
	ship.Options

	Remote string `arg:"" optional:"" help:"Remote to push to. Defaults to ${defaultRemote}."`

	// Remote picked via git-config (shipit.remote).
	// Hidden because the positional argument is the supported way
	// to pick a remote on the command line;
	// this flag exists only so the configuration resolver
	// has something to fill in.
	ConfigRemote string `name:"default-remote" hidden:"" config:"remote"`

	// Flags with side effects whose values are never accessed directly.
	Verbose bool               `short:"v" help:"Enable verbose output" env:"SHIPIT_VERBOSE"`
	Dir     kong.ChangeDirFlag `short:"C" placeholder:"DIR" help:"Change to DIR before doing anything"`
	Version versionFlag        `help:"Print version information and quit"`

	NonInteractive bool `short:"I" default:"${nonInteractive}" help:"Disable interactive prompts"`
}

func (cmd *mainCmd) AfterApply(kctx *kong.Context, logger *silog.Logger) error {
	if cmd.Verbose {
		logger.SetLevel(silog.LevelDebug)
	}

	var view ui.View
	if cmd.NonInteractive {
		view = &ui.FileView{W: os.Stderr}
	} else {
		view = &ui.TerminalView{
			R: os.Stdin,
			W: os.Stderr,
		}
	}
	kctx.BindTo(view, (*ui.View)(nil))

	// The worktree is opened lazily so that --help and --version
	// work outside a Git repository.
	return kctx.BindToProvider(func(ctx context.Context, logger *silog.Logger) (*git.Worktree, error) {
		return git.OpenWorktree(ctx, ".", git.OpenOptions{Log: logger})
	})
}

func (cmd *mainCmd) Run(
	ctx context.Context,
	logger *silog.Logger,
	view ui.View,
	wt *git.Worktree,
) error {
	handler := &ship.Handler{
		Log:        logger,
		View:       view,
		Worktree:   wt,
		Repository: wt.Repository(),
		Stdin:      os.Stdin,
	}

	return handler.Ship(ctx, &ship.Request{
		Remote:  cmp.Or(cmd.Remote, cmd.ConfigRemote),
		Options: &cmd.Options,
	})
}
