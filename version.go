package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
)

// _version is the version of shipit.
// This is set at build time with the -X linker flag.
var _version = "dev"

var _debugReadBuildInfo = debug.ReadBuildInfo

// _generateBuildReport reports the VCS revision and build time
// recorded in the binary, if any.
var _generateBuildReport = func() string {
	info, ok := _debugReadBuildInfo()
	if !ok {
		return ""
	}

	var (
		revision, buildTime string
		dirty               bool
	)
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		case "vcs.time":
			buildTime = setting.Value
		}
	}

	var parts []string
	if revision != "" {
		if dirty {
			revision += "-dirty"
		}
		parts = append(parts, revision)
	}
	if buildTime != "" {
		parts = append(parts, buildTime)
	}
	return strings.Join(parts, " ")
}

type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprintf(app.Stdout, "shipit %s", _version)
	if report := _generateBuildReport(); report != "" {
		fmt.Fprintf(app.Stdout, " (%s)", report)
	}
	fmt.Fprintln(app.Stdout)
	app.Exit(0)
	return nil
}
