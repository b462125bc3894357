package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/lipgloss"
	"golang.org/x/term"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Config      *Config
	Dir         string
	Verbosity   int
	Diagnostics rfz.Diagnostics
	Builder     rfz.IndexBuilder
	Parser      rfz.MetadataParser
	Syncer      rfz.Syncer

	// IsTerminal reports whether w is an interactive terminal. Nil means never.
	IsTerminal func(w io.Writer) bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"d" env:"RFZ_DIR" help:"Mirror directory (default: $XDG_DATA_HOME/rfz)"`
	Jobs    int    `short:"j" env:"RFZ_JOBS" help:"Parallel header parsers (default: number of CPUs)"`
	Verbose int    `short:"v" type:"counter" help:"Increase log verbosity (repeatable)"`
	Config  string `env:"RFZ_CONFIG" help:"Configuration file (default: $XDG_CONFIG_HOME/rfz/config.toml)"`

	Index   IndexCmd   `cmd:"" help:"Print one line per mirrored document"`
	Summary SummaryCmd `cmd:"" help:"Print the metadata block of one document"`
	Sync    SyncCmd    `cmd:"" help:"Mirror the remote document tree"`

	Completions CompletionsCmd `cmd:"" help:"Print the shell completion script"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Type      []string `short:"t" name:"type" help:"Only list identifiers with this prefix (repeatable)"`
	Latest    bool     `help:"Only list the newest version of each draft"`
	Delimiter string   `help:"Field delimiter (default: tab)"`
	Color     string   `enum:"auto,always,never" default:"auto" help:"Colourize output (auto, always, never)"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	Target string `arg:"" predictor:"file" help:"Document identifier or path"`
	Color  string `enum:"auto,always,never" default:"auto" help:"Colourize output (auto, always, never)"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Remote  string   `help:"Remote rsync source"`
	Command string   `help:"Transfer command"`
	Include []string `help:"File pattern to transfer (repeatable)"`
}

// CompletionsCmd is the "completions" subcommand.
type CompletionsCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell to register with (bash, zsh, fish)"`
}

// styler returns the Styler for mode, or nil when output stays plain.
func styler(deps *Dependencies, mode string) rfz.Styler {
	switch mode {
	case "always":
		return lipgloss.NewStyler(deps.Stdout)
	case "never":
		return nil
	}
	if deps.IsTerminal != nil && deps.IsTerminal(deps.Stdout) {
		return lipgloss.NewStyler(deps.Stdout)
	}
	return nil
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
