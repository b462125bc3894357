package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/complete"
	"github.com/fwojciec/rfz/crawl"
	"github.com/fwojciec/rfz/etree"
	"github.com/fwojciec/rfz/fs"
	"github.com/fwojciec/rfz/goquery"
	"github.com/fwojciec/rfz/plaintext"
	"github.com/fwojciec/rfz/readability"
	"github.com/fwojciec/rfz/rsync"
	rfzslog "github.com/fwojciec/rfz/slog"
	"github.com/fwojciec/rfz/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(ExitCode(err))
}

// ExitCode maps a Run error to the process exit status: 0 on success, 2 when
// the requested document does not exist and 1 for every other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case rfz.ErrorCode(err) == rfz.ENOTFOUND:
		return 2
	default:
		return 1
	}
}

// Main represents the program.
type Main struct {
	// Getenv resolves the XDG directories. Defaults to os.Getenv.
	Getenv func(string) string

	// Services for end-to-end testing. Nil services are wired from the
	// filesystem adapters.
	Builder rfz.IndexBuilder
	Parser  rfz.MetadataParser
	Syncer  rfz.Syncer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rfz"),
		kong.Description("Index and summarize a local mirror of IETF documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// The shell's completion hook runs the program with the line to complete
	// in the environment instead of arguments.
	if line, point, ok := complete.Request(m.getenv()); ok {
		for _, option := range complete.Predict(complete.Command(parser.Model), line, point) {
			fmt.Fprintln(stdout, option)
		}
		return nil
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return rfz.Errorf(rfz.EINVALID, "no command specified. Run 'rfz --help' to see available commands")
	}
	if args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	if slices.ContainsFunc(args, isHelpFlag) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return rfz.Errorf(rfz.EINVALID, "%s", err)
	}

	if err := m.wire(deps, cli); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", rfz.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

func (m *Main) getenv() func(string) string {
	if m.Getenv == nil {
		return os.Getenv
	}
	return m.Getenv
}

// wire resolves configuration and connects services into deps.
// Precedence is flag, then environment, then config file, then built-in.
func (m *Main) wire(deps *Dependencies, cli *CLI) error {
	getenv := m.getenv()

	path, required := cli.Config, cli.Config != ""
	if !required {
		path = defaultConfigPath(getenv)
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return err
	}

	policy, err := rfz.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return err
	}

	jobs := cli.Jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}
	if jobs < 0 {
		return rfz.Errorf(rfz.EINVALID, "jobs must not be negative")
	}

	logger := newLogger(deps.Stderr, cli.Verbose)

	deps.Logger = logger
	deps.Config = cfg
	deps.Dir = firstNonEmpty(cli.Dir, cfg.Dir, defaultDataDir(getenv))
	deps.Verbosity = cli.Verbose
	deps.Diagnostics = rfzslog.NewDiagnostics(nil, logger)
	deps.IsTerminal = isTerminal

	deps.Parser = m.Parser
	if deps.Parser == nil {
		deps.Parser = rfzslog.NewLoggingParser(fs.NewParser(newRegistry()), logger)
	}

	deps.Builder = m.Builder
	if deps.Builder == nil {
		deps.Builder = rfzslog.NewLoggingIndexBuilder(&crawl.Crawler{
			Scanner:     rfzslog.NewLoggingScanner(fs.NewScanner(), logger),
			Parser:      deps.Parser,
			Concurrency: jobs,
			Policy:      policy,
		}, logger)
	}

	deps.Syncer = m.Syncer
	if deps.Syncer == nil {
		command := firstNonEmpty(cli.Sync.Command, cfg.Sync.Command, rsync.DefaultCommand)
		deps.Syncer = rfzslog.NewLoggingSyncer(rsync.NewSyncer(command, deps.Stdout, deps.Stderr), logger)
	}

	return nil
}

// newRegistry maps document formats and kinds to header grammars.
func newRegistry() *fs.Registry {
	generic := plaintext.GenericGrammar{}
	registry := fs.NewRegistry(generic)
	registry.Register(rfz.FormatText, plaintext.NewRFCGrammar(), rfz.KindRFC)
	registry.Register(rfz.FormatText, plaintext.NewDraftGrammar(), rfz.KindDraft)
	registry.Register(rfz.FormatHTML, goquery.NewGrammar(trafilatura.NewGrammar(readability.NewGrammar())))
	registry.Register(rfz.FormatXML, etree.NewGrammar())
	return registry
}

// newLogger returns a text logger on w. Warnings are always shown; each -v
// lowers the threshold by one level.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isHelpFlag(arg string) bool {
	return arg == "--help" || arg == "-h"
}
