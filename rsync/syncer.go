// Package rsync mirrors IETF documents by running an rsync-compatible
// transfer tool.
package rsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/rfz"
)

// Defaults for the tools.ietf.org mirror.
const (
	DefaultCommand = "rsync"
	DefaultRemote  = "rsync.tools.ietf.org::tools.html"
)

// DefaultInclude transfers only the HTML renderings.
var DefaultInclude = []string{"*.html"}

// Ensure Syncer implements rfz.Syncer at compile time.
var _ rfz.Syncer = (*Syncer)(nil)

// Syncer runs the transfer tool as a child process.
type Syncer struct {
	// Command is the executable to run. Defaults to DefaultCommand.
	Command string

	Stdout io.Writer
	Stderr io.Writer
}

// NewSyncer creates a new Syncer writing the tool's output to stdout and stderr.
func NewSyncer(command string, stdout, stderr io.Writer) *Syncer {
	return &Syncer{Command: command, Stdout: stdout, Stderr: stderr}
}

// Sync creates opts.Dir if needed and transfers opts.Remote into it.
func (s *Syncer) Sync(ctx context.Context, opts rfz.SyncOptions) error {
	if opts.Dir == "" {
		return rfz.Errorf(rfz.EINVALID, "sync directory required")
	}
	if opts.Remote == "" {
		opts.Remote = DefaultRemote
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}

	command := s.Command
	if command == "" {
		command = DefaultCommand
	}

	cmd := exec.CommandContext(ctx, command, Args(opts)...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return rfz.Errorf(rfz.EINVALID, "sync command %q not found", command)
		}
		return rfz.Errorf(rfz.EINTERNAL, "%s failed: %v", command, err)
	}
	return nil
}

// Args returns the transfer tool arguments for opts.
func Args(opts rfz.SyncOptions) []string {
	var args []string
	if opts.Verbosity > 0 {
		args = append(args, "-"+strings.Repeat("v", opts.Verbosity))
	}
	args = append(args, "--archive", "--compress")

	include := opts.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	for _, pattern := range include {
		args = append(args, "--include="+pattern)
	}
	args = append(args, "--exclude=**", "--prune-empty-dirs")

	remote := opts.Remote
	if remote == "" {
		remote = DefaultRemote
	}
	return append(args, remote, opts.Dir)
}
