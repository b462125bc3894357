package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/fs"
)

// Run executes the summary command. A target naming an existing file is
// parsed directly; anything else is looked up by identifier in the mirror.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	m, err := c.resolve(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfz.ErrorMessage(err))
		return err
	}

	f := &rfz.Formatter{Styler: styler(deps, c.Color)}
	fmt.Fprintln(deps.Stdout, f.FormatSummary(m))
	return nil
}

func (c *SummaryCmd) resolve(deps *Dependencies) (*rfz.Metadata, error) {
	if info, err := os.Stat(c.Target); err == nil && info.Mode().IsRegular() {
		return deps.Parser.ParseMetadata(deps.Ctx, fs.Classify(c.Target))
	}

	idx, err := deps.Builder.Build(deps.Ctx, deps.Dir, deps.Diagnostics)
	if err != nil {
		return nil, err
	}
	return idx.Lookup(c.Target)
}
