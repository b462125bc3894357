package main

import (
	"bufio"
	"fmt"

	"github.com/fwojciec/rfz"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	delim := firstNonEmpty(c.Delimiter, deps.Config.Delimiter, rfz.DefaultDelimiter)
	if err := rfz.ValidateDelimiter(delim); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfz.ErrorMessage(err))
		return err
	}

	idx, err := deps.Builder.Build(deps.Ctx, deps.Dir, deps.Diagnostics)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfz.ErrorMessage(err))
		return err
	}

	records := rfz.FilterPrefixes(idx.Records(), c.Type)
	if c.Latest {
		records = rfz.Latest(records, 1)
	}

	f := &rfz.Formatter{
		Delimiter: delim,
		Styler:    styler(deps, c.Color),
	}

	w := bufio.NewWriter(deps.Stdout)
	for _, m := range records {
		fmt.Fprintln(w, f.FormatLine(m))
	}
	return w.Flush()
}
