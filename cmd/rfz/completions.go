package main

import (
	"fmt"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/complete"
)

// Run executes the completions command.
func (c *CompletionsCmd) Run(deps *Dependencies) error {
	script, err := complete.Script(c.Shell, "rfz")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfz.ErrorMessage(err))
		return err
	}
	_, err = fmt.Fprint(deps.Stdout, script)
	return err
}
