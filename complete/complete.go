// Package complete answers shell completion requests for a kong command
// line using posener/complete predictors.
package complete

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rfz"
	"github.com/posener/complete"
)

// Environment variables set by bash-compatible shells for "complete -C".
const (
	EnvLine  = "COMP_LINE"
	EnvPoint = "COMP_POINT"
)

// Shells lists the shells Script supports.
var Shells = []string{"bash", "zsh", "fish"}

// Command converts a kong model into a completion tree. Flags of the
// application node are global and may follow any subcommand.
func Command(app *kong.Application) complete.Command {
	c := command(app.Node)
	c.GlobalFlags, c.Flags = c.Flags, complete.Flags{}
	return c
}

func command(n *kong.Node) complete.Command {
	c := complete.Command{
		Sub:   complete.Commands{},
		Flags: complete.Flags{},
	}
	for _, child := range n.Children {
		if child.Hidden || child.Type != kong.CommandNode {
			continue
		}
		c.Sub[child.Name] = command(child)
	}
	for _, f := range n.Flags {
		if f.Hidden {
			continue
		}
		p := predictor(f.Value)
		c.Flags["--"+f.Name] = p
		if f.Short != 0 {
			c.Flags["-"+string(f.Short)] = p
		}
	}
	if len(n.Positional) > 0 {
		c.Args = predictor(n.Positional[0])
	}
	return c
}

// predictor chooses completions for one value. Enums complete to their
// members and values tagged `predictor:"file"` to file names.
func predictor(v *kong.Value) complete.Predictor {
	switch {
	case v.IsBool() || v.IsCounter():
		return complete.PredictNothing
	case v.Enum != "":
		return complete.PredictSet(v.EnumSlice()...)
	case v.Tag != nil && v.Tag.Get("predictor") == "file":
		return complete.PredictFiles("*")
	}
	return complete.PredictAnything
}

// Predict returns the sorted completions for a shell line with the cursor at
// point. A negative or out of range point means the end of the line.
func Predict(c complete.Command, line string, point int) []string {
	if point >= 0 && point < len(line) {
		line = line[:point]
	}
	a := args(line)

	var matches []string
	for _, option := range c.Predict(a) {
		if strings.HasPrefix(option, a.Last) {
			matches = append(matches, option)
		}
	}
	slices.Sort(matches)
	return slices.Compact(matches)
}

// Request reads a completion request from the environment. ok is false when
// the program was not started by the shell's completion hook.
func Request(getenv func(string) string) (line string, point int, ok bool) {
	line = getenv(EnvLine)
	if line == "" {
		return "", 0, false
	}
	point, err := strconv.Atoi(getenv(EnvPoint))
	if err != nil {
		point = len(line)
	}
	return line, point, true
}

// args splits a command line the way the shell hands it over. A trailing
// space means the last word is complete and a new one is being typed.
func args(line string) complete.Args {
	parts := strings.Fields(line)
	if strings.HasSuffix(line, " ") || len(parts) == 0 {
		parts = append(parts, "")
	}
	all := parts[1:]
	if len(all) == 0 {
		all = []string{""}
	}
	completed := all[:len(all)-1]

	a := complete.Args{
		All:       all,
		Completed: completed,
		Last:      all[len(all)-1],
	}
	if len(completed) > 0 {
		a.LastCompleted = completed[len(completed)-1]
	}
	return a
}

// Script returns the shell code that registers name for completion. The
// shell then runs name itself with COMP_LINE set to ask for candidates.
func Script(shell, name string) (string, error) {
	switch shell {
	case "bash":
		return fmt.Sprintf("complete -o default -C %s %s\n", name, name), nil
	case "zsh":
		return fmt.Sprintf("autoload -U +X bashcompinit && bashcompinit\ncomplete -o default -C %s %s\n", name, name), nil
	case "fish":
		return fmt.Sprintf(`function __complete_%[1]s
    set -lx COMP_LINE (commandline -cp)
    test -z (commandline -ct)
    and set COMP_LINE "$COMP_LINE "
    %[1]s
end
complete -f -c %[1]s -a "(__complete_%[1]s)"
`, name), nil
	}
	return "", rfz.Errorf(rfz.EINVALID, "unsupported shell %q (want one of %s)", shell, strings.Join(Shells, ", "))
}
