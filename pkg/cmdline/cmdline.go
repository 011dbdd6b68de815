// Package cmdline keeps expression arguments that start with '-' from
// being parsed as flags.
package cmdline

import (
	"strings"

	"github.com/spf13/pflag"
)

// Positional returns args with "--" inserted before the first argument
// that is not a flag registered in fs, so "-1" or "- 5" reach the
// command as the expression. Flag values ("-t riscv64") are skipped.
func Positional(fs *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "--" || !strings.HasPrefix(a, "-") {
			return args
		}

		var (
			flag   *pflag.Flag
			inline bool
		)
		if name, ok := strings.CutPrefix(a, "--"); ok {
			name, _, inline = strings.Cut(name, "=")
			flag = fs.Lookup(name)
		} else if len(a) >= 2 {
			flag = fs.ShorthandLookup(a[1:2])
			inline = len(a) > 2
		}

		if flag == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}

		// a non-boolean flag without an inline value consumes the next arg
		if flag.NoOptDefVal == "" && !inline {
			i++
		}
	}

	return args
}
