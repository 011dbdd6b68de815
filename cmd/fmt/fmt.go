package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/brenoafb/addsub/pkg/cmdline"
	"github.com/brenoafb/addsub/pkg/compiler"
	"github.com/brenoafb/addsub/pkg/diag"
	"github.com/brenoafb/addsub/pkg/expr"
	"github.com/brenoafb/addsub/pkg/parser"
)

func newRootCmd() *cobra.Command {
	var (
		dump    bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:           "fmt [flags] EXPR",
		Short:         "Print an expression in normalized form",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := parser.Tokenize(args[0])
			if err != nil {
				return fmt.Errorf("tokenizer error: %w", err)
			}

			terms, err := parser.Parse(tokens)
			if err != nil {
				return fmt.Errorf("parser error: %w", err)
			}

			w := cmd.OutOrStdout()

			if dump {
				printer := pp.New()
				printer.SetOutput(w)
				printer.SetColoringEnabled(!noColor)
				printer.SetExportedOnly(true)

				fmt.Fprintln(w, "tokens:")
				printer.Println(tokens.All())
				fmt.Fprintln(w, "terms:")
				printer.Println(terms)
				fmt.Fprintln(w, "instructions:")
				printer.Println(compiler.Generate(terms))
			}

			fmt.Fprintln(w, expr.Format(terms))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "pretty-print tokens, terms and instructions")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors in --dump output")

	return cmd
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.InitDefaultHelpFlag()
	cmd.SetArgs(cmdline.Positional(cmd.Flags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		input := ""
		if rest := cmd.Flags().Args(); len(rest) == 1 {
			input = rest[0]
		}
		diag.Report(stderr, input, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
