package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brenoafb/addsub/pkg/cmdline"
	"github.com/brenoafb/addsub/pkg/compiler"
	"github.com/brenoafb/addsub/pkg/diag"
)

type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func exactlyOneExpr(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "compiler [flags] EXPR",
		Short: "Compile an addition/subtraction expression to assembly",
		Long: `Compiler translates a single expression such as "12 + 5 - 3" into an
assembly listing whose main function returns the value of the expression.
The listing is written to standard output.

An argument starting with '-' that is not one of the flags below is taken as the
expression.`,
		Args:          exactlyOneExpr,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := compiler.LookupTarget(target)
			if err != nil {
				return &usageError{err: err}
			}

			// buffer so a failing compile prints nothing
			out := &bytes.Buffer{}
			c := compiler.NewCompiler(out)
			c.Target = t

			if err := c.Compile(args[0]); err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", compiler.X86_64.Name,
		fmt.Sprintf("target architecture %v", compiler.TargetNames()))

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

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "error: %v\n", ue)
		fmt.Fprint(stderr, cmd.UsageString())
		return 1
	}

	input := ""
	if rest := cmd.Flags().Args(); len(rest) == 1 {
		input = rest[0]
	}
	diag.Report(stderr, input, err)

	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
