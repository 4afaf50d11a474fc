// Command kuzur is Kuzur's command-line entry point: the "external
// collaborator" spec.md §6 describes but deliberately leaves unspecified
// beyond its contract. It reads a .kz source file, feeds it to the
// parser and interp packages, and maps failures to the exit codes §6
// requires (0 success, 1 runtime/parse error, 2 usage error).
//
// go-mix's own root main.go is a hand-rolled demo (no flag parsing at
// all); conneroisu-gix's go.mod is the pack's evidence for a cobra-based
// CLI, so this entry point is built on spf13/cobra + spf13/pflag the way
// conneroisu-gix declares (even though that repo's own main.go still
// uses the stdlib flag package directly) — the one component grounded on
// a dependency declaration rather than matching source code, recorded in
// DESIGN.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kuzurlang/kuzur/host"
	"github.com/kuzurlang/kuzur/interp"
	"github.com/kuzurlang/kuzur/kzerr"
	"github.com/kuzurlang/kuzur/parser"
	"github.com/kuzurlang/kuzur/repl"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := 0

	root := &cobra.Command{
		Use:           "kuzur [program.kz]",
		Short:         "Kuzur is a small dynamically-typed imperative scripting language.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			exitCode = runFile(args[0])
			return nil
		},
	}
	root.SetVersionTemplate("Kuzur {{.Version}}\n")
	root.Flags().BoolP("version", "V", false, "print version and exit")

	runCmd := &cobra.Command{
		Use:   "run <program.kz>",
		Short: "Run a Kuzur source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runFile(args[0])
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Kuzur session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repl.New(version).Start(os.Stdout); err != nil {
				exitCode = 1
				return err
			}
			return nil
		},
	}

	root.AddCommand(runCmd, replCmd)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

// runFile implements the bare "kuzur <program.kz>" / "kuzur run
// <program.kz>" contract of spec.md §6: usage errors (missing file,
// wrong extension) exit 2; parse/runtime errors from the core exit 1
// with a diagnostic on stderr; success exits 0.
func runFile(path string) int {
	if filepath.Ext(path) != ".kz" {
		fmt.Fprintf(os.Stderr, "usage error: %q does not have a .kz extension\n", path)
		return 2
	}
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage error: %s\n", err)
		return 2
	}

	program, err := parser.Parse(string(src))
	if err != nil {
		printDiagnostic(err)
		return 1
	}

	in := interp.New(host.NewStdIO())
	if _, err := in.Run(program); err != nil {
		printDiagnostic(err)
		return 1
	}
	return 0
}

// printDiagnostic renders a position-bearing error the way §7 describes:
// a one-line message and, when available, a source position.
func printDiagnostic(err error) {
	pos := errorPos(err)
	if pos >= 0 {
		fmt.Fprintf(os.Stderr, "kuzur: %s (at position %d)\n", err, pos)
		return
	}
	fmt.Fprintf(os.Stderr, "kuzur: %s\n", err)
}

func errorPos(err error) int {
	switch e := err.(type) {
	case *kzerr.LexError:
		return e.Pos
	case *kzerr.SyntaxError:
		return e.Pos
	case *kzerr.NameError:
		return e.Pos
	case *kzerr.TypeError:
		return e.Pos
	case *kzerr.ArithmeticError:
		return e.Pos
	case *kzerr.RuntimeError:
		return e.Pos
	default:
		return -1
	}
}
