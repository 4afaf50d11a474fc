// Package repl implements Kuzur's interactive Read-Eval-Print Loop,
// ported from akashmaji946/go-mix's repl package: the same colored-banner
// presentation (fatih/color), the same chzyer/readline-based line editor
// with history and a ".exit" sentinel, and the same
// parse-then-evaluate-with-recovery structure per input line — rewired
// from go-mix's single dynamic evaluator.Evaluator onto Kuzur's
// parser.Parse + interp.Interpreter pair, and from go-mix's
// *std.Error-or-not result check onto a Go error return.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/kuzurlang/kuzur/host"
	"github.com/kuzurlang/kuzur/interp"
	"github.com/kuzurlang/kuzur/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _  ___   _ ____ _   _ ____
 | |/ / | | |_  /| | | |  _ \
 | ' /| | | |/ / | | | | |_) |
 | . \| |_| / /_ | |_| |  _ <
 |_|\_\\___/____(_)___/|_| \_\
`

const line = "----------------------------------------"

// Repl holds the static presentation strings for a session, the same
// role go-mix's Repl{Banner, Version, Author, Line, License, Prompt}
// struct plays.
type Repl struct {
	Version string
	Prompt  string
}

// New creates a Repl with Kuzur's default banner and prompt.
func New(version string) *Repl {
	return &Repl{Version: version, Prompt: "kuzur >>> "}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "Kuzur "+r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintf(w, "%s\n", "Type Kuzur statements and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop against writer for both the banner/diagnostics
// and the interpreter's own print() output, reading lines via readline.
// The interpreter and its global environment persist across lines within
// one session, so a variable or function defined on one line is visible
// on the next — the same statefulness go-mix's single long-lived
// evaluator gives its REPL.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	// input() within a REPL line reads from the process's real stdin
	// rather than through readline's line editor, the same split go-mix
	// keeps between its readline-driven prompt loop and its evaluator's
	// separate bufio.Reader for the input() builtin.
	in := interp.New(host.NewBufferedIO(os.Stdin, w))

	for {
		input, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}
		rl.SaveHistory(input)

		r.evalLine(w, in, input)
	}
}

// evalLine parses and runs one line of input against the session's
// shared interpreter, printing syntax/runtime errors in red and leaving
// the REPL running afterward — file-mode (cmd/kuzur run) is fatal on
// error, the REPL is not, mirroring go-mix's executeWithRecovery.
func (r *Repl) evalLine(w io.Writer, in *interp.Interpreter, input string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "internal error: %v\n", rec)
		}
	}()
	program, err := parser.Parse(input)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	if _, err := in.Run(program); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}
