package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Woile/rslox/internal"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// Exit codes follow BSD sysexits: 64 for bad usage, 65 for malformed
// source, 70 for a runtime failure.
const (
	exitOK      = 0
	exitUsage   = 64
	exitSyntax  = 65
	exitRuntime = 70
)

type runOpts struct {
	printTokens bool
	printAst    bool
}

// stdPrinter writes program output to stdout and paints anything sent
// to stderr red.
type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, color.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

func main() {
	printTokens := flag.BoolP("print-tokens", "t", false, "print the scanned tokens before running")
	printAst := flag.BoolP("print-ast", "a", false, "print the parsed tree before running")
	debug := flag.Bool("debug", false, "log the scan, parse and interpret stages")
	history := flag.String("history", "", "interactive history file")
	flag.Parse()

	cfg, err := loadConfig(".")
	if err != nil {
		logrus.WithError(err).Warn("ignoring unreadable " + configFile)
	}

	// Flags given on the command line win over rslox.yml.
	if !flag.CommandLine.Changed("print-tokens") && cfg.PrintTokens {
		*printTokens = true
	}
	if !flag.CommandLine.Changed("print-ast") && cfg.PrintAst {
		*printAst = true
	}
	if !flag.CommandLine.Changed("debug") && cfg.Debug {
		*debug = true
	}
	if !flag.CommandLine.Changed("history") && cfg.History != "" {
		*history = cfg.History
	}
	if *history == "" {
		*history = defaultHistoryFile()
	}

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: rslox [script]")
		os.Exit(exitUsage)
	}

	run := newRunner(stdPrinter{}, runOpts{printTokens: *printTokens, printAst: *printAst})

	if len(args) == 1 {
		os.Exit(runFile(args[0], run))
	}
	runPrompt(run, *history)
}

// newRunner binds a global environment and returns a function that
// runs one source text against it. File mode calls it once; the REPL
// calls it per line, so definitions survive between lines.
func newRunner(p internal.IPrinter, opts runOpts) func(source string) int {
	environ := internal.NewGlobalEnv()
	return func(source string) int {
		state := internal.NewInterpreterState(source)

		start := time.Now()
		ok := internal.Scan(state)
		logrus.WithFields(logrus.Fields{"ok": ok, "elapsed": time.Since(start)}).Debug("scan")
		if opts.printTokens {
			internal.PrintTokens(state, p)
		}
		if !ok {
			state.PrintErrors(p)
			return exitSyntax
		}

		start = time.Now()
		ok = internal.Parse(state)
		logrus.WithFields(logrus.Fields{"ok": ok, "elapsed": time.Since(start)}).Debug("parse")
		if !ok {
			state.PrintErrors(p)
			return exitSyntax
		}
		if opts.printAst {
			internal.PrintTree(state, p)
		}

		start = time.Now()
		err := internal.Interpret(state, environ, p)
		logrus.WithFields(logrus.Fields{"ok": err == nil, "elapsed": time.Since(start)}).Debug("interpret")
		if err != nil {
			p.Fprintln(os.Stderr, err)
			return exitRuntime
		}
		return exitOK
	}
}

func runFile(path string, run func(source string) int) int {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatal(err)
	}
	return run(string(b))
}
