// Command perch runs perch scripts.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/klauspost/readahead"

	"perch/builtins"
	"perch/eval"
	"perch/parser"
	"perch/task"
	"perch/trace"
	"perch/types"
)

var cli struct {
	Eval        string   `help:"Execute the given source instead of a script file." short:"e" name:"eval"`
	Trace       bool     `help:"Trace calls, returns, and method binds to stderr."`
	TraceFilter []string `help:"Only trace names matching these glob patterns." name:"trace-filter"`
	Ticks       int64    `help:"Tick budget before a runaway script is aborted." default:"500000"`
	Builtins    bool     `help:"List the available builtin functions and exit."`
	Script      string   `arg:"" optional:"" help:"Script file to run." type:"existingfile"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("perch"),
		kong.Description("The perch scripting language."),
		kong.UsageOnError(),
	)

	trace.Init(cli.Trace, cli.TraceFilter, os.Stderr)

	if cli.Builtins {
		for _, name := range builtins.NewRegistry().Names() {
			fmt.Println(name)
		}
		return
	}

	source, chunk, err := loadSource()
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	os.Exit(run(source, chunk))
}

func loadSource() (source, chunk string, err error) {
	if cli.Eval != "" {
		return cli.Eval, "eval", nil
	}
	if cli.Script == "" {
		return "", "", fmt.Errorf("expected a script file or --eval source")
	}

	f, err := os.Open(cli.Script)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	r := readahead.NewReader(f)
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", cli.Script, err)
	}

	chunk = strings.TrimSuffix(filepath.Base(cli.Script), filepath.Ext(cli.Script))
	return string(data), chunk, nil
}

func run(source, chunk string) int {
	p := parser.NewParser(source)
	stmts, err := p.ParseProgram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", chunk, err)
		return 1
	}

	ev := eval.NewEvaluator(builtins.NewRegistry())
	ctx := types.NewTaskContext()
	ctx.Chunk = chunk
	ctx.TicksRemaining = cli.Ticks

	res := ev.RunChunk(stmts, ctx)
	if res.IsError() {
		stack, _ := res.CallStack.([]task.Frame)
		fmt.Fprintln(os.Stderr, task.FormatTracebackString(chunk, res.ErrorMessage(), stack))
		return 1
	}
	return 0
}
