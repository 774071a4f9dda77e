package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pontaoski/bussin/config"
	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/interpreter"
	"github.com/pontaoski/bussin/parser"
	"github.com/pontaoski/bussin/runtime"
)

const (
	historyFile = ".bussin_history"
	promptMain  = "bussin> "
	promptCont  = "....... "
	replSource  = "<repl>"
)

// needsMoreInput reports whether src stops in the middle of a statement.
func needsMoreInput(src string) bool {
	_, err := parser.ParseSource(strings.NewReader(src), replSource)
	return errors.UnexpectedEOF(err)
}

// readInput prompts until the buffered lines parse or fail for a reason other
// than running out of input. ok is false once the user closes the session.
func readInput(ln *liner.State) (src string, ok bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if stderrors.Is(err, io.EOF) {
			return "", false
		}
		if stderrors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !needsMoreInput(b.String()) {
			return b.String(), true
		}
	}
}

// evalInput runs src against the session's scope and writes the result, or
// the error, to out.
func evalInput(i *interpreter.Interpreter, env *runtime.Environment, src string, out io.Writer) {
	value, err := i.Run(strings.NewReader(src), replSource, env)
	if err != nil {
		if category, ok := errors.CategoryOf(err); ok {
			fmt.Fprintf(out, "%s: %s\n", category, err)
			return
		}
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, value)
}

func repl(cfg config.Config, out io.Writer) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	i := interpreter.New(cfg)
	env := runtime.NewGlobalEnvironment(out)

	for {
		src, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		evalInput(i, env, src, out)
	}
}
