// beat - interactive REPL for the stack expression language
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/a2aaron/BROKEN-FIELD/stackbeat"
)

const (
	historyFile = ".beat_history"
	prompt      = "beat> "
	banner      = "stack-beat REPL. Enter an expression; Ctrl+D or :quit exits."
)

const helpText = `
REPL commands:
  :quit         Exit the REPL
  :help         Show this help

Expressions are whitespace-separated tokens, e.g.:
  t sx ^ sy &
  t 2 % sx * sin
`

func main() {
	fmt.Println(banner)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

loop:
	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit", ":q":
			break loop
		case ":help", ":h":
			fmt.Print(helpText)
			continue
		}

		runExpression(input)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

// runExpression parses, compiles and evaluates one expression over a small
// range of t, with the other inputs held at zero.
func runExpression(input string) {
	cmds, err := stackbeat.ParseBeat(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return
	}
	program, err := stackbeat.Compile(cmds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		return
	}

	if name, ok := program.Meta("name"); ok {
		fmt.Printf("# %s\n", name)
	}

	stack := make([]stackbeat.Value, 0, 32)
	zero := stackbeat.I(0)
	for t := int64(0); t < 8; t++ {
		v := stackbeat.Eval(&stack, program, stackbeat.I(t),
			zero, zero, zero, zero, zero, zero)
		if v.IsFloat() {
			fmt.Printf("t=%d  %v\n", t, v.Float())
		} else {
			fmt.Printf("t=%d  %d\n", t, v.Int())
		}
	}
	fmt.Printf("%s\n", program)
}
