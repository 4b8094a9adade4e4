package main

import (
	"fmt"
	"strings"

	"github.com/lumelang/lume/api"
	"github.com/lumelang/lume/consts"
	"github.com/lumelang/lume/number"
	"github.com/lumelang/lume/state"
	"github.com/lumelang/lume/term"
)

var linesHistory = []string{}

// repl is an interactive shell over a live stack: values are pushed as
// literals, globals looked up by name, and functions called in place.
func repl() {
	ls := state.New()
	ls.OpenLibs()

	if !term.IsTerminal() {
		term.Warn("stdin is not a terminal, line editing may misbehave")
	}
	if sz, err := term.Size(); err == nil && sz.Width < 40 {
		term.Warn("narrow terminal (%d cols)", sz.Width)
	}

	term.Cyan("lume shell (v" + consts.VERSION + ")\n")
	term.Cyan("type 'help' for commands\n")

	for {
		line := term.ReadLine(term.ReadLineConfig{History: linesHistory})
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		updateHistory(line)
		if line == "exit" || line == "quit" {
			return
		}
		execLine(ls, line)
	}
}

func execLine(ls api.LmState, line string) {
	defer func() {
		if err := recover(); err != nil {
			term.Warn("%v", err)
		}
	}()

	term.Debug("exec: %s", line)
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		printHelp()
	case "push":
		for _, arg := range args {
			pushLiteral(ls, arg)
		}
		dump(ls)
	case "pop":
		n := 1
		if len(args) > 0 {
			n = atoi(args[0])
		}
		ls.Pop(n)
		dump(ls)
	case "settop":
		if len(args) != 1 {
			term.Err("usage: settop <idx>")
			return
		}
		ls.SetTop(atoi(args[0]))
		dump(ls)
	case "dump", "stack":
		dump(ls)
	case "top":
		term.Green(fmt.Sprintf("%d\n", ls.GetTop()))
	case "global":
		if len(args) != 1 {
			term.Err("usage: global <name>")
			return
		}
		ls.GetGlobal(args[0])
		dump(ls)
	case "setglobal":
		if len(args) != 1 {
			term.Err("usage: setglobal <name>")
			return
		}
		ls.SetGlobal(args[0])
		dump(ls)
	case "field":
		if len(args) != 1 {
			term.Err("usage: field <name>")
			return
		}
		ls.GetField(-1, args[0])
		dump(ls)
	case "call":
		nArgs := 0
		if len(args) > 0 {
			nArgs = atoi(args[0])
		}
		nResults := api.LM_MULTRET
		if len(args) > 1 {
			nResults = atoi(args[1])
		}
		ls.Call(nArgs, nResults)
		dump(ls)
	case "pcall":
		nArgs := 0
		if len(args) > 0 {
			nArgs = atoi(args[0])
		}
		status := ls.PCall(nArgs, api.LM_MULTRET, 0)
		if status != api.LM_OK {
			term.Err("%s", ls.ToString2(-1))
			ls.Pop(1)
		}
		dump(ls)
	default:
		term.Err("unknown command: %s (try 'help')", cmd)
	}
}

func pushLiteral(ls api.LmState, lit string) {
	switch lit {
	case "nil":
		ls.PushNil()
	case "true":
		ls.PushBoolean(true)
	case "false":
		ls.PushBoolean(false)
	default:
		if i, ok := number.ParseInteger(lit); ok {
			ls.PushInteger(i)
		} else if f, ok := number.ParseFloat(lit); ok {
			ls.PushNumber(f)
		} else {
			ls.PushString(strings.Trim(lit, `"'`))
		}
	}
}

func dump(ls api.LmState) {
	top := ls.GetTop()
	if top == 0 {
		term.Yellow("(empty stack)\n")
		return
	}
	var sb strings.Builder
	for i := 1; i <= top; i++ {
		sb.WriteString(fmt.Sprintf("  %d/%d  [%s] %s\n",
			i, i-top-1, ls.TypeName2(i), ls.ToString2(i)))
	}
	term.Green(sb.String())
}

func printHelp() {
	term.Cyan(`commands:
  push <lit>...      push literals (nil, true, false, numbers, strings)
  pop [n]            pop n values (default 1)
  settop <idx>       set the stack top
  top                print the current top
  dump               print the whole stack
  global <name>      push the global <name>
  setglobal <name>   pop the top into global <name>
  field <name>       push field <name> of the value on top
  call [na] [nr]     call: top-na-1 is the function, na args above it
  pcall [na]         protected call, errors are printed
  exit               leave the shell
`)
}

func atoi(s string) int {
	i, ok := number.ParseInteger(s)
	if !ok {
		panic(fmt.Sprintf("not an integer: %q", s))
	}
	return int(i)
}

func updateHistory(str string) {
	for i := range linesHistory {
		if linesHistory[i] == str {
			linesHistory = append(linesHistory[:i], linesHistory[i+1:]...)
			break
		}
	}
	linesHistory = append(linesHistory, str)
}
