package main

import (
	"os"

	"github.com/lumelang/lume/consts"
	"github.com/lumelang/lume/term"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v", "version":
			term.Cyan("lume v" + consts.VERSION + "\n")
			return
		default:
			term.Err("unknown option: %s", os.Args[1])
			os.Exit(1)
		}
	}
	repl()
}
