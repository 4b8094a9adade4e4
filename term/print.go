package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	RED     = "\033[91m"
	GREEN   = "\033[92m"
	YELLOW  = "\033[93m"
	BLUE    = "\033[94m"
	MAGENTA = "\033[95m"
	CYAN    = "\033[96m"
	NOCOLOR = "\033[0m"
)

var colorized = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func print(s string) {
	os.Stdout.WriteString(s)
}

func colored(color, s string) string {
	if !colorized {
		return s
	}
	return color + s + NOCOLOR
}

func Red(s string) {
	print(colored(RED, s))
}

func Green(s string) {
	print(colored(GREEN, s))
}

func Yellow(s string) {
	print(colored(YELLOW, s))
}

func Blue(s string) {
	print(colored(BLUE, s))
}

func Cyan(s string) {
	print(colored(CYAN, s))
}
