package term

import (
	"fmt"

	"github.com/lumelang/lume/consts"
)

func printf(color, format string, args ...any) {
	print(colored(color, fmt.Sprintf(format, args...)) + "\n")
}

func Warn(format string, args ...any) {
	printf(YELLOW, "[WAR] "+format, args...)
}

func Err(format string, args ...any) {
	printf(RED, "[ERR] "+format, args...)
}

func Info(format string, args ...any) {
	printf(CYAN, "[INF] "+format, args...)
}

func Suc(format string, args ...any) {
	printf(GREEN, "[SUC] "+format, args...)
}

func Debug(format string, args ...any) {
	if consts.Debug {
		printf(MAGENTA, "[DEBUG] "+format, args...)
	}
}
