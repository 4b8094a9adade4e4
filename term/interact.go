package term

import (
	"os"

	"atomicgo.dev/cursor"
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

const _prompt = "> "

type ReadLineConfig struct {
	// History is the history of lines.
	History []string
	// Prompt is the prompt to show.
	Prompt string
}

func ReadLine(config ReadLineConfig) string {
	if len(config.Prompt) == 0 {
		config.Prompt = _prompt
	}
	os.Stdout.WriteString(config.Prompt)
	rs := []rune{}
	linesIdx := len(config.History)
	runeIdx := 0

	keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		switch key.Code {
		case keys.CtrlC:
			os.Exit(0)
		case keys.CtrlD:
			println()
			rs = nil
			return true, nil
		case keys.RuneKey:
			runes := key.Runes
			rs = append(rs[:runeIdx], append(runes, rs[runeIdx:]...)...)
			runeIdx += len(runes)
			resetLine(rs, config.Prompt)
		case keys.Enter:
			println()
			return true, nil
		case keys.Backspace:
			if len(rs) > 0 && runeIdx > 0 {
				rs = append(rs[:runeIdx-1], rs[runeIdx:]...)
				resetLine(rs, config.Prompt)
				runeIdx--
			}
		case keys.Left:
			if runeIdx > 0 {
				runeIdx--
			}
		case keys.Right:
			if runeIdx < len(rs) {
				runeIdx++
			}
		case keys.Up:
			if linesIdx > 0 {
				linesIdx--
				rs = []rune(config.History[linesIdx])
				resetLine(rs, config.Prompt)
				runeIdx = len(rs)
			}
		case keys.Down:
			if linesIdx < len(config.History)-1 {
				linesIdx++
				rs = []rune(config.History[linesIdx])
				resetLine(rs, config.Prompt)
				runeIdx = len(rs)
			} else if linesIdx == len(config.History)-1 {
				linesIdx++
				rs = []rune("")
				resetLine(rs, config.Prompt)
				runeIdx = 0
			}
		case keys.Space:
			rs = append(rs[:runeIdx], append([]rune(" "), rs[runeIdx:]...)...)
			resetLine(rs, config.Prompt)
			runeIdx++
		case keys.Tab:
			rs = append(rs[:runeIdx], append([]rune("\t"), rs[runeIdx:]...)...)
			resetLine(rs, config.Prompt)
			runeIdx++
		case keys.Delete:
			if runeIdx < len(rs) {
				rs = append(rs[:runeIdx], rs[runeIdx+1:]...)
				resetLine(rs, config.Prompt)
			}
		}

		cursor.HorizontalAbsolute(runeIdx + len([]rune(config.Prompt)))
		return false, nil
	})
	return string(rs)
}

func resetLine(rs []rune, prompt string) {
	cursor.ClearLine()
	cursor.StartOfLine()
	print(prompt + string(rs))
}
