package number

import (
	"strconv"
	"strings"
)

// ParseInteger reads a decimal or 0x/0X hexadecimal integer literal.
func ParseInteger(str string) (int64, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, false
	}
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		i, err := strconv.ParseUint(str[2:], 16, 64)
		return int64(i), err == nil
	}
	if strings.HasPrefix(str, "-0x") || strings.HasPrefix(str, "-0X") {
		i, err := strconv.ParseUint(str[3:], 16, 64)
		return -int64(i), err == nil
	}
	i, err := strconv.ParseInt(str, 10, 64)
	return i, err == nil
}

func ParseFloat(str string) (float64, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(str, 64)
	return f, err == nil
}
