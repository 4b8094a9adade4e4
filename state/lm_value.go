package state

import (
	"fmt"

	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/number"
)

func typeOf(val any) LmType {
	switch val.(type) {
	case nil:
		return LM_TNIL
	case bool:
		return LM_TBOOLEAN
	case int64, float64:
		return LM_TNUMBER
	case string:
		return LM_TSTRING
	case lightUserData:
		return LM_TLIGHTUSERDATA
	case *lmTable:
		return LM_TTABLE
	case *lmClosure, GoFunction:
		return LM_TFUNCTION
	case *lmState:
		return LM_TTHREAD
	default:
		panic(fmt.Sprintf("invalid type: %T<%v>", val, val))
	}
}

// only nil and boolean false are falsey
func convertToBoolean(val any) bool {
	switch x := val.(type) {
	case nil:
		return false
	case bool:
		return x
	default:
		return true
	}
}

// http://www.lua.org/manual/5.3/manual.html#3.4.3
func convertToFloat(val any) (float64, bool) {
	switch x := val.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case string:
		return number.ParseFloat(x)
	default:
		return 0, false
	}
}

// http://www.lua.org/manual/5.3/manual.html#3.4.3
func convertToInteger(val any) (int64, bool) {
	switch x := val.(type) {
	case int64:
		return x, true
	case float64:
		return number.FloatToInteger(x)
	case string:
		return _stringToInteger(x)
	default:
		return 0, false
	}
}

func _stringToInteger(s string) (int64, bool) {
	if i, ok := number.ParseInteger(s); ok {
		return i, true
	}
	if f, ok := number.ParseFloat(s); ok {
		return number.FloatToInteger(f)
	}
	return 0, false
}

func formatValue(val any) string {
	switch x := val.(type) {
	case string:
		return x
	case int64:
		return fmt.Sprintf("%d", x)
	case float64:
		return fmt.Sprintf("%.14g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
