package stdlib

import (
	. "github.com/lumelang/lume/api"
)

// pushAny mirrors a Go value onto the stack. Maps and slices become
// tables; anything else not representable becomes nil.
func pushAny(ls LmState, v any) {
	switch x := v.(type) {
	case nil:
		ls.PushNil()
	case bool:
		ls.PushBoolean(x)
	case int:
		ls.PushInteger(int64(x))
	case int64:
		ls.PushInteger(x)
	case float64:
		ls.PushNumber(x)
	case string:
		ls.PushString(x)
	case []any:
		ls.CreateTable(len(x), 0)
		for i, item := range x {
			pushAny(ls, item)
			ls.SetI(-2, int64(i+1))
		}
	case map[string]any:
		ls.CreateTable(0, len(x))
		for k, item := range x {
			pushAny(ls, item)
			ls.SetField(-2, k)
		}
	default:
		ls.PushNil()
	}
}

// popAny mirrors the value at idx into a Go value. Tables with keys
// 1..n become []any, other tables become map[string]any.
func popAny(ls LmState, idx int) any {
	idx = ls.AbsIndex(idx)
	switch ls.Type(idx) {
	case LM_TNIL, LM_TNONE:
		return nil
	case LM_TBOOLEAN:
		return ls.ToBoolean(idx)
	case LM_TNUMBER:
		if ls.IsInteger(idx) {
			return ls.ToInteger(idx)
		}
		return ls.ToNumber(idx)
	case LM_TSTRING:
		return ls.ToString(idx)
	case LM_TTABLE:
		return popTable(ls, idx)
	default:
		return ls.ToString2(idx)
	}
}

func popTable(ls LmState, idx int) any {
	m := map[any]any{}
	maxN := int64(0)
	ls.PushNil()
	for ls.Next(idx) {
		key := popAny(ls, -2)
		m[key] = popAny(ls, -1)
		if i, ok := key.(int64); ok && i > maxN {
			maxN = i
		}
		ls.Pop(1)
	}
	if maxN > 0 && int(maxN) == len(m) {
		arr := make([]any, maxN)
		complete := true
		for i := int64(1); i <= maxN; i++ {
			v, ok := m[i]
			if !ok {
				complete = false
				break
			}
			arr[i-1] = v
		}
		if complete {
			return arr
		}
	}
	strs := make(map[string]any, len(m))
	for k, v := range m {
		strs[formatKey(k)] = v
	}
	return strs
}

func formatKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return jsoniterSprint(k)
}

func jsoniterSprint(v any) string {
	s, err := json.MarshalToString(v)
	if err != nil {
		return ""
	}
	return s
}
