package stdlib

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/consts"
)

var baseFuncs = map[string]GoFunction{
	"print":  basePrint,
	"assert": baseAssert,
	"error":  baseError,
	"next":   baseNext,
	"pcall":  basePCall,
	"select": baseSelect,
	"type":   baseType,
	"str":    baseToString,
	"num":    baseToNumber,
	"int":    baseToInt,
	"range":  basePairs,
	"irange": baseIPairs,
}

// lua-5.3.4/src/lbaselib.c#luaopen_base()
func OpenBaseLib(ls LmState) int {
	/* open lib into global table */
	ls.PushGlobalTable()
	ls.SetFuncs(baseFuncs, 0)
	/* set global _G */
	ls.PushValue(-1)
	ls.SetField(-2, "_G")
	/* set global _VERSION */
	ls.PushString(consts.VERSION)
	ls.SetField(-2, "_VERSION")
	return 1
}

// print (···)
// http://www.lua.org/manual/5.3/manual.html#pdf-print
// lua-5.3.4/src/lbaselib.c#luaB_print()
func basePrint(ls LmState) int {
	n := ls.GetTop() /* number of arguments */
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, ls.ToString2(i))
	}
	fmt.Println(strings.Join(parts, "\t"))
	return 0
}

// assert (v [, message])
// http://www.lua.org/manual/5.3/manual.html#pdf-assert
// lua-5.3.4/src/lbaselib.c#luaB_assert()
func baseAssert(ls LmState) int {
	if ls.ToBoolean(1) { /* condition is true? */
		return ls.GetTop() /* return all arguments */
	}
	ls.CheckAny(1)                     /* there must be a condition */
	ls.Remove(1)                       /* remove it */
	ls.PushString("assertion failed!") /* default message */
	ls.SetTop(1)                       /* leave only message (default if no other one) */
	return baseError(ls)               /* call 'error' */
}

// error (message [, level])
// http://www.lua.org/manual/5.3/manual.html#pdf-error
// lua-5.3.4/src/lbaselib.c#luaB_error()
func baseError(ls LmState) int {
	ls.SetTop(1)
	return ls.Error()
}

// next (table [, index])
// http://www.lua.org/manual/5.3/manual.html#pdf-next
// lua-5.3.4/src/lbaselib.c#luaB_next()
func baseNext(ls LmState) int {
	ls.CheckType(1, LM_TTABLE)
	ls.SetTop(2) /* create a 2nd argument if there isn't one */
	if ls.Next(1) {
		return 2
	}
	ls.PushNil()
	return 1
}

// pcall (f [, arg1, ···])
// http://www.lua.org/manual/5.3/manual.html#pdf-pcall
// lua-5.3.4/src/lbaselib.c#luaB_pcall()
func basePCall(ls LmState) int {
	nArgs := ls.GetTop() - 1
	status := ls.PCall(nArgs, LM_MULTRET, 0)
	ls.PushBoolean(status == LM_OK)
	ls.Insert(1)
	return ls.GetTop()
}

// select (n, ···)
// http://www.lua.org/manual/5.3/manual.html#pdf-select
// lua-5.3.4/src/lbaselib.c#luaB_select()
func baseSelect(ls LmState) int {
	n := int64(ls.GetTop())
	if ls.Type(1) == LM_TSTRING && ls.CheckString(1) == "#" {
		ls.PushInteger(n - 1)
		return 1
	}
	i := ls.CheckInteger(1)
	if i < 0 {
		i = n + i
	} else if i > n {
		i = n
	}
	ls.ArgCheck(1 <= i, 1, "index out of range")
	return int(n - i)
}

// type (v)
// http://www.lua.org/manual/5.3/manual.html#pdf-type
// lua-5.3.4/src/lbaselib.c#luaB_type()
func baseType(ls LmState) int {
	t := ls.Type(1)
	ls.ArgCheck(t != LM_TNONE, 1, "value expected")
	ls.PushString(ls.TypeName(t))
	return 1
}

// str (v)
// http://www.lua.org/manual/5.3/manual.html#pdf-tostring
func baseToString(ls LmState) int {
	ls.CheckAny(1)
	ls.PushString(ls.ToString2(1))
	return 1
}

// num (e [, base])
// http://www.lua.org/manual/5.3/manual.html#pdf-tonumber
// lua-5.3.4/src/lbaselib.c#luaB_tonumber()
func baseToNumber(ls LmState) int {
	if ls.IsNoneOrNil(2) { /* standard conversion? */
		ls.CheckAny(1)
		if ls.Type(1) == LM_TNUMBER { /* already a number? */
			ls.SetTop(1)
			return 1
		}
		if s, ok := ls.ToStringX(1); ok {
			if ls.StringToNumber(s) {
				return 1
			}
		}
	} else {
		ls.CheckType(1, LM_TSTRING)
		s := strings.TrimSpace(ls.CheckString(1))
		base := int(ls.CheckInteger(2))
		ls.ArgCheck(2 <= base && base <= 36, 2, "base out of range")
		if n, err := strconv.ParseInt(s, base, 64); err == nil {
			ls.PushInteger(n)
			return 1
		}
	}
	ls.PushNil()
	return 1
}

// int (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.tointeger
// lua-5.3.4/src/lmathlib.c#math_toint()
func baseToInt(ls LmState) int {
	if i, ok := ls.ToIntegerX(1); ok {
		ls.PushInteger(i)
	} else {
		ls.CheckAny(1)
		ls.PushNil() /* value is not convertible to integer */
	}
	return 1
}

// range (t)
// http://www.lua.org/manual/5.3/manual.html#pdf-pairs
// lua-5.3.4/src/lbaselib.c#luaB_pairs()
func basePairs(ls LmState) int {
	ls.CheckAny(1)
	ls.PushGoFunction(baseNext) /* will return generator, */
	ls.PushValue(1)             /* state, */
	ls.PushNil()                /* and initial value */
	return 3
}

// irange (t)
// http://www.lua.org/manual/5.3/manual.html#pdf-ipairs
// lua-5.3.4/src/lbaselib.c#luaB_ipairs()
func baseIPairs(ls LmState) int {
	ls.CheckAny(1)
	ls.PushGoFunction(iPairsAux) /* iteration function */
	ls.PushValue(1)              /* state */
	ls.PushInteger(0)            /* initial value */
	return 3
}

func iPairsAux(ls LmState) int {
	i := ls.CheckInteger(2) + 1
	ls.PushInteger(i)
	if ls.GetI(1, i) == LM_TNIL {
		return 1
	}
	return 2
}
