package stdlib

import (
	"math"

	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/number"
)

var mathLib = map[string]GoFunction{
	"max":   mathMax,
	"min":   mathMin,
	"abs":   mathAbs,
	"ceil":  mathCeil,
	"floor": mathFloor,
	"sqrt":  mathSqrt,
	"exp":   mathExp,
	"log":   mathLog,
	"sin":   mathSin,
	"cos":   mathCos,
	"tan":   mathTan,
	"fmod":  mathFmod,
	"modf":  mathModf,
	"type":  mathType,
}

func OpenMathLib(ls LmState) int {
	ls.NewLib(mathLib)
	ls.PushNumber(math.Pi)
	ls.SetField(-2, "pi")
	ls.PushNumber(math.Inf(1))
	ls.SetField(-2, "huge")
	ls.PushInteger(math.MaxInt64)
	ls.SetField(-2, "maxint")
	ls.PushInteger(math.MinInt64)
	ls.SetField(-2, "minint")
	return 1
}

/* max & min */

// math.max (x, ···)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.max
// lua-5.3.4/src/lmathlib.c#math_max()
func mathMax(ls LmState) int {
	n := ls.GetTop() /* number of arguments */
	imax := 1        /* index of current maximum value */
	ls.ArgCheck(n >= 1, 1, "value expected")
	for i := 2; i <= n; i++ {
		if ls.CheckNumber(i) > ls.CheckNumber(imax) {
			imax = i
		}
	}
	ls.PushValue(imax)
	return 1
}

// math.min (x, ···)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.min
// lua-5.3.4/src/lmathlib.c#math_min()
func mathMin(ls LmState) int {
	n := ls.GetTop() /* number of arguments */
	imin := 1        /* index of current minimum value */
	ls.ArgCheck(n >= 1, 1, "value expected")
	for i := 2; i <= n; i++ {
		if ls.CheckNumber(i) < ls.CheckNumber(imin) {
			imin = i
		}
	}
	ls.PushValue(imin)
	return 1
}

// math.abs (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.abs
// lua-5.3.4/src/lmathlib.c#math_abs()
func mathAbs(ls LmState) int {
	if ls.IsInteger(1) {
		x := ls.ToInteger(1)
		if x < 0 {
			ls.PushInteger(-x)
		} else {
			ls.PushValue(1)
		}
	} else {
		ls.PushNumber(math.Abs(ls.CheckNumber(1)))
	}
	return 1
}

// math.ceil (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.ceil
// lua-5.3.4/src/lmathlib.c#math_ceil()
func mathCeil(ls LmState) int {
	if ls.IsInteger(1) {
		ls.SetTop(1) /* integer is its own ceil */
	} else {
		pushNumInt(ls, math.Ceil(ls.CheckNumber(1)))
	}
	return 1
}

// math.floor (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.floor
// lua-5.3.4/src/lmathlib.c#math_floor()
func mathFloor(ls LmState) int {
	if ls.IsInteger(1) {
		ls.SetTop(1) /* integer is its own floor */
	} else {
		pushNumInt(ls, math.Floor(ls.CheckNumber(1)))
	}
	return 1
}

// math.sqrt (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.sqrt
func mathSqrt(ls LmState) int {
	ls.PushNumber(math.Sqrt(ls.CheckNumber(1)))
	return 1
}

// math.exp (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.exp
func mathExp(ls LmState) int {
	ls.PushNumber(math.Exp(ls.CheckNumber(1)))
	return 1
}

// math.log (x [, base])
// http://www.lua.org/manual/5.3/manual.html#pdf-math.log
// lua-5.3.4/src/lmathlib.c#math_log()
func mathLog(ls LmState) int {
	x := ls.CheckNumber(1)
	var res float64
	if ls.IsNoneOrNil(2) {
		res = math.Log(x)
	} else {
		base := ls.CheckNumber(2)
		switch base {
		case 2:
			res = math.Log2(x)
		case 10:
			res = math.Log10(x)
		default:
			res = math.Log(x) / math.Log(base)
		}
	}
	ls.PushNumber(res)
	return 1
}

func mathSin(ls LmState) int {
	ls.PushNumber(math.Sin(ls.CheckNumber(1)))
	return 1
}

func mathCos(ls LmState) int {
	ls.PushNumber(math.Cos(ls.CheckNumber(1)))
	return 1
}

func mathTan(ls LmState) int {
	ls.PushNumber(math.Tan(ls.CheckNumber(1)))
	return 1
}

// math.fmod (x, y)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.fmod
// lua-5.3.4/src/lmathlib.c#math_fmod()
func mathFmod(ls LmState) int {
	if ls.IsInteger(1) && ls.IsInteger(2) {
		d := ls.ToInteger(2)
		if uint64(d)+1 <= 1 { /* special cases: -1 or 0 */
			ls.ArgCheck(d != 0, 2, "zero")
			ls.PushInteger(0) /* avoid overflow with 0x80000... / -1 */
		} else {
			ls.PushInteger(ls.ToInteger(1) % d)
		}
	} else {
		ls.PushNumber(math.Mod(ls.CheckNumber(1), ls.CheckNumber(2)))
	}
	return 1
}

// math.modf (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.modf
// lua-5.3.4/src/lmathlib.c#math_modf()
func mathModf(ls LmState) int {
	if ls.IsInteger(1) {
		ls.SetTop(1)     /* number is its own integer part */
		ls.PushNumber(0) /* no fractional part */
	} else {
		x := ls.CheckNumber(1)
		i, f := math.Modf(x)
		pushNumInt(ls, i)
		if math.IsInf(x, 0) {
			ls.PushNumber(0)
		} else {
			ls.PushNumber(f)
		}
	}
	return 2
}

// math.type (x)
// http://www.lua.org/manual/5.3/manual.html#pdf-math.type
// lua-5.3.4/src/lmathlib.c#math_type()
func mathType(ls LmState) int {
	if ls.Type(1) == LM_TNUMBER {
		if ls.IsInteger(1) {
			ls.PushString("integer")
		} else {
			ls.PushString("float")
		}
	} else {
		ls.CheckAny(1)
		ls.PushNil()
	}
	return 1
}

func pushNumInt(ls LmState, d float64) {
	if i, ok := number.FloatToInteger(d); ok { /* does 'd' fit in an integer? */
		ls.PushInteger(i)
	} else {
		ls.PushNumber(d)
	}
}
