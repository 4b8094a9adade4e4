package api

// GoFunction is a native function callable from the stack. It receives its
// arguments at indices 1..GetTop() of a fresh frame and returns the number
// of results it pushed.
type GoFunction func(LmState) int

// Continuation resumes a call after the coroutine running it yielded.
// status is the status the original call would have returned, ctx is the
// opaque value recorded alongside the continuation.
type Continuation func(ls LmState, status LmStatus, ctx int64) int

// Executor is the external dispatch primitive for compiled guest functions.
// proto is the opaque chunk held by the closure under execution; the return
// value is the number of results left on the stack.
type Executor func(ls LmState, proto any) int

func LmUpvalueIndex(i int) int {
	if i < 1 || i > LM_MAXUPVAL {
		panic("upvalue index out of range")
	}
	return LM_REGISTRYINDEX - i
}

type LmState interface {
	BasicAPI
	AuxLib
}

type BasicAPI interface {
	/* basic stack manipulation */
	GetTop() int
	AbsIndex(idx int) int
	CheckStack(n int) bool
	Pop(n int)
	Copy(fromIdx, toIdx int)
	PushValue(idx int)
	Replace(idx int)
	Insert(idx int)
	Remove(idx int)
	Rotate(idx, n int)
	SetTop(idx int)
	XMove(to LmState, n int)
	/* access functions (stack -> Go) */
	TypeName(tp LmType) string
	Type(idx int) LmType
	IsNone(idx int) bool
	IsNil(idx int) bool
	IsNoneOrNil(idx int) bool
	IsBoolean(idx int) bool
	IsInteger(idx int) bool
	IsNumber(idx int) bool
	IsString(idx int) bool
	IsTable(idx int) bool
	IsThread(idx int) bool
	IsFunction(idx int) bool
	IsGoFunction(idx int) bool
	ToBoolean(idx int) bool
	ToInteger(idx int) int64
	ToIntegerX(idx int) (int64, bool)
	ToNumber(idx int) float64
	ToNumberX(idx int) (float64, bool)
	ToString(idx int) string
	ToStringX(idx int) (string, bool)
	ToStringN(idx, maxLen int) (string, bool)
	ToGoFunction(idx int) GoFunction
	ToThread(idx int) LmState
	ToPointer(idx int) any
	/* push functions (Go -> stack) */
	PushNil()
	PushBoolean(b bool)
	PushInteger(n int64)
	PushNumber(n float64)
	PushString(s string)
	PushFString(fmt string, a ...any)
	PushLightUserdata(p any)
	PushGoFunction(f GoFunction)
	PushGoClosure(f GoFunction, n int)
	PushGuestClosure(proto any, n int)
	PushGlobalTable()
	PushThread() bool
	/* get functions (registry/globals -> stack) */
	NewTable()
	CreateTable(nArr, nRec int)
	GetTable(idx int) LmType
	GetField(idx int, k string) LmType
	GetI(idx int, i int64) LmType
	GetGlobal(name string) LmType
	/* set functions (stack -> registry/globals) */
	SetTable(idx int)
	SetField(idx int, k string)
	SetI(idx int, i int64)
	SetGlobal(name string)
	Register(name string, f GoFunction)
	/* call functions */
	Call(nArgs, nResults int)
	CallK(nArgs, nResults int, ctx int64, k Continuation)
	PCall(nArgs, nResults, msgh int) LmStatus
	PCallK(nArgs, nResults, msgh int, ctx int64, k Continuation) LmStatus
	/* miscellaneous functions */
	Len(idx int)
	Next(idx int) bool
	Error() int
	StringToNumber(s string) bool
	Version() float64
	AtPanic(f GoFunction) GoFunction
	SetExecutor(e Executor)
	/* coroutine functions */
	NewThread() LmState
	Resume(from LmState, nArgs int) LmStatus
	Yield(nResults int) LmStatus
	YieldK(nResults int, ctx int64, k Continuation) LmStatus
	Status() LmStatus
	IsYieldable() bool
}

type FuncReg map[string]GoFunction

// auxiliary library
type AuxLib interface {
	/* Error-report functions */
	Error2(fmt string, a ...any) int
	ArgError(arg int, extraMsg string) int
	/* Argument check functions */
	CheckStack2(sz int, msg string)
	ArgCheck(cond bool, arg int, extraMsg string)
	CheckAny(arg int)
	CheckType(arg int, t LmType)
	CheckInteger(arg int) int64
	CheckNumber(arg int) float64
	CheckString(arg int) string
	CheckBool(arg int) bool
	OptInteger(arg int, d int64) int64
	OptNumber(arg int, d float64) float64
	OptString(arg int, d string) string
	OptBool(arg int, d bool) bool
	/* Other functions */
	TypeName2(idx int) string
	ToString2(idx int) string
	OpenLibs()
	NewLib(l FuncReg)
	NewLibTable(l FuncReg)
	SetFuncs(l FuncReg, nup int)
}
