package state

import (
	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/stdlib"
)

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_error
func (self *lmState) Error2(fmt string, a ...any) int {
	self.PushFString(fmt, a...)
	return self.Error()
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_argerror
func (self *lmState) ArgError(arg int, extraMsg string) int {
	return self.Error2("bad argument #%d (%s)", arg, extraMsg)
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_checkstack
func (self *lmState) CheckStack2(sz int, msg string) {
	if !self.CheckStack(sz) {
		if msg != "" {
			self.Error2("stack overflow (%s)", msg)
		} else {
			self.Error2("stack overflow")
		}
	}
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_argcheck
func (self *lmState) ArgCheck(cond bool, arg int, extraMsg string) {
	if !cond {
		self.ArgError(arg, extraMsg)
	}
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_checkany
func (self *lmState) CheckAny(arg int) {
	if self.Type(arg) == LM_TNONE {
		self.ArgError(arg, "value expected")
	}
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_checktype
func (self *lmState) CheckType(arg int, t LmType) {
	if self.Type(arg) != t {
		self.tagError(arg, t)
	}
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_checkinteger
func (self *lmState) CheckInteger(arg int) int64 {
	i, ok := self.ToIntegerX(arg)
	if !ok {
		self.intError(arg)
	}
	return i
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_checknumber
func (self *lmState) CheckNumber(arg int) float64 {
	f, ok := self.ToNumberX(arg)
	if !ok {
		self.tagError(arg, LM_TNUMBER)
	}
	return f
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_checkstring
func (self *lmState) CheckString(arg int) string {
	s, ok := self.ToStringX(arg)
	if !ok {
		self.tagError(arg, LM_TSTRING)
	}
	return s
}

func (self *lmState) CheckBool(arg int) bool {
	if self.Type(arg) != LM_TBOOLEAN {
		self.tagError(arg, LM_TBOOLEAN)
	}
	return self.ToBoolean(arg)
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_optinteger
func (self *lmState) OptInteger(arg int, def int64) int64 {
	if self.IsNoneOrNil(arg) {
		return def
	}
	return self.CheckInteger(arg)
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_optnumber
func (self *lmState) OptNumber(arg int, def float64) float64 {
	if self.IsNoneOrNil(arg) {
		return def
	}
	return self.CheckNumber(arg)
}

// [-0, +0, v]
// http://www.lua.org/manual/5.3/manual.html#luaL_optstring
func (self *lmState) OptString(arg int, def string) string {
	if self.IsNoneOrNil(arg) {
		return def
	}
	return self.CheckString(arg)
}

func (self *lmState) OptBool(arg int, def bool) bool {
	if self.IsNoneOrNil(arg) {
		return def
	}
	return self.ToBoolean(arg)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#luaL_typename
func (self *lmState) TypeName2(idx int) string {
	return self.TypeName(self.Type(idx))
}

// [-0, +0, e]
// http://www.lua.org/manual/5.3/manual.html#luaL_tolstring
func (self *lmState) ToString2(idx int) string {
	if s, ok := self.ToStringX(idx); ok {
		return s
	}
	val, valid := self.indexToValue(idx)
	if !valid {
		return "no value"
	}
	switch x := val.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return formatValue(val)
	}
}

func (self *lmState) intError(arg int) {
	if self.IsNumber(arg) {
		self.ArgError(arg, "number has no integer representation")
	} else {
		self.tagError(arg, LM_TNUMBER)
	}
}

func (self *lmState) tagError(arg int, tag LmType) {
	self.ArgError(arg, "expect "+self.TypeName(tag)+", got "+self.TypeName2(arg))
}

// [-0, +1, m]
// http://www.lua.org/manual/5.3/manual.html#luaL_newlibtable
func (self *lmState) NewLibTable(l FuncReg) {
	self.CreateTable(0, len(l))
}

// [-0, +1, m]
// http://www.lua.org/manual/5.3/manual.html#luaL_newlib
func (self *lmState) NewLib(l FuncReg) {
	self.CheckStack2(len(l)+1, "too many upvalues")
	self.NewLibTable(l)
	self.SetFuncs(l, 0)
}

// [-nup, +0, m]
// http://www.lua.org/manual/5.3/manual.html#luaL_setfuncs
// Registers every function of l into the table below the nup shared
// upvalues, closing each one over copies of those upvalues.
func (self *lmState) SetFuncs(l FuncReg, nup int) {
	self.CheckStack2(nup, "too many upvalues")
	for name, fn := range l {
		for i := 0; i < nup; i++ {
			self.PushValue(-nup)
		}
		self.PushGoClosure(fn, nup)
		self.SetField(-(nup + 2), name)
	}
	self.Pop(nup)
}

// OpenLibs registers the host libraries into the globals table.
func (self *lmState) OpenLibs() {
	openers := map[string]GoFunction{
		"math": stdlib.OpenMathLib,
		"json": stdlib.OpenJSONLib,
	}
	for name, opener := range openers {
		opener(self)
		self.SetGlobal(name)
	}
	stdlib.OpenBaseLib(self)
	self.Pop(1)
}
