package state

import (
	"fmt"

	. "github.com/lumelang/lume/api"
)

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushnil
func (self *lmState) PushNil() {
	self.push(nil)
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushboolean
func (self *lmState) PushBoolean(b bool) {
	self.push(b)
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushinteger
func (self *lmState) PushInteger(n int64) {
	self.push(n)
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushnumber
func (self *lmState) PushNumber(n float64) {
	self.push(n)
}

// [-0, +1, m]
// http://www.lua.org/manual/5.3/manual.html#lua_pushstring
func (self *lmState) PushString(s string) {
	self.push(s)
}

// [-0, +1, e]
// http://www.lua.org/manual/5.3/manual.html#lua_pushfstring
func (self *lmState) PushFString(fmtStr string, a ...any) {
	self.push(fmt.Sprintf(fmtStr, a...))
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushlightuserdata
func (self *lmState) PushLightUserdata(p any) {
	self.push(lightUserData{data: p})
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushcfunction
// A capture-free native function goes on the stack bare, not wrapped in a
// closure object.
func (self *lmState) PushGoFunction(f GoFunction) {
	self.push(f)
}

// [-n, +1, m]
// http://www.lua.org/manual/5.3/manual.html#lua_pushcclosure
func (self *lmState) PushGoClosure(f GoFunction, n int) {
	if n == 0 {
		self.push(f)
		return
	}
	if n > LM_MAXUPVAL {
		panic("upvalue count out of range")
	}
	self.checkElems(n)
	closure := newGoClosure(f, n)
	for i := n; i > 0; i-- {
		closure.upVals[i-1] = self.pop()
	}
	self.push(closure)
}

// PushGuestClosure builds a closure around an opaque compiled chunk, for
// embedding compilers feeding the installed Executor.
func (self *lmState) PushGuestClosure(proto any, n int) {
	if n > LM_MAXUPVAL {
		panic("upvalue count out of range")
	}
	self.checkElems(n)
	closure := newGuestClosure(proto, n)
	for i := n; i > 0; i-- {
		closure.upVals[i-1] = self.pop()
	}
	self.push(closure)
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushglobaltable
func (self *lmState) PushGlobalTable() {
	self.push(self.global.registry.get(LM_RIDX_GLOBALS))
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushthread
func (self *lmState) PushThread() bool {
	self.push(self)
	return self.isMainThread()
}
