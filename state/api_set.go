package state

import (
	. "github.com/lumelang/lume/api"
)

// [-2, +0, e]
// http://www.lua.org/manual/5.3/manual.html#lua_settable
func (self *lmState) SetTable(idx int) {
	t, _ := self.indexToValue(idx)
	v := self.pop()
	k := self.pop()
	self.setTable(t, k, v)
}

// [-1, +0, e]
// http://www.lua.org/manual/5.3/manual.html#lua_setfield
func (self *lmState) SetField(idx int, k string) {
	t, _ := self.indexToValue(idx)
	v := self.pop()
	self.setTable(t, k, v)
}

// [-1, +0, e]
// http://www.lua.org/manual/5.3/manual.html#lua_seti
func (self *lmState) SetI(idx int, i int64) {
	t, _ := self.indexToValue(idx)
	v := self.pop()
	self.setTable(t, i, v)
}

// [-1, +0, e]
// http://www.lua.org/manual/5.3/manual.html#lua_setglobal
func (self *lmState) SetGlobal(name string) {
	t := self.global.registry.get(LM_RIDX_GLOBALS)
	v := self.pop()
	self.setTable(t, name, v)
}

// [-0, +0, e]
// http://www.lua.org/manual/5.3/manual.html#lua_register
func (self *lmState) Register(name string, f GoFunction) {
	self.PushGoFunction(f)
	self.SetGlobal(name)
}

// t[k]=v
func (self *lmState) setTable(t, k, v any) {
	tbl, ok := t.(*lmTable)
	if !ok {
		self.runtimeError("attempt to index a %s value", self.TypeName(typeOf(t)))
	}
	tbl.put(k, v)
}
