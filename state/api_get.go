package state

import (
	. "github.com/lumelang/lume/api"
)

// [-0, +1, m]
// http://www.lua.org/manual/5.3/manual.html#lua_newtable
func (self *lmState) NewTable() {
	self.CreateTable(0, 0)
}

// [-0, +1, m]
// http://www.lua.org/manual/5.3/manual.html#lua_createtable
func (self *lmState) CreateTable(nArr, nRec int) {
	self.push(newLmTable(nArr, nRec))
}

// [-1, +1, e]
// http://www.lua.org/manual/5.3/manual.html#lua_gettable
func (self *lmState) GetTable(idx int) LmType {
	t, _ := self.indexToValue(idx)
	k := self.pop()
	return self.getTable(t, k)
}

// [-0, +1, e]
// http://www.lua.org/manual/5.3/manual.html#lua_getfield
func (self *lmState) GetField(idx int, k string) LmType {
	t, _ := self.indexToValue(idx)
	return self.getTable(t, k)
}

// [-0, +1, e]
// http://www.lua.org/manual/5.3/manual.html#lua_geti
func (self *lmState) GetI(idx int, i int64) LmType {
	t, _ := self.indexToValue(idx)
	return self.getTable(t, i)
}

// [-0, +1, e]
// http://www.lua.org/manual/5.3/manual.html#lua_getglobal
func (self *lmState) GetGlobal(name string) LmType {
	t := self.global.registry.get(LM_RIDX_GLOBALS)
	return self.getTable(t, name)
}

// push(t[k])
func (self *lmState) getTable(t, k any) LmType {
	tbl, ok := t.(*lmTable)
	if !ok {
		self.runtimeError("attempt to index a %s value", self.TypeName(typeOf(t)))
	}
	v := tbl.get(k)
	self.push(v)
	return typeOf(v)
}
