package api

import (
	"math/bits"
)

const LM_MINSTACK = 20
const LMI_MAXSTACK = 1000000
const LM_REGISTRYINDEX = -LMI_MAXSTACK - 1000
const LM_RIDX_MAINTHREAD int64 = 1
const LM_RIDX_GLOBALS int64 = 2
const LM_MULTRET = -1
const LM_MAXUPVAL = 255

// version tag readable through LmState.Version(): major*100 + minor
const LM_VERSION_NUM float64 = 100

const (
	offset        = bits.UintSize - 1
	LM_MAXINTEGER = 1<<offset - 1
	LM_MININTEGER = -1 << offset
)

/* basic types */
type LmType = int

const (
	LM_TNONE LmType = iota - 1 // -1
	LM_TNIL
	LM_TBOOLEAN
	LM_TLIGHTUSERDATA
	LM_TNUMBER
	LM_TSTRING
	LM_TTABLE
	LM_TFUNCTION
	LM_TTHREAD
)

/* thread status */
type LmStatus int

const (
	LM_OK LmStatus = iota
	LM_YIELD
	LM_ERRRUN
	LM_ERRMEM
	LM_ERRERR
)
