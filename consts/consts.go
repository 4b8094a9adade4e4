package consts

import "os"

const (
	VERSION = "1.0.0"
)

var (
	Debug = os.Getenv("LUME_DEBUG") != ""
)
