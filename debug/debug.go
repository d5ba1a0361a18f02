package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Token   bool
	Parse   bool
	Resolve bool
	Query   bool
	Patch   bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("QUILL_DEBUG_TOKEN")
	d.Parse = boolEnv("QUILL_DEBUG_PARSE")
	d.Resolve = boolEnv("QUILL_DEBUG_RESOLVE")
	d.Query = boolEnv("QUILL_DEBUG_QUERY")
	d.Patch = boolEnv("QUILL_DEBUG_PATCH")
	d.LSP = boolEnv("QUILL_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}
func LSP() bool {
	return d.LSP
}
