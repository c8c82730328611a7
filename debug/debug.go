package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Merge   bool
	Inherit bool
	Bundle  bool
	Query   bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("DTCG_DEBUG")
	d.Resolve = all || boolEnv("DTCG_DEBUG_RESOLVE")
	d.Merge = all || boolEnv("DTCG_DEBUG_MERGE")
	d.Inherit = all || boolEnv("DTCG_DEBUG_INHERIT")
	d.Bundle = all || boolEnv("DTCG_DEBUG_BUNDLE")
	d.Query = all || boolEnv("DTCG_DEBUG_QUERY")
	d.LSP = all || boolEnv("DTCG_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Merge() bool {
	return d.Merge
}
func Inherit() bool {
	return d.Inherit
}
func Bundle() bool {
	return d.Bundle
}
func Query() bool {
	return d.Query
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
