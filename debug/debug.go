package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Extract bool
	Gen     bool
	Load    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("STRUCTMAP_DEBUG_EXTRACT")
	d.Gen = boolEnv("STRUCTMAP_DEBUG_GEN")
	d.Load = boolEnv("STRUCTMAP_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Extract reports whether type extraction is traced.
func Extract() bool {
	return d.Extract
}

// Gen reports whether generated source is dumped before formatting.
func Gen() bool {
	return d.Gen
}

// Load reports whether package loading is traced.
func Load() bool {
	return d.Load
}

// Logf writes to stderr. Map and slice arguments are printed as
// indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]string, []string:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
