package debug

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/one2x-ai/nameversion/internal/opts"
)

var Active bool
var Debug opts.Debug

// Output is where dumps are written.
var Output io.Writer = os.Stderr

func init() {
	Active = os.Getenv(opts.EnvName) != ""
	if Active {
		Debug = opts.DebugFromEnv()
	}
}

func Dump(n ...interface{}) {
	if Active {
		spew.Fdump(Output, n...)
	}
}
