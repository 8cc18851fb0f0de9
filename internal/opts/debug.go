package opts

import (
	"os"
	"strings"
)

// The NAMEVERSIONDEBUG variable controls debugging variables within the
// runtime. It is a comma-separated list of name=val pairs setting these
// named variables:
//
//	dumpparse: setting dumpparse=1 will print every parsed name.
//	dumpconfig: setting dumpconfig=1 will print the loaded configuration.
const EnvName = "NAMEVERSIONDEBUG"

type Debug struct {
	DumpParse  bool
	DumpConfig bool
}

func DebugFromEnv() Debug {
	return DebugFromString(os.Getenv(EnvName))
}

func DebugFromString(val string) Debug {
	var d Debug
	if val == "" {
		return d
	}
	for _, pair := range strings.Split(val, ",") {
		pair = strings.TrimSpace(pair)
		switch {
		case pair == "dumpparse=1":
			d.DumpParse = true
		case pair == "dumpconfig=1":
			d.DumpConfig = true
		}
	}
	return d
}
