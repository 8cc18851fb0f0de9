package config

import (
	"fmt"
	"time"
)

const (
	OptionKeySeparator = "separator"
	OptionKeyComment   = "comment"
	OptionKeyTimeout   = "timeout"
)

const (
	DriverPGXV5 = "pgx/v5"
	DriverLibPQ = "lib/pq"
)

// SourceOption holds the per-source options after parsing.
type SourceOption struct {
	// Separator splits names on a single line. Newlines always separate.
	Separator string
	// Comment marks lines to skip. Empty, the default, disables comments
	// so that names starting with "#" are kept.
	Comment string
	// Timeout bounds database queries. Zero means no limit.
	Timeout time.Duration
}

func DefaultSourceOption() SourceOption {
	return SourceOption{
		Separator: ",",
	}
}

func ParseOption(options map[string]string) (rv SourceOption, err error) {
	rv = DefaultSourceOption()
	for k, v := range options {
		switch k {
		case OptionKeySeparator:
			switch v {
			case "":
				return rv, fmt.Errorf("separator must not be empty")
			case `\t`:
				rv.Separator = "\t"
			default:
				rv.Separator = v
			}
		case OptionKeyComment:
			switch v {
			case "", "#", "--", "//", ";":
				rv.Comment = v
			default:
				return rv, fmt.Errorf("unknown comment prefix: %s", v)
			}
		case OptionKeyTimeout:
			rv.Timeout, err = time.ParseDuration(v)
			if err != nil {
				return
			}
			if rv.Timeout < 1*time.Millisecond {
				return rv, fmt.Errorf("timeout duration too short: %s", v)
			}
		default:
			return rv, fmt.Errorf("unknown option: %s", k)
		}
	}
	return
}
