// Package output renders resolved and parsed names as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"

	"github.com/one2x-ai/nameversion/internal/config"
	"github.com/one2x-ai/nameversion/internal/naming"
)

// Record describes one name in explain mode and in parse output.
type Record struct {
	Input    string `json:"input" yaml:"input"`
	Base     string `json:"base" yaml:"base"`
	Version  *int   `json:"version,omitempty" yaml:"version,omitempty"`
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Changed  bool   `json:"changed" yaml:"changed"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

func parsedRecord(input string, p naming.ParsedName) Record {
	rec := Record{Input: input, Base: p.BaseName}
	if p.HasVersion {
		v := p.Version
		rec.Version = &v
	}
	return rec
}

func Records(results []naming.Result) []Record {
	out := make([]Record, 0, len(results))
	for _, r := range results {
		rec := parsedRecord(r.Input, r.Parsed)
		if r.Err != nil {
			rec.Error = r.Err.Error()
		} else {
			rec.Resolved = r.Resolved
			rec.Changed = r.Changed()
		}
		out = append(out, rec)
	}
	return out
}

// Results writes resolved names. Without explain only the names that
// resolved are written, in input order.
func Results(w io.Writer, format config.Format, explain bool, results []naming.Result) error {
	if explain {
		return writeRecords(w, format, Records(results))
	}
	names := naming.ResolvedNames(results)
	switch format {
	case config.FormatJSON:
		if names == nil {
			names = []string{}
		}
		return writeJSON(w, names)
	case config.FormatYAML:
		return writeYAML(w, names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

// ParsedInput pairs a raw name with its parse outcome.
type ParsedInput struct {
	Input  string
	Parsed naming.ParsedName
	Err    error
}

func Parsed(w io.Writer, format config.Format, parsed []ParsedInput) error {
	recs := make([]Record, 0, len(parsed))
	for _, p := range parsed {
		rec := parsedRecord(p.Input, p.Parsed)
		if p.Err != nil {
			rec.Error = p.Err.Error()
		}
		recs = append(recs, rec)
	}
	return writeRecords(w, format, recs)
}

func writeRecords(w io.Writer, format config.Format, recs []Record) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, recs)
	case config.FormatYAML:
		return writeYAML(w, recs)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tBASE\tVERSION\tRESOLVED\tCHANGED\tERROR")
	for _, rec := range recs {
		version := "-"
		if rec.Version != nil {
			version = strconv.Itoa(*rec.Version)
		}
		// parse output has nothing resolved, so nothing to report as changed
		changed := ""
		if rec.Resolved != "" {
			changed = strconv.FormatBool(rec.Changed)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", rec.Input, rec.Base, version, rec.Resolved, changed, rec.Error)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return inflection.Plural(noun)
}

// Summary describes a run in one line, e.g. "3 names resolved, 1 renamed".
func Summary(resolved, renamed, failed int) string {
	s := fmt.Sprintf("%d %s resolved, %d renamed", resolved, plural(resolved, "name"), renamed)
	if failed > 0 {
		s += fmt.Sprintf(", %d %s", failed, plural(failed, "failure"))
	}
	return s
}
