package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/one2x-ai/nameversion/internal/config"
)

// SplitNames splits one line of text into names. Entries are trimmed and
// empty entries are dropped.
func SplitNames(line, sep string) []string {
	var names []string
	for _, part := range strings.Split(line, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, part)
	}
	return names
}

// CleanNames trims every entry and drops the empty ones.
func CleanNames(in []string) []string {
	var names []string
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	return names
}

// ParseText reads names from rd. Every line is split on opt.Separator and
// lines starting with opt.Comment are skipped.
func ParseText(rd io.Reader, opt config.SourceOption) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if opt.Comment != "" && strings.HasPrefix(strings.TrimSpace(line), opt.Comment) {
			continue
		}
		names = append(names, SplitNames(line, opt.Separator)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
