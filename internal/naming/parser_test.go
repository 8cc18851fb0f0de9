package naming

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseName(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want ParsedName
	}{
		{"Report", ParsedName{Original: "Report", BaseName: "Report"}},
		{"  Report  ", ParsedName{Original: "Report", BaseName: "Report"}},
		{"Report (v1)", ParsedName{Original: "Report (v1)", BaseName: "Report", Version: 1, HasVersion: true}},
		{"Report(v2)", ParsedName{Original: "Report(v2)", BaseName: "Report", Version: 2, HasVersion: true}},
		{" Report ( V 3 ) ", ParsedName{Original: "Report ( V 3 )", BaseName: "Report", Version: 3, HasVersion: true}},
		{"Report (v007)", ParsedName{Original: "Report (v007)", BaseName: "Report", Version: 7, HasVersion: true}},
		{"A (v1) (v2)", ParsedName{Original: "A (v1) (v2)", BaseName: "A (v1)", Version: 2, HasVersion: true}},
		{"(v4)", ParsedName{Original: "(v4)", BaseName: "", Version: 4, HasVersion: true}},
		{"Report (v1) final", ParsedName{Original: "Report (v1) final", BaseName: "Report (v1) final"}},
		{"Report (v)", ParsedName{Original: "Report (v)", BaseName: "Report (v)"}},
		{"Report (x1)", ParsedName{Original: "Report (x1)", BaseName: "Report (x1)"}},
		{"Report v1", ParsedName{Original: "Report v1", BaseName: "Report v1"}},
		{"", ParsedName{}},
		{"!!!", ParsedName{Original: "!!!", BaseName: "!!!"}},
	} {
		got, err := ParseName(tc.raw)
		if err != nil {
			t.Errorf("ParseName(%q): unexpected error: %s", tc.raw, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseName(%q) mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}
}

func TestParseNameOverflow(t *testing.T) {
	_, err := ParseName("Huge (v99999999999999999999) ")
	if !errors.Is(err, ErrVersionOverflow) {
		t.Fatalf("expected ErrVersionOverflow, got %v", err)
	}
	var oerr *VersionOverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected *VersionOverflowError, got %T", err)
	}
	if oerr.Input != "Huge (v99999999999999999999)" {
		t.Errorf("incorrect input on error: %q", oerr.Input)
	}
}

func TestWithVersion(t *testing.T) {
	p := ParsedName{BaseName: "Notes"}
	if got := p.WithVersion(12); got != "Notes (v12)" {
		t.Errorf("WithVersion: got %q", got)
	}
	p = ParsedName{}
	if got := p.WithVersion(1); got != " (v1)" {
		t.Errorf("WithVersion on empty base: got %q", got)
	}
}
