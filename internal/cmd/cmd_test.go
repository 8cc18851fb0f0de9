package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/one2x-ai/nameversion/internal/config"
	"github.com/one2x-ai/nameversion/internal/output"
)

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Do(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestResolveFlags(t *testing.T) {
	code, stdout, stderr := run(t, "", "resolve", "--existing", "Report, Report (v1)", "--incoming", "Report,Draft,Draft")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	want := "Report (v2)\nDraft\nDraft (v1)\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveStdin(t *testing.T) {
	code, stdout, stderr := run(t, "Notes (v2)\n", "resolve",
		"--existing", "Notes (v5)", "--existing", "Notes (v2)",
		"--incoming-file", "-",
		"--format", "json",
	)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	var names []string
	if err := json.Unmarshal([]byte(stdout), &names); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Notes (v6)"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTwoStdinSources(t *testing.T) {
	code, _, _ := run(t, "", "resolve", "--existing-file", "-", "--incoming-file", "-")
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestResolveOverflow(t *testing.T) {
	code, stdout, stderr := run(t, "", "resolve", "--incoming", "A, B (v99999999999999999999), A")
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if diff := cmp.Diff("A\nA (v1)\n", stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stderr, "version overflow") {
		t.Errorf("stderr does not report the overflow: %q", stderr)
	}
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("# taken\nReport\n"), 0644); err != nil {
		t.Fatal(err)
	}
	conf := `version: "1"
output:
  format: yaml
  explain: true
existing:
  - name: taken
    type: file
    path: existing.txt
    options:
      comment: "#"
incoming:
  - type: text
    names: ["report"]
`
	path := filepath.Join(dir, "nameversion.yaml")
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := run(t, "", "resolve", "-f", path, "--incoming", "Draft")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "resolved: report (v1)") {
		t.Errorf("missing versioned record: %s", stdout)
	}
	if !strings.Contains(stdout, "resolved: Draft") {
		t.Errorf("missing unchanged record: %s", stdout)
	}
}

func TestResolveKeepsHashNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.txt")
	if err := os.WriteFile(path, []byte("#1 Report\n"), 0644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := run(t, "", "resolve", "--existing-file", path, "--incoming", "#1 Report")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if diff := cmp.Diff("#1 Report (v1)\n", stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Error(err)
		}
	})
}

func TestLogFilePaths(t *testing.T) {
	workDir := t.TempDir()
	confDir := t.TempDir()
	conf := "version: \"1\"\nlog:\n  level: info\n  file: configured.log\n"
	confPath := filepath.Join(confDir, "nameversion.yaml")
	if err := os.WriteFile(confPath, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, workDir)

	if code, _, stderr := run(t, "", "resolve", "-f", confPath, "--incoming", "A"); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(confDir, "configured.log")); err != nil {
		t.Errorf("configured log file is not next to the config file: %s", err)
	}

	if code, _, stderr := run(t, "", "resolve", "-f", confPath, "--log-file", "flag.log", "--incoming", "A"); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(workDir, "flag.log")); err != nil {
		t.Errorf("flag log file is not in the working directory: %s", err)
	}
	if _, err := os.Stat(filepath.Join(confDir, "flag.log")); err == nil {
		t.Error("flag log file was written next to the config file")
	}
}

func TestResolveMissingConfig(t *testing.T) {
	code, _, _ := run(t, "", "resolve", "-f", filepath.Join(t.TempDir(), "missing.yaml"), "--incoming", "A")
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestResolveBadFormat(t *testing.T) {
	code, _, _ := run(t, "", "resolve", "--incoming", "A", "--format", "xml")
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestParse(t *testing.T) {
	code, stdout, stderr := run(t, "", "parse", "--format", "json", "Notes (v2)", "Plain")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	var recs []output.Record
	if err := json.Unmarshal([]byte(stdout), &recs); err != nil {
		t.Fatal(err)
	}
	two := 2
	want := []output.Record{
		{Input: "Notes (v2)", Base: "Notes", Version: &two},
		{Input: "Plain", Base: "Plain"},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestPrompt(t *testing.T) {
	code, stdout, stderr := run(t, "Report, Report (v1)\nReport, Draft, Draft\n", "prompt")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	want := "Enter existing file names (comma-separated):\n" +
		"Enter new file names (comma-separated):\n" +
		"\nProcessed names:\n" +
		"Report (v2)\nDraft\nDraft (v1)\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptDropsBlankEntries(t *testing.T) {
	code, stdout, stderr := run(t, "\na, ,a\n", "prompt")
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if !strings.HasSuffix(stdout, "Processed names:\na\na (v1)\n") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestPromptEmptyInput(t *testing.T) {
	code, stdout, _ := run(t, "", "prompt")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasSuffix(stdout, "Processed names:\n") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameversion.yaml")
	if code, _, stderr := run(t, "", "init", "-f", path); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	conf, err := config.ParseConfig(f)
	if err != nil {
		t.Fatalf("generated config does not parse: %s", err)
	}
	if err := config.Validate(&conf); err != nil {
		t.Fatalf("generated config is invalid: %s", err)
	}
	if code, _, _ := run(t, "", "init", "-f", path); code != 1 {
		t.Errorf("expected init to refuse overwriting, got exit code %d", code)
	}
}

func TestVersion(t *testing.T) {
	code, stdout, _ := run(t, "", "version")
	if code != 0 || stdout != Version+"\n" {
		t.Errorf("version: code %d output %q", code, stdout)
	}
}
