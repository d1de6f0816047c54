package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/core/log"
)

// runCommand executes the command tree with args and returns stdout
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := execute(t, stdin, args...)
	return stdout, err
}

// execute runs the command tree with a config file at log level error and
// returns stdout and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "extkit.toml")
	if err := os.WriteFile(cfgPath, []byte("[log]\nlevel = \"error\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBetweenCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"first region", "x[a]y[b]", []string{"between", "--start", "[", "--end", "]"}, "a\n"},
		{"many", "x[a]y[b]", []string{"between", "--many", "--start", "[", "--end", "]"}, "a\nb\n"},
		{"reverse", "x[a]y[b]", []string{"between", "--reverse", "--start", "[", "--end", "]"}, "b\n"},
		{"include markers", "x[a]y", []string{"between", "--include", "--start", "[", "--end", "]"}, "[a]\n"},
		{"ignore case by default", "<B>bold</B>", []string{"between", "--start", "<b>", "--end", "</b>"}, "bold\n"},
		{"case sensitive", "<B>bold</B>", []string{"between", "--case-sensitive", "--start", "<b>", "--end", "</b>"}, "\n"},
		{"html decode", "&lt;b&gt;bold&lt;/b&gt;", []string{"between", "--html-decode", "--start", "<b>", "--end", "</b>"}, "bold\n"},
		{"open end", "key=value", []string{"between", "--start", "="}, "value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCommand(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBetweenCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<title>Report</title>"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := runCommand(t, "", "between", "--start", "<title>", "--end", "</title>", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "Report\n" {
		t.Errorf("output = %q, want %q", got, "Report\n")
	}
}

func TestBetweenCommandErrors(t *testing.T) {
	if _, err := runCommand(t, "text", "between"); err == nil {
		t.Error("between without markers: error = nil, want error")
	}
	if _, err := runCommand(t, "text", "between", "--reverse"); err == nil {
		t.Error("between --reverse without markers: error = nil, want error")
	}
	if _, err := runCommand(t, "text", "between", "--reverse", "--many", "--start", "t"); err == nil {
		t.Error("between --reverse --many: error = nil, want error")
	}
	if _, err := runCommand(t, "", "between", "--start", "a", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("between on missing file: error = nil, want error")
	}
}

func TestCSVConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(input, []byte("Name;Age\nAnn;30\nBob;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := runCommand(t, "", "csv", "convert", "--out-separator", ",", input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "Name,Age\nAnn,30\nBob,\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	output := filepath.Join(dir, "out", "people.tsv")
	if _, err := runCommand(t, "", "csv", "convert", "--out-separator", `\t`, "-o", output, input); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "Name\tAge\nAnn\t30\nBob\t\n"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestCSVConvertNoHeader(t *testing.T) {
	input := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(input, []byte("Name;Age\nAnn;30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := runCommand(t, "", "csv", "convert", "--no-header", "--out-separator", ",", input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "Ann,30\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCSVSnapshotCommands(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "tables.db")
	input := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(input, []byte("Name;Age\nAnn;30\nBob;41\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "", "csv", "save", "--store", store, "people", input)
	if err != nil {
		t.Fatalf("save error = %v", err)
	}
	if !strings.HasPrefix(out, "saved people (2 columns, 2 rows)") {
		t.Errorf("save output = %q", out)
	}

	out, err = runCommand(t, "", "csv", "load", "--store", store, "--infer", "people")
	if err != nil {
		t.Fatalf("load error = %v", err)
	}
	if want := "Name;Age\nAnn;30\nBob;41\n"; out != want {
		t.Errorf("load output = %q, want %q", out, want)
	}

	out, err = runCommand(t, "", "csv", "list", "--store", store)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "people") || !strings.HasPrefix(out, "NAME") {
		t.Errorf("list output = %q", out)
	}

	if _, err := runCommand(t, "", "csv", "delete", "--store", store, "people"); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if _, err := runCommand(t, "", "csv", "delete", "--store", store, "people"); err == nil {
		t.Error("second delete: error = nil, want not found")
	}
	if _, err := runCommand(t, "", "csv", "load", "--store", store, "people"); err == nil {
		t.Error("load after delete: error = nil, want not found")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "extkit v"+Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestUnescapeSeparator(t *testing.T) {
	if unescapeSeparator(`\t`) != "\t" {
		t.Error(`unescapeSeparator(\t) should return a tab`)
	}
	if unescapeSeparator(",") != "," {
		t.Error("unescapeSeparator(,) should be unchanged")
	}
}

func TestVerboseLogsDebug(t *testing.T) {
	_, quiet, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(quiet, "configuration loaded") {
		t.Errorf("stderr at level error = %q, want no debug output", quiet)
	}

	_, verbose, err := execute(t, "", "--verbose", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(verbose, "configuration loaded") {
		t.Errorf("stderr with --verbose = %q, want debug output", verbose)
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"storage failure is logged", mdwerrors.TablestoreFailed("save", errors.New("database is locked")), true},
		{"invalid markers are only printed", mdwerrors.StringxInvalidMarkers("get_between", "", "", "start or end marker required"), false},
		{"plain error is only printed", errors.New("snapshot not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			cmd := &cobra.Command{Use: "extkit"}
			cmd.SetErr(&out)
			logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatText, Output: &logs})

			reportError(cmd, logger, tt.err)

			if !strings.HasPrefix(out.String(), "Error: ") {
				t.Errorf("printed = %q, want Error prefix", out.String())
			}
			if got := strings.Contains(logs.String(), "command failed"); got != tt.wantLog {
				t.Errorf("logged = %v (%q), want %v", got, logs.String(), tt.wantLog)
			}
		})
	}
}
