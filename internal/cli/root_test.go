package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestGenerateWritesExport(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "fixtures", "tasks.csv")

	out := executeCommand(t, NewRootCommand(ctx),
		"--start", "2025-07-01",
		"--end", "2025-07-02",
		"--output", output,
		"--seed", "42",
	)

	if !strings.Contains(out, "Wrote") {
		t.Fatalf("summary output = %q, want a 'Wrote ...' line", out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "FLOW Data Export,") {
		t.Fatalf("export starts with %q", firstLine(content))
	}
	if !strings.Contains(content, "Period,2025-07-01 - 2025-07-02") {
		t.Fatal("export missing period row")
	}
	for _, date := range []string{"\n2025-07-01,", "\n2025-07-02,"} {
		if !strings.Contains(content, date) {
			t.Fatalf("export missing detail rows for %q", strings.Trim(date, "\n,"))
		}
	}
}

func TestGenerateSameSeedSameRows(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	first := filepath.Join(base, "first.csv")
	second := filepath.Join(base, "second.csv")

	executeCommand(t, NewRootCommand(ctx),
		"--start", "2025-07-01", "--end", "2025-07-05", "--output", first, "--seed", "7")
	executeCommand(t, NewRootCommand(ctx),
		"--start", "2025-07-01", "--end", "2025-07-05", "--output", second, "--seed", "7")

	// The first row carries the generation timestamp; everything below it
	// must be identical for identical seeds.
	if stripFirstLine(t, first) != stripFirstLine(t, second) {
		t.Fatal("identical seeds produced different exports")
	}
}

func TestGenerateRejectsInvalidDate(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "tasks.csv")

	err := executeCommandErr(t, NewRootCommand(ctx),
		"--start", "July 1st", "--end", "2025-07-02", "--output", output)
	if err == nil {
		t.Fatal("expected an error for an unparseable start date")
	}
	if !strings.Contains(err.Error(), "parse date") {
		t.Fatalf("err = %v, want a parse date error", err)
	}
}

func TestDefaultFlagValues(t *testing.T) {
	cmd := NewRootCommand(context.Background())

	defaults := map[string]string{
		"start":  "2025-07-01",
		"end":    "2025-08-10",
		"output": "tasks.csv",
	}
	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("flag --%s not registered", name)
		}
		if flag.DefValue != want {
			t.Errorf("--%s default = %q, want %q", name, flag.DefValue, want)
		}
	}
}

func firstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}

func stripFirstLine(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[i+1:]
	}
	return ""
}
