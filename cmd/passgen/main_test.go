package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd(crypto.NewSeededSource(5))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "", "generate", "-l", "12", "--classes", "lower,digit", "-n", "3")
	if err != nil {
		t.Fatalf("generate unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			t.Fatalf("line %q: want password, score, label", line)
		}
		if len(fields[0]) != 12 {
			t.Errorf("password %q length = %d, want 12", fields[0], len(fields[0]))
		}
		if strings.Trim(fields[0], "abcdefghijklmnopqrstuvwxyz0123456789") != "" {
			t.Errorf("password %q outside [a-z0-9]", fields[0])
		}
	}
}

func TestGenerateCommandNoStrength(t *testing.T) {
	out, err := run(t, "", "generate", "--no-strength", "-l", "20")
	if err != nil {
		t.Fatalf("generate unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); len(got) != 20 || strings.Contains(got, "\t") {
		t.Errorf("output = %q, want a bare 20-char password", got)
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	if _, err := run(t, "", "generate", "--classes", "emoji"); err == nil {
		t.Error("expected error for unknown class")
	}
	if _, err := run(t, "", "generate", "--classes", ""); err == nil {
		t.Error("expected error for empty class list")
	}
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "", "score", "Password123!", "-k", "word")
	if err != nil {
		t.Fatalf("score unexpected error: %v", err)
	}
	for _, want := range []string{"score:      20/50", "label:      fair", "sequences:  true", "keyword:    true (4 chars)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScoreCommandStdin(t *testing.T) {
	out, err := run(t, "aaa11111111\n", "score", "-")
	if err != nil {
		t.Fatalf("score unexpected error: %v", err)
	}
	if !strings.Contains(out, "score:      6/50") || !strings.Contains(out, "repeats:    true") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version unexpected error: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("output %q missing version", out)
	}
}
