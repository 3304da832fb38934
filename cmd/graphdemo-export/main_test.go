package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/graphdemo/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name   string
		flag   string
		output string
		want   export.Format
	}{
		{"flag wins", "png", "chart.svg", export.FormatPNG},
		{"from extension", "", "chart.PNG", export.FormatPNG},
		{"unknown extension", "", "chart.out", export.FormatSVG},
		{"no extension", "", "chart", export.FormatSVG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.flag, tt.output)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRun_WritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chart.svg")

	out, err := execute(t, "-o", path)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("Expected output to mention %s, got %q", path, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("Output should be an svg document")
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t); err == nil {
		t.Error("Expected error without --output")
	}

	_, err := execute(t, "-o", filepath.Join(dir, "chart.svg"), "--format", "gif")
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}

	if _, err := execute(t, "-o", filepath.Join(dir, "chart.svg"), "--style", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing stylesheet")
	}
}
