package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/style"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
	}{
		{"svg", FormatSVG},
		{"SVG", FormatSVG},
		{".png", FormatPNG},
		{" png ", FormatPNG},
	}

	for _, test := range tests {
		got, err := ParseFormat(test.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", test.in, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseFormat(%q) = %s, expected %s", test.in, got, test.expected)
		}
	}

	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, ok := FormatFromPath("/tmp/chart.PNG"); !ok || f != FormatPNG {
		t.Errorf("Expected png, got %s (%v)", f, ok)
	}
	if _, ok := FormatFromPath("/tmp/chart"); ok {
		t.Error("Expected no format for a path without extension")
	}
	if FormatSVG.Ext() != ".svg" {
		t.Errorf("Unexpected extension %s", FormatSVG.Ext())
	}
	if len(Formats()) != 2 {
		t.Errorf("Expected 2 formats, got %d", len(Formats()))
	}
}

func TestRender_SVG(t *testing.T) {
	scene := chart.MustBuild(chart.DefaultConfig())

	var buf bytes.Buffer
	if err := Render(&buf, scene, style.Default(), FormatSVG); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatal("Output is not an SVG document")
	}

	// Labels of all three axes
	for _, label := range []string{">500</text>", ">400</text>", ">10</text>", ">50</text>", ">300</text>"} {
		if !strings.Contains(out, label) {
			t.Errorf("Expected SVG to contain %q", label)
		}
	}
	if !strings.Contains(out, "<path") {
		t.Error("Expected stroked paths in SVG output")
	}
}

func TestRender_GroupRulesStyleChildren(t *testing.T) {
	scene := chart.MustBuild(chart.DefaultConfig())

	var buf bytes.Buffer
	if err := Render(&buf, scene, style.Default(), FormatSVG); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	// grid rule: #d3d3d3 at opacity 0.7 on the major grid ticks
	if !strings.Contains(out, "rgba(211,211,211,0.7)") {
		t.Error("Expected major grid lines stroked with the grid rule colour")
	}
	// axis rule: #333333 labels
	if !strings.Contains(out, "rgba(51,51,51,1.0)") {
		t.Error("Expected axis labels coloured by the axis rule")
	}
}

func TestRender_PNG(t *testing.T) {
	scene := chart.MustBuild(chart.DefaultConfig())

	var buf bytes.Buffer
	if err := Render(&buf, scene, style.Default(), FormatPNG); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Output does not start with the PNG signature")
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	scene := chart.MustBuild(chart.DefaultConfig())
	var buf bytes.Buffer
	if err := Render(&buf, scene, style.Default(), Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("Nothing should be written for an unknown format")
	}
}

func TestWriteFile(t *testing.T) {
	scene := chart.MustBuild(chart.DefaultConfig())
	path := filepath.Join(t.TempDir(), "nested", "chart.svg")

	if err := WriteFile(path, scene, style.Default(), FormatSVG); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("Exported file is not an SVG document")
	}
}

func TestWriteFile_FailureLeavesNoFile(t *testing.T) {
	scene := chart.MustBuild(chart.DefaultConfig())
	path := filepath.Join(t.TempDir(), "chart.gif")

	if err := WriteFile(path, scene, style.Default(), Format("gif")); err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Failed export should not leave a file behind")
	}
}
