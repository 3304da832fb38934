package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/graphdemo/internal/config"
	"github.com/ytget/graphdemo/internal/export"
	"github.com/ytget/graphdemo/internal/style"
)

func newRootUI(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, app)
	ui.settings.SetExportDirectory(t.TempDir())
	return ui
}

func TestNewRootUI_MountsChart(t *testing.T) {
	ui := newRootUI(t)

	if ui.Chart() == nil {
		t.Fatal("Chart should be mounted")
	}
	if len(ui.host.Objects) != 2 {
		t.Errorf("Expected 2 host children, got %d", len(ui.host.Objects))
	}
	if ui.window.MainMenu() == nil {
		t.Error("Main menu should be set")
	}
}

func TestRootUI_ExportDoesNotOverwrite(t *testing.T) {
	ui := newRootUI(t)

	first, err := ui.exportChart(export.FormatSVG)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	second, err := ui.exportChart(export.FormatSVG)
	if err != nil {
		t.Fatalf("Second export failed: %v", err)
	}

	if filepath.Base(first) != "chart.svg" || filepath.Base(second) != "chart-1.svg" {
		t.Errorf("Expected chart.svg and chart-1.svg, got %s and %s", first, second)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("Export should contain an svg document")
	}
}

func TestRootUI_DefaultExportUsesSettings(t *testing.T) {
	ui := newRootUI(t)

	tests := []struct {
		setting config.ExportFormat
		want    export.Format
	}{
		{config.ExportPNG, export.FormatPNG},
		{config.ExportSVG, export.FormatSVG},
	}

	for _, tt := range tests {
		ui.settings.SetExportFormat(tt.setting)
		format, err := ui.defaultExportFormat()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if format != tt.want {
			t.Errorf("Expected %s, got %s", tt.want, format)
		}
	}

	ui.settings.SetExportFormat(config.ExportPNG)
	ui.onExportDefault()
	if _, err := os.Stat(filepath.Join(ui.settings.GetExportDirectory(), "chart.png")); err != nil {
		t.Errorf("Expected chart.png in the export directory: %v", err)
	}

	menu := ui.window.MainMenu().Items[0]
	if menu.Items[0].Label != "Export" || menu.Items[0].Shortcut != exportShortcut {
		t.Errorf("Expected the File menu to start with the default Export item, got %q", menu.Items[0].Label)
	}
}

func TestRootUI_SettingsRemount(t *testing.T) {
	ui := newRootUI(t)
	before := ui.Chart()

	ui.settings.SetLanguage("pt")
	ui.onSettingsSaved()

	if ui.Chart() == nil || ui.Chart() == before {
		t.Fatal("Expected a freshly mounted chart")
	}
	if len(ui.host.Objects) != 2 {
		t.Errorf("Expected 2 host children after remount, got %d", len(ui.host.Objects))
	}
	if ui.localization.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", ui.localization.GetCurrentLanguage())
	}
}

func TestRootUI_BadStylesheetFallsBack(t *testing.T) {
	ui := newRootUI(t)

	ui.settings.SetStylesheetPath(filepath.Join(t.TempDir(), "missing.yaml"))
	ui.onSettingsSaved()

	if ui.sheet == nil {
		t.Fatal("Sheet should fall back to the built-in stylesheet")
	}
	if got := ui.sheet.Resolve([]string{"line"}, style.Style{}).StrokeWidth; got != 2 {
		t.Errorf("Expected built-in line width 2, got %v", got)
	}
	if ui.Chart() == nil {
		t.Error("Chart should still be mounted")
	}
}
