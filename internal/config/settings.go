package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/graphdemo/internal/platform"
)

// ExportFormat names a chart export format
type ExportFormat string

const (
	ExportSVG ExportFormat = "svg"
	ExportPNG ExportFormat = "png"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir      = "export_directory"
	KeyExportFormat   = "export_format"
	KeyStylesheetPath = "stylesheet_path"
	KeyLanguage       = "app_language"
	KeyRevealExported = "reveal_after_export"
)

// Default values
const (
	DefaultExportFormat   = ExportSVG
	DefaultLanguage       = "system"
	DefaultRevealExported = false
	FallbackExportDir     = "/tmp/graphdemo"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the configured export directory
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = FallbackExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetExportFormat returns the configured export format
func (s *Settings) GetExportFormat() ExportFormat {
	format := ExportFormat(s.app.Preferences().String(KeyExportFormat))
	if !format.valid() {
		s.SetExportFormat(DefaultExportFormat)
		return DefaultExportFormat
	}
	return format
}

// SetExportFormat sets the export format; unknown formats fall back to the default
func (s *Settings) SetExportFormat(format ExportFormat) {
	if !format.valid() {
		format = DefaultExportFormat
	}
	s.app.Preferences().SetString(KeyExportFormat, string(format))
}

// GetExportFormatOptions returns available export formats
func (s *Settings) GetExportFormatOptions() []ExportFormat {
	return []ExportFormat{ExportSVG, ExportPNG}
}

// GetStylesheetPath returns the user stylesheet path, empty for the built-in one
func (s *Settings) GetStylesheetPath() string {
	return s.app.Preferences().String(KeyStylesheetPath)
}

// SetStylesheetPath sets the user stylesheet path
func (s *Settings) SetStylesheetPath(path string) {
	s.app.Preferences().SetString(KeyStylesheetPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetRevealAfterExport returns whether exported files are shown in the file manager
func (s *Settings) GetRevealAfterExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealExported, DefaultRevealExported)
}

// SetRevealAfterExport sets whether exported files are shown in the file manager
func (s *Settings) SetRevealAfterExport(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealExported, reveal)
}

func (f ExportFormat) valid() bool {
	return f == ExportSVG || f == ExportPNG
}
