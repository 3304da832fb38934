package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/config"
	"github.com/ytget/graphdemo/internal/export"
	"github.com/ytget/graphdemo/internal/platform"
	"github.com/ytget/graphdemo/internal/style"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	sheet *style.Sheet
	host  *fyne.Container
	chart *RenderedChart

	hintLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationHide      *time.Timer
}

// NewRootUI creates the main UI and mounts the chart into its host
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		host:         container.NewWithoutLayout(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.sheet = ui.loadStylesheet()
	ui.mountChart()
	return ui
}

// Chart returns the mounted chart, nil when initialization failed
func (ui *RootUI) Chart() *RenderedChart {
	return ui.chart
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.hintLabel = widget.NewLabel(ui.localization.GetText(KeyHoverHint))
	ui.hintLabel.Alignment = fyne.TextAlignCenter

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewHBox(ui.notificationLabel)
	ui.notificationContainer.Hide()

	w, h := chart.DefaultConfig().OuterSize()
	chartArea := container.NewCenter(container.NewGridWrap(fyne.NewSize(float32(w), float32(h)), ui.host))

	content := container.NewBorder(
		ui.hintLabel,             // top
		ui.notificationContainer, // bottom
		nil,                      // left
		nil,                      // right
		chartArea,                // center
	)
	ui.window.SetContent(content)
	ui.window.Canvas().AddShortcut(exportShortcut, func(fyne.Shortcut) {
		ui.onExportDefault()
	})

	log.Printf("UI setup completed successfully")
}

// mountChart initializes the chart widget into the host
func (ui *RootUI) mountChart() {
	rc, err := Initialize(ui.host, chart.DefaultConfig(), ui.sheet)
	if err != nil {
		log.Printf("Error initializing chart: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	ui.chart = rc
	ui.host.Refresh()
}

// remountChart replaces the chart after a stylesheet change
func (ui *RootUI) remountChart() {
	if ui.chart != nil {
		ui.chart.Teardown()
		ui.chart = nil
	}
	ui.mountChart()
}

// loadStylesheet returns the user stylesheet layered over the built-in one,
// or the built-in one when no path is set or loading fails
func (ui *RootUI) loadStylesheet() *style.Sheet {
	path := ui.settings.GetStylesheetPath()
	if path == "" {
		return style.Default()
	}

	sheet, err := style.Load(path)
	if err != nil {
		log.Printf("Error loading stylesheet %s: %v", path, err)
		ui.showNotification(ui.localization.GetText(KeyErrorStylesheet))
		return style.Default()
	}
	log.Printf("Stylesheet loaded from %s", path)
	return sheet
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExportDefault)
	exportItem.Shortcut = exportShortcut
	exportSVGItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportSVG), func() {
		ui.onExport(export.FormatSVG)
	})
	exportPNGItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportPNG), func() {
		ui.onExport(export.FormatPNG)
	})
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			exportItem,
			exportSVGItem,
			exportPNGItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.hintLabel.SetText(ui.localization.GetText(KeyHoverHint))
}

// exportShortcut triggers an export in the configured format
var exportShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierShortcutDefault}

// defaultExportFormat returns the export format chosen in settings
func (ui *RootUI) defaultExportFormat() (export.Format, error) {
	return export.ParseFormat(string(ui.settings.GetExportFormat()))
}

// onExportDefault handles the Export menu item and its shortcut
func (ui *RootUI) onExportDefault() {
	format, err := ui.defaultExportFormat()
	if err != nil {
		log.Printf("Error reading export format: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	ui.onExport(format)
}

// onExport handles the Export menu items
func (ui *RootUI) onExport(format export.Format) {
	path, err := ui.exportChart(format)
	if err != nil {
		log.Printf("Error exporting chart: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorExporting), err), ui.window)
		return
	}

	ui.showNotification(ui.localization.GetText(KeyExportCompleted) + ": " + path)

	if ui.settings.GetRevealAfterExport() {
		ui.onRevealFile(path)
	}
}

// exportChart writes the mounted chart into the export directory under a
// name that does not overwrite earlier exports
func (ui *RootUI) exportChart(format export.Format) (string, error) {
	if ui.chart == nil {
		return "", fmt.Errorf("%s", ui.localization.GetText(KeyChartUnavailable))
	}

	path, err := platform.NextExportPath(ui.settings.GetExportDirectory(), ExportBaseName, format.Ext())
	if err != nil {
		return "", err
	}
	if err := export.WriteFile(path, ui.chart.Scene, ui.sheet, format); err != nil {
		return "", err
	}
	return path, nil
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File revealed successfully: %s", filePath)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies language and stylesheet changes
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.sheet = ui.loadStylesheet()
	ui.remountChart()
}

// showNotification displays a message in the notification panel and hides
// it after NotificationAutoHide
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	if ui.notificationHide != nil {
		ui.notificationHide.Stop()
	}
	ui.notificationHide = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.notificationContainer.Hide)
	})
}
