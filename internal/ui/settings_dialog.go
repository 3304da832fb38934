package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/graphdemo/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	exportDirEntry  *widget.Entry
	formatSelect    *widget.Select
	stylesheetEntry *widget.Entry
	revealCheck     *widget.Check
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder(text(KeyExportDirectory))
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	formatOptions := []string{}
	for _, f := range sd.settings.GetExportFormatOptions() {
		formatOptions = append(formatOptions, string(f))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	sd.stylesheetEntry = widget.NewEntry()
	sd.stylesheetEntry.SetPlaceHolder(text(KeyStylesheetHint))
	browseStyleBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseStylesheet)
	stylesheetRow := container.NewBorder(nil, nil, nil, browseStyleBtn, sd.stylesheetEntry)

	sd.revealCheck = widget.NewCheck(text(KeyRevealAfterExport), nil)

	// Language codes in a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(text(KeyExportFormat)+":"),
		sd.formatSelect,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyStylesheet)+":"),
		stylesheetRow,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.formatSelect.SetSelected(string(sd.settings.GetExportFormat()))
	sd.stylesheetEntry.SetText(sd.settings.GetStylesheetPath())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterExport())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onBrowseStylesheet() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		sd.stylesheetEntry.SetText(rc.URI().Path())
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values into settings
func (sd *SettingsDialog) apply() {
	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	if sd.formatSelect.Selected != "" {
		sd.settings.SetExportFormat(config.ExportFormat(sd.formatSelect.Selected))
	}

	// Empty clears the override
	sd.settings.SetStylesheetPath(sd.stylesheetEntry.Text)

	sd.settings.SetRevealAfterExport(sd.revealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
