package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyExport            = "export"
	KeyExportSVG         = "export_svg"
	KeyExportPNG         = "export_png"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyExportDirectory   = "export_directory"
	KeyExportFormat      = "export_format"
	KeyStylesheet        = "stylesheet"
	KeyStylesheetHint    = "stylesheet_hint"
	KeyRevealAfterExport = "reveal_after_export"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyExportCompleted   = "export_completed"
	KeyErrorExporting    = "error_exporting"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorStylesheet   = "error_stylesheet"
	KeyChartUnavailable  = "chart_unavailable"
	KeyHoverHint         = "hover_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Graph Demo",
		KeyFile:              "File",
		KeyExport:            "Export",
		KeyExportSVG:         "Export SVG",
		KeyExportPNG:         "Export PNG",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyExportDirectory:   "Export Directory",
		KeyExportFormat:      "Export Format",
		KeyStylesheet:        "Stylesheet",
		KeyStylesheetHint:    "Empty uses the built-in stylesheet",
		KeyRevealAfterExport: "Reveal file after export",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyExportCompleted:   "Chart exported",
		KeyErrorExporting:    "Error exporting chart",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorStylesheet:   "Stylesheet could not be loaded, using built-in style",
		KeyChartUnavailable:  "Chart is not available",
		KeyHoverHint:         "Hover a red line to read its coordinates",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Демо графика",
		KeyFile:              "Файл",
		KeyExport:            "Экспорт",
		KeyExportSVG:         "Экспорт SVG",
		KeyExportPNG:         "Экспорт PNG",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyExportDirectory:   "Папка экспорта",
		KeyExportFormat:      "Формат экспорта",
		KeyStylesheet:        "Таблица стилей",
		KeyStylesheetHint:    "Пусто - встроенная таблица стилей",
		KeyRevealAfterExport: "Показать файл после экспорта",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyExportCompleted:   "График экспортирован",
		KeyErrorExporting:    "Ошибка экспорта графика",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorStylesheet:   "Не удалось загрузить таблицу стилей, используется встроенная",
		KeyChartUnavailable:  "График недоступен",
		KeyHoverHint:         "Наведите курсор на красную линию, чтобы увидеть координаты",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Demo de Gráfico",
		KeyFile:              "Arquivo",
		KeyExport:            "Exportar",
		KeyExportSVG:         "Exportar SVG",
		KeyExportPNG:         "Exportar PNG",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyExportFormat:      "Formato de Exportação",
		KeyStylesheet:        "Folha de Estilos",
		KeyStylesheetHint:    "Vazio usa a folha de estilos embutida",
		KeyRevealAfterExport: "Mostrar arquivo após exportar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyExportCompleted:   "Gráfico exportado",
		KeyErrorExporting:    "Erro ao exportar gráfico",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorStylesheet:   "Não foi possível carregar a folha de estilos, usando a embutida",
		KeyChartUnavailable:  "Gráfico indisponível",
		KeyHoverHint:         "Passe o cursor sobre uma linha vermelha para ler as coordenadas",
	}
}
