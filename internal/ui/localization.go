package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyIdeasTab           = "ideas_tab"
	KeyResultsTab         = "results_tab"
	KeyTopic              = "topic"
	KeyEnterTopic         = "enter_topic"
	KeyDraftTitle         = "draft_title"
	KeyDraftTitleHint     = "draft_title_hint"
	KeyDraftKeywords      = "draft_keywords"
	KeyDraftKeywordsHint  = "draft_keywords_hint"
	KeyScript             = "script"
	KeyScriptHint         = "script_hint"
	KeyGetSuggestions     = "get_suggestions"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyPleaseEnterTopic   = "please_enter_topic"
	KeySearching          = "searching"
	KeySearchComplete     = "search_complete"
	KeySearchFailed       = "search_failed"
	KeyAlreadySearching   = "already_searching"
	KeyNoSuggestions      = "no_suggestions"
	KeyResultsPlaceholder = "results_placeholder"
	KeyTitleSuggestions   = "title_suggestions"
	KeyKeywordSuggestions = "keyword_suggestions"
	KeyThumbnailIdeas     = "thumbnail_ideas"
	KeyCopy               = "copy"
	KeyCopiedToClipboard  = "copied_to_clipboard"
	KeyViews              = "views"
	KeyKeywordsCovered    = "keywords_covered"
	KeyThumbnailFailed    = "thumbnail_failed"
	KeyOpenFailed         = "open_failed"
	KeyAPIKey             = "api_key"
	KeyAPIKeyHint         = "api_key_hint"
	KeyMaxResults         = "max_results"
	KeyThumbnailWorkers   = "thumbnail_workers"
	KeyThumbnailLimit     = "thumbnail_limit"
	KeyRequestsPerSecond  = "requests_per_second"
	KeySettingsSaved      = "settings_saved"
	KeySearchSettings     = "search_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeySelectLanguage     = "select_language"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT Optimizer",
		KeyIdeasTab:           "Ideas",
		KeyResultsTab:         "Search Results",
		KeyTopic:              "Topic",
		KeyEnterTopic:         "Enter a video topic or a playlist URL",
		KeyDraftTitle:         "Draft title",
		KeyDraftTitleHint:     "Your working title",
		KeyDraftKeywords:      "Draft keywords",
		KeyDraftKeywordsHint:  "Comma-separated keywords",
		KeyScript:             "Script",
		KeyScriptHint:         "Notes or script for the video",
		KeyGetSuggestions:     "Get Suggestions",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyPleaseEnterTopic:   "Please enter a topic.",
		KeySearching:          "Searching for suggestions...",
		KeySearchComplete:     "Found %d title suggestions from %d videos",
		KeySearchFailed:       "Search failed",
		KeyAlreadySearching:   "A search for this topic is already running",
		KeyNoSuggestions:      "No suggestions found for this topic.",
		KeyResultsPlaceholder: "Run a search on the Ideas tab to see suggestions.",
		KeyTitleSuggestions:   "Title Suggestions",
		KeyKeywordSuggestions: "Keyword Suggestions",
		KeyThumbnailIdeas:     "Thumbnail Ideas",
		KeyCopy:               "Copy",
		KeyCopiedToClipboard:  "Copied to clipboard!",
		KeyViews:              "views",
		KeyKeywordsCovered:    "%d of %d suggested keywords already in your draft",
		KeyThumbnailFailed:    "Thumbnail unavailable",
		KeyOpenFailed:         "Could not open link",
		KeyAPIKey:             "YouTube API Key",
		KeyAPIKeyHint:         "Leave empty to use YOUTUBE_API_KEY",
		KeyMaxResults:         "Videos per Search",
		KeyThumbnailWorkers:   "Parallel Thumbnail Downloads",
		KeyThumbnailLimit:     "Thumbnails Shown",
		KeyRequestsPerSecond:  "Thumbnail Requests per Second (0 = unlimited)",
		KeySettingsSaved:      "Settings saved successfully!",
		KeySearchSettings:     "Search Settings",
		KeyInterfaceSettings:  "Interface Settings",
		KeySelectLanguage:     "Select language",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT Оптимизатор",
		KeyIdeasTab:           "Идеи",
		KeyResultsTab:         "Результаты поиска",
		KeyTopic:              "Тема",
		KeyEnterTopic:         "Введите тему видео или URL плейлиста",
		KeyDraftTitle:         "Черновик заголовка",
		KeyDraftTitleHint:     "Рабочий заголовок",
		KeyDraftKeywords:      "Черновик ключевых слов",
		KeyDraftKeywordsHint:  "Ключевые слова через запятую",
		KeyScript:             "Сценарий",
		KeyScriptHint:         "Заметки или сценарий видео",
		KeyGetSuggestions:     "Получить подсказки",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyPleaseEnterTopic:   "Пожалуйста, введите тему.",
		KeySearching:          "Поиск подсказок...",
		KeySearchComplete:     "Найдено %d заголовков из %d видео",
		KeySearchFailed:       "Ошибка поиска",
		KeyAlreadySearching:   "Поиск по этой теме уже выполняется",
		KeyNoSuggestions:      "Для этой темы подсказки не найдены.",
		KeyResultsPlaceholder: "Запустите поиск на вкладке «Идеи», чтобы увидеть подсказки.",
		KeyTitleSuggestions:   "Варианты заголовков",
		KeyKeywordSuggestions: "Ключевые слова",
		KeyThumbnailIdeas:     "Идеи для превью",
		KeyCopy:               "Копировать",
		KeyCopiedToClipboard:  "Скопировано в буфер обмена!",
		KeyViews:              "просмотров",
		KeyKeywordsCovered:    "%d из %d ключевых слов уже есть в черновике",
		KeyThumbnailFailed:    "Превью недоступно",
		KeyOpenFailed:         "Не удалось открыть ссылку",
		KeyAPIKey:             "Ключ YouTube API",
		KeyAPIKeyHint:         "Оставьте пустым, чтобы использовать YOUTUBE_API_KEY",
		KeyMaxResults:         "Видео на поиск",
		KeyThumbnailWorkers:   "Параллельных загрузок превью",
		KeyThumbnailLimit:     "Показывать превью",
		KeyRequestsPerSecond:  "Запросов превью в секунду (0 = без ограничений)",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeySearchSettings:     "Настройки поиска",
		KeyInterfaceSettings:  "Настройки интерфейса",
		KeySelectLanguage:     "Выберите язык",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YT Optimizer",
		KeyIdeasTab:           "Ideias",
		KeyResultsTab:         "Resultados da Busca",
		KeyTopic:              "Tema",
		KeyEnterTopic:         "Digite um tema de vídeo ou URL de playlist",
		KeyDraftTitle:         "Rascunho do título",
		KeyDraftTitleHint:     "Seu título provisório",
		KeyDraftKeywords:      "Rascunho de palavras-chave",
		KeyDraftKeywordsHint:  "Palavras-chave separadas por vírgula",
		KeyScript:             "Roteiro",
		KeyScriptHint:         "Notas ou roteiro do vídeo",
		KeyGetSuggestions:     "Obter Sugestões",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyPleaseEnterTopic:   "Por favor, digite um tema.",
		KeySearching:          "Buscando sugestões...",
		KeySearchComplete:     "%d sugestões de título encontradas em %d vídeos",
		KeySearchFailed:       "Falha na busca",
		KeyAlreadySearching:   "Já existe uma busca em andamento para este tema",
		KeyNoSuggestions:      "Nenhuma sugestão encontrada para este tema.",
		KeyResultsPlaceholder: "Faça uma busca na aba Ideias para ver sugestões.",
		KeyTitleSuggestions:   "Sugestões de Título",
		KeyKeywordSuggestions: "Sugestões de Palavras-chave",
		KeyThumbnailIdeas:     "Ideias de Miniatura",
		KeyCopy:               "Copiar",
		KeyCopiedToClipboard:  "Copiado para a área de transferência!",
		KeyViews:              "visualizações",
		KeyKeywordsCovered:    "%d de %d palavras-chave sugeridas já estão no rascunho",
		KeyThumbnailFailed:    "Miniatura indisponível",
		KeyOpenFailed:         "Não foi possível abrir o link",
		KeyAPIKey:             "Chave da API do YouTube",
		KeyAPIKeyHint:         "Deixe vazio para usar YOUTUBE_API_KEY",
		KeyMaxResults:         "Vídeos por Busca",
		KeyThumbnailWorkers:   "Downloads Paralelos de Miniaturas",
		KeyThumbnailLimit:     "Miniaturas Exibidas",
		KeyRequestsPerSecond:  "Requisições de Miniaturas por Segundo (0 = sem limite)",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeySearchSettings:     "Configurações de Busca",
		KeyInterfaceSettings:  "Configurações de Interface",
		KeySelectLanguage:     "Selecione o idioma",
	}
}
