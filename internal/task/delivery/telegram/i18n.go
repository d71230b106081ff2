package telegram

import (
	"golang.org/x/text/language"

	"dotask-bot/internal/model"
)

// lexicon holds every user-facing text of one language. Fields ending in
// Fmt are fmt layouts.
type lexicon struct {
	menuAddTask string
	menuTasks   string
	menuHelp    string
	// aliases are extra spellings of the menu buttons, honored only while no
	// flow is waiting for text.
	aliases map[menuAction][]string

	priorities        map[model.Priority]string
	priorityFilters   map[model.PriorityFilter]string
	dateFilters       map[model.DateFilter]string
	dateFilterButtons map[model.DateFilter]string
	snoozeLabels      map[int]string

	welcomeNamedFmt string
	welcome         string
	intro           string
	statsFmt        string
	payloadHintFmt  string
	pickOption      string

	titleOpen       string
	titleDone       string
	totalFmt        string
	filtersFmt      string
	pageFmt         string
	emptyList       string
	statePending    string
	stateDone       string
	noDate          string
	todayFmt        string
	daysOverdueFmt  string
	hoursOverdueFmt string
	inDaysFmt       string
	inHoursFmt      string

	prev     string
	next     string
	showOpen string
	showDone string
	refresh  string
	retry    string

	help             string
	askContent       string
	contentTooShort  string
	askDue           string
	invalidDue       string
	askPriority      string
	pickPriority     string
	askNewContentFmt string
	cancelled        string
	nothingToCancel  string
	useMenu          string
	accountUnknown   string
	genericError     string
	listError        string
	taskAdded        string
	taskUpdated      string
	taskNotFound     string
	slowDown         string

	toastInvalid  string
	toastNotFound string
	toastDone     string
	toastUndone   string
	toastDeleted  string
	toastSnoozed  string
	toastPriority string
	toastExpired  string
	toastError    string
	toastAccount  string
}

// lexicons is ordered like supportedLanguages; the first entry is the last
// resort.
var (
	lexicons           = []*lexicon{&english, &persian}
	supportedLanguages = []language.Tag{language.English, language.Persian}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// lookupLexicon returns the lexicon of the first code a supported language
// matches with high confidence, falling back to English.
func lookupLexicon(codes ...string) *lexicon {
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		_, idx, conf := languageMatcher.Match(tag)
		if conf >= language.High && idx < len(lexicons) {
			return lexicons[idx]
		}
	}
	return lexicons[0]
}

// lexiconFor picks the texts for the caller's Telegram language, then the
// configured default.
func (h *handler) lexiconFor(sc model.Scope) *lexicon {
	return lookupLexicon(sc.Language, h.defaultLanguage)
}

func (lx *lexicon) priorityLabel(p model.Priority) string {
	if s, ok := lx.priorities[p]; ok {
		return s
	}
	return string(p)
}
