package telegram

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var zeroWidth = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\u2060", "",
	"\ufeff", "",
	"\ufe0f", "",
)

// normalizeText folds a menu label for comparison: NFKC, no zero-width or
// variation selectors, single spaces, lower case.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = zeroWidth.Replace(s)
	s = strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
	return strings.ToLower(s)
}

var labelIndex, menuIndex = buildMenuIndexes()

// buildMenuIndexes maps the reply keyboard labels of every language, and
// separately those labels plus their aliases, to menu actions.
func buildMenuIndexes() (labels, all map[string]menuAction) {
	labels = make(map[string]menuAction)
	all = make(map[string]menuAction)
	for _, lx := range lexicons {
		for label, action := range map[string]menuAction{
			lx.menuAddTask: menuActionAdd,
			lx.menuTasks:   menuActionList,
			lx.menuHelp:    menuActionHelp,
		} {
			labels[normalizeText(label)] = action
			all[normalizeText(label)] = action
		}
		for action, aliases := range lx.aliases {
			for _, a := range aliases {
				all[normalizeText(a)] = action
			}
		}
	}
	return labels, all
}

// matchMenu returns the menu action text stands for, or menuNone.
func matchMenu(text string) menuAction {
	return menuIndex[normalizeText(text)]
}

// matchMenuLabel only recognizes the reply keyboard buttons, so a bare word
// typed into a pending flow stays flow input.
func matchMenuLabel(text string) menuAction {
	return labelIndex[normalizeText(text)]
}
