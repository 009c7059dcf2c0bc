package report

import (
	"regexp"
	"strings"
	"sync"
)

// concept identifies one logical report section regardless of which heading
// spelling the model chose.
type concept int

const (
	conceptSummary concept = iota
	conceptActions
	conceptWarnings
	conceptOverview
)

// sectionAliases maps each concept to its accepted `##` heading spellings.
// The model answers in French but drifts toward English headings often
// enough that both sets have been observed in production output.
var sectionAliases = map[concept][]string{
	conceptSummary:  {"Évaluation Sommaire", "Summary Evaluation", "Résumé de l'Analyse"},
	conceptActions:  {"RECOMMANDATIONS", "RECOMMENDED ACTIONS", "Actions Recommandées"},
	conceptWarnings: {"AVERTISSEMENTS", "WARNINGS", "Avertissements"},
	conceptOverview: {"Aperçu du Document", "Document Overview"},
}

var (
	sectionOnce sync.Once
	sectionRe   map[concept]*regexp.Regexp
)

func sectionPatterns() map[concept]*regexp.Regexp {
	sectionOnce.Do(func() {
		sectionRe = make(map[concept]*regexp.Regexp, len(sectionAliases))
		for c, aliases := range sectionAliases {
			quoted := make([]string, len(aliases))
			for i, a := range aliases {
				quoted[i] = regexp.QuoteMeta(a)
			}
			// Body runs from the heading to the next `##` or end of text.
			sectionRe[c] = regexp.MustCompile(`(?s)## (?:` + strings.Join(quoted, "|") + `)(.*?)(?:##|\z)`)
		}
	})
	return sectionRe
}

// section returns the body of the first heading matching the concept's alias
// set, or "" when no heading matches.
func section(text string, c concept) string {
	m := sectionPatterns()[c].FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
