package report

import (
	"regexp"
	"strings"
)

// buyerPattern is one entry of the buyer-extraction cascade. Patterns are
// tried in order against the summary body and the first match wins. The
// capture group differs between patterns; that indexing is deliberate and
// mirrors observed model phrasings ("...les acheteurs X est/sont Y",
// "...celle des acheteurs X", "...acheteurs X").
type buyerPattern struct {
	re    *regexp.Regexp
	group int
}

var buyerCascade = []buyerPattern{
	{regexp.MustCompile(`(?im)acheteurs? (.*?)(?:est|sont) (.*?)\.?$`), 2},
	{regexp.MustCompile(`(?im)celle des acheteurs (.*?)(?:est|sont)? (.*?)\.?$`), 1},
	{regexp.MustCompile(`(?im)acheteurs? (.*?)\.?$`), 1},
}

// Action and warning blocks are matched per blank-line-delimited chunk so a
// malformed block can never bleed its neighbours' fields into a match. The
// strict tier requires the bold French labels; the loose tier tolerates
// missing bold markers and English label spellings. Tiers are exclusive: the
// loose tier runs only when the strict tier matched nothing.
var actionTiers = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\*\*Section\*\*:\s*(.*?)\s*\*\*Action Requise\*\*:\s*(.*?)\s*\*\*Priorité\*\*:\s*(.*?)\s*\*\*(?:Échéancier|Délai)\*\*:\s*(.*?)\s*\z`),
	regexp.MustCompile(`(?s)(?:\*\*)?Section(?:\*\*)?\s*:\s*(.*?)\s*(?:\*\*)?Action (?:Requise|Required)(?:\*\*)?\s*:\s*(.*?)\s*(?:\*\*)?(?:Priorité|Priority)(?:\*\*)?\s*:\s*(.*?)\s*(?:\*\*)?(?:Échéancier|Délai|Timeline)(?:\*\*)?\s*:\s*(.*?)\s*\z`),
}

var warningTiers = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\*\*(?:Niveau de Risque|Risque Level)\*\*:\s*(.*?)\s*\*\*(?:Problème|Issue)\*\*:\s*(.*?)\s*\*\*(?:Conséquences Potentielles|Potential Consequences)\*\*:\s*(.*?)\s*\*\*(?:Atténuation|Mitigation)\*\*:\s*(.*?)\s*\z`),
	regexp.MustCompile(`(?s)(?:\*\*)?(?:Niveau de Risque|Risque Level)(?:\*\*)?\s*:\s*(.*?)\s*(?:\*\*)?(?:Problème|Issue)(?:\*\*)?\s*:\s*(.*?)\s*(?:\*\*)?(?:Conséquences Potentielles|Potential Consequences)(?:\*\*)?\s*:\s*(.*?)\s*(?:\*\*)?(?:Atténuation|Mitigation)(?:\*\*)?\s*:\s*(.*?)\s*\z`),
}

var (
	vendorRe   = regexp.MustCompile(`(?s)\*\*(?:Vendeur\(s\)|Vendor\(s\))\*\*:\s*(.*?)(?:\n-|\z)`)
	dateRe     = regexp.MustCompile(`(?s)\*\*Date\*\*:\s*(.*?)(?:\n-|\z)`)
	propertyRe = regexp.MustCompile(`(?s)\*\*(?:Type de Propriété|Property Type)\*\*:\s*(.*?)(?:\n-|\z)`)
	scoreRe    = regexp.MustCompile(`\*\*(?:Score Global|Overall Score)\*\*:\s*(.*?)%`)
)

// Parse converts the model's specialized report text into a Report. It never
// fails: sections, blocks, or fields that do not match simply stay empty.
func Parse(text string) Report {
	result := NewReport()

	if body := section(text, conceptSummary); body != "" {
		result.Summary = strings.TrimSpace(body)
		result.Buyers = extractBuyers(result.Summary)
	}

	if body := section(text, conceptActions); body != "" {
		for _, m := range tieredMatches(actionTiers, body) {
			result.RecommendedActions = append(result.RecommendedActions, Action{
				Section:        strings.TrimSpace(m[1]),
				ActionRequired: strings.TrimSpace(m[2]),
				Priority:       strings.TrimSpace(m[3]),
				Timeline:       strings.TrimSpace(m[4]),
			})
		}
	}

	if body := section(text, conceptWarnings); body != "" {
		for _, m := range tieredMatches(warningTiers, body) {
			result.Warnings = append(result.Warnings, Warning{
				RiskLevel:             strings.TrimSpace(m[1]),
				Issue:                 strings.TrimSpace(m[2]),
				PotentialConsequences: strings.TrimSpace(m[3]),
				Mitigation:            strings.TrimSpace(m[4]),
			})
		}
	}

	if body := section(text, conceptOverview); body != "" {
		result.Vendor = firstGroup(vendorRe, body)
		result.Date = firstGroup(dateRe, body)
		result.PropertyType = firstGroup(propertyRe, body)
		result.OverallScore = firstGroup(scoreRe, body)
	}

	return result
}

// extractBuyers applies the cascade in order and returns the designated
// group of the first pattern that matches, or "".
func extractBuyers(summary string) string {
	for _, p := range buyerCascade {
		if m := p.re.FindStringSubmatch(summary); m != nil {
			return strings.TrimSpace(m[p.group])
		}
	}
	return ""
}

// tieredMatches runs each tier over the section body and returns the matches
// of the first tier that produced any. Results from different tiers are
// never combined.
func tieredMatches(tiers []*regexp.Regexp, body string) [][]string {
	for _, re := range tiers {
		var matches [][]string
		for _, chunk := range strings.Split(body, "\n\n") {
			matches = append(matches, re.FindAllStringSubmatch(chunk, -1)...)
		}
		if len(matches) > 0 {
			return matches
		}
	}
	return nil
}

func firstGroup(re *regexp.Regexp, body string) string {
	if m := re.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
