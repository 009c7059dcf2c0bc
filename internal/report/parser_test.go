package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyInput(t *testing.T) {
	got := Parse("")

	assert.Equal(t, "", got.Summary)
	assert.Equal(t, "", got.Buyers)
	assert.Equal(t, "", got.Vendor)
	assert.Equal(t, "", got.Date)
	assert.Equal(t, "", got.PropertyType)
	assert.Equal(t, "", got.OverallScore)
	assert.Empty(t, got.RecommendedActions)
	assert.Empty(t, got.Warnings)
}

func TestParseNeverYieldsNullJSON(t *testing.T) {
	out, err := json.Marshal(Parse("texte sans aucune section"))
	require.NoError(t, err)

	assert.Contains(t, string(out), `"recommended_actions":[]`)
	assert.Contains(t, string(out), `"warnings":[]`)
	assert.NotContains(t, string(out), "null")
}

func TestParseOverviewAndWarningEndToEnd(t *testing.T) {
	text := "## Aperçu du Document\n" +
		"- **Vendeur(s)**: Jean Tremblay\n" +
		"- **Date**: 2024-03-01\n" +
		"- **Type de Propriété**: Condo\n" +
		"- **Score Global**: 82%\n" +
		"## Avertissements\n" +
		"**Niveau de Risque**: Critical\n" +
		"**Problème**: Signature absente\n" +
		"**Conséquences Potentielles**: Invalidité du formulaire\n" +
		"**Atténuation**: Obtenir signature\n"

	got := Parse(text)

	assert.Equal(t, "Jean Tremblay", got.Vendor)
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, "Condo", got.PropertyType)
	assert.Equal(t, "82", got.OverallScore)
	assert.Equal(t, "", got.Summary)
	assert.Equal(t, "", got.Buyers)
	assert.Empty(t, got.RecommendedActions)

	require.Len(t, got.Warnings, 1)
	assert.Equal(t, Warning{
		RiskLevel:             "Critical",
		Issue:                 "Signature absente",
		PotentialConsequences: "Invalidité du formulaire",
		Mitigation:            "Obtenir signature",
	}, got.Warnings[0])
}

func TestParseSummarySectionAliases(t *testing.T) {
	for _, heading := range []string{"Évaluation Sommaire", "Summary Evaluation", "Résumé de l'Analyse"} {
		got := Parse("## " + heading + "\nLe formulaire est globalement conforme.\n## Avertissements\n")
		assert.Equal(t, "Le formulaire est globalement conforme.", got.Summary, "heading %q", heading)
	}
}

func TestParseSummaryStopsAtNextHeading(t *testing.T) {
	text := "## Résumé de l'Analyse\nPremière partie.\n## Aperçu du Document\n- **Date**: 2024-01-01\n"

	got := Parse(text)

	assert.Equal(t, "Première partie.", got.Summary)
	assert.Equal(t, "2024-01-01", got.Date)
}

func TestParseStrictActions(t *testing.T) {
	text := "## Actions Recommandées\n" +
		"**Section**: DV5\n" +
		"**Action Requise**: Fournir la facture originale\n" +
		"**Priorité**: Haute\n" +
		"**Échéancier**: Immédiat\n" +
		"\n" +
		"**Section**: DV9\n" +
		"**Action Requise**: Joindre l'annexe G\n" +
		"**Priorité**: Moyenne\n" +
		"**Délai**: 10 jours\n"

	got := Parse(text)

	require.Len(t, got.RecommendedActions, 2)
	assert.Equal(t, Action{
		Section:        "DV5",
		ActionRequired: "Fournir la facture originale",
		Priority:       "Haute",
		Timeline:       "Immédiat",
	}, got.RecommendedActions[0])
	assert.Equal(t, Action{
		Section:        "DV9",
		ActionRequired: "Joindre l'annexe G",
		Priority:       "Moyenne",
		Timeline:       "10 jours",
	}, got.RecommendedActions[1])
}

func TestParseActionsAllOrNothing(t *testing.T) {
	// First block is missing its priority label entirely; it must contribute
	// nothing while the complete block that follows still parses.
	text := "## RECOMMANDATIONS\n" +
		"**Section**: DV3\n" +
		"**Action Requise**: Obtenir le certificat\n" +
		"**Échéancier**: Immédiat\n" +
		"\n" +
		"**Section**: DV5\n" +
		"**Action Requise**: Fournir facture\n" +
		"**Priorité**: Haute\n" +
		"**Échéancier**: 10 jours\n"

	got := Parse(text)

	require.Len(t, got.RecommendedActions, 1)
	assert.Equal(t, "DV5", got.RecommendedActions[0].Section)
}

func TestParseActionsLooseTierFallback(t *testing.T) {
	// No bold markers and English labels: the strict tier finds nothing and
	// the loose tier takes over.
	text := "## RECOMMENDED ACTIONS\n" +
		"Section: DV2\n" +
		"Action Required: Provide the inspection invoice\n" +
		"Priority: High\n" +
		"Timeline: Immediate\n" +
		"\n" +
		"Section: DV7\n" +
		"Action Required: Attach annexe G\n" +
		"Priority: Low\n" +
		"Timeline: 30 days\n"

	got := Parse(text)

	require.Len(t, got.RecommendedActions, 2)
	assert.Equal(t, "DV2", got.RecommendedActions[0].Section)
	assert.Equal(t, "Provide the inspection invoice", got.RecommendedActions[0].ActionRequired)
	assert.Equal(t, "DV7", got.RecommendedActions[1].Section)
}

func TestParseActionTiersAreNeverMerged(t *testing.T) {
	// One strict block and one loose-only block: the strict tier matches, so
	// the loose-only block is ignored entirely.
	text := "## Actions Recommandées\n" +
		"**Section**: DV1\n" +
		"**Action Requise**: Signer le formulaire\n" +
		"**Priorité**: Haute\n" +
		"**Échéancier**: Immédiat\n" +
		"\n" +
		"Section: DV2\n" +
		"Action Required: Something else\n" +
		"Priority: Low\n" +
		"Timeline: Later\n"

	got := Parse(text)

	require.Len(t, got.RecommendedActions, 1)
	assert.Equal(t, "DV1", got.RecommendedActions[0].Section)
}

func TestParseWarningsLooseTier(t *testing.T) {
	text := "## WARNINGS\n" +
		"Risque Level: High\n" +
		"Issue: Missing D15 clarification\n" +
		"Potential Consequences: Form may be invalid\n" +
		"Mitigation: Complete section D15\n"

	got := Parse(text)

	require.Len(t, got.Warnings, 1)
	assert.Equal(t, Warning{
		RiskLevel:             "High",
		Issue:                 "Missing D15 clarification",
		PotentialConsequences: "Form may be invalid",
		Mitigation:            "Complete section D15",
	}, got.Warnings[0])
}

func TestParseWarningsPreserveOrder(t *testing.T) {
	text := "## Avertissements\n" +
		"**Niveau de Risque**: Critical\n" +
		"**Problème**: Premier\n" +
		"**Conséquences Potentielles**: A\n" +
		"**Atténuation**: X\n" +
		"\n" +
		"**Niveau de Risque**: Medium\n" +
		"**Problème**: Deuxième\n" +
		"**Conséquences Potentielles**: B\n" +
		"**Atténuation**: Y\n"

	got := Parse(text)

	require.Len(t, got.Warnings, 2)
	assert.Equal(t, "Premier", got.Warnings[0].Issue)
	assert.Equal(t, "Deuxième", got.Warnings[1].Issue)
}

func TestParseBuyersCascade(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    string
	}{
		{
			name:    "first pattern, capture after the linking verb",
			summary: "La signature des acheteurs Paul Martin et Anne Roy sont les signataires.",
			want:    "les signataires",
		},
		{
			name:    "second pattern, capture the name clause",
			summary: "La signature est celle des acheteurs Marc Gagnon.",
			want:    "Marc",
		},
		{
			name:    "third pattern, capture to end of line",
			summary: "Les acheteurs n'ont pas signé",
			want:    "n'ont pas signé",
		},
		{
			name:    "no buyer mention",
			summary: "Le formulaire est conforme dans l'ensemble.",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse("## Résumé de l'Analyse\n" + tt.summary + "\n")
			assert.Equal(t, tt.summary, got.Summary)
			assert.Equal(t, tt.want, got.Buyers)
		})
	}
}

func TestParseOverviewFieldsAreIndependent(t *testing.T) {
	// Score is missing its % suffix so it stays empty; the other fields
	// still extract.
	text := "## Document Overview\n" +
		"- **Vendor(s)**: John Smith\n" +
		"- **Date**: 2023-11-20\n" +
		"- **Property Type**: Duplex\n" +
		"- **Overall Score**: pending\n"

	got := Parse(text)

	assert.Equal(t, "John Smith", got.Vendor)
	assert.Equal(t, "2023-11-20", got.Date)
	assert.Equal(t, "Duplex", got.PropertyType)
	assert.Equal(t, "", got.OverallScore)
}

func TestParseScoreStripsPercent(t *testing.T) {
	got := Parse("## Aperçu du Document\n- **Score Global**: 95%\n")
	assert.Equal(t, "95", got.OverallScore)
}

func TestParseIsDeterministic(t *testing.T) {
	text := "## Aperçu du Document\n- **Vendeur(s)**: Jean Tremblay\n- **Score Global**: 82%\n" +
		"## Avertissements\n**Niveau de Risque**: High\n**Problème**: X\n**Conséquences Potentielles**: Y\n**Atténuation**: Z\n"

	assert.Equal(t, Parse(text), Parse(text))
}
