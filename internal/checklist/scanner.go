package checklist

import (
	"fmt"
	"strings"
)

// Status is the conformity classification for one clause.
type Status string

const (
	StatusConforming    Status = "✅ Conforme"
	StatusPartial       Status = "🟡 Partiellement conforme"
	StatusNonConforming Status = "🔴 Non conforme"
)

// Missing phrases that mention a report imply required documentation was not
// attached, which escalates the clause past partial conformity.
const nonConformingTrigger = "rapport"

// Result is the scan outcome for one checklist row.
type Result struct {
	ClauseID      string   `json:"clause_id"`
	ClauseName    string   `json:"clause_name"`
	Status        Status   `json:"status"`
	MissingPoints []string `json:"missing_points"`
}

// Scan checks every validation phrase of every row against the extracted
// document text. A phrase is satisfied when it appears as a substring of the
// text. Status only ever degrades within a row: Conforming to Partial on any
// missing phrase, Partial to NonConforming when a missing phrase contains the
// trigger word.
func Scan(text string, rows []Row) []Result {
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		result := Result{
			ClauseID:      row.Code,
			ClauseName:    row.ClauseName,
			Status:        StatusConforming,
			MissingPoints: []string{},
		}

		for _, point := range strings.Split(row.ValidationText, "-") {
			point = strings.ToLower(strings.TrimSpace(point))
			if point == "" {
				continue
			}
			if !strings.Contains(text, point) {
				result.Status = StatusPartial
				result.MissingPoints = append(result.MissingPoints, point)
			}
		}

		for _, missing := range result.MissingPoints {
			if strings.Contains(missing, nonConformingTrigger) {
				result.Status = StatusNonConforming
				break
			}
		}

		results = append(results, result)
	}
	return results
}

// RenderFindings formats scan results as the markdown-ish block list fed to
// the standard narrative prompt.
func RenderFindings(results []Result) string {
	var sb strings.Builder
	for _, r := range results {
		missing := "None"
		if len(r.MissingPoints) > 0 {
			missing = strings.Join(r.MissingPoints, ", ")
		}
		fmt.Fprintf(&sb, "### %s - %s\nStatus: %s\nMissing: %s\n", r.ClauseID, r.ClauseName, r.Status, missing)
	}
	return sb.String()
}
