// Package report parses the model's free-form analysis text into a
// structured record. The input is untrusted and loosely formatted, so every
// extraction degrades to an empty value instead of failing.
package report

// Action is one recommended remediation step. All four fields must be
// present in the source block for the action to be kept.
type Action struct {
	Section        string `json:"section"`
	ActionRequired string `json:"action_required"`
	Priority       string `json:"priority"`
	Timeline       string `json:"timeline"`
}

// Warning is one critical finding. Same all-or-nothing rule as Action.
type Warning struct {
	RiskLevel             string `json:"risk_level"`
	Issue                 string `json:"issue"`
	PotentialConsequences string `json:"potential_consequences"`
	Mitigation            string `json:"mitigation"`
}

// Report is the structured form of the specialized analysis. Every field is
// always present; unmatched sections yield empty strings or empty slices.
type Report struct {
	Summary            string    `json:"summary"`
	RecommendedActions []Action  `json:"recommended_actions"`
	Warnings           []Warning `json:"warnings"`
	Vendor             string    `json:"vendor"`
	Buyers             string    `json:"buyers"`
	Date               string    `json:"date"`
	PropertyType       string    `json:"property_type"`
	OverallScore       string    `json:"overall_score"`
}

// NewReport returns a zero-value report with slices initialized so JSON
// output renders [] rather than null.
func NewReport() Report {
	return Report{
		RecommendedActions: []Action{},
		Warnings:           []Warning{},
	}
}
