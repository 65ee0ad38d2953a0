package models

// Severity classifies how serious a condition in the database is.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Urgency is the triage classification driving advice-template selection.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// ConditionMatch is one scored candidate condition. MatchScore is the
// fraction of the condition's own symptom set covered by the detected
// symptoms (0.0-1.0). It is computed once and never recomputed.
type ConditionMatch struct {
	Name        string   `json:"condition"`
	MatchScore  float64  `json:"match_score"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// AnalysisResult is the outcome of matching detected symptoms against the
// condition database.
type AnalysisResult struct {
	// Conditions holds the top matches sorted by descending MatchScore
	// (at most three). When an emergency symptom was detected it collapses
	// to a single "Medical Emergency" entry.
	Conditions []ConditionMatch `json:"possible_conditions"`

	// ConfidenceScore is the MatchScore of the top-ranked condition,
	// rounded to two decimals, or 0.0 if nothing matched. Forced to 1.0
	// on the emergency path.
	ConfidenceScore float64 `json:"confidence_score"`

	// Urgency is the derived triage level.
	Urgency Urgency `json:"urgency_level"`

	// Message is a short human-readable status for the analysis.
	Message string `json:"message"`
}
