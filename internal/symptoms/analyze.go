package symptoms

import (
	"math"
	"sort"

	"medassist/pkg/models"
)

const topConditions = 3

// AnalyzeOptions carries optional patient context accepted with a symptom
// analysis request. Age and gender are reserved for future scoring and
// currently do not influence the result.
type AnalyzeOptions struct {
	Age    int
	Gender string
}

// Analyze scores the detected symptom set against the condition database
// and derives the triage urgency.
//
// If any detected symptom is in the emergency set, the database is
// skipped entirely: the result is a single "Medical Emergency" condition
// with confidence forced to 1.0 and urgency forced to emergency.
// Otherwise each condition scores the fraction of its own symptom profile
// covered by the detected set; zero-overlap conditions are excluded, the
// rest are sorted by descending score (database order breaking ties) and
// capped at the top three.
func Analyze(detected []string, opts AnalyzeOptions) models.AnalysisResult {
	_ = opts // reserved

	if len(detected) == 0 {
		return NoSymptomsResult()
	}

	for _, key := range detected {
		if emergencySymptoms[key] {
			return models.AnalysisResult{
				Conditions: []models.ConditionMatch{{
					Name:        "Medical Emergency",
					MatchScore:  1.0,
					Description: "One or more reported symptoms require immediate medical attention",
					Severity:    models.SeveritySevere,
				}},
				ConfidenceScore: 1.0,
				Urgency:         models.UrgencyEmergency,
				Message:         "EMERGENCY: Please seek immediate medical attention!",
			}
		}
	}

	detectedSet := make(map[string]bool, len(detected))
	for _, key := range detected {
		detectedSet[key] = true
	}

	var matches []models.ConditionMatch
	for _, cond := range conditionDatabase {
		overlap := 0
		for _, key := range cond.Symptoms {
			if detectedSet[key] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		matches = append(matches, models.ConditionMatch{
			Name:        cond.Name,
			MatchScore:  float64(overlap) / float64(len(cond.Symptoms)),
			Description: cond.Description,
			Severity:    cond.Severity,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	urgency := determineUrgency(len(detected), matches)

	confidence := 0.0
	if len(matches) > 0 {
		confidence = math.Round(matches[0].MatchScore*100) / 100
	}

	if len(matches) > topConditions {
		matches = matches[:topConditions]
	}

	return models.AnalysisResult{
		Conditions:      matches,
		ConfidenceScore: confidence,
		Urgency:         urgency,
		Message:         "Analysis completed",
	}
}

// NoSymptomsResult is the fixed result for an empty detected set. The
// condition database is never consulted for it.
func NoSymptomsResult() models.AnalysisResult {
	return models.AnalysisResult{
		Conditions:      nil,
		ConfidenceScore: 0.0,
		Urgency:         models.UrgencyRoutine,
		Message:         "No specific symptoms detected. Please describe your symptoms in more detail.",
	}
}

// determineUrgency applies the non-emergency triage rule: any severe
// condition match is urgent; a moderate match combined with four or more
// detected symptoms is urgent; everything else is routine.
func determineUrgency(symptomCount int, matches []models.ConditionMatch) models.Urgency {
	hasModerate := false
	for _, m := range matches {
		if m.Severity == models.SeveritySevere {
			return models.UrgencyUrgent
		}
		if m.Severity == models.SeverityModerate {
			hasModerate = true
		}
	}
	if hasModerate && symptomCount >= 4 {
		return models.UrgencyUrgent
	}
	return models.UrgencyRoutine
}
