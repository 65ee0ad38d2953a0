// Package prescription extracts structured medicine information from
// normalized prescription text and renders it into a safety-annotated
// explanation.
//
// Extraction is deliberately rule-based: a small set of pattern families
// (medicine-form prefixes, dosage tokens, N-N-N frequency schedules,
// durations, meal timing) scanned line by line. Every extracted record is
// flagged as requiring manual verification, unconditionally.
package prescription

import (
	"regexp"
	"strings"

	"medassist/pkg/models"
)

// Extraction is the result of a medicine scan. Exactly one of Medicines
// and Notice is populated: Notice is the sentinel for "text parsed fine
// but nothing was detected", which callers must not treat as a medicine.
type Extraction struct {
	Medicines []models.Medicine       `json:"medicines,omitempty"`
	Notice    *models.DetectionNotice `json:"notice,omitempty"`
}

// Detected reports whether the scan found at least one medicine.
func (e Extraction) Detected() bool {
	return e.Notice == nil && len(e.Medicines) > 0
}

// Pattern families. These are the domain rules; match semantics
// (case-insensitivity, first-match ordering) are load-bearing for
// extraction quality.
var (
	// number + unit ("625mg", "5 ml", "2 tablets")
	dosagePattern = regexp.MustCompile(`(?i)\b(\d+\.?\d*)\s*(mg|ml|mcg|g|gm|tablet|capsule|cap|tab|syrup|suspension)s?\b`)

	// medicine-form prefix, optionally abbreviated ("Tab.", "Syrup", "Inj")
	prefixPattern = regexp.MustCompile(`(?i)(tab\.?|tablet|cap\.?|capsule|syp\.?|syrup|inj\.?|injection|susp\.?|suspension|drops?|ointment|cream|lotion)`)

	// thrice-daily schedule written as three dash-separated counts ("1-0-1")
	frequencyPattern = regexp.MustCompile(`\d+\s*[-–—]\s*\d+\s*[-–—]\s*\d+`)

	// course duration ("x 5days", "for 7 days")
	durationPattern = regexp.MustCompile(`(?i)x\s*\d+\s*days?|for\s*\d+\s*days?|x\s*\d+\s*weeks?|\d+\s*days?`)

	// meal timing ("after meals", "before food")
	timingPattern = regexp.MustCompile(`(?i)(before|after)\s*(meals?|food|breakfast|lunch|dinner)`)

	// leading bullet/number markers stripped from names
	bulletPrefix = regexp.MustCompile(`^[0-9.)\-*•]+\s*`)
)

// headerMarkers identify prescription header and metadata lines that must
// never be parsed as medicines.
var headerMarkers = []string{
	"dr.", "doctor", "prescription", "clinic", "hospital", "phone", "email", "web",
}

const dosageNotSpecified = "Not specified"

// scanRecord tracks which signals supported a medicine during the scan so
// the confidence tier can be settled after continuation lines are folded in.
type scanRecord struct {
	med                  models.Medicine
	hasDosage            bool
	hasFrequency         bool
	fallbackInstructions bool
}

// ParseMedicines scans normalized prescription text line by line and
// returns the detected medicines, deduplicated by case-insensitive name
// with the first occurrence winning. A schedule-only line ("1-0-1 x 5
// days") that follows a medicine line is folded into that medicine's
// instructions. If nothing is detected, the result carries the sentinel
// notice instead.
func ParseMedicines(text string) Extraction {
	var records []*scanRecord

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if len(line) < 3 {
			continue
		}
		if isHeaderLine(line) {
			continue
		}

		prefixLoc := prefixPattern.FindStringIndex(line)
		dosageLoc := dosagePattern.FindStringIndex(line)
		frequency := frequencyPattern.FindString(line)

		if prefixLoc == nil && dosageLoc == nil && frequency == "" {
			continue
		}

		name, dosage := extractNameAndDosage(line, prefixLoc, dosageLoc)
		parts := instructionParts(line, frequency)

		if name == "" {
			// A line carrying only schedule information continues the
			// previous medicine's instructions.
			if prefixLoc == nil && dosageLoc == nil && len(records) > 0 && len(parts) > 0 {
				foldContinuation(records[len(records)-1], parts, frequency != "")
			}
			continue
		}

		rec := &scanRecord{
			med: models.Medicine{
				Name:                 name,
				Dosage:               dosage,
				Instructions:         strings.Join(parts, ", "),
				RequiresVerification: true,
			},
			hasDosage:    dosageLoc != nil,
			hasFrequency: frequency != "",
		}
		if len(parts) == 0 {
			rec.med.Instructions = line
			rec.fallbackInstructions = true
		}
		records = append(records, rec)
	}

	medicines := finalize(records)
	if len(medicines) == 0 {
		return Extraction{
			Notice: &models.DetectionNotice{
				Message:              "No medicines detected automatically.",
				Recommendation:       "Please review the extracted text manually and consult your doctor or pharmacist.",
				RequiresVerification: true,
			},
		}
	}

	return Extraction{Medicines: medicines}
}

func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range headerMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// extractNameAndDosage derives the medicine name and dosage token from a
// line. With a form prefix, the name is the text between the prefix and
// the dosage; without one, the text before the dosage with bullet markers
// stripped. A line with neither signal yields no name.
func extractNameAndDosage(line string, prefixLoc, dosageLoc []int) (string, string) {
	dosage := dosageNotSpecified

	switch {
	case prefixLoc != nil:
		remaining := strings.TrimSpace(line[prefixLoc[1]:])
		if dosageLoc != nil {
			if loc := dosagePattern.FindStringIndex(remaining); loc != nil {
				return strings.TrimSpace(remaining[:loc[0]]), remaining[loc[0]:loc[1]]
			}
			// Dosage sits before the prefix; fall back to the first word.
			dosage = line[dosageLoc[0]:dosageLoc[1]]
			if words := strings.Fields(remaining); len(words) > 0 {
				return words[0], dosage
			}
			return "", dosage
		}
		words := strings.Fields(remaining)
		if len(words) > 3 {
			words = words[:3]
		}
		return strings.Join(words, " "), dosage

	case dosageLoc != nil:
		name := strings.TrimSpace(line[:dosageLoc[0]])
		name = strings.TrimSpace(bulletPrefix.ReplaceAllString(name, ""))
		return name, line[dosageLoc[0]:dosageLoc[1]]
	}

	return "", dosage
}

// instructionParts collects the frequency, duration, and meal-timing
// tokens found on the line, in that order.
func instructionParts(line, frequency string) []string {
	var parts []string
	if frequency != "" {
		parts = append(parts, frequency+" (Morning-Afternoon-Night)")
	}
	if duration := durationPattern.FindString(line); duration != "" {
		parts = append(parts, duration)
	}
	if timing := timingPattern.FindString(line); timing != "" {
		parts = append(parts, timing)
	}
	return parts
}

// foldContinuation merges a schedule-only line into the preceding
// medicine record.
func foldContinuation(rec *scanRecord, parts []string, hasFrequency bool) {
	joined := strings.Join(parts, ", ")
	if rec.fallbackInstructions || rec.med.Instructions == "" {
		rec.med.Instructions = joined
		rec.fallbackInstructions = false
	} else {
		rec.med.Instructions += ", " + joined
	}
	if hasFrequency {
		rec.hasFrequency = true
	}
}

// finalize settles confidence tiers and deduplicates by case-insensitive
// name, keeping the first occurrence and dropping empty names.
func finalize(records []*scanRecord) []models.Medicine {
	seen := make(map[string]bool, len(records))
	medicines := make([]models.Medicine, 0, len(records))

	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.med.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		switch {
		case rec.hasDosage && rec.hasFrequency:
			rec.med.Confidence = models.ConfidenceHigh
		case rec.hasDosage || rec.hasFrequency:
			rec.med.Confidence = models.ConfidenceMedium
		default:
			rec.med.Confidence = models.ConfidenceLow
		}

		medicines = append(medicines, rec.med)
	}

	return medicines
}
