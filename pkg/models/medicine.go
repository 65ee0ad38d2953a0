package models

// ConfidenceTier is the coarse detection-quality label for an extracted
// medicine. It is a label, not a probability.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)

type Medicine struct {
	// Name is the detected medicine name (e.g. "Augmentin").
	Name string `json:"medicine_name"`

	// Dosage is the detected dosage token (e.g. "625mg"), or
	// "Not specified" when no dosage was found on the line.
	Dosage string `json:"dosage"`

	// Instructions holds frequency/duration/timing tokens joined together,
	// or the full original line when none of them were found.
	Instructions string `json:"instructions"`

	// Confidence reflects how many independent signals supported the
	// detection: high = name + dosage + frequency, medium = name plus one
	// of the two, low otherwise.
	Confidence ConfidenceTier `json:"confidence"`

	// RequiresVerification is always true. Extracted medicine data must
	// never be presented as verified, regardless of confidence.
	RequiresVerification bool `json:"requires_verification"`
}

// DetectionNotice is the sentinel returned when the extractor found no
// medicines at all. It is a distinct shape from Medicine so callers cannot
// mistake "nothing detected" for a detected record.
type DetectionNotice struct {
	Message              string `json:"message"`
	Recommendation       string `json:"recommendation"`
	RequiresVerification bool   `json:"requires_verification"`
}
