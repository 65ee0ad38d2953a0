package symptoms

import "strings"

// Detect returns the symptom keys whose synonym phrases occur in the
// text. Matching is plain case-insensitive substring containment, no
// stemming or tokenization; the first matching synonym records the key
// and the remaining synonyms for that key are skipped. Keys are returned
// in vocabulary order, each at most once.
func Detect(text string) []string {
	lower := strings.ToLower(text)
	var detected []string

	for _, entry := range symptomVocabulary {
		for _, synonym := range entry.Synonyms {
			if strings.Contains(lower, synonym) {
				detected = append(detected, entry.Key)
				break
			}
		}
	}

	return detected
}

// FormatSymptomName converts a symptom key to a display name, e.g.
// "sore_throat" -> "Sore Throat".
func FormatSymptomName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
