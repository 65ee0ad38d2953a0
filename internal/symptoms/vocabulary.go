// Package symptoms analyzes free-text symptom descriptions: keyword-based
// detection against a curated vocabulary, condition matching with
// proportional scoring, urgency classification with an emergency
// short-circuit, and advice generation.
//
// All vocabulary tables are immutable package-level data, loaded once.
// Matching is deterministic and requires no locking.
package symptoms

import "medassist/pkg/models"

// symptomEntry maps a symptom key to its synonym phrases. Detection tests
// each phrase as a case-insensitive substring of the input.
type symptomEntry struct {
	Key      string
	Synonyms []string
}

// symptomVocabulary is the closed symptom vocabulary. Entry order is the
// detection order; it is fixed.
var symptomVocabulary = []symptomEntry{
	// Respiratory
	{"cough", []string{"cough", "coughing", "tussis"}},
	{"shortness_of_breath", []string{"shortness of breath", "breathless", "dyspnea", "difficulty breathing", "cant breathe"}},
	{"sore_throat", []string{"sore throat", "throat pain", "pharyngitis"}},
	{"runny_nose", []string{"runny nose", "nasal discharge", "rhinorrhea"}},
	{"congestion", []string{"congestion", "stuffy nose", "blocked nose", "nasal obstruction"}},
	{"wheezing", []string{"wheezing", "wheeze", "whistling breath"}},

	// Pain
	{"headache", []string{"headache", "head pain", "migraine", "cephalalgia"}},
	{"chest_pain", []string{"chest pain", "chest discomfort", "angina"}},
	{"abdominal_pain", []string{"abdominal pain", "stomach pain", "belly pain", "tummy ache"}},
	{"back_pain", []string{"back pain", "backache", "spine pain"}},
	{"joint_pain", []string{"joint pain", "arthralgia", "knee pain", "elbow pain"}},
	{"muscle_pain", []string{"muscle pain", "myalgia", "muscle ache", "body ache"}},

	// General
	{"fever", []string{"fever", "high temperature", "pyrexia", "hot", "burning"}},
	{"fatigue", []string{"fatigue", "tired", "exhausted", "weakness", "lethargy"}},
	{"dizziness", []string{"dizzy", "dizziness", "lightheaded", "vertigo"}},
	{"nausea", []string{"nausea", "nauseous", "feel sick", "queasy"}},
	{"vomiting", []string{"vomiting", "vomit", "throwing up", "puking"}},
	{"diarrhea", []string{"diarrhea", "loose stools", "watery stools"}},
	{"constipation", []string{"constipation", "hard stools", "difficulty passing stools"}},

	// Skin
	{"rash", []string{"rash", "skin eruption", "hives", "skin redness"}},
	{"itching", []string{"itching", "itchy", "pruritus"}},
	{"swelling", []string{"swelling", "edema", "swollen", "inflammation"}},

	// Mental/Neurological
	{"confusion", []string{"confusion", "confused", "disoriented", "mental fog"}},
	{"anxiety", []string{"anxiety", "anxious", "nervous", "worried"}},
	{"insomnia", []string{"insomnia", "cant sleep", "sleepless", "difficulty sleeping"}},

	// Other
	{"loss_of_appetite", []string{"loss of appetite", "no appetite", "not hungry"}},
	{"weight_loss", []string{"weight loss", "losing weight", "sudden weight loss"}},
	{"night_sweats", []string{"night sweats", "sweating at night", "drenching sweats"}},
}

// condition is one entry of the condition database. Symptoms lists the
// keys that define the condition; the match score denominator is the size
// of this list.
type condition struct {
	Name        string
	Symptoms    []string
	Severity    models.Severity
	Description string
}

// conditionDatabase is the fixed condition set. Slice order provides the
// stable tie-break for equal match scores.
var conditionDatabase = []condition{
	{
		Name:        "Common Cold",
		Symptoms:    []string{"runny_nose", "congestion", "sore_throat", "cough", "fatigue"},
		Severity:    models.SeverityMild,
		Description: "A viral infection of the upper respiratory tract",
	},
	{
		Name:        "Flu (Influenza)",
		Symptoms:    []string{"fever", "cough", "fatigue", "muscle_pain", "headache", "sore_throat"},
		Severity:    models.SeverityModerate,
		Description: "A contagious respiratory illness caused by influenza viruses",
	},
	{
		Name:        "Gastroenteritis",
		Symptoms:    []string{"nausea", "vomiting", "diarrhea", "abdominal_pain", "fever"},
		Severity:    models.SeverityModerate,
		Description: "Inflammation of the stomach and intestines",
	},
	{
		Name:        "Migraine",
		Symptoms:    []string{"headache", "nausea", "dizziness", "sensitivity_to_light"},
		Severity:    models.SeverityModerate,
		Description: "A neurological condition that causes severe headaches",
	},
	{
		Name:        "Anxiety Disorder",
		Symptoms:    []string{"anxiety", "fatigue", "insomnia", "muscle_pain", "headache"},
		Severity:    models.SeverityModerate,
		Description: "A mental health disorder characterized by excessive worry",
	},
	{
		Name:        "Dehydration",
		Symptoms:    []string{"dizziness", "fatigue", "headache", "dry_mouth"},
		Severity:    models.SeverityModerate,
		Description: "Insufficient fluid intake or excessive fluid loss",
	},
}

// emergencySymptoms require immediate medical attention. Any intersection
// with the detected set forces the emergency path.
var emergencySymptoms = map[string]bool{
	"chest_pain":            true,
	"shortness_of_breath":   true,
	"severe_headache":       true,
	"confusion":             true,
	"loss_of_consciousness": true,
	"severe_bleeding":       true,
	"severe_abdominal_pain": true,
}
