package symptoms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "cough and sore throat via synonyms",
			text: "I have a bad cough and sore throat for 3 days",
			want: []string{"cough", "sore_throat"},
		},
		{
			name: "emergency phrasing",
			text: "crushing chest pain and shortness of breath",
			want: []string{"shortness_of_breath", "chest_pain"},
		},
		{
			name: "case insensitive",
			text: "FEVER and Headache",
			want: []string{"headache", "fever"},
		},
		{
			name: "synonym maps to canonical key",
			text: "feeling feverish with head pain",
			want: []string{"headache", "fever"},
		},
		{
			name: "repeated mentions yield one key",
			text: "cough cough coughing all night",
			want: []string{"cough"},
		},
		{
			name: "no known symptoms",
			text: "I feel absolutely fine today",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestDetectVocabularyOrder(t *testing.T) {
	// Keys come back in vocabulary order regardless of mention order.
	got := Detect("headache first, then fever, then a cough")
	assert.Equal(t, []string{"cough", "headache", "fever"}, got)
}

func TestFormatSymptomName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"sore_throat", "Sore Throat"},
		{"fever", "Fever"},
		{"shortness_of_breath", "Shortness Of Breath"},
		{"loss_of_consciousness", "Loss Of Consciousness"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSymptomName(tt.key))
	}
}
