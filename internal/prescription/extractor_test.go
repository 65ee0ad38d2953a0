package prescription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medassist/pkg/models"
)

func TestParseMedicinesPrefixWithSchedule(t *testing.T) {
	text := "Tab. Augmentin 625mg\n1 - 0 - 1  x 5days"

	extraction := ParseMedicines(text)

	require.True(t, extraction.Detected())
	require.Len(t, extraction.Medicines, 1)

	med := extraction.Medicines[0]
	assert.Equal(t, "Augmentin", med.Name)
	assert.Equal(t, "625mg", med.Dosage)
	assert.Contains(t, med.Instructions, "1 - 0 - 1 (Morning-Afternoon-Night)")
	assert.Contains(t, med.Instructions, "x 5days")
	assert.Equal(t, models.ConfidenceHigh, med.Confidence)
	assert.True(t, med.RequiresVerification)
}

func TestParseMedicinesSingleLine(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantName         string
		wantDosage       string
		wantConfidence   models.ConfidenceTier
		wantInstructions []string
	}{
		{
			name:           "prefix, dosage, schedule, duration and timing on one line",
			text:           "Cap. Omeprazole 20mg 1-0-0 before breakfast x 7 days",
			wantName:       "Omeprazole",
			wantDosage:     "20mg",
			wantConfidence: models.ConfidenceHigh,
			wantInstructions: []string{
				"1-0-0 (Morning-Afternoon-Night)",
				"x 7 days",
				"before breakfast",
			},
		},
		{
			name:           "numbered line without form prefix",
			text:           "1. Paracetamol 500mg",
			wantName:       "Paracetamol",
			wantDosage:     "500mg",
			wantConfidence: models.ConfidenceMedium,
		},
		{
			name:           "prefix without dosage",
			text:           "Syrup Benadryl",
			wantName:       "Benadryl",
			wantDosage:     "Not specified",
			wantConfidence: models.ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extraction := ParseMedicines(tt.text)

			require.True(t, extraction.Detected())
			require.Len(t, extraction.Medicines, 1)

			med := extraction.Medicines[0]
			assert.Equal(t, tt.wantName, med.Name)
			assert.Equal(t, tt.wantDosage, med.Dosage)
			assert.Equal(t, tt.wantConfidence, med.Confidence)
			assert.True(t, med.RequiresVerification)
			for _, part := range tt.wantInstructions {
				assert.Contains(t, med.Instructions, part)
			}
		})
	}
}

func TestParseMedicinesSentinel(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no medicine content", "Take rest and drink plenty of fluids"},
		{"empty input", ""},
		{"only short lines", "ok\nhi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extraction := ParseMedicines(tt.text)

			assert.False(t, extraction.Detected())
			assert.Empty(t, extraction.Medicines)
			require.NotNil(t, extraction.Notice)
			assert.Equal(t, "No medicines detected automatically.", extraction.Notice.Message)
			assert.Equal(t, "Please review the extracted text manually and consult your doctor or pharmacist.", extraction.Notice.Recommendation)
			assert.True(t, extraction.Notice.RequiresVerification)
		})
	}
}

func TestParseMedicinesSkipsHeaderLines(t *testing.T) {
	text := "Dr. Smith Clinic\nCity Hospital\nPhone: 555-0100\nTab. Crocin 650mg"

	extraction := ParseMedicines(text)

	require.Len(t, extraction.Medicines, 1)
	assert.Equal(t, "Crocin", extraction.Medicines[0].Name)
}

func TestParseMedicinesDeduplicatesByName(t *testing.T) {
	text := "Tab. Amoxicillin 500mg\nTab. amoxicillin 500mg 1-0-1"

	extraction := ParseMedicines(text)

	// First occurrence wins regardless of the later line's extra signals.
	require.Len(t, extraction.Medicines, 1)
	assert.Equal(t, "Amoxicillin", extraction.Medicines[0].Name)
	assert.Equal(t, models.ConfidenceMedium, extraction.Medicines[0].Confidence)
}

func TestParseMedicinesScheduleLineWithoutMedicine(t *testing.T) {
	// A bare schedule line with nothing to attach to is not a medicine.
	// This also makes reparsing a rendered instructions string harmless.
	extraction := ParseMedicines("1 - 0 - 1 (Morning-Afternoon-Night), x 5days")

	assert.False(t, extraction.Detected())
	assert.NotNil(t, extraction.Notice)
}
