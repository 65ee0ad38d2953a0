package symptoms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medassist/pkg/models"
)

func TestHomeCareAdviceGeneralOnly(t *testing.T) {
	advice := HomeCareAdvice([]string{"back_pain"})

	assert.Contains(t, advice, "**General Care:**")
	assert.Contains(t, advice, "Get plenty of rest")
	assert.NotContains(t, advice, "For Fever:")
	assert.NotContains(t, advice, "For Headache:")
}

func TestHomeCareAdviceTriggeredBlocks(t *testing.T) {
	tests := []struct {
		name        string
		detected    []string
		wantBlocks  []string
		wantBullets []string
	}{
		{
			name:        "fever",
			detected:    []string{"fever"},
			wantBlocks:  []string{"For Fever:"},
			wantBullets: []string{"Take paracetamol/acetaminophen as directed"},
		},
		{
			name:        "sore throat triggers the cough block",
			detected:    []string{"sore_throat"},
			wantBlocks:  []string{"For Cough/Sore Throat:"},
			wantBullets: []string{"Gargle with salt water"},
		},
		{
			name:        "nausea and diarrhea",
			detected:    []string{"diarrhea", "nausea"},
			wantBlocks:  []string{"For Nausea/Vomiting:", "For Diarrhea:"},
			wantBullets: []string{"Try ginger tea or peppermint", "Drink oral rehydration solution (ORS)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := HomeCareAdvice(tt.detected)

			assert.Contains(t, advice, "**General Care:**")
			for _, block := range tt.wantBlocks {
				assert.Contains(t, advice, block)
			}
			for _, bullet := range tt.wantBullets {
				assert.Contains(t, advice, bullet)
			}
		})
	}
}

func TestHomeCareAdviceBlockOrder(t *testing.T) {
	// Blocks render in fixed priority order, not detection order.
	advice := HomeCareAdvice([]string{"diarrhea", "headache", "fever"})

	feverIdx := strings.Index(advice, "For Fever:")
	headacheIdx := strings.Index(advice, "For Headache:")
	diarrheaIdx := strings.Index(advice, "For Diarrhea:")

	require.NotEqual(t, -1, feverIdx)
	require.NotEqual(t, -1, headacheIdx)
	require.NotEqual(t, -1, diarrheaIdx)
	assert.Less(t, feverIdx, headacheIdx)
	assert.Less(t, headacheIdx, diarrheaIdx)
}

func TestDoctorAdvice(t *testing.T) {
	tests := []struct {
		name    string
		urgency models.Urgency
		want    string
	}{
		{"emergency", models.UrgencyEmergency, "**SEEK IMMEDIATE MEDICAL ATTENTION**"},
		{"urgent", models.UrgencyUrgent, "**See a Doctor Soon (Within 24-48 Hours)**"},
		{"routine", models.UrgencyRoutine, "**Routine Consultation Recommended**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := DoctorAdvice(tt.urgency)
			assert.True(t, strings.HasPrefix(advice, tt.want), "advice should open with the urgency heading")
		})
	}
}
