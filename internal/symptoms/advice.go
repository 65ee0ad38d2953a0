package symptoms

import (
	"strings"

	"medassist/pkg/models"
)

// adviceBlock is one symptom-triggered home-care section. Trigger lists
// the symptom keys that activate the block; any match activates it.
type adviceBlock struct {
	Trigger []string
	Heading string
	Bullets []string
}

// homeCareBlocks are appended after the general-care bullets, in this
// fixed priority order, regardless of detection order.
var homeCareBlocks = []adviceBlock{
	{
		Trigger: []string{"fever"},
		Heading: "For Fever:",
		Bullets: []string{
			"Take paracetamol/acetaminophen as directed",
			"Use cool compresses on forehead",
			"Wear light clothing",
		},
	},
	{
		Trigger: []string{"cough", "sore_throat"},
		Heading: "For Cough/Sore Throat:",
		Bullets: []string{
			"Drink warm liquids (tea, soup)",
			"Use honey and lemon",
			"Gargle with salt water",
		},
	},
	{
		Trigger: []string{"headache"},
		Heading: "For Headache:",
		Bullets: []string{
			"Rest in a quiet, dark room",
			"Apply cold compress to forehead",
			"Avoid screen time",
		},
	},
	{
		Trigger: []string{"nausea", "vomiting"},
		Heading: "For Nausea/Vomiting:",
		Bullets: []string{
			"Eat small, frequent meals",
			"Try ginger tea or peppermint",
			"Avoid spicy and fatty foods",
		},
	},
	{
		Trigger: []string{"diarrhea"},
		Heading: "For Diarrhea:",
		Bullets: []string{
			"Drink oral rehydration solution (ORS)",
			"Eat BRAT diet (Banana, Rice, Applesauce, Toast)",
			"Avoid dairy and caffeine",
		},
	},
}

var generalCareBullets = []string{
	"Get plenty of rest",
	"Stay hydrated - drink water regularly",
	"Eat nutritious, light meals",
}

// HomeCareAdvice renders home-care guidance for the detected symptom set:
// the fixed general-care bullets followed by the triggered symptom blocks
// in priority order.
func HomeCareAdvice(detected []string) string {
	detectedSet := make(map[string]bool, len(detected))
	for _, key := range detected {
		detectedSet[key] = true
	}

	var b strings.Builder
	b.WriteString("**General Care:**\n")
	for _, bullet := range generalCareBullets {
		b.WriteString("- " + bullet + "\n")
	}

	for _, block := range homeCareBlocks {
		triggered := false
		for _, key := range block.Trigger {
			if detectedSet[key] {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}
		b.WriteString("\n**" + block.Heading + "**\n")
		for _, bullet := range block.Bullets {
			b.WriteString("- " + bullet + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// DoctorAdvice returns the consultation guidance template for the given
// urgency level. Exactly three templates exist; the symptom set never
// changes which one is chosen.
func DoctorAdvice(urgency models.Urgency) string {
	switch urgency {
	case models.UrgencyEmergency:
		return strings.TrimSpace(`
**SEEK IMMEDIATE MEDICAL ATTENTION**
- Go to the emergency room or call emergency services immediately
- Do not wait or try home remedies
- This could be a medical emergency requiring urgent care`)

	case models.UrgencyUrgent:
		return strings.TrimSpace(`
**See a Doctor Soon (Within 24-48 Hours)**

You should consult a healthcare provider if:
- Symptoms worsen or don't improve in 2-3 days
- You develop new concerning symptoms
- You have difficulty performing daily activities
- You have underlying health conditions

**See a doctor immediately if you experience:**
- High fever (>103F/39.4C) that doesn't respond to medication
- Severe pain
- Difficulty breathing
- Persistent vomiting or diarrhea leading to dehydration
- Confusion or altered consciousness`)

	default:
		return strings.TrimSpace(`
**Routine Consultation Recommended**

Consider seeing a doctor if:
- Symptoms persist for more than 5-7 days
- Symptoms gradually worsen
- Home remedies don't provide relief
- You have concerns about your symptoms
- You want professional medical advice

**Seek immediate care if:**
- You develop severe symptoms
- You have trouble breathing
- You experience chest pain
- You become confused or disoriented`)
	}
}
