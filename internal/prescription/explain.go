package prescription

import (
	"fmt"
	"strings"

	"medassist/pkg/models"
)

var tierMarkers = map[models.ConfidenceTier]string{
	models.ConfidenceHigh:   "[OK]",
	models.ConfidenceMedium: "[?]",
	models.ConfidenceLow:    "[!!]",
}

// Explain renders an extraction into a human-readable explanation. It is
// purely a formatting step: the safety notice and required-actions
// checklist always open the text, the sentinel case gets a troubleshooting
// section instead of medicine details, and low-confidence medicines carry
// an explicit must-verify callout.
func Explain(extraction Extraction) string {
	var b strings.Builder

	b.WriteString("**CRITICAL MEDICAL SAFETY NOTICE**\n\n")
	b.WriteString("This is an automated text extraction tool ONLY. It is NOT a substitute for professional medical advice.\n\n")
	b.WriteString("**REQUIRED ACTIONS:**\n")
	b.WriteString("- ALWAYS verify all information with your original prescription\n")
	b.WriteString("- NEVER rely solely on this extraction for dosage or timing\n")
	b.WriteString("- Consult your doctor or pharmacist if anything is unclear\n")
	b.WriteString("- Double-check ALL medicine names and dosages before taking\n\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if !extraction.Detected() {
		b.WriteString("**Automatic Detection Failed**\n\n")
		b.WriteString("We couldn't automatically detect specific medicines from your prescription.\n")
		b.WriteString("This could be due to:\n")
		b.WriteString("- Poor image quality or lighting\n")
		b.WriteString("- Handwritten prescription (harder to read)\n")
		b.WriteString("- Image is blurry or at an angle\n\n")
		b.WriteString("**What to do:**\n")
		b.WriteString("1. Review the extracted text carefully\n")
		b.WriteString("2. Compare it with your original prescription\n")
		b.WriteString("3. If text is unclear, take a clearer photo and upload again\n")
		b.WriteString("4. Contact your pharmacist for clarification\n\n")
		return b.String()
	}

	b.WriteString("**Detected Information (REQUIRES VERIFICATION):**\n\n")
	fmt.Fprintf(&b, "Found %d medicine(s) - Each MUST be verified:\n\n", len(extraction.Medicines))

	for i, med := range extraction.Medicines {
		name := med.Name
		if name == "" {
			name = "Unknown"
		}
		dosage := med.Dosage
		if dosage == "" {
			dosage = "Not detected"
		}
		instructions := med.Instructions
		if instructions == "" {
			instructions = "See original prescription"
		}

		fmt.Fprintf(&b, "%d. %s **%s**\n", i+1, tierMarkers[med.Confidence], name)
		fmt.Fprintf(&b, "   - Dosage: %s\n", dosage)
		fmt.Fprintf(&b, "   - Instructions: %s\n", instructions)
		fmt.Fprintf(&b, "   - Detection Confidence: %s\n", strings.ToUpper(string(med.Confidence)))
		if med.Confidence == models.ConfidenceLow {
			b.WriteString("   - **LOW CONFIDENCE - MUST VERIFY WITH ORIGINAL**\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n**CRITICAL SAFETY REMINDERS:**\n")
	b.WriteString("- Take medicines EXACTLY as prescribed by your doctor\n")
	b.WriteString("- Complete the FULL course - don't stop early\n")
	b.WriteString("- Take at the CORRECT times (morning/evening as prescribed)\n")
	b.WriteString("- Report ANY side effects to your doctor immediately\n")
	b.WriteString("- Store medicines away from children and pets\n")
	b.WriteString("- Check expiry dates before taking\n")
	b.WriteString("- Don't share medicines with others\n\n")

	b.WriteString("**When to Contact Doctor:**\n")
	b.WriteString("- Severe side effects or allergic reactions\n")
	b.WriteString("- Symptoms worsen or don't improve\n")
	b.WriteString("- Questions about dosage or timing\n")
	b.WriteString("- Any concerns about the medication\n\n")

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("**Remember**: Your health is important. When in doubt, always consult a healthcare professional!\n")

	return b.String()
}
