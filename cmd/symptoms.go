package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"medassist/internal/logger"
	"medassist/internal/symptoms"
	"medassist/pkg/models"
)

var symptomsCmd = &cobra.Command{
	Use:   "symptoms [description]",
	Short: "Analyze a symptom description and get triage guidance",
	Long: `Detect known symptoms in a free-text description, match them against the
condition database, classify the urgency level, and generate home-care and
doctor-consultation advice.

Age and gender are accepted for record keeping but do not currently affect
the analysis.

This is an informational tool only. It does not replace professional
medical advice; always consult a healthcare provider for serious concerns.`,
	Example: `  # Analyze a symptom description
  medassist symptoms "I have a bad cough and sore throat for 3 days"

  # Include patient context and output JSON
  medassist symptoms "fever and headache" --age 34 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSymptoms,
}

// symptomsOutput is the JSON output structure when --json is used.
type symptomsOutput struct {
	SymptomsText     string                `json:"symptoms_text"`
	DetectedSymptoms []string              `json:"detected_symptoms"`
	Analysis         models.AnalysisResult `json:"analysis"`
	HomeCareAdvice   string                `json:"home_care_advice"`
	WhenToSeeDoctor  string                `json:"when_to_see_doctor"`
	Disclaimer       string                `json:"disclaimer"`
}

const symptomsDisclaimer = "This is for informational purposes only. Please consult a healthcare professional for medical advice."

func init() {
	rootCmd.AddCommand(symptomsCmd)

	symptomsCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	symptomsCmd.Flags().Bool("json", false, "Output as JSON")
	symptomsCmd.Flags().Int("age", 0, "Patient age (reserved, not used in scoring)")
	symptomsCmd.Flags().String("gender", "", "Patient gender (reserved, not used in scoring)")
}

func runSymptoms(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("symptoms-cmd")

	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	age, _ := cmd.Flags().GetInt("age")
	gender, _ := cmd.Flags().GetString("gender")

	text := strings.Join(args, " ")

	log.Info().
		Int("text_length", len(text)).
		Int("age", age).
		Str("gender", gender).
		Msg("Starting symptom analysis")

	detected := symptoms.Detect(text)
	analysis := symptoms.Analyze(detected, symptoms.AnalyzeOptions{Age: age, Gender: gender})

	var homeCare, doctorAdvice string
	if len(detected) == 0 {
		homeCare = "No specific symptoms detected. If you're feeling unwell, please consult a healthcare provider."
		doctorAdvice = "Consult a doctor if symptoms develop or worsen."
	} else {
		homeCare = symptoms.HomeCareAdvice(detected)
		doctorAdvice = symptoms.DoctorAdvice(analysis.Urgency)
	}

	log.Info().
		Strs("detected", detected).
		Str("urgency", string(analysis.Urgency)).
		Float64("confidence", analysis.ConfidenceScore).
		Msg("Symptom analysis completed")

	formatted := make([]string, len(detected))
	for i, key := range detected {
		formatted[i] = symptoms.FormatSymptomName(key)
	}

	var outputData []byte
	if jsonOutput {
		data, err := json.MarshalIndent(symptomsOutput{
			SymptomsText:     text,
			DetectedSymptoms: formatted,
			Analysis:         analysis,
			HomeCareAdvice:   homeCare,
			WhenToSeeDoctor:  doctorAdvice,
			Disclaimer:       symptomsDisclaimer,
		}, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal JSON output")
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
		outputData = data
	} else {
		outputData = []byte(renderSymptomsText(formatted, analysis, homeCare, doctorAdvice))
	}

	return writeOutput(outputData, outputPath, jsonOutput, log)
}

func renderSymptomsText(detected []string, analysis models.AnalysisResult, homeCare, doctorAdvice string) string {
	var b strings.Builder

	b.WriteString("=== Detected Symptoms ===\n\n")
	if len(detected) == 0 {
		b.WriteString("(none)\n")
	} else {
		for _, name := range detected {
			b.WriteString("- " + name + "\n")
		}
	}

	b.WriteString("\n=== Possible Conditions ===\n\n")
	if len(analysis.Conditions) == 0 {
		b.WriteString(analysis.Message + "\n")
	} else {
		for _, cond := range analysis.Conditions {
			fmt.Fprintf(&b, "- %s (%.0f%% match, %s): %s\n",
				cond.Name, cond.MatchScore*100, cond.Severity, cond.Description)
		}
	}

	fmt.Fprintf(&b, "\nUrgency level: %s\n", analysis.Urgency)

	b.WriteString("\n=== Home Care ===\n\n")
	b.WriteString(homeCare)
	b.WriteString("\n\n=== When to See a Doctor ===\n\n")
	b.WriteString(doctorAdvice)
	b.WriteString("\n\n" + symptomsDisclaimer + "\n")

	return b.String()
}
