package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses runs of spaces and tabs",
			in:   "Tab.   Augmentin \t 625mg",
			want: "Tab. Augmentin 625mg",
		},
		{
			name: "collapses blank lines",
			in:   "line one\n\n\nline two",
			want: "line one\nline two",
		},
		{
			name: "trims surrounding whitespace",
			in:   "  \n  text  \n  ",
			want: "text",
		},
		{
			name: "preserves single line breaks",
			in:   "Tab. Augmentin 625mg\n1 - 0 - 1 x 5days",
			want: "Tab. Augmentin 625mg\n1 - 0 - 1 x 5days",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   " \t\n \n ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanTextNeverSubstitutesCharacters(t *testing.T) {
	// OCR confusions like 0/O and 1/I must pass through untouched; guessing
	// would corrupt dosage tokens.
	in := "Tab. Amoxicillin 5OOmg 1-O-1\nDosage: 500mg"
	assert.Equal(t, in, CleanText(in))
}
