package ocr

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine returns a canned recognition result.
type stubEngine struct {
	rec *Recognition
	err error
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Recognize(ctx context.Context, png []byte) (*Recognition, error) {
	return s.rec, s.err
}

func testRaster() *image.Gray {
	return image.NewGray(image.Rect(0, 0, 8, 8))
}

func TestExtractFromRaster(t *testing.T) {
	tests := []struct {
		name        string
		rec         *Recognition
		err         error
		wantSuccess bool
		wantScore   float64
		wantText    string
		wantPrefix  string
	}{
		{
			name: "clean high-confidence extraction",
			rec: &Recognition{
				Text:            "Tab. Augmentin 625mg",
				WordConfidences: []float64{90, 92},
			},
			wantSuccess: true,
			wantScore:   91,
			wantText:    "Tab. Augmentin 625mg",
		},
		{
			name: "low confidence prepends warning",
			rec: &Recognition{
				Text:            "Tab. Augmentin 625mg",
				WordConfidences: []float64{40},
			},
			wantSuccess: true,
			wantScore:   40,
			wantPrefix:  "\n\nWARNING: Low OCR confidence (40%)",
		},
		{
			name: "moderate confidence prepends caution",
			rec: &Recognition{
				Text:            "Tab. Augmentin 625mg",
				WordConfidences: []float64{60},
			},
			wantSuccess: true,
			wantScore:   60,
			wantPrefix:  "\n\nCAUTION: Moderate OCR quality (60%)",
		},
		{
			name: "no-confidence sentinels are discarded",
			rec: &Recognition{
				Text:            "Tab. Augmentin 625mg",
				WordConfidences: []float64{-1, -1, 80},
			},
			wantSuccess: true,
			wantScore:   80,
			wantText:    "Tab. Augmentin 625mg",
		},
		{
			name: "short text fails the readability gate",
			rec: &Recognition{
				Text:            "abc",
				WordConfidences: []float64{95},
			},
			wantSuccess: false,
			wantText:    "No readable text found. Please upload a clearer image with better lighting.",
		},
		{
			name:        "engine failure",
			err:         errors.New("tesseract not installed"),
			wantSuccess: false,
			wantPrefix:  "OCR extraction failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubEngine{rec: tt.rec, err: tt.err})
			result := svc.ExtractFromRaster(context.Background(), testRaster())

			assert.Equal(t, tt.wantSuccess, result.Success)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, result.Text)
			}
			if tt.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(result.Text, tt.wantPrefix),
					"text %q should start with %q", result.Text, tt.wantPrefix)
			}
			assert.Equal(t, tt.wantScore, result.QualityScore)
		})
	}
}

func TestExtractFromRasterCleansText(t *testing.T) {
	svc := NewService(&stubEngine{rec: &Recognition{
		Text:            "Tab.   Augmentin   625mg\n\n\n1 - 0 - 1",
		WordConfidences: []float64{90},
	}})

	result := svc.ExtractFromRaster(context.Background(), testRaster())

	require.True(t, result.Success)
	assert.Equal(t, "Tab. Augmentin 625mg\n1 - 0 - 1", result.Text)
}

func TestExtractFromImageMissingFile(t *testing.T) {
	svc := NewService(&stubEngine{})

	result := svc.ExtractFromImage(context.Background(), "testdata/does-not-exist.png")

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to preprocess image. Please ensure the image is clear and not corrupted.", result.Text)
}

func TestExtractFromPDFMissingFile(t *testing.T) {
	svc := NewService(&stubEngine{})

	result := svc.ExtractFromPDF(context.Background(), "testdata/does-not-exist.pdf")

	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Text, "PDF extraction failed:"))
}

func TestAverageConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"simple average", []float64{80, 90}, 85},
		{"negatives discarded", []float64{-1, 60, -1}, 60},
		{"all negative", []float64{-1, -1}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, averageConfidence(tt.in))
		})
	}
}
