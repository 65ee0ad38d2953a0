package ocr

import (
	"bytes"
	"context"
	"os"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"google.golang.org/api/option"
)

// VisionEngine runs text recognition through Google Cloud Vision's
// document text detection. It expects credentials in the environment:
// either GOOGLE_CREDENTIALS (inline JSON) or GOOGLE_APPLICATION_CREDENTIALS
// (path to a service account file).
type VisionEngine struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionEngine creates a Vision engine with credentials from environment.
func NewVisionEngine(ctx context.Context) (*VisionEngine, error) {
	const op = "NewVisionEngine"

	var client *vision.ImageAnnotatorClient
	var err error

	// Check for inline credentials first
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_CREDENTIALS")
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_APPLICATION_CREDENTIALS")
		}
	} else {
		// Try default credentials as fallback
		client, err = vision.NewImageAnnotatorClient(ctx)
		if err != nil {
			return nil, WrapOCRError(op, ErrMissingCredentials, "no credentials found in environment")
		}
	}

	return &VisionEngine{client: client}, nil
}

// Name identifies the engine in logs.
func (v *VisionEngine) Name() string { return "vision" }

// Recognize extracts text and per-word confidences from the PNG data.
// Vision reports word confidence on a 0.0-1.0 scale; values are rescaled
// to 0-100 to match the Tesseract engine.
func (v *VisionEngine) Recognize(ctx context.Context, png []byte) (*Recognition, error) {
	const op = "Recognize"

	img, err := vision.NewImageFromReader(bytes.NewReader(png))
	if err != nil {
		return nil, WrapOCRError(op, ErrEngineFailed, "failed to prepare image: "+err.Error())
	}

	annotation, err := v.client.DetectDocumentText(ctx, img, nil)
	if err != nil {
		return nil, WrapOCRError(op, ErrEngineFailed, "Vision API call failed: "+err.Error())
	}

	if annotation == nil {
		return &Recognition{}, nil
	}

	rec := &Recognition{Text: annotation.Text}

	for _, page := range annotation.Pages {
		for _, block := range page.Blocks {
			for _, paragraph := range block.Paragraphs {
				for _, word := range paragraph.Words {
					rec.WordConfidences = append(rec.WordConfidences, float64(word.Confidence)*100)
				}
			}
		}
	}

	return rec, nil
}

// Close closes the underlying Vision client.
func (v *VisionEngine) Close() error {
	if v.client != nil {
		return v.client.Close()
	}
	return nil
}
