package ocr

import (
	"context"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine runs text recognition through a local Tesseract
// installation via gosseract. A fresh client is created per recognition so
// the engine is safe for concurrent use.
type TesseractEngine struct {
	language string
	pageSeg  gosseract.PageSegMode
}

// NewTesseractEngine creates a Tesseract engine. An empty language
// defaults to English. The page segmentation mode should match the layout
// of the input; prescriptions are treated as a single uniform text block
// (mode 6) by default.
func NewTesseractEngine(language string, pageSegMode int) *TesseractEngine {
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{
		language: language,
		pageSeg:  gosseract.PageSegMode(pageSegMode),
	}
}

// Name identifies the engine in logs.
func (t *TesseractEngine) Name() string { return "tesseract" }

// Recognize extracts text and per-word confidences from the PNG data.
// Word confidences come back on Tesseract's 0-100 scale; entries Tesseract
// reports without a confidence carry the -1 sentinel and are passed
// through for the caller to discard.
func (t *TesseractEngine) Recognize(ctx context.Context, png []byte) (*Recognition, error) {
	const op = "Recognize"

	if err := ctx.Err(); err != nil {
		return nil, WrapOCRError(op, err, "context canceled before recognition")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return nil, WrapOCRError(op, ErrEngineFailed, "failed to set language: "+err.Error())
	}
	if err := client.SetPageSegMode(t.pageSeg); err != nil {
		return nil, WrapOCRError(op, ErrEngineFailed, "failed to set page segmentation mode: "+err.Error())
	}
	if err := client.SetImageFromBytes(png); err != nil {
		return nil, WrapOCRError(op, ErrEngineFailed, "failed to set image: "+err.Error())
	}

	text, err := client.Text()
	if err != nil {
		return nil, WrapOCRError(op, ErrEngineFailed, err.Error())
	}

	rec := &Recognition{Text: text}

	// Word confidences are best effort; recognition without them still
	// yields text, it just scores zero quality.
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil {
		for _, box := range boxes {
			rec.WordConfidences = append(rec.WordConfidences, box.Confidence)
		}
	}

	return rec, nil
}
