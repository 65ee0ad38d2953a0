package ocr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapOCRError(t *testing.T) {
	err := WrapOCRError("PreprocessImage", ErrImageDecodeFailed, "truncated file")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImageDecodeFailed)
	assert.Contains(t, err.Error(), "PreprocessImage")
	assert.Contains(t, err.Error(), "truncated file")

	var ocrErr *OCRError
	require.ErrorAs(t, err, &ocrErr)
	assert.Equal(t, "PreprocessImage", ocrErr.Op)
}

func TestWrapOCRErrorNil(t *testing.T) {
	assert.NoError(t, WrapOCRError("Recognize", nil, "ignored"))
}

func TestWrapOCRErrorAlreadyWrapped(t *testing.T) {
	inner := WrapOCRError("Recognize", ErrEngineFailed, "")
	outer := WrapOCRError("ExtractFromImage", inner, "")

	assert.Equal(t, inner, outer)
}

func TestOCRErrorMessage(t *testing.T) {
	withDetails := &OCRError{Op: "Recognize", Err: ErrEngineFailed, Details: "empty page"}
	assert.Equal(t, "ocr: Recognize failed: empty page: text recognition failed", withDetails.Error())

	withoutDetails := &OCRError{Op: "Recognize", Err: ErrEngineFailed}
	assert.Equal(t, "ocr: Recognize failed: text recognition failed", withoutDetails.Error())
}

func TestOCRErrorUnwrap(t *testing.T) {
	err := &OCRError{Op: "Recognize", Err: ErrInvalidPDF}
	assert.True(t, errors.Is(err, ErrInvalidPDF))
	assert.Equal(t, ErrInvalidPDF, errors.Unwrap(err))
}
