package ocr

import (
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDFPages returns the text of every page of the PDF at path, in
// page order. Text is decoded from each page's content stream; glyph
// positions are ignored, so reading order follows the stream.
func extractPDFPages(path string) ([]string, error) {
	const op = "extractPDFPages"

	file, err := os.Open(path)
	if err != nil {
		return nil, WrapOCRError(op, err, "failed to open PDF")
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(file, conf)
	if err != nil {
		return nil, WrapOCRError(op, ErrInvalidPDF, err.Error())
	}

	pages := make([]string, 0, pdfCtx.PageCount)
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		contentReader, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
		if err != nil || contentReader == nil {
			pages = append(pages, "")
			continue
		}
		content, err := io.ReadAll(contentReader)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, decodePageText(content))
	}

	return pages, nil
}

// decodePageText pulls shown text out of a PDF content stream. It decodes
// string literals consumed by the text-showing operators (Tj, TJ, ', ")
// and inserts line breaks on the text-positioning operators (Td, TD, T*).
func decodePageText(content []byte) string {
	var out strings.Builder
	var pending []string

	flush := func(sep string) {
		if len(pending) > 0 {
			out.WriteString(strings.Join(pending, ""))
			pending = pending[:0]
		}
		if sep != "" {
			out.WriteString(sep)
		}
	}

	i := 0
	for i < len(content) {
		switch c := content[i]; {
		case c == '(':
			lit, next := parseStringLiteral(content, i)
			pending = append(pending, lit)
			i = next
		case c == '<':
			// Hex strings carry font-encoded glyph IDs we cannot map
			// without the font tables; skip them.
			i = skipHexString(content, i)
		case c == 'T' && i+1 < len(content):
			switch content[i+1] {
			case 'j', 'J':
				flush(" ")
			case 'd', 'D', '*':
				flush("\n")
			}
			i += 2
		case c == '\'' || c == '"':
			flush("\n")
			i++
		default:
			i++
		}
	}
	flush("")

	return out.String()
}

// parseStringLiteral decodes a PDF string literal starting at the opening
// parenthesis, handling balanced parentheses, escape sequences, and octal
// codes. It returns the decoded text and the index after the closing
// parenthesis.
func parseStringLiteral(content []byte, start int) (string, int) {
	var out strings.Builder
	depth := 0
	i := start

	for i < len(content) {
		c := content[i]
		switch c {
		case '\\':
			if i+1 >= len(content) {
				return out.String(), i + 1
			}
			next := content[i+1]
			switch next {
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case 't':
				out.WriteByte('\t')
			case '(', ')', '\\':
				out.WriteByte(next)
			default:
				if next >= '0' && next <= '7' {
					code, consumed := parseOctal(content, i+1)
					out.WriteByte(code)
					i += consumed - 1
				}
			}
			i += 2
		case '(':
			if depth > 0 {
				out.WriteByte(c)
			}
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				return out.String(), i + 1
			}
			out.WriteByte(c)
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), i
}

func parseOctal(content []byte, start int) (byte, int) {
	value, n := 0, 0
	for n < 3 && start+n < len(content) && content[start+n] >= '0' && content[start+n] <= '7' {
		value = value*8 + int(content[start+n]-'0')
		n++
	}
	return byte(value), n
}

func skipHexString(content []byte, start int) int {
	for i := start + 1; i < len(content); i++ {
		if content[i] == '>' {
			return i + 1
		}
	}
	return len(content)
}
