package extractor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ExtractText converts a raw document payload into plain text based on its
// declared extension. PDF extraction is best-effort: when both extraction
// passes come back empty the result is an empty string, not an error, and
// emptiness is reported by the caller via ErrNoText.
func ExtractText(data []byte, ext string) (string, error) {
	switch normalizeExt(ext) {
	case "pdf":
		return extractPDF(data), nil
	case "docx", "doc":
		return extractDocx(data)
	case "txt":
		return decodeText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ExtractTextFromFile reads a document from disk and extracts its text.
func ExtractTextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", err
	}
	return ExtractText(data, filepath.Ext(path))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// extractPDF tries per-page plain-text extraction first and falls back to
// row-ordered extraction when the primary pass yields only whitespace.
// Malformed PDFs degrade to an empty string.
func extractPDF(data []byte) string {
	if text := pdfPlainText(data); strings.TrimSpace(text) != "" {
		return text
	}
	return pdfRowText(data)
}

func pdfPlainText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String()
}

func pdfRowText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>|</w:tc>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
	docxEntities    = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// extractDocx concatenates paragraph and table-cell text. The docx library
// exposes the raw document XML, so paragraph and cell boundaries are turned
// into newlines before the markup is stripped.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return docxEntities.Replace(content), nil
}

// txtDecoders is the fixed encoding preference order for plain-text files.
var txtDecoders = []*encoding.Decoder{
	nil, // utf-8, validated directly
	charmap.ISO8859_1.NewDecoder(),
	charmap.Windows1252.NewDecoder(),
}

func decodeText(data []byte) (string, error) {
	for _, dec := range txtDecoders {
		if dec == nil {
			if utf8.Valid(data) {
				return string(data), nil
			}
			continue
		}
		decoded, err := dec.Bytes(data)
		if err == nil {
			return string(decoded), nil
		}
	}
	return "", ErrDecode
}
