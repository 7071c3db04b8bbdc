// Package docreader converts uploaded resume files of known formats into
// plain text. It is deliberately a set of simple per-format parsers, not a
// pipeline; anything smarter belongs downstream.
package docreader

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError is returned when the declared extension is not a
// readable format.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q (supported: pdf, tex, docx, txt, md)", e.Extension)
}

// ReadError reports a parse failure for a supported format.
type ReadError struct {
	Extension string
	Cause     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s document: %v", e.Extension, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// Read extracts plain text from document bytes based on the declared
// extension. The extension may be passed with or without a leading dot.
func Read(data []byte, extension string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))

	switch ext {
	case "pdf":
		return readPDF(data)
	case "tex", "latex":
		return readLaTeX(data), nil
	case "docx":
		return readDOCX(data)
	case "txt", "md", "markdown":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: extension}
	}
}
