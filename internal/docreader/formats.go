package docreader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ReadError{Extension: "pdf", Cause: err}
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", &ReadError{Extension: "pdf", Cause: fmt.Errorf("no extractable text")}
	}
	return result, nil
}

var (
	latexArgCommand  = regexp.MustCompile(`\\[a-zA-Z]+\{([^}]*)\}`)
	latexBareCommand = regexp.MustCompile(`\\[a-zA-Z]+`)
)

// readLaTeX strips comments and commands, keeping argument text. Not
// bulletproof, but resumes rarely use anything it mishandles.
func readLaTeX(data []byte) string {
	lines := strings.Split(string(data), "\n")
	var content []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "%") || strings.HasPrefix(line, "\\") {
			continue
		}
		line = latexArgCommand.ReplaceAllString(line, "$1")
		line = latexBareCommand.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			content = append(content, line)
		}
	}
	return strings.Join(content, "\n")
}

// docx XML shapes we care about: paragraphs (w:p) containing runs of text
// (w:t). Everything else is ignored.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxParagraph struct {
	Texts []string `xml:"r>t"`
}

func readDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ReadError{Extension: "docx", Cause: err}
	}

	var docXML []byte
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", &ReadError{Extension: "docx", Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", &ReadError{Extension: "docx", Cause: err}
			}
			break
		}
	}
	if docXML == nil {
		return "", &ReadError{Extension: "docx", Cause: fmt.Errorf("word/document.xml not found")}
	}

	var doc docxDocument
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return "", &ReadError{Extension: "docx", Cause: err}
	}

	var paragraphs []string
	for _, p := range doc.Body.Paragraphs {
		text := strings.Join(p.Texts, "")
		if strings.TrimSpace(text) != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
