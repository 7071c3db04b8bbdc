// Package normalize converts raw extraction output (rendered HTML or
// markdown) into one canonical plain-text shape, independent of which
// strategy produced it.
package normalize

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ContentKind identifies the raw content format handed to the normalizer.
type ContentKind string

const (
	// KindHTML is fully rendered page HTML.
	KindHTML ContentKind = "html"
	// KindMarkdown is markdown or already-plain text.
	KindMarkdown ContentKind = "markdown"
)

// Provenance tags how a document's text was obtained.
type Provenance string

const (
	// ProvenanceAutomated marks text produced by an extraction strategy.
	ProvenanceAutomated Provenance = "automated"
	// ProvenanceManual marks operator-supplied text.
	ProvenanceManual Provenance = "manual"
)

// Document is the canonical downstream shape. CanonicalText is never empty
// for automated provenance; manual text is carried verbatim.
type Document struct {
	CanonicalText string     `json:"canonical_text"`
	Hints         Hints      `json:"hints"`
	Provenance    Provenance `json:"provenance"`
	MethodID      string     `json:"method_id,omitempty"`
}

// Error reports a normalization failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("normalize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("normalize error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// uiNoisePatterns strips boilerplate the source site mixes into profile and
// job pages. Tunable list, not core logic.
var uiNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Show more.*?Show less`),
	regexp.MustCompile(`(?i)See more.*?See less`),
	regexp.MustCompile(`(?i)…?see more`),
	regexp.MustCompile(`(?i)Show all \d+ \w+`),
	regexp.MustCompile(`(?i)\d+\+? (?:mutual )?connections?`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)* followers`),
	regexp.MustCompile(`(?i)Connect\s*Message\s*More`),
	regexp.MustCompile(`(?i)Follow\s*Message\s*More`),
	regexp.MustCompile(`(?i)Sign in to view`),
	regexp.MustCompile(`(?i)Join now\s*Sign in`),
}

// noiseSelectors removes element classes of the source site's chrome before
// text conversion.
var noiseSelectors = []string{
	".global-nav",
	".artdeco-toasts",
	".msg-overlay-container",
	".cookie-banner",
	".consent-banner",
	"[data-tracking-control-name*='sign-in']",
	".top-level-modal-container",
}

// Normalize converts raw content into a Document. Automated provenance with
// no surviving text is an error; manual text is accepted as-is.
func Normalize(content string, kind ContentKind, prov Provenance, methodID string) (*Document, error) {
	text := content
	if kind == KindHTML {
		converted, err := htmlToText(content)
		if err != nil {
			return nil, &Error{Message: "HTML conversion failed", Cause: err}
		}
		text = converted
	}

	text = CollapseWhitespace(text)
	text = StripUINoise(text)

	if prov == ProvenanceAutomated && strings.TrimSpace(text) == "" {
		return nil, &Error{Message: "no text content survived normalization"}
	}

	return &Document{
		CanonicalText: text,
		Hints:         ExtractHints(text),
		Provenance:    prov,
		MethodID:      methodID,
	}, nil
}

// htmlToText converts rendered HTML into readable text. Readability
// extraction runs first; when it produces nothing useful the goquery strip
// path takes over with a body fallback.
func htmlToText(html string) (string, error) {
	fakeURL := &url.URL{Scheme: "https", Host: "localhost"}
	article, err := readability.FromReader(strings.NewReader(html), fakeURL)
	if err == nil && len(strings.TrimSpace(article.TextContent)) > 0 {
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, footer, header, iframe").Remove()
	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
	trailingWS  = regexp.MustCompile(`[ \t]+\n`)
	leadingWS   = regexp.MustCompile(`\n[ \t]+`)
	doubleSpace = regexp.MustCompile(`  +`)
)

// CollapseWhitespace reduces runs of spaces to a single space while keeping
// the line breaks that separate logical sections. Idempotent.
func CollapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = trailingWS.ReplaceAllString(text, "\n")
	text = leadingWS.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// StripUINoise removes known boilerplate phrases. Idempotent.
func StripUINoise(text string) string {
	for _, pattern := range uiNoisePatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	// Removal can leave whitespace seams; close them so the collapse stage
	// stays a no-op on re-runs.
	text = doubleSpace.ReplaceAllString(text, " ")
	text = trailingWS.ReplaceAllString(text, "\n")
	text = leadingWS.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
