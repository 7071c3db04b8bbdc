package normalize

import (
	"regexp"
	"strings"
)

// NotSpecified is the documented placeholder for a hint no pattern matched.
// Absence of a hint is never an error.
const NotSpecified = "Not specified"

// Hints are best-effort structured annotations pulled from canonical text.
// They only decorate the document; they never gate pipeline success.
type Hints struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
}

// Pattern lists are priority-ordered; the first match wins and conflicting
// later matches are ignored.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#\s+(.+)$`),
	regexp.MustCompile(`(?mi)^Job\s+Title:\s*(.+)$`),
	regexp.MustCompile(`(?m)^(.{6,99}?)\s+at\s+\S.*$`),
}

var organizationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)\bat\s+([A-Z][a-zA-Z0-9\s&.,-]{1,49}?)(?:\s*\n|\s*$)`),
	regexp.MustCompile(`(?mi)^Company:\s*([A-Z][a-zA-Z0-9\s&.,-]{1,49}?)(?:\s*\n|\s*$)`),
	regexp.MustCompile(`([A-Z][a-zA-Z0-9\s&.,-]{1,49}?)\s+is\s+(?:seeking|looking|hiring)`),
	regexp.MustCompile(`(?m)\bJoin\s+([A-Z][a-zA-Z0-9\s&.,-]{1,49}?)(?:\s*\n|\s*$)`),
	regexp.MustCompile(`(?m)\bAbout\s+([A-Z][a-zA-Z0-9\s&.,-]{1,49}?)(?:\s*\n|\s*$)`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^Location:\s*([A-Z][a-zA-Z\s,.-]{2,49}?)(?:\n|$)`),
	regexp.MustCompile(`\b(Remote|Hybrid|On-site)\b`),
	regexp.MustCompile(`(?m)([A-Z][a-zA-Z\s.-]{1,40}?,\s*(?:[A-Z]{2}|United States|United Kingdom|USA|UK|Canada|Germany|France|Netherlands|Australia|India))\b`),
}

// ExtractHints runs the best-effort pattern search for title, organization
// and location. Each extraction is independent; no reconciliation across
// patterns is attempted.
func ExtractHints(text string) Hints {
	return Hints{
		Title:        firstMatch(text, titlePatterns, NotSpecified),
		Organization: firstMatch(text, organizationPatterns, NotSpecified),
		Location:     firstMatch(text, locationPatterns, NotSpecified),
	}
}

func firstMatch(text string, patterns []*regexp.Regexp, fallback string) string {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		candidate := match[0]
		if len(match) > 1 {
			candidate = match[1]
		}
		candidate = strings.TrimSpace(candidate)
		if candidate != "" {
			return candidate
		}
	}
	return fallback
}
