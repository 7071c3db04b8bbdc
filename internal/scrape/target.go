// Package scrape implements the multi-stage extraction pipeline: a ranked
// set of independent strategies for turning a hardened profile/job URL into
// usable text, with escalation to manual input when every strategy fails.
package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// TargetKind tags the semantic kind of a URL to be resolved.
type TargetKind string

const (
	// KindJob is a job posting page.
	KindJob TargetKind = "job"
	// KindCompany is a company page.
	KindCompany TargetKind = "company"
	// KindProfile is a person profile page.
	KindProfile TargetKind = "profile"
)

// Target is a URL plus its source kind. Immutable once created.
type Target struct {
	URL  string
	Kind TargetKind
}

// InvalidTargetError reports a URL that is malformed for its declared kind.
// This is fatal for the target's resolution; no strategy is attempted.
type InvalidTargetError struct {
	URL    string
	Kind   TargetKind
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid %s URL %q: %s", e.Kind, e.URL, e.Reason)
}

var jobViewPattern = regexp.MustCompile(`/jobs/view/(\d+)`)

// NewTarget validates the URL against its declared kind and returns an
// immutable Target.
func NewTarget(rawURL string, kind TargetKind) (Target, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Target{}, &InvalidTargetError{URL: rawURL, Kind: kind, Reason: "not an absolute URL"}
	}

	switch kind {
	case KindJob:
		if JobID(rawURL) == "" {
			return Target{}, &InvalidTargetError{URL: rawURL, Kind: kind, Reason: "no job ID found in URL"}
		}
	case KindCompany:
		if !strings.Contains(parsed.Path, "/company/") {
			return Target{}, &InvalidTargetError{URL: rawURL, Kind: kind, Reason: "missing /company/ path segment"}
		}
	case KindProfile:
		if !strings.Contains(parsed.Path, "/in/") {
			return Target{}, &InvalidTargetError{URL: rawURL, Kind: kind, Reason: "missing /in/ path segment"}
		}
	default:
		return Target{}, &InvalidTargetError{URL: rawURL, Kind: kind, Reason: "unknown target kind"}
	}

	return Target{URL: rawURL, Kind: kind}, nil
}

// JobID extracts the numeric posting ID from a job URL, checking the path
// first and then the currentJobId query parameter. Empty when absent.
func JobID(rawURL string) string {
	if match := jobViewPattern.FindStringSubmatch(rawURL); match != nil {
		return match[1]
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("currentJobId")
}

// Host returns the target's hostname, empty if unparseable.
func (t Target) Host() string {
	parsed, err := url.Parse(t.URL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
