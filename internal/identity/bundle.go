// Package identity - bundle.go loads the pre-captured authenticated session.
package identity

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Cookie is one captured cookie from the session snapshot.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path,omitempty"`
}

// Bundle is a read-only credential bundle captured out-of-band (a browser
// storage-state export produced by the one-time login script). The pipeline
// never mutates it; absence of a bundle only disables the authenticated
// strategy.
type Bundle struct {
	Cookies []Cookie `json:"cookies"`
}

// BundleLoadError reports a failure to read or parse the bundle file.
type BundleLoadError struct {
	Path  string
	Cause error
}

func (e *BundleLoadError) Error() string {
	return fmt.Sprintf("failed to load credential bundle %s: %v", e.Path, e.Cause)
}

func (e *BundleLoadError) Unwrap() error {
	return e.Cause
}

// LoadBundle reads a storage-state JSON file. An empty path returns nil
// with no error; a bundle was simply not provided.
func LoadBundle(path string) (*Bundle, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BundleLoadError{Path: path, Cause: err}
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, &BundleLoadError{Path: path, Cause: err}
	}
	if len(bundle.Cookies) == 0 {
		return nil, &BundleLoadError{Path: path, Cause: fmt.Errorf("bundle contains no cookies")}
	}

	return &bundle, nil
}

// CookiesFor returns the cookies scoped to the given domain (matching on
// suffix, so ".example.com" entries apply to "www.example.com").
func (b *Bundle) CookiesFor(domain string) []Cookie {
	var out []Cookie
	for _, c := range b.Cookies {
		d := strings.TrimPrefix(c.Domain, ".")
		if domain == d || strings.HasSuffix(domain, "."+d) {
			out = append(out, c)
		}
	}
	return out
}

// CookieHeader renders the domain-scoped cookies as a Cookie header value.
func (b *Bundle) CookieHeader(domain string) string {
	cookies := b.CookiesFor(domain)
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}
