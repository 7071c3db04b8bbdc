package scrape

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// AuthMarkers are the string markers used to decide whether a rendered page
// reflects a signed-in session or a sign-in wall. The source site changes
// its UI regularly, so the lists are configuration with compiled-in
// defaults, not hardcoded logic.
type AuthMarkers struct {
	SignedIn []string `json:"signed_in"`
	Wall     []string `json:"wall"`
}

// DefaultAuthMarkers returns the compiled-in marker set.
func DefaultAuthMarkers() *AuthMarkers {
	return &AuthMarkers{
		SignedIn: []string{
			"global-nav",
			"feed-identity-module",
			"nav[role=\"navigation\"]",
		},
		Wall: []string{
			"authwall",
			"sign-in-modal",
			"session_key",
			"join now",
			"blurred_overlay",
		},
	}
}

// LoadAuthMarkers reads marker overrides from a JSON file. An empty path
// returns the defaults.
func LoadAuthMarkers(path string) (*AuthMarkers, error) {
	if path == "" {
		return DefaultAuthMarkers(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read marker file %s: %w", path, err)
	}

	var markers AuthMarkers
	if err := json.Unmarshal(data, &markers); err != nil {
		return nil, fmt.Errorf("failed to parse marker file %s: %w", path, err)
	}
	if len(markers.SignedIn) == 0 || len(markers.Wall) == 0 {
		return nil, fmt.Errorf("marker file %s must define both signed_in and wall lists", path)
	}

	return &markers, nil
}

// Authenticated checks rendered HTML for evidence of a live session: any
// wall marker present means the session was rejected, otherwise at least
// one signed-in marker must appear.
func (m *AuthMarkers) Authenticated(html string) bool {
	lower := strings.ToLower(html)

	for _, marker := range m.Wall {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return false
		}
	}
	for _, marker := range m.SignedIn {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
