// Package identity provides rotating client identities and the pre-captured
// credential bundle used by the authenticated extraction strategy.
package identity

import (
	"github.com/mazen160/go-random"
)

// Identity is one browsing persona: a user agent plus viewport dimensions.
type Identity struct {
	UserAgent string
	ViewportW int
	ViewportH int
}

// defaultIdentities mirrors the UA set real desktop browsers present; keeping
// the list small and current matters more than making it long.
var defaultIdentities = []Identity{
	{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		ViewportW: 1920, ViewportH: 1080,
	},
	{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		ViewportW: 1680, ViewportH: 1050,
	},
	{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
		ViewportW: 1920, ViewportH: 1080,
	},
	{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:125.0) Gecko/20100101 Firefox/125.0",
		ViewportW: 1440, ViewportH: 900,
	},
}

// Pool hands out identities for outbound requests.
type Pool struct {
	identities []Identity
}

// NewPool creates a pool from the given identities, falling back to the
// compiled-in set when none are provided.
func NewPool(identities ...Identity) *Pool {
	if len(identities) == 0 {
		identities = defaultIdentities
	}
	return &Pool{identities: identities}
}

// Pick returns a randomly chosen identity.
func (p *Pool) Pick() Identity {
	if len(p.identities) == 1 {
		return p.identities[0]
	}
	i, err := random.IntRange(0, len(p.identities))
	if err != nil {
		return p.identities[0]
	}
	return p.identities[i]
}

// Size returns the number of identities in the pool.
func (p *Pool) Size() int {
	return len(p.identities)
}
