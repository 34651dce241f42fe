// Package quotes supplies a motivational quote for the post-log screen.
// A local quote is returned immediately; a remote one replaces it only if
// the lookup finishes inside a short deadline, so a slow quote service
// never delays the user.
package quotes

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
)

// Quote is a motivational quote with attribution.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// DefaultRemoteURL is the public quote service queried for enhancement.
const DefaultRemoteURL = "https://api.quotable.io/random?tags=inspirational|motivational|success"

var fallback = []Quote{
	{Content: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Content: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Content: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Content: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{Content: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier"},
	{Content: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Content: "The only impossible journey is the one you never begin.", Author: "Tony Robbins"},
	{Content: "Small daily improvements over time lead to stunning results.", Author: "Robin Sharma"},
	{Content: "You are never too old to set another goal or to dream a new dream.", Author: "C.S. Lewis"},
}

// Provider fetches quotes. The zero configuration uses the public remote
// service.
type Provider struct {
	RemoteURL string
	HTTP      *http.Client
	rng       *rand.Rand
}

// NewProvider creates a Provider seeded from the current time.
func NewProvider() *Provider {
	return &Provider{
		RemoteURL: DefaultRemoteURL,
		HTTP:      &http.Client{},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Local returns a quote from the built-in pool, always immediately.
func (p *Provider) Local() Quote {
	return fallback[p.rng.Intn(len(fallback))]
}

// Fetch returns a local quote at once, then tries the remote service for
// a fresher one within the deadline. The second return reports whether
// the remote lookup succeeded; on any failure or timeout the local quote
// stands.
func (p *Provider) Fetch(ctx context.Context) (Quote, bool) {
	quote := p.Local()

	ctx, cancel := context.WithTimeout(ctx, constants.QuoteFetchTimeoutMs*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.RemoteURL, nil)
	if err != nil {
		return quote, false
	}
	resp, err := p.HTTP.Do(req)
	if err != nil {
		// Expected whenever offline or slow; the fallback already covers it.
		logger.Debug("remote quote lookup failed", "error", err)
		return quote, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return quote, false
	}
	var remote Quote
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil || remote.Content == "" {
		return quote, false
	}
	return remote, true
}
