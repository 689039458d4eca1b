package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CooldownError is returned when a request is attempted before the
// rate-limit cooldown has elapsed.
type CooldownError struct {
	Remaining int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("api cooldown active, wait %d seconds", e.Remaining)
}

// Quote is a single asset quote as returned by the price feed.
type Quote struct {
	PriceUSD  float64
	MarketCap float64
}

// SearchResult is one asset match from the feed's search endpoint.
type SearchResult struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	MarketCap int    `json:"market_cap_rank"`
}

// Client talks to a CoinGecko-compatible price feed with a cooldown gate
// between requests. It is built for a single caller; concurrent use needs
// external synchronization.
type Client struct {
	baseURL     string
	cooldown    time.Duration
	httpClient  *http.Client
	lastRequest time.Time
	now         func() time.Time
}

// NewClient creates a price feed client with the given base URL, cooldown
// and request timeout, both in seconds.
func NewClient(baseURL string, cooldownSeconds, timeoutSeconds int) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		cooldown: time.Duration(cooldownSeconds) * time.Second,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		now: time.Now,
	}
}

// SetCooldown adjusts the cooldown between requests, in seconds
func (c *Client) SetCooldown(seconds int) {
	c.cooldown = time.Duration(seconds) * time.Second
}

// CanRequest reports whether the cooldown has elapsed since the last request
func (c *Client) CanRequest() bool {
	return c.now().Sub(c.lastRequest) >= c.cooldown
}

// RemainingCooldown returns the time left before the next request is
// allowed, zero when the cooldown has elapsed.
func (c *Client) RemainingCooldown() time.Duration {
	remaining := c.cooldown - c.now().Sub(c.lastRequest)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Client) cooldownError() *CooldownError {
	remaining := c.RemainingCooldown()
	secs := int(remaining / time.Second)
	if remaining%time.Second > 0 {
		secs++
	}
	return &CooldownError{Remaining: secs}
}

// GetPrice fetches the current quote for a single asset. An id the feed
// does not know is an error.
func (c *Client) GetPrice(ctx context.Context, coingeckoID string) (*Quote, error) {
	if coingeckoID == "" {
		return nil, errors.New("invalid coingecko id")
	}
	quotes, err := c.GetPrices(ctx, []string{coingeckoID})
	if err != nil {
		return nil, err
	}
	quote, ok := quotes[coingeckoID]
	if !ok {
		return nil, fmt.Errorf("%s not found in price feed response", coingeckoID)
	}
	return &quote, nil
}

// GetPrices fetches current quotes for the given feed ids in one request.
// Ids the feed does not know are absent from the result. The call is
// subject to the cooldown gate.
func (c *Client) GetPrices(ctx context.Context, coingeckoIDs []string) (map[string]Quote, error) {
	if len(coingeckoIDs) == 0 {
		return nil, errors.New("no ids given")
	}
	if !c.CanRequest() {
		return nil, c.cooldownError()
	}
	return c.fetchPrices(ctx, coingeckoIDs)
}

// Search queries the feed's search endpoint for assets matching the query.
// Subject to the cooldown gate.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if query == "" {
		return nil, errors.New("query cannot be empty")
	}
	if !c.CanRequest() {
		return nil, c.cooldownError()
	}
	c.lastRequest = c.now()

	endpoint := fmt.Sprintf("%s/search?query=%s", c.baseURL, url.QueryEscape(query))
	var payload struct {
		Coins []SearchResult `json:"coins"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Coins, nil
}

// fetchPrices performs one simple/price request without checking the
// cooldown; it still stamps the request time so the gate applies to the
// next pass.
func (c *Client) fetchPrices(ctx context.Context, coingeckoIDs []string) (map[string]Quote, error) {
	c.lastRequest = c.now()

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_market_cap=true",
		c.baseURL, url.QueryEscape(strings.Join(coingeckoIDs, ",")))

	var payload map[string]map[string]float64
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	quotes := make(map[string]Quote, len(payload))
	for id, fields := range payload {
		quotes[id] = Quote{
			PriceUSD:  fields["usd"],
			MarketCap: fields["usd_market_cap"],
		}
	}
	return quotes, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("price feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("price feed returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode price feed response: %w", err)
	}
	return nil
}
