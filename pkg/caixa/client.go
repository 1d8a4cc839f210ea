// Package caixa is a thin client for the public Caixa lottery results API.
// The API is unofficial but stable enough for keeping a local history in sync.
package caixa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://servicebus2.caixa.gov.br/portaldeloterias/api"

// Result is a single published draw as returned by the API.
type Result struct {
	Contest int
	Date    time.Time
	Numbers []int
}

type apiResult struct {
	Numero        int      `json:"numero"`
	DataApuracao  string   `json:"dataApuracao"`
	ListaDezenas  []string `json:"listaDezenas"`
	DezenasOrdem  []string `json:"dezenasSorteadasOrdemSorteio"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchLatest returns the most recent published draw for a game.
func (c *Client) FetchLatest(ctx context.Context, apiSlug string) (*Result, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/%s", c.baseURL, apiSlug))
}

// FetchContest returns one specific contest for a game.
func (c *Client) FetchContest(ctx context.Context, apiSlug string, contest int) (*Result, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/%s/%d", c.baseURL, apiSlug, contest))
}

func (c *Client) fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("results provider unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("results provider returned status %d", res.StatusCode)
	}

	var raw apiResult
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return parseResult(raw)
}

// parseResult normalizes the two field layouts the API uses for drawn numbers.
func parseResult(raw apiResult) (*Result, error) {
	dezenas := raw.ListaDezenas
	if len(dezenas) == 0 {
		dezenas = raw.DezenasOrdem
	}
	if len(dezenas) == 0 {
		return nil, fmt.Errorf("contest %d has no drawn numbers", raw.Numero)
	}

	numbers := make([]int, 0, len(dezenas))
	for _, d := range dezenas {
		n, err := strconv.Atoi(d)
		if err != nil {
			return nil, fmt.Errorf("invalid drawn number %q in contest %d", d, raw.Numero)
		}
		numbers = append(numbers, n)
	}

	date, err := time.Parse("02/01/2006", raw.DataApuracao)
	if err != nil {
		// Some historical contests carry no parseable date; the draw itself
		// is still usable.
		date = time.Time{}
	}

	return &Result{
		Contest: raw.Numero,
		Date:    date,
		Numbers: numbers,
	}, nil
}
