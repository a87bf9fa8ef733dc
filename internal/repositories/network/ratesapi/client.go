// Package ratesapi reads the symbol catalog and latest rates from an
// exchangerate.host style HTTP API.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"golang.org/x/time/rate"
)

// Config holds the client settings.
type Config struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	RPS         float64
	SymbolsPath string
	RatesPath   string
}

// Client implements the rate source port over HTTP.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

var _ portsrepo.RateSource = (*Client)(nil)

// NewClient creates a Client. Zero values in cfg fall back to the defaults.
func NewClient(cfg Config, options ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.SymbolsPath == "" {
		cfg.SymbolsPath = "$.symbols"
	}
	if cfg.RatesPath == "" {
		cfg.RatesPath = "$.rates"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), 1),
		logger:  slog.Default(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// FetchSymbolsCatalog returns the code->name catalog. An empty catalog is not an error here.
func (c *Client) FetchSymbolsCatalog(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, "/symbols", nil)
	if err != nil {
		return nil, err
	}
	obj, err := c.extract(body, c.cfg.SymbolsPath)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]string, len(obj))
	for code, v := range obj {
		name, ok := symbolName(v)
		if !ok {
			c.logger.Debug("Skipping symbol with unreadable name", slog.String("code", code))
			continue
		}
		catalog[strings.ToUpper(code)] = name
	}
	return catalog, nil
}

// FetchRates returns the latest rates relative to base, keeping the numbers as the API wrote them.
func (c *Client) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	body, err := c.get(ctx, "/latest", url.Values{"base": {base}})
	if err != nil {
		return nil, err
	}
	obj, err := c.extract(body, c.cfg.RatesPath)
	if err != nil {
		return nil, err
	}

	rates := make(domain.RateTable, len(obj))
	for code, v := range obj {
		text, ok := rateText(v)
		if !ok {
			c.logger.Debug("Skipping non-numeric rate", slog.String("code", code), slog.String("base", base))
			continue
		}
		rates[strings.ToUpper(code)] = text
	}
	return rates, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: throttle wait: %w", apperrors.ErrNetwork, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if query == nil {
		query = url.Values{}
	}
	if c.cfg.APIKey != "" {
		query.Set("access_key", c.cfg.APIKey)
	}
	addr := c.cfg.BaseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", apperrors.ErrNetwork, path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", apperrors.ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Rates API response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned status %d", apperrors.ErrNetwork, path, resp.StatusCode)
	}

	var body any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding %s response: %w", apperrors.ErrNetwork, path, err)
	}

	// Some providers answer 200 with {"success": false, "error": {...}}.
	if top, ok := body.(map[string]any); ok {
		if success, ok := top["success"].(bool); ok && !success {
			return nil, fmt.Errorf("%w: GET %s reported failure: %v", apperrors.ErrNetwork, path, top["error"])
		}
	}
	return body, nil
}

// extract evaluates path against body and expects a JSON object.
func (c *Client) extract(body any, path string) (map[string]any, error) {
	val, err := jsonpath.Get(path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", apperrors.ErrNetwork, path, err)
	}
	// jsonpath may wrap a single match in a list
	if list, ok := val.([]any); ok && len(list) > 0 {
		val = list[0]
	}
	obj, ok := val.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an object", apperrors.ErrNetwork, path)
	}
	return obj, nil
}

func symbolName(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any:
		if d, ok := t["description"].(string); ok {
			return d, true
		}
	}
	return "", false
}

func rateText(v any) (string, bool) {
	switch t := v.(type) {
	case json.Number:
		return t.String(), true
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}
