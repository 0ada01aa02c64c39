package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"gamehub/internal/domain"
)

// DefaultBaseURL is the IGDB v4 API root
const DefaultBaseURL = "https://api.igdb.com/v4/"

// Fetcher returns games for a query page
type Fetcher interface {
	TopGames(ctx context.Context, limit, offset int) ([]domain.Game, error)
}

// Options is the immutable client configuration
type Options struct {
	BaseURL  string
	ClientID string
	Token    string
	Timeout  time.Duration
	LogLevel LogLevel
	// Transport overrides the underlying round tripper (tests)
	Transport http.RoundTripper
}

// StatusError is returned when IGDB answers with a non-2xx status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("igdb returned status %d", e.Code)
}

// Client talks to the IGDB games endpoint
type Client struct {
	opts       Options
	httpClient *http.Client
}

// New creates a client
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(opts.BaseURL, "/") {
		opts.BaseURL += "/"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: NewLoggingTransport(transport, opts.LogLevel),
		},
	}
}

var shared struct {
	once   sync.Once
	client *Client
}

// Shared returns the process-wide client, built from opts on the first
// call. Later calls ignore opts.
func Shared(opts Options) *Client {
	shared.once.Do(func() {
		shared.client = New(opts)
	})
	return shared.client
}

// Options returns the client configuration
func (c *Client) Options() Options {
	return c.opts
}

// TopGames fetches the highest rated games with a cover
func (c *Client) TopGames(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	return c.Games(ctx, TopGamesQuery(limit, offset))
}

// Games runs a raw query against the games endpoint
func (c *Client) Games(ctx context.Context, query string) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"games", strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Client-ID", c.opts.ClientID)
	req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		// LogBody has already written the body from the transport
		if c.opts.LogLevel == LogBasic {
			log.Printf("IGDB error %d: %s", resp.StatusCode, body)
		}
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var games []domain.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode games response: %w", err)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}
