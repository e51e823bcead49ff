package jooble

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/JVijeh/tableau-table-ext-job-scraper/internal/models"
)

const DefaultBaseURL = "https://jooble.org"

// DefaultPageInterval is the pause between consecutive page requests, to be
// polite to the upstream.
const DefaultPageInterval = time.Second

var ErrRequestFailed = errors.New("jooble: request failed")

// Doer issues one HTTP request. *network.Client satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// Client calls the Jooble job-search API. The credential travels in the URL
// path, search parameters in the JSON body.
type Client struct {
	baseURL   string
	apiKey    string
	transport Doer
	limiter   *rate.Limiter
	logger    zerolog.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithPageInterval sets the minimum interval between page requests. Zero or
// negative disables pacing.
func WithPageInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

func NewClient(apiKey string, transport Doer, opts ...Option) *Client {
	client := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		transport: transport,
		limiter:   rate.NewLimiter(rate.Every(DefaultPageInterval), 1),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// SearchPage fetches one page of results. An empty slice means the upstream
// has no further results for these parameters.
func (c *Client) SearchPage(ctx context.Context, req models.SearchRequest, page int) ([]models.Job, error) {
	body, err := json.Marshal(searchBody{
		Keywords: req.Keywords,
		Location: req.Location,
		Page:     page,
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/api/" + c.apiKey
	httpReq, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.transport.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var decoded searchResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("jooble: decode page %d: %w", page, err)
	}

	jobs := make([]models.Job, 0, len(decoded.Jobs))
	for _, payload := range decoded.Jobs {
		jobs = append(jobs, payload.toJob())
	}
	return jobs, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
