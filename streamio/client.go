package streamio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/streamio-cli/streamio/constant"
	"github.com/streamio-cli/streamio/log"
	"golang.org/x/time/rate"
)

// maxErrorBody bounds how much of a failed response is read for diagnostics.
const maxErrorBody = 64 << 10

// PageRequest describes one page of the listing.
type PageRequest struct {
	Limit  int
	Offset int
	Sort   SortOrder
	Tags   []string
}

// PageFetcher retrieves a single page of raw video records.
type PageFetcher interface {
	FetchPage(ctx context.Context, creds Credentials, page PageRequest) ([]*Video, error)
}

// Client talks to the video listing endpoint. It holds no per-account state; credentials
// travel with every call.
type Client struct {
	endpoint string
	http     *http.Client
	limiter  *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithRateLimit spaces requests to at most perSecond per second. Zero or less disables it.
func WithRateLimit(perSecond int) Option {
	return func(client *Client) {
		if perSecond > 0 {
			client.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// NewClient returns a client for the given listing endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage issues one authenticated GET for a page of videos. It performs no retries.
func (c *Client) FetchPage(ctx context.Context, creds Credentials, page PageRequest) ([]*Video, error) {
	if page.Limit < 1 || page.Limit > MaxPageSize {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrPageLimit, page.Limit, MaxPageSize)
	}
	if page.Offset < 0 {
		return nil, fmt.Errorf("negative page offset %d", page.Offset)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("skip", strconv.Itoa(page.Offset))
	if page.Sort != "" {
		q.Set("order", page.Sort.String())
	}
	if tags := joinTags(page.Tags); tags != "" {
		q.Set("tags", tags)
	}
	u.RawQuery = q.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: "throttle", URL: c.endpoint, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(creds.Username, creds.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Debugf("GET %s", u.String())
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: http.MethodGet, URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var videos []*Video
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		if readFailed(ctx, err) {
			return nil, &TransportError{Op: "read", URL: c.endpoint, Err: err}
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedPage, err)
	}
	if videos == nil {
		videos = []*Video{}
	}

	return videos, nil
}

// readFailed reports whether a decode error came from reading the body rather than from its
// content.
func readFailed(ctx context.Context, err error) bool {
	var netErr net.Error
	switch {
	case ctx.Err() != nil,
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &netErr):
		return true
	}
	return false
}

func upstreamError(resp *http.Response) *UpstreamError {
	e := &UpstreamError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Message) != "" {
		e.Message = strings.TrimSpace(body.Message)
	} else if text := http.StatusText(resp.StatusCode); text != "" {
		e.Message = text
	} else {
		e.Message = resp.Status
	}

	log.Errorf("streamio request failed: %d - %s", e.StatusCode, e.Message)
	return e
}
