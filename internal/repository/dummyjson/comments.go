package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/YusovID/product-reviews-service/internal/apperrors"
	"github.com/YusovID/product-reviews-service/internal/config"
	"github.com/YusovID/product-reviews-service/internal/domain"
	"github.com/YusovID/product-reviews-service/internal/repository"
	"github.com/YusovID/product-reviews-service/pkg/logger/sl"
)

const (
	commentsPath    = "/comments"
	maxResponseSize = 10 << 20
	breakerName     = "dummyjson"
)

var _ repository.CommentSource = (*Client)(nil)

type commentsResponse struct {
	Comments []domain.RawComment `json:"comments"`
	Total    int                 `json:"total"`
	Skip     int                 `json:"skip"`
	Limit    int                 `json:"limit"`
}

// Client reads comments from a DummyJSON-compatible API.
// Every call is a single attempt guarded by a circuit breaker. The breaker
// only trips when enabled in config; otherwise a failed call never blocks
// the next one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]domain.RawComment]
	log        *slog.Logger
}

func NewClient(cfg config.Upstream, log *slog.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout}, log)
}

// NewClientWithHTTP lets callers supply the transport.
func NewClientWithHTTP(cfg config.Upstream, httpClient *http.Client, log *slog.Logger) *Client {
	bc := cfg.Breaker

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if !bc.Enabled || counts.Requests < bc.MinRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= bc.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	breakerState.WithLabelValues(breakerName).Set(0)

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker[[]domain.RawComment](settings),
		log:        log,
	}
}

func (c *Client) FetchComments(ctx context.Context) ([]domain.RawComment, error) {
	const op = "internal.repository.dummyjson.FetchComments"

	log := c.log.With(slog.String("op", op))
	start := time.Now()

	comments, err := c.breaker.Execute(func() ([]domain.RawComment, error) {
		return c.fetch(ctx)
	})

	upstreamDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		upstreamRequests.WithLabelValues(resultLabel(err)).Inc()
		log.Error("failed to fetch comments", sl.Err(err))

		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstream, err)
	}

	upstreamRequests.WithLabelValues("ok").Inc()
	log.Info("fetched comments", slog.Int("count", len(comments)))

	return comments, nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.RawComment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+commentsPath, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create GET request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", commentsPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return nil, fmt.Errorf("GET %s returned status %d: %s", commentsPath, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload commentsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}

	return payload.Comments, nil
}

// State reports the breaker state.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}
