package dummyjson

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YusovID/product-reviews-service/internal/apperrors"
	"github.com/YusovID/product-reviews-service/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.Upstream {
	return config.Upstream{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Breaker: config.Breaker{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			FailureRatio: 0.5,
			MinRequests:  5,
		},
	}
}

func TestClient_FetchComments(t *testing.T) {
	const payload = `{
		"comments": [
			{"id": 1, "body": "This is some awesome thinking!", "postId": 242, "likes": 3,
			 "user": {"id": 105, "username": "emmac", "fullName": "Emma Miller"}},
			{"id": 2, "body": "What terrific math skills you're showing!"}
		],
		"total": 340, "skip": 0, "limit": 2
	}`

	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL+"/"), testLogger())

	comments, err := client.FetchComments(context.Background())
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "/comments", gotPath)

	first := comments[0]
	assert.Equal(t, float64(1), first.ID)
	require.NotNil(t, first.Likes)
	assert.InDelta(t, 3, *first.Likes, 1e-9)
	require.NotNil(t, first.User)
	assert.Equal(t, "emmac", first.User.Username)
	assert.Equal(t, float64(242), first.PostID)

	second := comments[1]
	assert.Nil(t, second.Likes)
	assert.Nil(t, second.User)
}

func TestClient_FetchComments_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"comments": [`)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := NewClient(testConfig(srv.URL), testLogger())

			comments, err := client.FetchComments(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrUpstream)
			assert.Nil(t, comments)
		})
	}
}

func TestClient_FetchComments_Timeout(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	client := NewClient(cfg, testLogger())

	_, err := client.FetchComments(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestClient_FetchComments_NoRetry(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), testLogger())

	_, err := client.FetchComments(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_BreakerOpens(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Breaker.Enabled = true
	cfg.Breaker.MinRequests = 2

	client := NewClient(cfg, testLogger())

	for i := 0; i < 2; i++ {
		_, err := client.FetchComments(context.Background())
		require.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, client.State())

	_, err := client.FetchComments(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load(), "open breaker must not reach the upstream")
}

func TestClient_RecoversWithBreakerDisabled(t *testing.T) {
	var (
		calls   atomic.Int32
		healthy atomic.Bool
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)

		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"comments":[{"id":1,"body":"back"}],"total":1,"skip":0,"limit":1}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), testLogger())

	for i := 0; i < 10; i++ {
		_, err := client.FetchComments(context.Background())
		require.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateClosed, client.State())

	healthy.Store(true)

	comments, err := client.FetchComments(context.Background())
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "back", comments[0].Body)
	assert.Equal(t, int32(11), calls.Load())
}

func TestClient_FetchComments_LooseRecordShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"comments":[
			{"id": 1, "body": "fractional", "likes": 3.5},
			{"id": "c-2", "body": "string id", "likes": 2}
		]}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), testLogger())

	comments, err := client.FetchComments(context.Background())
	require.NoError(t, err)
	require.Len(t, comments, 2)

	require.NotNil(t, comments[0].Likes)
	assert.InDelta(t, 3.5, *comments[0].Likes, 1e-9)
	assert.Equal(t, float64(1), comments[0].ID)
	assert.Equal(t, "c-2", comments[1].ID)
}
