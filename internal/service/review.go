package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/YusovID/product-reviews-service/internal/apperrors"
	"github.com/YusovID/product-reviews-service/internal/domain"
	"github.com/YusovID/product-reviews-service/internal/repository"
	"github.com/YusovID/product-reviews-service/pkg/logger/sl"
)

// DefaultLatestLimit is used when GetLatestComments gets a non-positive limit.
const DefaultLatestLimit = 10

const populateKey = "populate"

type ReviewService interface {
	GetAverageRating(ctx context.Context) (float64, error)
	GetLatestComments(ctx context.Context, limit int) ([]domain.Review, error)
	GetReviewStats(ctx context.Context) (*domain.ReviewStats, error)
	AddComment(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
}

// ReviewServiceImpl keeps the process-local review collection. It is filled
// from the comment source on the first read that finds it empty and lives
// until the process exits. Newest local reviews sit at the front.
type ReviewServiceImpl struct {
	source repository.CommentSource
	log    *slog.Logger

	now func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand

	mu      sync.RWMutex
	reviews []domain.Review

	group singleflight.Group
}

type Option func(*ReviewServiceImpl)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *ReviewServiceImpl) { s.now = now }
}

// WithRand replaces the random source used for synthetic timestamps and
// fallback ratings.
func WithRand(rnd *rand.Rand) Option {
	return func(s *ReviewServiceImpl) { s.rnd = rnd }
}

func NewReviewService(source repository.CommentSource, log *slog.Logger, opts ...Option) *ReviewServiceImpl {
	s := &ReviewServiceImpl{
		source: source,
		log:    log,
		now:    time.Now,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *ReviewServiceImpl) GetAverageRating(ctx context.Context) (float64, error) {
	const op = "internal.service.GetAverageRating"

	reviews, err := s.snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	avg := averageRating(reviews)
	s.log.Info("calculated average rating", slog.Float64("average", avg))

	return avg, nil
}

// GetLatestComments returns up to limit reviews, most recent first. Equal
// timestamps keep collection order.
func (s *ReviewServiceImpl) GetLatestComments(ctx context.Context, limit int) ([]domain.Review, error) {
	const op = "internal.service.GetLatestComments"

	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	reviews, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slices.SortStableFunc(reviews, func(a, b domain.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	latest := reviews[:min(limit, len(reviews))]
	s.log.Info("retrieved latest comments", slog.Int("count", len(latest)))

	return latest, nil
}

func (s *ReviewServiceImpl) GetReviewStats(ctx context.Context) (*domain.ReviewStats, error) {
	const op = "internal.service.GetReviewStats"

	reviews, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(reviews) == 0 {
		return &domain.ReviewStats{
			AverageRating:      0,
			TotalReviews:       0,
			RatingDistribution: map[int]int{},
		}, nil
	}

	distribution := make(map[int]int, domain.MaxRating)
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		distribution[r] = 0
	}

	for _, r := range reviews {
		distribution[r.Rating]++
	}

	stats := &domain.ReviewStats{
		AverageRating:      averageRating(reviews),
		TotalReviews:       len(reviews),
		RatingDistribution: distribution,
	}

	s.log.Info("review stats calculated",
		slog.Float64("average", stats.AverageRating),
		slog.Int("total", stats.TotalReviews),
	)

	return stats, nil
}

// AddComment validates input and puts the new review at the front of the
// collection. It does not trigger an upstream fetch.
func (s *ReviewServiceImpl) AddComment(_ context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	const op = "internal.service.AddComment"

	if err := validateInput(input); err != nil {
		s.log.Warn("rejected review", slog.String("op", op), sl.Err(err))
		return nil, err
	}

	s.mu.Lock()
	review := domain.Review{
		ID:        len(s.reviews) + 1,
		Body:      input.Body,
		User:      input.User,
		Rating:    input.Rating,
		CreatedAt: s.now().UTC(),
	}
	s.reviews = slices.Insert(s.reviews, 0, review)
	s.mu.Unlock()

	s.log.Info("new comment added", slog.Any("id", review.ID))

	return &review, nil
}

func validateInput(input domain.CreateReviewInput) error {
	if strings.TrimSpace(input.Body) == "" {
		return apperrors.NewValidationError("body", "comment body is required")
	}

	if strings.TrimSpace(input.User) == "" {
		return apperrors.NewValidationError("user", "user is required")
	}

	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return apperrors.NewValidationError("rating",
			"rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}

	return nil
}

// snapshot returns a copy of the collection, populating it first when empty.
func (s *ReviewServiceImpl) snapshot(ctx context.Context) ([]domain.Review, error) {
	if reviews := s.copyReviews(); len(reviews) > 0 {
		return reviews, nil
	}

	// Concurrent cold-start readers share one fetch. The fetch is detached
	// from the first caller's cancellation; the client timeout bounds it.
	_, err, _ := s.group.Do(populateKey, func() (any, error) {
		return nil, s.populate(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}

	return s.copyReviews(), nil
}

func (s *ReviewServiceImpl) copyReviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.reviews)
}

func (s *ReviewServiceImpl) populate(ctx context.Context) error {
	const op = "internal.service.populate"

	log := s.log.With(slog.String("op", op))

	// A reader that saw an empty collection may reach here after an earlier
	// flight already filled it.
	s.mu.RLock()
	filled := len(s.reviews) > 0
	s.mu.RUnlock()

	if filled {
		return nil
	}

	raw, err := s.source.FetchComments(ctx)
	if err != nil {
		log.Error("failed to fetch comments", sl.Err(err))
		return fmt.Errorf("%w: %w", apperrors.ErrDataSource, err)
	}

	now := s.now()
	fetched := make([]domain.Review, 0, len(raw))

	s.rndMu.Lock()
	for i, c := range raw {
		fetched = append(fetched, toReview(c, i, now, s.rnd))
	}
	s.rndMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Reviews added while the fetch was in flight stay in front of the batch.
	if len(s.reviews) > 0 {
		log.Warn("collection filled while fetching, keeping local reviews first",
			slog.Int("fetched", len(fetched)),
			slog.Int("local", len(s.reviews)),
		)
	}

	s.reviews = append(slices.Clone(s.reviews), fetched...)
	log.Info("loaded comments from data source", slog.Int("count", len(fetched)))

	return nil
}

func averageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}

	return roundTo2(float64(total) / float64(len(reviews)))
}
