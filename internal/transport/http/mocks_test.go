package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YusovID/product-reviews-service/internal/domain"
	"github.com/YusovID/product-reviews-service/internal/service"
)

type ReviewServiceMock struct {
	mock.Mock
}

var _ service.ReviewService = (*ReviewServiceMock)(nil)

func (m *ReviewServiceMock) GetAverageRating(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ReviewServiceMock) GetLatestComments(ctx context.Context, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *ReviewServiceMock) GetReviewStats(ctx context.Context) (*domain.ReviewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ReviewStats), args.Error(1)
}

func (m *ReviewServiceMock) AddComment(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Review), args.Error(1)
}
