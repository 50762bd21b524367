package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YusovID/product-reviews-service/internal/domain"
	"github.com/YusovID/product-reviews-service/internal/repository"
)

type CommentSourceMock struct {
	mock.Mock
}

var _ repository.CommentSource = (*CommentSourceMock)(nil)

func (m *CommentSourceMock) FetchComments(ctx context.Context) ([]domain.RawComment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.RawComment), args.Error(1)
}
