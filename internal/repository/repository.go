// package repository defines the data source contracts used by the service layer.
package repository

import (
	"context"

	"github.com/YusovID/product-reviews-service/internal/domain"
)

// CommentSource is the upstream data source the review aggregator is built from.
type CommentSource interface {
	// FetchComments returns the whole comments collection in a single call.
	// Any transport, status or decoding failure is reported as apperrors.ErrUpstream.
	// Implementations must not retry.
	FetchComments(ctx context.Context) ([]domain.RawComment, error)
}
