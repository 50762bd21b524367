package domain

import "time"

// Rating bounds shared by upstream-derived and locally created reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// RawComment is a comment record as returned by the upstream data source.
// It is never stored; the aggregator turns it into a Review. Identifiers are
// kept as decoded (float64 or string) so one odd record cannot fail a batch.
type RawComment struct {
	ID     any        `json:"id"`
	Body   string     `json:"body"`
	PostID any        `json:"postId,omitempty"`
	Likes  *float64   `json:"likes,omitempty"`
	User   *RawAuthor `json:"user,omitempty"`
}

type RawAuthor struct {
	ID       any    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

// Review.ID is an int for locally created reviews and the upstream id,
// integer or string, otherwise.
type Review struct {
	ID        any       `json:"id"`
	Body      string    `json:"body"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewStats is derived on every request and never stored.
type ReviewStats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

type CreateReviewInput struct {
	Body   string
	User   string
	Rating int
}
