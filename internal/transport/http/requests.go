package http

// createReviewRequest mirrors api.CreateReviewRequest with a nullable rating
// so a missing field can be told apart from zero. It only checks presence;
// content rules live in the service.
type createReviewRequest struct {
	Body   string `json:"body" validate:"required"`
	User   string `json:"user" validate:"required"`
	Rating *int   `json:"rating" validate:"required"`
}
