// package http implements the HTTP transport layer for the service.
// It decodes requests, calls the review service and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/YusovID/product-reviews-service/internal/apperrors"
	"github.com/YusovID/product-reviews-service/internal/domain"
	"github.com/YusovID/product-reviews-service/internal/service"
	"github.com/YusovID/product-reviews-service/internal/validation"
	"github.com/YusovID/product-reviews-service/pkg/api"
	"github.com/YusovID/product-reviews-service/pkg/logger/sl"
	"github.com/YusovID/product-reviews-service/swagger"
)

const (
	defaultLatestLimit = 10
	maxLatestLimit     = 100
	maxBodyBytes       = 1 << 20
)

// Server holds the dependencies of the HTTP layer.
type Server struct {
	log           *slog.Logger
	reviewService service.ReviewService
}

// NewServer creates a new instance of the HTTP server.
func NewServer(log *slog.Logger, rs service.ReviewService) *Server {
	return &Server{
		log:           log,
		reviewService: rs,
	}
}

var _ api.ServerInterface = (*Server)(nil)

// Routes sets up the router with all middleware and API endpoints.
// Routing and query binding come from the generated api package.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)
	mux.Use(s.recoverer)

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Mount("/", api.HandlerWithOptions(s, api.ChiServerOptions{
		ErrorHandlerFunc: s.handleParamError,
	}))

	return mux
}

func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, api.HealthStatus{Status: "ok"})
}

func (s *Server) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetReviewStats"

	stats, err := s.reviewService.GetReviewStats(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, toAPIStats(stats))
}

func (s *Server) GetAverageRating(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.GetAverageRating"

	avg, err := s.reviewService.GetAverageRating(r.Context())
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.AverageRating{AverageRating: avg})
}

func (s *Server) GetLatestComments(w http.ResponseWriter, r *http.Request, params api.GetLatestCommentsParams) {
	const op = "internal.transport.http.GetLatestComments"

	limit := parseLimit(params.Limit)

	comments, err := s.reviewService.GetLatestComments(r.Context(), limit)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	apiComments := make([]api.Review, len(comments))
	for i, c := range comments {
		apiComments[i] = toAPIReview(c)
	}

	s.respond(w, http.StatusOK, api.LatestComments{
		Count:    len(apiComments),
		Comments: apiComments,
	})
}

func (s *Server) PostReview(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.PostReview"

	var req createReviewRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	review, err := s.reviewService.AddComment(r.Context(), domain.CreateReviewInput{
		Body:   req.Body,
		User:   req.User,
		Rating: *req.Rating,
	})
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, api.CreateReviewResponse{
		Success: true,
		Message: "Comment created successfully",
		Data:    toAPIReview(*review),
	})
}

// parseLimit takes the leading integer of ?limit ("12abc" is 12, "1.5" is 1).
// Missing, non-numeric or zero values fall back to the default; the result
// is clamped to [1, maxLatestLimit].
func parseLimit(raw *string) int {
	if raw == nil {
		return defaultLatestLimit
	}

	v := strings.TrimSpace(*raw)

	end := 0
	if end < len(v) && (v[end] == '+' || v[end] == '-') {
		end++
	}

	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}

	if end == digits {
		return defaultLatestLimit
	}

	n, err := strconv.Atoi(v[:end])
	if err != nil {
		// Only out-of-range values get here.
		if v[0] == '-' {
			return 1
		}

		return maxLatestLimit
	}

	if n == 0 {
		return defaultLatestLimit
	}

	return max(1, min(n, maxLatestLimit))
}

func toAPIReview(r domain.Review) api.Review {
	return api.Review{
		Id:        r.ID,
		Body:      r.Body,
		User:      r.User,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

func toAPIStats(stats *domain.ReviewStats) api.ReviewStats {
	distribution := make(map[string]int, len(stats.RatingDistribution))
	for rating, count := range stats.RatingDistribution {
		distribution[strconv.Itoa(rating)] = count
	}

	return api.ReviewStats{
		AverageRating:      stats.AverageRating,
		TotalReviews:       stats.TotalReviews,
		RatingDistribution: distribution,
	}
}

// respond encodes data as JSON with the given status code.
func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, api.ErrorResponse{Success: false, Message: message})
}

// handleParamError reports query binding failures from the generated router.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn("invalid request parameters",
		slog.String("request_id", getRequestID(r.Context())),
		sl.Err(err),
	)

	s.respondError(w, http.StatusBadRequest, err.Error())
}

// decodeAndValidate deserializes a JSON body into v and checks its tags.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := s.decode(w, r, v); err != nil {
		return err
	}

	return validation.ValidateStruct(v)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// handleServiceError logs err and maps it onto a status code and body.
// Anything that is not a caller mistake is reported as a bare 500.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
	)

	var (
		reviewErr  *apperrors.ValidationError
		payloadErr *validation.ValidationError
	)

	switch {
	case errors.As(err, &reviewErr):
		log.Warn("review rejected", slog.String("field", reviewErr.Field), sl.Err(err))
		s.respondError(w, http.StatusBadRequest, reviewErr.Message)
	case errors.As(err, &payloadErr):
		log.Warn("invalid payload", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, payloadErr.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		log.Warn("malformed request body", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, apperrors.ErrInvalidRequest.Error())
	default:
		log.Error("service error occurred", sl.Err(err))
		s.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
