package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/YusovID/product-reviews-service/internal/domain"
)

// syntheticWindow bounds the simulated age of upstream comments.
const syntheticWindow = 30 * 24 * time.Hour

// deriveRating maps a like count onto 1..5 via likes mod 4; without likes
// the rating is drawn uniformly from 1..5.
func deriveRating(c domain.RawComment, rnd *rand.Rand) int {
	if c.Likes != nil {
		return clampRating(int(math.Round(1 + math.Mod(*c.Likes, 4))))
	}

	return domain.MinRating + rnd.IntN(domain.MaxRating-domain.MinRating+1)
}

func clampRating(r int) int {
	return max(domain.MinRating, min(domain.MaxRating, r))
}

// toReview converts an upstream comment at position index of its batch.
// createdAt is synthetic: now minus a uniform offset within the last 30 days.
func toReview(c domain.RawComment, index int, now time.Time, rnd *rand.Rand) domain.Review {
	user := fmt.Sprintf("User%d", index)
	if c.User != nil && c.User.Username != "" {
		user = c.User.Username
	}

	offset := time.Duration(rnd.Float64() * float64(syntheticWindow))

	return domain.Review{
		ID:        c.ID,
		Body:      c.Body,
		User:      user,
		Rating:    deriveRating(c, rnd),
		CreatedAt: now.Add(-offset).UTC(),
	}
}

// roundTo2 rounds half up on the third decimal digit.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
