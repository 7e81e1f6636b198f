package service

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// ReviewList is the displayed feedback, newest first. Stale is set when the
// backend could not be reached and the last fetched list was served instead.
type ReviewList struct {
	Reviews []domain.Review `json:"reviews"`
	Stale   bool            `json:"stale"`
}

type FeedbackSummary struct {
	AverageRating float64               `json:"averageRating"`
	Distribution  []domain.RatingBucket `json:"distribution"`
	Backend       *domain.ReviewStats   `json:"backend,omitempty"`
}

type FeedbackLedger struct {
	api      ReviewAPI
	guard    SubmitGuard
	activity *Activity

	mu      sync.RWMutex
	reviews []domain.Review
}

func NewFeedbackLedger(api ReviewAPI, guard SubmitGuard, activity *Activity) *FeedbackLedger {
	return &FeedbackLedger{api: api, guard: guard, activity: activity}
}

// Load never fails. When the backend is unavailable the last list is served
// and marked stale.
func (l *FeedbackLedger) Load(ctx context.Context) ReviewList {
	reviews, err := l.api.ListReviews(ctx)
	if err != nil {
		log.Printf("[pos-svc] load reviews, serving cached list: %v", err)
		return ReviewList{Reviews: l.cached(), Stale: true}
	}

	reviews = sortReviews(reviews)
	l.mu.Lock()
	l.reviews = reviews
	l.mu.Unlock()
	return ReviewList{Reviews: l.cached()}
}

func (l *FeedbackLedger) Submit(ctx context.Context, session *domain.Session, req domain.ReviewRequest) (*domain.Review, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Comment = strings.TrimSpace(req.Comment)
	switch {
	case req.Name == "":
		return nil, domain.Validationf("Please enter your name")
	case req.Rating < 1 || req.Rating > 5:
		return nil, domain.Validationf("Rating must be an integer between 1 and 5")
	case req.Comment == "":
		return nil, domain.Validationf("Please enter a comment")
	}

	var review *domain.Review
	err := guarded(ctx, l.guard, guardKey("review", session, strings.ToLower(req.Name)), func() error {
		created, err := l.api.CreateReview(ctx, req)
		if err != nil {
			return err
		}
		review = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.reviews = sortReviews(append([]domain.Review{*review}, l.reviews...))
	l.mu.Unlock()

	l.activity.Confirmed(ctx, domain.EventReviewSubmitted, strconv.Itoa(review.ID), employeeOf(session), 0)
	return review, nil
}

// Delete fails with a not found error for an id that is already gone and
// leaves the rest of the list untouched.
func (l *FeedbackLedger) Delete(ctx context.Context, id int) error {
	if err := l.api.DeleteReview(ctx, id); err != nil {
		return err
	}
	l.mu.Lock()
	kept := make([]domain.Review, 0, len(l.reviews))
	for _, review := range l.reviews {
		if review.ID != id {
			kept = append(kept, review)
		}
	}
	l.reviews = kept
	l.mu.Unlock()
	return nil
}

func (l *FeedbackLedger) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	return l.api.Stats(ctx)
}

func (l *FeedbackLedger) Summary(ctx context.Context) FeedbackSummary {
	reviews := l.Load(ctx).Reviews
	summary := FeedbackSummary{
		AverageRating: AverageRating(reviews),
		Distribution:  RatingDistribution(reviews),
	}
	stats, err := l.api.Stats(ctx)
	if err != nil {
		log.Printf("[pos-svc] load review stats: %v", err)
		return summary
	}
	summary.Backend = stats
	return summary
}

func (l *FeedbackLedger) cached() []domain.Review {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Review, len(l.reviews))
	copy(out, l.reviews)
	return out
}

// RatingDistribution counts reviews per rating from 1 to 5. Percentages are
// zero for an empty list.
func RatingDistribution(reviews []domain.Review) []domain.RatingBucket {
	buckets := make([]domain.RatingBucket, 5)
	for i := range buckets {
		buckets[i].Rating = i + 1
	}
	for _, review := range reviews {
		if review.Rating >= 1 && review.Rating <= 5 {
			buckets[review.Rating-1].Count++
		}
	}
	if len(reviews) == 0 {
		return buckets
	}
	for i := range buckets {
		buckets[i].Percentage = float64(buckets[i].Count) * 100 / float64(len(reviews))
	}
	return buckets
}

// AverageRating is rounded to one decimal, 0 for no reviews.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews))))
	return avg.Round(1).InexactFloat64()
}

// sortReviews orders by date, newest first, then by id descending.
func sortReviews(reviews []domain.Review) []domain.Review {
	sorted := make([]domain.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}
