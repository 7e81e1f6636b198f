package service_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/mocks"
	"restaurant-pos/pos-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reviewsRated(ratings ...int) []domain.Review {
	reviews := make([]domain.Review, len(ratings))
	for i, rating := range ratings {
		reviews[i] = domain.Review{ID: i + 1, Name: "Guest", Rating: rating, Comment: "ok", Date: "2025-10-12"}
	}
	return reviews
}

func TestRatingDistribution(t *testing.T) {
	buckets := service.RatingDistribution(reviewsRated(5, 5, 4, 1))

	counts := map[int]int{}
	var percentage float64
	for _, bucket := range buckets {
		counts[bucket.Rating] = bucket.Count
		percentage += bucket.Percentage
	}
	assert.Equal(t, map[int]int{5: 2, 4: 1, 3: 0, 2: 0, 1: 1}, counts)
	assert.InDelta(t, 100.0, percentage, 1e-9)
	assert.InDelta(t, 50.0, buckets[4].Percentage, 1e-9)
}

func TestRatingDistribution_Empty(t *testing.T) {
	buckets := service.RatingDistribution(nil)
	require.Len(t, buckets, 5)
	for i, bucket := range buckets {
		assert.Equal(t, i+1, bucket.Rating)
		assert.Zero(t, bucket.Count)
		assert.Zero(t, bucket.Percentage)
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "empty", want: 0},
		{name: "exact", ratings: []int{5, 5, 4, 1}, want: 3.8},
		{name: "rounded", ratings: []int{5, 4, 4}, want: 4.3},
		{name: "single", ratings: []int{2}, want: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.AverageRating(reviewsRated(testCase.ratings...)))
		})
	}
}

func TestFeedbackLedger_LoadSortsNewestFirst(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("ListReviews", mock.Anything).Return([]domain.Review{
		{ID: 1, Rating: 5, Date: "2025-10-01"},
		{ID: 3, Rating: 4, Date: "2025-10-12"},
		{ID: 2, Rating: 3, Date: "2025-10-12"},
		{ID: 4, Rating: 2, Date: "2025-09-30"},
	}, nil).Once()

	ledger := service.NewFeedbackLedger(backend, nil, nil)
	list := ledger.Load(context.Background())

	assert.False(t, list.Stale)
	ids := []int{}
	for _, review := range list.Reviews {
		ids = append(ids, review.ID)
	}
	assert.Equal(t, []int{3, 2, 1, 4}, ids)
}

func TestFeedbackLedger_LoadFallsBackToCache(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("ListReviews", mock.Anything).Return(reviewsRated(5, 4), nil).Once()
	backend.On("ListReviews", mock.Anything).Return(nil, domain.NetworkError(errors.New("connection refused"))).Once()

	ledger := service.NewFeedbackLedger(backend, nil, nil)
	first := ledger.Load(context.Background())
	second := ledger.Load(context.Background())

	assert.True(t, second.Stale)
	assert.Equal(t, first.Reviews, second.Reviews)
}

func TestFeedbackLedger_LoadFallsBackToEmpty(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("ListReviews", mock.Anything).Return(nil, domain.NetworkError(errors.New("connection refused"))).Once()

	list := service.NewFeedbackLedger(backend, nil, nil).Load(context.Background())
	assert.True(t, list.Stale)
	assert.NotNil(t, list.Reviews)
	assert.Empty(t, list.Reviews)
}

func TestFeedbackLedger_Submit(t *testing.T) {
	tests := []struct {
		name      string
		req       domain.ReviewRequest
		setupMock func(*mocks.Backend)
		wantErr   string
	}{
		{name: "missing name", req: domain.ReviewRequest{Rating: 5, Comment: "great"}, wantErr: "Please enter your name"},
		{name: "rating too low", req: domain.ReviewRequest{Name: "Ann", Rating: 0, Comment: "meh"}, wantErr: "Rating must be an integer between 1 and 5"},
		{name: "rating too high", req: domain.ReviewRequest{Name: "Ann", Rating: 6, Comment: "wow"}, wantErr: "Rating must be an integer between 1 and 5"},
		{name: "missing comment", req: domain.ReviewRequest{Name: "Ann", Rating: 4, Comment: "  "}, wantErr: "Please enter a comment"},
		{
			name: "created",
			req:  domain.ReviewRequest{Name: "Ann", Rating: 4, Comment: "Lovely"},
			setupMock: func(backend *mocks.Backend) {
				backend.On("CreateReview", mock.Anything, domain.ReviewRequest{Name: "Ann", Rating: 4, Comment: "Lovely"}).
					Return(&domain.Review{ID: 10, Name: "Ann", Rating: 4, Comment: "Lovely", Date: "2025-10-13"}, nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := mocks.NewBackend(t)
			backend.On("ListReviews", mock.Anything).Return(reviewsRated(5), nil).Once()
			if testCase.setupMock != nil {
				testCase.setupMock(backend)
			}
			ledger := service.NewFeedbackLedger(backend, nil, nil)
			ledger.Load(context.Background())

			review, err := ledger.Submit(context.Background(), nil, testCase.req)
			if testCase.wantErr != "" {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.EqualError(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, review.ID)

			backend.On("ListReviews", mock.Anything).Return(nil, errors.New("down")).Once()
			list := ledger.Load(context.Background())
			require.Len(t, list.Reviews, 2)
			assert.Equal(t, 10, list.Reviews[0].ID, "new review is shown first")
		})
	}
}

func TestFeedbackLedger_GuestSubmissionsGuardedPerName(t *testing.T) {
	stores := newRedisStores(t)
	backend := mocks.NewBackend(t)
	_, ok, err := stores.guard.Acquire(context.Background(), "submit:review:guest:ann")
	require.NoError(t, err)
	require.True(t, ok)

	backend.On("CreateReview", mock.Anything, domain.ReviewRequest{Name: "Bob", Rating: 5, Comment: "Great"}).
		Return(&domain.Review{ID: 11, Name: "Bob", Rating: 5, Comment: "Great", Date: "2025-10-13"}, nil).Once()

	ledger := service.NewFeedbackLedger(backend, stores.guard, nil)
	review, err := ledger.Submit(context.Background(), nil, domain.ReviewRequest{Name: "Bob", Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, 11, review.ID)

	_, err = ledger.Submit(context.Background(), nil, domain.ReviewRequest{Name: " Ann ", Rating: 4, Comment: "Again"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFeedbackLedger_DeleteMissing(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("ListReviews", mock.Anything).Return(reviewsRated(5, 4, 3), nil).Once()
	backend.On("DeleteReview", mock.Anything, 2).Return(nil).Once()
	backend.On("DeleteReview", mock.Anything, 2).
		Return(&domain.Error{Kind: domain.KindNotFound, Message: "Review not found", Status: 404}).Once()
	backend.On("ListReviews", mock.Anything).Return(nil, errors.New("down")).Once()

	ledger := service.NewFeedbackLedger(backend, nil, nil)
	ledger.Load(context.Background())

	require.NoError(t, ledger.Delete(context.Background(), 2))
	err := ledger.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list := ledger.Load(context.Background())
	ids := []int{}
	for _, review := range list.Reviews {
		ids = append(ids, review.ID)
	}
	assert.Equal(t, []int{3, 1}, ids)
}

func TestFeedbackLedger_Summary(t *testing.T) {
	backend := mocks.NewBackend(t)
	stats := &domain.ReviewStats{TotalReviews: 4, AverageRating: 3.8, RatingDistribution: map[string]int{"5": 2, "4": 1, "1": 1}}
	backend.On("ListReviews", mock.Anything).Return(reviewsRated(5, 5, 4, 1), nil).Once()
	backend.On("Stats", mock.Anything).Return(stats, nil).Once()

	summary := service.NewFeedbackLedger(backend, nil, nil).Summary(context.Background())
	assert.Equal(t, 3.8, summary.AverageRating)
	assert.Len(t, summary.Distribution, 5)
	assert.Equal(t, stats, summary.Backend)
}
