package mocks

import (
	"context"
	"time"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Journal is a mock type for the service.Journal type.
type Journal struct {
	mock.Mock
}

func (_m *Journal) Record(ctx context.Context, entry *domain.JournalEntry) error {
	ret := _m.Called(ctx, entry)
	return ret.Error(0)
}

func (_m *Journal) ListSince(ctx context.Context, since time.Time) ([]domain.JournalEntry, error) {
	ret := _m.Called(ctx, since)
	var r0 []domain.JournalEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.JournalEntry)
	}
	return r0, ret.Error(1)
}

// NewJournal creates a new instance of Journal. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewJournal(t interface {
	mock.TestingT
	Cleanup(func())
}) *Journal {
	m := &Journal{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
