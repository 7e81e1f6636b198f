package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// SubmitGuard is a mock type for the service.SubmitGuard type.
type SubmitGuard struct {
	mock.Mock
}

func (_m *SubmitGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	ret := _m.Called(ctx, key)
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

func (_m *SubmitGuard) Release(ctx context.Context, key string, token string) error {
	ret := _m.Called(ctx, key, token)
	return ret.Error(0)
}

// NewSubmitGuard creates a new instance of SubmitGuard. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewSubmitGuard(t interface {
	mock.TestingT
	Cleanup(func())
}) *SubmitGuard {
	m := &SubmitGuard{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
