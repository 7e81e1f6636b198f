package mocks

import (
	"context"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Backend is a mock type for the service.Backend type.
type Backend struct {
	mock.Mock
}

func (_m *Backend) ListMenu(ctx context.Context) ([]domain.CatalogItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.CatalogItem)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) CreateMenuItem(ctx context.Context, item domain.CatalogItem) (*domain.CatalogItem, error) {
	ret := _m.Called(ctx, item)
	var r0 *domain.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.CatalogItem)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) UpdateMenuItem(ctx context.Context, item domain.CatalogItem) (*domain.CatalogItem, error) {
	ret := _m.Called(ctx, item)
	var r0 *domain.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.CatalogItem)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) DeleteMenuItem(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Backend) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) GetOrder(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) DeleteOrder(ctx context.Context, orderID domain.ID) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

func (_m *Backend) ListBills(ctx context.Context) ([]domain.Bill, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Bill
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Bill)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) GetBill(ctx context.Context, billID domain.ID) (*domain.Bill, error) {
	ret := _m.Called(ctx, billID)
	var r0 *domain.Bill
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Bill)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) CreateBill(ctx context.Context, req domain.BillRequest) (*domain.Bill, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Bill
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Bill)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) ListTables(ctx context.Context) ([]domain.Table, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) DeleteReservation(ctx context.Context, reservationID domain.ID) error {
	ret := _m.Called(ctx, reservationID)
	return ret.Error(0)
}

func (_m *Backend) ListReviews(ctx context.Context) ([]domain.Review, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) CreateReview(ctx context.Context, req domain.ReviewRequest) (*domain.Review, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Review)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) DeleteReview(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Backend) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	ret := _m.Called(ctx)
	var r0 *domain.ReviewStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.ReviewStats)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) SignIn(ctx context.Context, creds domain.Credentials) (*domain.Employee, error) {
	ret := _m.Called(ctx, creds)
	var r0 *domain.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Employee)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) SignUp(ctx context.Context, creds domain.Credentials) (*domain.Employee, error) {
	ret := _m.Called(ctx, creds)
	var r0 *domain.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Employee)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Employee)
	}
	return r0, ret.Error(1)
}

// NewBackend creates a new instance of Backend. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *Backend {
	m := &Backend{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
