package mocks

import (
	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// QRGenerator is a mock type for the service.QRGenerator type.
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(billID domain.ID) ([]byte, error) {
	ret := _m.Called(billID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// NewQRGenerator creates a new instance of QRGenerator. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
