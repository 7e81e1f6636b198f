package service_test

import (
	"bytes"
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

func TestUnbilledOrders(t *testing.T) {
	orders := []domain.Order{{OrderID: "ORD1"}, {OrderID: "ORD2"}, {OrderID: "ORD3"}}
	bills := []domain.Bill{{BillID: "B1", OrderID: "ORD2"}, {BillID: "B2", OrderID: "ORD9"}}

	first := service.UnbilledOrders(orders, bills)
	second := service.UnbilledOrders(orders, bills)

	assert.Equal(t, first, second)
	assert.Equal(t, []domain.Order{{OrderID: "ORD1"}, {OrderID: "ORD3"}}, first)
	for _, order := range first {
		for _, bill := range bills {
			assert.NotEqual(t, bill.OrderID, order.OrderID)
		}
	}

	assert.Empty(t, service.UnbilledOrders(nil, bills))
	assert.Len(t, service.UnbilledOrders(orders, nil), 3)
}

func TestRevenueSummary(t *testing.T) {
	tests := []struct {
		name  string
		bills []domain.Bill
		want  domain.RevenueSummary
	}{
		{
			name: "empty",
			want: domain.RevenueSummary{},
		},
		{
			name:  "two bills",
			bills: []domain.Bill{{Amount: 30}, {Amount: 15.5}},
			want:  domain.RevenueSummary{TotalRevenue: 45.5, BillCount: 2, AverageBill: 22.75},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.RevenueSummary(testCase.bills))
		})
	}
}

func TestBillGenerator_SecondBillRejected(t *testing.T) {
	stores := newRedisStores(t)
	backend := mocks.NewBackend(t)
	order := domain.Order{OrderID: "ORD1", CustomerName: "Ann", TotalAmount: 30, Status: domain.OrderServed}
	bill := domain.Bill{BillID: "B1", OrderID: "ORD1", Amount: 30, PaymentMethod: domain.PaymentCash, Date: "2025-10-12"}

	backend.On("ListOrders", mock.Anything).Return([]domain.Order{order}, nil)
	backend.On("ListBills", mock.Anything).Return([]domain.Bill{}, nil).Twice()
	backend.On("CreateBill", mock.Anything, domain.BillRequest{OrderID: "ORD1", PaymentMethod: domain.PaymentCash}).Return(&bill, nil).Once()
	backend.On("ListBills", mock.Anything).Return([]domain.Bill{bill}, nil)

	generator := service.NewBillGenerator(backend, stores.guard, nil, nil)
	ctx := context.Background()

	unbilled, err := generator.Unbilled(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Order{order}, unbilled)

	created, err := generator.CreateBill(ctx, cashier, "ORD1", domain.PaymentCash)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, created.Amount, 1e-9)

	_, err = generator.CreateBill(ctx, cashier, "ORD1", domain.PaymentCreditCard)
	assert.ErrorIs(t, err, domain.ErrValidation)

	unbilled, err = generator.Unbilled(ctx)
	require.NoError(t, err)
	assert.Empty(t, unbilled)
}

func TestBillGenerator_CreateBillValidation(t *testing.T) {
	tests := []struct {
		name    string
		orderID domain.ID
		method  domain.PaymentMethod
	}{
		{name: "no order", orderID: "", method: domain.PaymentCash},
		{name: "unknown method", orderID: "ORD1", method: "cheque"},
		{name: "empty method", orderID: "ORD1", method: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := mocks.NewBackend(t)
			generator := service.NewBillGenerator(backend, nil, nil, nil)

			_, err := generator.CreateBill(context.Background(), cashier, testCase.orderID, testCase.method)
			assert.ErrorIs(t, err, domain.ErrValidation)
			backend.AssertNotCalled(t, "ListOrders", mock.Anything)
		})
	}
}

func TestBillGenerator_CreateBillConflictFromServer(t *testing.T) {
	backend := mocks.NewBackend(t)
	publisher := mocks.NewEventPublisher(t)
	backend.On("ListOrders", mock.Anything).Return([]domain.Order{{OrderID: "ORD1", Status: domain.OrderServed}}, nil).Once()
	backend.On("ListBills", mock.Anything).Return([]domain.Bill{}, nil).Once()
	backend.On("CreateBill", mock.Anything, mock.Anything).
		Return(nil, &domain.Error{Kind: domain.KindConflict, Message: "Order already billed", Status: 409}).Once()

	generator := service.NewBillGenerator(backend, nil, service.NewActivity(publisher, nil), nil)
	_, err := generator.CreateBill(context.Background(), cashier, "ORD1", domain.PaymentDebitCard)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, "Order already billed")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestBillGenerator_Receipt(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("GetBill", mock.Anything, domain.ID("B1")).
		Return(&domain.Bill{BillID: "B1", OrderID: "ORD1", Amount: 28.58, PaymentMethod: domain.PaymentCash, Date: "2025-10-12"}, nil).Once()
	backend.On("GetOrder", mock.Anything, domain.ID("ORD1")).
		Return(&domain.Order{OrderID: "ORD1", CustomerName: "Ann", Items: []domain.OrderItem{{ItemID: 1, Name: "Pizza", Quantity: 2, Price: 12.99}}}, nil).Once()

	generator := service.NewBillGenerator(backend, nil, nil, nil)
	receipt, err := generator.Receipt(context.Background(), "B1")
	require.NoError(t, err)

	assert.Contains(t, receipt, "Bill ID: B1")
	assert.Contains(t, receipt, "Customer: Ann")
	assert.Contains(t, receipt, "Pizza x2 - $25.98")
	assert.Contains(t, receipt, "Total Amount: $28.58")
	assert.Contains(t, receipt, "Payment Method: cash")
}

func TestBillGenerator_ReceiptWithoutOrder(t *testing.T) {
	backend := mocks.NewBackend(t)
	backend.On("GetBill", mock.Anything, domain.ID("B1")).
		Return(&domain.Bill{BillID: "B1", OrderID: "ORD1", Amount: 10, PaymentMethod: domain.PaymentMobilePayment}, nil).Once()
	backend.On("GetOrder", mock.Anything, domain.ID("ORD1")).
		Return(nil, &domain.Error{Kind: domain.KindNotFound, Message: "Order not found"}).Once()

	generator := service.NewBillGenerator(backend, nil, nil, nil)
	receipt, err := generator.Receipt(context.Background(), "B1")
	require.NoError(t, err)
	assert.Contains(t, receipt, "Items not available")
}

func TestBillGenerator_ReceiptQR(t *testing.T) {
	backend := mocks.NewBackend(t)
	qr := mocks.NewQRGenerator(t)
	backend.On("GetBill", mock.Anything, domain.ID("B1")).Return(&domain.Bill{BillID: "B1", OrderID: "ORD1"}, nil).Once()
	qr.On("Generate", domain.ID("B1")).Return([]byte("png"), nil).Once()

	generator := service.NewBillGenerator(backend, nil, nil, qr)
	png, err := generator.ReceiptQR(context.Background(), "B1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestBillGenerator_ReceiptQRError(t *testing.T) {
	backend := mocks.NewBackend(t)
	qr := mocks.NewQRGenerator(t)
	backend.On("GetBill", mock.Anything, domain.ID("B1")).Return(&domain.Bill{BillID: "B1", OrderID: "ORD1"}, nil).Once()
	qr.On("Generate", domain.ID("B1")).Return(nil, errors.New("encoder failed")).Once()

	generator := service.NewBillGenerator(backend, nil, nil, qr)
	_, err := generator.ReceiptQR(context.Background(), "B1")
	assert.ErrorContains(t, err, "encoder failed")
}

func TestFeedbackQR_Generate(t *testing.T) {
	png, err := service.FeedbackQR{BaseURL: "http://localhost:5173/"}.Generate("B1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = service.FeedbackQR{}.Generate("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
