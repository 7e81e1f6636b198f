package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  OrderStatus
		to    OrderStatus
		valid bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderServed, false},
		{OrderPreparing, OrderServed, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderPreparing, OrderPending, false},
		{OrderServed, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		{"Unknown", OrderPending, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderServed.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderStatus("Lost").Terminal())
	assert.Equal(t, []OrderStatus{OrderServed, OrderCancelled}, NextStatuses(OrderPreparing))
	assert.Empty(t, NextStatuses(OrderServed))
}

func TestID_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a":17,"b":"ORD1","c":null}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, ID("17"), payload.A)
	assert.Equal(t, ID("ORD1"), payload.B)
	assert.True(t, payload.C.Empty())

	err = json.Unmarshal([]byte(`{"a":true}`), &payload)
	assert.Error(t, err)
}

func TestID_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(BillRequest{OrderID: "42", PaymentMethod: PaymentCash})
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":42,"paymentMethod":"cash"}`, string(out))

	out, err = json.Marshal(BillRequest{OrderID: "ORD1", PaymentMethod: PaymentCash})
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderId":"ORD1","paymentMethod":"cash"}`, string(out))
}

func TestID_MarshalJSONNonCanonicalNumbers(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{name: "leading zeros", id: "007", want: `{"orderId":"007","paymentMethod":"cash"}`},
		{name: "plus sign", id: "+5", want: `{"orderId":"+5","paymentMethod":"cash"}`},
		{name: "negative", id: "-3", want: `{"orderId":-3,"paymentMethod":"cash"}`},
		{name: "zero", id: "0", want: `{"orderId":0,"paymentMethod":"cash"}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			out, err := json.Marshal(BillRequest{OrderID: testCase.id, PaymentMethod: PaymentCash})
			require.NoError(t, err)
			assert.JSONEq(t, testCase.want, string(out))

			var decoded BillRequest
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, testCase.id, decoded.OrderID)
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("reserve: %w", Conflictf("table %d is no longer available", 5))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "reserve: table 5 is no longer available", err.Error())
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))

	netErr := NetworkError(errors.New("dial tcp: connection refused"))
	assert.True(t, errors.Is(netErr, ErrNetwork))
	assert.Equal(t, "dial tcp: connection refused", netErr.Error())
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$28.58", FormatMoney(28.578))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$2.60", FormatMoney(2.598))
}

func TestRole_IsStaff(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleCashier.IsStaff())
	assert.False(t, RoleCustomer.IsStaff())
	assert.False(t, Role("").IsStaff())
}
