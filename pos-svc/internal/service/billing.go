package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/pos-svc/internal/domain"
)

const receiptRule = "========================================"

// UnbilledOrders returns the orders that no bill references. It is the only
// list a bill may be created from.
func UnbilledOrders(orders []domain.Order, bills []domain.Bill) []domain.Order {
	billed := make(map[domain.ID]struct{}, len(bills))
	for _, bill := range bills {
		billed[bill.OrderID] = struct{}{}
	}
	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if _, ok := billed[order.OrderID]; ok {
			continue
		}
		out = append(out, order)
	}
	return out
}

func RevenueSummary(bills []domain.Bill) domain.RevenueSummary {
	var total float64
	for _, bill := range bills {
		total += bill.Amount
	}
	summary := domain.RevenueSummary{TotalRevenue: total, BillCount: len(bills)}
	if len(bills) > 0 {
		summary.AverageBill = total / float64(len(bills))
	}
	return summary
}

type BillGenerator struct {
	api      BillAPI
	guard    SubmitGuard
	activity *Activity
	qr       QRGenerator
}

func NewBillGenerator(api BillAPI, guard SubmitGuard, activity *Activity, qr QRGenerator) *BillGenerator {
	return &BillGenerator{api: api, guard: guard, activity: activity, qr: qr}
}

// Unbilled fetches orders and bills, one after the other, and returns the
// orders still awaiting a bill.
func (g *BillGenerator) Unbilled(ctx context.Context) ([]domain.Order, error) {
	orders, err := g.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := g.api.ListBills(ctx)
	if err != nil {
		return nil, err
	}
	return UnbilledOrders(orders, bills), nil
}

func (g *BillGenerator) Bills(ctx context.Context) ([]domain.Bill, domain.RevenueSummary, error) {
	bills, err := g.api.ListBills(ctx)
	if err != nil {
		return nil, domain.RevenueSummary{}, err
	}
	return bills, RevenueSummary(bills), nil
}

// CreateBill bills one order. The amount is set by the backend from the
// order total.
func (g *BillGenerator) CreateBill(ctx context.Context, session *domain.Session, orderID domain.ID, method domain.PaymentMethod) (*domain.Bill, error) {
	if orderID.Empty() {
		return nil, domain.Validationf("Please select an order")
	}
	if !method.Valid() {
		return nil, domain.Validationf("unknown payment method %q", method)
	}

	var bill *domain.Bill
	err := guarded(ctx, g.guard, guardKey("bill", session, orderID.String()), func() error {
		unbilled, err := g.Unbilled(ctx)
		if err != nil {
			return err
		}
		if !containsOrder(unbilled, orderID) {
			return domain.Validationf("order %s is not awaiting a bill", orderID)
		}
		created, err := g.api.CreateBill(ctx, domain.BillRequest{OrderID: orderID, PaymentMethod: method})
		if err != nil {
			return err
		}
		bill = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.activity.Confirmed(ctx, domain.EventBillCreated, bill.BillID.String(), employeeOf(session), bill.Amount)
	return bill, nil
}

// Receipt renders the printable bill with its order lines.
func (g *BillGenerator) Receipt(ctx context.Context, billID domain.ID) (string, error) {
	bill, err := g.api.GetBill(ctx, billID)
	if err != nil {
		return "", err
	}
	order, err := g.api.GetOrder(ctx, bill.OrderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	return renderReceipt(bill, order), nil
}

func (g *BillGenerator) ReceiptQR(ctx context.Context, billID domain.ID) ([]byte, error) {
	bill, err := g.api.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	png, err := g.qr.Generate(bill.BillID)
	if err != nil {
		return nil, fmt.Errorf("generate receipt qr for bill %s: %w", bill.BillID, err)
	}
	return png, nil
}

func renderReceipt(bill *domain.Bill, order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintln(&b, receiptRule)
	fmt.Fprintln(&b, "DELICIOUS BITES RESTAURANT")
	fmt.Fprintln(&b, receiptRule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Bill ID: %s\n", bill.BillID)
	fmt.Fprintf(&b, "Order ID: %s\n", bill.OrderID)
	fmt.Fprintf(&b, "Date: %s\n", bill.Date)
	if order != nil && order.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", order.CustomerName)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "----------------------------------------")
	if order == nil || len(order.Items) == 0 {
		fmt.Fprintln(&b, "Items not available")
	} else {
		for _, item := range order.Items {
			name := item.Name
			if name == "" {
				name = fmt.Sprintf("Item #%d", item.ItemID)
			}
			fmt.Fprintf(&b, "%s x%d - %s\n", name, item.Quantity, domain.FormatMoney(item.Price*float64(item.Quantity)))
		}
	}
	fmt.Fprintln(&b, "----------------------------------------")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total Amount: %s\n", domain.FormatMoney(bill.Amount))
	fmt.Fprintf(&b, "Payment Method: %s\n", bill.PaymentMethod)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, receiptRule)
	fmt.Fprintln(&b, "Thank you for dining with us!")
	fmt.Fprintln(&b, receiptRule)
	return b.String()
}

func containsOrder(orders []domain.Order, orderID domain.ID) bool {
	for _, order := range orders {
		if order.OrderID == orderID {
			return true
		}
	}
	return false
}
