package service

import (
	"context"
	"log"
	"strings"
	"sync"

	"restaurant-pos/pos-svc/internal/domain"
)

const AllStatuses = "All"

// BuildOrderRequest turns cart lines into the order payload. Prices and the
// total stay out of it; the backend computes totalAmount.
func BuildOrderRequest(customerName, phone string, employeeID domain.ID, lines []domain.CartLine) (domain.OrderRequest, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return domain.OrderRequest{}, domain.Validationf("Please enter customer name")
	}

	items := make([]domain.OrderRequestItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		items = append(items, domain.OrderRequestItem{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	if len(items) == 0 {
		return domain.OrderRequest{}, domain.Validationf("Cart is empty")
	}

	if employeeID.Empty() {
		return domain.OrderRequest{}, domain.Validationf("employee id is required")
	}

	return domain.OrderRequest{
		CustomerName: customerName,
		Phone:        strings.TrimSpace(phone),
		EmployeeID:   employeeID,
		Items:        items,
	}, nil
}

// OrderBuilder submits orders and keeps the last confirmed order list. Nothing
// enters that list before the backend has echoed it.
type OrderBuilder struct {
	api      OrderAPI
	carts    *CartService
	guard    SubmitGuard
	activity *Activity

	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderBuilder(api OrderAPI, carts *CartService, guard SubmitGuard, activity *Activity) *OrderBuilder {
	return &OrderBuilder{api: api, carts: carts, guard: guard, activity: activity}
}

func (b *OrderBuilder) Submit(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	return b.api.CreateOrder(ctx, req)
}

// Checkout submits the session cart as an order. The cart is cleared only
// after the backend confirmed the order; failing to clear it is logged and
// the confirmed order is still returned.
func (b *OrderBuilder) Checkout(ctx context.Context, session *domain.Session, customerName, phone string) (*domain.Order, error) {
	if session == nil {
		return nil, domain.Forbiddenf("sign in to place orders")
	}

	cart, err := b.carts.Get(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	req, err := BuildOrderRequest(customerName, phone, session.Employee.ID, cart.Lines())
	if err != nil {
		return nil, err
	}

	var order *domain.Order
	err = guarded(ctx, b.guard, guardKey("order", session, ""), func() error {
		created, err := b.Submit(ctx, req)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := b.carts.Clear(ctx, session.ID); err != nil {
		log.Printf("[pos-svc] order %s confirmed but cart not cleared: %v", order.OrderID, err)
	}
	b.activity.Confirmed(ctx, domain.EventOrderSubmitted, order.OrderID.String(), session.Employee.ID, order.TotalAmount)
	return order, nil
}

func (b *OrderBuilder) Cancel(ctx context.Context, session *domain.Session, orderID domain.ID) error {
	if orderID.Empty() {
		return domain.Validationf("order id is required")
	}
	if err := b.api.DeleteOrder(ctx, orderID); err != nil {
		return err
	}

	b.mu.Lock()
	kept := b.orders[:0:0]
	for _, order := range b.orders {
		if order.OrderID != orderID {
			kept = append(kept, order)
		}
	}
	b.orders = kept
	b.mu.Unlock()

	b.activity.Confirmed(ctx, domain.EventOrderCancelled, orderID.String(), employeeOf(session), 0)
	return nil
}

// List fetches the orders, replaces the local list and filters it by status.
// An empty status or "All" returns every order.
func (b *OrderBuilder) List(ctx context.Context, status string) ([]domain.Order, error) {
	if status != "" && status != AllStatuses && !domain.OrderStatus(status).Valid() {
		return nil, domain.Validationf("unknown order status %q", status)
	}

	orders, err := b.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.orders = orders
	b.mu.Unlock()

	return filterOrders(orders, status), nil
}

func (b *OrderBuilder) Cached() []domain.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

func filterOrders(orders []domain.Order, status string) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if status == "" || status == AllStatuses || string(order.Status) == status {
			out = append(out, order)
		}
	}
	return out
}
