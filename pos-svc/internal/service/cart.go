package service

import (
	"context"
	"fmt"

	"restaurant-pos/pos-svc/internal/domain"
)

const TaxRate = 0.10

// Cart is the line list of one point-of-sale session. Lines never hold a
// quantity below one.
type Cart struct {
	lines []domain.CartLine
}

func NewCart(lines []domain.CartLine) *Cart {
	c := &Cart{}
	for _, line := range lines {
		if line.Quantity > 0 {
			c.lines = append(c.lines, line)
		}
	}
	return c
}

func (c *Cart) AddItem(item domain.CatalogItem) {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
}

// ChangeQuantity adds delta to the line for itemID. A line that drops to zero
// or below is removed. Unknown ids are ignored.
func (c *Cart) ChangeQuantity(itemID, delta int) {
	for i := range c.lines {
		if c.lines[i].ItemID != itemID {
			continue
		}
		quantity := c.lines[i].Quantity + delta
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = quantity
		return
	}
}

func (c *Cart) RemoveItem(itemID int) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Totals() domain.Totals {
	return ComputeTotals(c.lines)
}

func ComputeTotals(lines []domain.CartLine) domain.Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	tax := subtotal * TaxRate
	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// CartService keeps one cart per staff session in a CartStore so stateless
// requests from the same terminal share it.
type CartService struct {
	store   CartStore
	catalog *Catalog
}

func NewCartService(store CartStore, catalog *Catalog) *CartService {
	return &CartService{store: store, catalog: catalog}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*Cart, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return NewCart(lines), nil
}

func (s *CartService) Add(ctx context.Context, sessionID string, itemID int) (*Cart, error) {
	item, err := s.catalog.Lookup(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, sessionID, func(c *Cart) { c.AddItem(item) })
}

func (s *CartService) ChangeQuantity(ctx context.Context, sessionID string, itemID, delta int) (*Cart, error) {
	return s.update(ctx, sessionID, func(c *Cart) { c.ChangeQuantity(itemID, delta) })
}

func (s *CartService) Remove(ctx context.Context, sessionID string, itemID int) (*Cart, error) {
	return s.update(ctx, sessionID, func(c *Cart) { c.RemoveItem(itemID) })
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *CartService) update(ctx context.Context, sessionID string, mutate func(*Cart)) (*Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	mutate(cart)
	if err := s.store.Save(ctx, sessionID, cart.Lines()); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}
