package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

const (
	AllCategories = "All"

	catalogSnapshotKey = "catalog:menu"
)

// Catalog caches the menu for the cart and order flows. The list is replaced
// wholesale on every refresh and never edited in place. A cached list older
// than maxAge is reloaded; zero keeps it until invalidated.
type Catalog struct {
	api       MenuAPI
	snapshots SnapshotStore
	activity  *Activity
	maxAge    time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	items    []domain.CatalogItem
	loadedAt time.Time
}

func NewCatalog(api MenuAPI, snapshots SnapshotStore, activity *Activity, maxAge time.Duration) *Catalog {
	return &Catalog{api: api, snapshots: snapshots, activity: activity, maxAge: maxAge, now: time.Now}
}

func (c *Catalog) Refresh(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := c.api.ListMenu(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}

	c.keep(items)

	if c.snapshots != nil {
		if err := c.snapshots.Save(ctx, catalogSnapshotKey, items); err != nil {
			log.Printf("[pos-svc] save catalog snapshot: %v", err)
		}
	}
	return copyItems(items), nil
}

// Items returns the cached menu. An empty cache is filled from the snapshot
// store first and from the backend when no snapshot exists.
func (c *Catalog) Items(ctx context.Context) ([]domain.CatalogItem, error) {
	c.mu.RLock()
	items := c.items
	fresh := c.maxAge <= 0 || c.now().Sub(c.loadedAt) < c.maxAge
	c.mu.RUnlock()
	if items != nil && fresh {
		return copyItems(items), nil
	}

	if c.snapshots != nil {
		var snapshot []domain.CatalogItem
		found, err := c.snapshots.Load(ctx, catalogSnapshotKey, &snapshot)
		if err != nil {
			log.Printf("[pos-svc] load catalog snapshot: %v", err)
		}
		if found && snapshot != nil {
			c.keep(snapshot)
			return copyItems(snapshot), nil
		}
	}

	return c.Refresh(ctx)
}

func (c *Catalog) keep(items []domain.CatalogItem) {
	c.mu.Lock()
	c.items = items
	c.loadedAt = c.now()
	c.mu.Unlock()
}

func (c *Catalog) Lookup(ctx context.Context, id int) (domain.CatalogItem, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return domain.CatalogItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.CatalogItem{}, domain.NotFoundf("menu item %d not found", id)
}

// Categories lists "All" followed by every category in the order it first
// appears in the menu.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	categories := []string{AllCategories}
	seen := make(map[string]bool)
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories, nil
}

func (c *Catalog) Filter(ctx context.Context, category string) ([]domain.CatalogItem, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == AllCategories {
		return items, nil
	}
	filtered := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (c *Catalog) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	if c.snapshots == nil {
		return nil
	}
	if err := c.snapshots.Delete(ctx, catalogSnapshotKey); err != nil {
		return fmt.Errorf("drop catalog snapshot: %w", err)
	}
	return nil
}

func (c *Catalog) Create(ctx context.Context, session *domain.Session, item domain.CatalogItem) (*domain.CatalogItem, error) {
	if err := requireStaff(session, "edit the menu"); err != nil {
		return nil, err
	}
	item = trimItem(item)
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	created, err := c.api.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, err
	}
	c.changed(ctx, session, created.ID)
	return created, nil
}

func (c *Catalog) Update(ctx context.Context, session *domain.Session, item domain.CatalogItem) (*domain.CatalogItem, error) {
	if err := requireStaff(session, "edit the menu"); err != nil {
		return nil, err
	}
	if item.ID <= 0 {
		return nil, domain.Validationf("menu item id is required")
	}
	item = trimItem(item)
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	updated, err := c.api.UpdateMenuItem(ctx, item)
	if err != nil {
		return nil, err
	}
	c.changed(ctx, session, updated.ID)
	return updated, nil
}

func (c *Catalog) Delete(ctx context.Context, session *domain.Session, id int) error {
	if err := requireStaff(session, "edit the menu"); err != nil {
		return err
	}
	if err := c.api.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	c.changed(ctx, session, id)
	return nil
}

func (c *Catalog) changed(ctx context.Context, session *domain.Session, id int) {
	if err := c.Invalidate(ctx); err != nil {
		log.Printf("[pos-svc] invalidate catalog after change to item %d: %v", id, err)
	}
	c.activity.Confirmed(ctx, domain.EventMenuChanged, strconv.Itoa(id), employeeOf(session), 0)
}

func trimItem(item domain.CatalogItem) domain.CatalogItem {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	item.Description = strings.TrimSpace(item.Description)
	return item
}

func validateMenuItem(item domain.CatalogItem) error {
	switch {
	case item.Name == "":
		return domain.Validationf("Item name is required")
	case item.Category == "":
		return domain.Validationf("Category is required")
	case item.Description == "":
		return domain.Validationf("Description is required")
	case item.Price <= 0:
		return domain.Validationf("Price must be greater than 0")
	}
	return nil
}

func copyItems(items []domain.CatalogItem) []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(items))
	copy(out, items)
	return out
}
