package service_test

import (
	"testing"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	cashier  = &domain.Session{ID: "s-cashier", Employee: domain.Employee{ID: "7", Email: "cash@bistro.test", Role: domain.RoleCashier}}
	admin    = &domain.Session{ID: "s-admin", Employee: domain.Employee{ID: "1", Email: "admin@bistro.test", Role: domain.RoleAdmin}}
	customer = &domain.Session{ID: "s-customer", Employee: domain.Employee{ID: "42", Email: "guest@bistro.test", Role: domain.RoleCustomer}}

	pizza = domain.CatalogItem{ID: 1, Name: "Pizza", Category: "Pizza", Price: 12.99, Description: "Classic"}
	cola  = domain.CatalogItem{ID: 2, Name: "Cola", Category: "Drinks", Price: 2.50, Description: "Cold"}
	pasta = domain.CatalogItem{ID: 3, Name: "Pasta", Category: "Pasta", Price: 10.00, Description: "Fresh"}
	salad = domain.CatalogItem{ID: 4, Name: "Salad", Category: "Pizza", Price: 7.00, Description: "Side"}
)

type redisStores struct {
	mr        *miniredis.Miniredis
	sessions  *storage.RedisSessionStore
	carts     *storage.RedisCartStore
	snapshots *storage.RedisSnapshotStore
	guard     *storage.RedisSubmitGuard
}

func newRedisStores(t *testing.T) redisStores {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisStores{
		mr:        mr,
		sessions:  storage.NewRedisSessionStore(client, time.Hour),
		carts:     storage.NewRedisCartStore(client, time.Hour),
		snapshots: storage.NewRedisSnapshotStore(client, time.Minute),
		guard:     storage.NewRedisSubmitGuard(client, 30*time.Second),
	}
}
