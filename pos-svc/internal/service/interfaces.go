package service

import (
	"context"
	"time"

	"restaurant-pos/pos-svc/internal/client"
	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MenuAPI interface {
	ListMenu(ctx context.Context) ([]domain.CatalogItem, error)
	CreateMenuItem(ctx context.Context, item domain.CatalogItem) (*domain.CatalogItem, error)
	UpdateMenuItem(ctx context.Context, item domain.CatalogItem) (*domain.CatalogItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, orderID domain.ID) error
}

type BillAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID domain.ID) (*domain.Order, error)
	ListBills(ctx context.Context) ([]domain.Bill, error)
	GetBill(ctx context.Context, billID domain.ID) (*domain.Bill, error)
	CreateBill(ctx context.Context, req domain.BillRequest) (*domain.Bill, error)
}

type ReservationAPI interface {
	ListTables(ctx context.Context) ([]domain.Table, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, reservationID domain.ID) error
}

type ReviewAPI interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	CreateReview(ctx context.Context, req domain.ReviewRequest) (*domain.Review, error)
	DeleteReview(ctx context.Context, id int) error
	Stats(ctx context.Context) (*domain.ReviewStats, error)
}

type AuthAPI interface {
	SignIn(ctx context.Context, creds domain.Credentials) (*domain.Employee, error)
	SignUp(ctx context.Context, creds domain.Credentials) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// Backend is everything the services need from the restaurant REST API.
type Backend interface {
	MenuAPI
	OrderAPI
	BillAPI
	ReservationAPI
	ReviewAPI
	AuthAPI
}

type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

type SnapshotStore interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// SubmitGuard keeps a second submission of the same action from running while
// the first one is still waiting for the backend.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type Journal interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
	ListSince(ctx context.Context, since time.Time) ([]domain.JournalEntry, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type QRGenerator interface {
	Generate(billID domain.ID) ([]byte, error)
}

var (
	_ Backend        = (*client.Client)(nil)
	_ SessionStore   = (*storage.RedisSessionStore)(nil)
	_ CartStore      = (*storage.RedisCartStore)(nil)
	_ SnapshotStore  = (*storage.RedisSnapshotStore)(nil)
	_ SubmitGuard    = (*storage.RedisSubmitGuard)(nil)
	_ EventPublisher = (*storage.KafkaPublisher)(nil)
	_ Journal        = (*storage.PostgresJournal)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
	_ QRGenerator    = FeedbackQR{}
)
