package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/config"
	httpapi "restaurant-pos/pos-svc/internal/api/http"
	"restaurant-pos/pos-svc/internal/client"
	"restaurant-pos/pos-svc/internal/service"
	"restaurant-pos/pos-svc/internal/storage"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[pos-svc] load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()
	journal := storage.NewPostgresJournal(db)
	if err := journal.EnsureSchema(ctx); err != nil {
		log.Fatalf("[pos-svc] ensure journal schema: %v", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()
	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	backend := client.New(cfg.BackendURL, &http.Client{Timeout: cfg.RequestTimeout})
	activity := service.NewActivity(storage.NewKafkaPublisher(writer), journal)
	handler := newHandler(cfg, backend, rdb, activity)

	go service.NewConsumer(reader, handler.Catalog).Start(ctx)

	srv := httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[pos-svc] shutdown: %v", err)
	}
	log.Println("[pos-svc] stopped")
}

func newHandler(cfg config.Config, backend *client.Client, rdb *redis.Client, activity *service.Activity) *httpapi.Handler {
	sessions := storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
	carts := storage.NewRedisCartStore(rdb, cfg.SessionTTL)
	snapshots := storage.NewRedisSnapshotStore(rdb, cfg.CatalogTTL)
	guard := storage.NewRedisSubmitGuard(rdb, cfg.SubmitLockTTL)

	catalog := service.NewCatalog(backend, snapshots, activity, cfg.CatalogTTL)
	cartService := service.NewCartService(carts, catalog)

	return &httpapi.Handler{
		Auth:         service.NewAuthService(backend, sessions, carts),
		Catalog:      catalog,
		Carts:        cartService,
		Orders:       service.NewOrderBuilder(backend, cartService, guard, activity),
		Bills:        service.NewBillGenerator(backend, guard, activity, service.FeedbackQR{BaseURL: cfg.FeedbackBaseURL}),
		Reservations: service.NewReservationManager(backend, guard, activity),
		Feedback:     service.NewFeedbackLedger(backend, guard, activity),
		Activity:     activity,
		Backend:      backend,
	}
}
