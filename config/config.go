package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:5000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort string `env:"REDIS_PORT" envDefault:"6379"`

	KafkaBroker string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	EventsTopic string `env:"EVENTS_TOPIC" envDefault:"pos-events"`
	EventsGroup string `env:"EVENTS_GROUP" envDefault:"pos-svc"`
	InstanceID  string `env:"INSTANCE_ID"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"pos"`
	DBUser     string `env:"DB_USER" envDefault:"pos"`
	DBPassword string `env:"DB_PASSWORD"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CatalogTTL      time.Duration `env:"CATALOG_TTL" envDefault:"5m"`
	SubmitLockTTL   time.Duration `env:"SUBMIT_LOCK_TTL" envDefault:"30s"`
	FeedbackBaseURL string        `env:"FEEDBACK_BASE_URL" envDefault:"http://localhost:5173"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// ConsumerGroup is unique per instance so that every instance sees every
// event. It falls back to the hostname, then to a random id.
func (c Config) ConsumerGroup() string {
	instance := c.InstanceID
	if instance == "" {
		instance, _ = os.Hostname()
	}
	if instance == "" {
		instance = uuid.NewString()
	}
	return c.EventsGroup + "-" + instance
}

func MustInitPostgres(cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{cfg.KafkaBroker},
		Topic:       cfg.EventsTopic,
		GroupID:     cfg.ConsumerGroup(),
		StartOffset: kafka.LastOffset,
	})
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.EventsTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
