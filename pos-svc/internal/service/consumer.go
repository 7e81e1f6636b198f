package service

import (
	"context"
	"encoding/json"
	"log"

	"restaurant-pos/pos-svc/internal/domain"
)

// Consumer follows the event topic so that every terminal drops its menu when
// any of them changes it.
type Consumer struct {
	Reader  MessageReader
	Catalog *Catalog
}

func NewConsumer(reader MessageReader, catalog *Catalog) *Consumer {
	return &Consumer{Reader: reader, Catalog: catalog}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[pos-svc] starting event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[pos-svc] event consumer stopped")
				return
			}
			log.Printf("[pos-svc] read event: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[pos-svc] decode event: %v", err)
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) {
	if event.Type != domain.EventMenuChanged {
		return
	}
	if err := c.Catalog.Invalidate(ctx); err != nil {
		log.Printf("[pos-svc] invalidate catalog for item %s: %v", event.Reference, err)
		return
	}
	log.Printf("[pos-svc] catalog invalidated item=%s", event.Reference)
}
