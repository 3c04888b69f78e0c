package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicProductCreated is the Watermill topic published when a Product is created.
const TopicProductCreated = "catalog.product.created"

// TopicLikeToggled is the Watermill topic published when a like is set or removed.
const TopicLikeToggled = "catalog.like.toggled"

// ProductCreatedEvent is published after a new Product is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
type ProductCreatedEvent struct {
	EventID     uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int             `json:"version"`  // Schema version; increment on breaking changes
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// LikeToggledEvent is published after a like is created or deleted.
// Liked reflects the state after the mutation.
type LikeToggledEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	UserID     uuid.UUID `json:"user_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Liked      bool      `json:"liked"`
	OccurredAt time.Time `json:"occurred_at"`
}
