package kafka

import "time"

// ProductChangedEvent notifies downstream consumers (storefront cache,
// dashboard) that a product was created, updated or deleted.
type ProductChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	SKU       string    `json:"sku,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PromotionChangedEvent notifies consumers that a promotion changed; cached
// prices for the product should be considered stale.
type PromotionChangedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	PromotionID uint      `json:"promotion_id"`
	ProductID   uint      `json:"product_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated   = "catalog.product.created"
	EventTypeProductUpdated   = "catalog.product.updated"
	EventTypeProductDeleted   = "catalog.product.deleted"
	EventTypePromotionChanged = "catalog.promotion.changed"
)

// Kafka topics
const (
	TopicProductEvents   = "catalog-product-events"
	TopicPromotionEvents = "catalog-promotion-events"
)
