package events

import "time"

const (
	EventsExchange         = "storefront.events"
	OrderCreatedRoutingKey = "order.created.v1"
)

// OrderCreated is emitted after an order is persisted, for downstream
// consumers (fulfilment mails, bookkeeping).
type OrderCreated struct {
	EventType string           `json:"eventType"`
	OrderID   int              `json:"orderId"`
	UserID    int              `json:"userId"`
	Items     []OrderItemEvent `json:"items"`
	Total     string           `json:"total"`
	Currency  string           `json:"currency"`
	PromoCode string           `json:"promoCode,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type OrderItemEvent struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}
