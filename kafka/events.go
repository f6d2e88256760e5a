package kafka

import "time"

// SaleItemEvent is one billed line inside a sale event
type SaleItemEvent struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// SaleCompletedEvent represents one completed checkout
type SaleCompletedEvent struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	TransactionID string          `json:"transaction_id"`
	CustomerName  string          `json:"customer_name"`
	Items         []SaleItemEvent `json:"items"`
	TotalPrice    string          `json:"total_price"`
	GST           string          `json:"gst"`
	FinalPrice    string          `json:"final_price"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleCompleted = "sale.completed"
)

// Kafka topics
const (
	TopicSaleCompleted = "sale-completed"
)
