package orders

const (
	EventCreated = "CREATED"
	EventUpdated = "UPDATED"
	EventDeleted = "DELETED"
)

// OutboundOrderEvent is the wire shape published to the order-events topic.
// Built fresh per mutation, never stored.
type OutboundOrderEvent struct {
	EventType   string  `json:"eventType"`
	OrderID     int64   `json:"orderId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      Status  `json:"status"`
	Timestamp   int64   `json:"timestamp"`
}
