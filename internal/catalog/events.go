package catalog

// ProductSnapshot is the read-model entry for one product: the payload of the
// last event seen for that key.
type ProductSnapshot struct {
	ProductID     int64   `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Category      string  `json:"category"`
}

// ProductEvent is the wire shape consumed from the product-events topic.
type ProductEvent struct {
	EventType     string  `json:"eventType"`
	ProductID     int64   `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Category      string  `json:"category"`
}

const (
	eventCreated = "CREATED"
	eventUpdated = "UPDATED"
	eventDeleted = "DELETED"
)
