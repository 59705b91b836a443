package orders

import (
	"context"
	"net/mail"
	"time"
)

type Order struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	ProductName   string    `json:"productName"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"totalPrice"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateOrderInput struct {
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"totalPrice"`
	CustomerEmail string  `json:"customerEmail,omitempty"`
}

func (in CreateOrderInput) Validate() error {
	if in.ProductID <= 0 {
		return &ValidationError{Field: "productId", Reason: "must be a positive integer"}
	}
	if in.ProductName == "" {
		return &ValidationError{Field: "productName", Reason: "must not be empty"}
	}
	if in.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if in.TotalPrice < 0 {
		return &ValidationError{Field: "totalPrice", Reason: "must not be negative"}
	}
	if in.CustomerEmail != "" {
		if _, err := mail.ParseAddress(in.CustomerEmail); err != nil {
			return &ValidationError{Field: "customerEmail", Reason: "must be a valid email address"}
		}
	}
	return nil
}

// Repository is the durable order store. FindByID returns ErrNotFound when no
// row matches; Create and Save return the row as persisted, including
// server-assigned id and timestamps.
type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	Save(ctx context.Context, o Order) (Order, error)
	Destroy(ctx context.Context, o Order) error
	FindAll(ctx context.Context) ([]Order, error)
}
