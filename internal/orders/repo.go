package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the Postgres-backed Repository.
type Repo struct{ DB *pgxpool.Pool }

var _ Repository = (*Repo)(nil)

// EnsureSchema creates the orders table when it does not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id             BIGSERIAL PRIMARY KEY,
			product_id     BIGINT NOT NULL,
			product_name   TEXT NOT NULL,
			quantity       INT NOT NULL CHECK (quantity >= 1),
			total_price    NUMERIC(10,2) NOT NULL CHECK (total_price >= 0),
			customer_email TEXT,
			status         TEXT NOT NULL DEFAULT 'PENDING',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (r *Repo) Create(ctx context.Context, in CreateOrderInput) (Order, error) {
	o := Order{
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		TotalPrice:    in.TotalPrice,
		CustomerEmail: in.CustomerEmail,
		Status:        StatusPending,
	}
	var email *string
	if in.CustomerEmail != "" {
		email = &in.CustomerEmail
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO orders(product_id, product_name, quantity, total_price, customer_email, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		in.ProductID, in.ProductName, in.Quantity, in.TotalPrice, email, StatusPending,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *Repo) FindByID(ctx context.Context, id int64) (Order, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT id, product_id, product_name, quantity, total_price, customer_email, status, created_at, updated_at
		FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *Repo) Save(ctx context.Context, o Order) (Order, error) {
	err := r.DB.QueryRow(ctx, `
		UPDATE orders SET status=$2, updated_at=now()
		WHERE id=$1
		RETURNING updated_at`, o.ID, o.Status,
	).Scan(&o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *Repo) Destroy(ctx context.Context, o Order) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, o.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) FindAll(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, product_id, product_name, quantity, total_price, customer_email, status, created_at, updated_at
		FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var email *string
	err := row.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.Quantity, &o.TotalPrice,
		&email, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	if email != nil {
		o.CustomerEmail = *email
	}
	return o, nil
}
