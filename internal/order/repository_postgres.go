package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	billingJSON, err := json.Marshal(ord.Billing)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders
		(user_id, items, promo_code, subtotal, discount, tax, total, currency, status, payment_status, billing, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING order_id`,
		ord.UserID, itemsJSON, ord.PromoCode, ord.Subtotal, ord.Discount, ord.Tax, ord.Total,
		ord.Currency, ord.Status, ord.PaymentStatus, billingJSON, ord.CreatedAt, ord.UpdatedAt).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(orderID int, status, paymentStatus string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, payment_status = $2 WHERE order_id = $3`,
		status, paymentStatus, orderID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT order_id, user_id, items, promo_code, subtotal, discount, tax, total, currency, status, payment_status, billing, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY order_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var ord Order
		var itemsJSON, billingJSON []byte
		if err := rows.Scan(&ord.OrderID, &ord.UserID, &itemsJSON, &ord.PromoCode,
			&ord.Subtotal, &ord.Discount, &ord.Tax, &ord.Total, &ord.Currency,
			&ord.Status, &ord.PaymentStatus, &billingJSON, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(billingJSON, &ord.Billing); err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}
