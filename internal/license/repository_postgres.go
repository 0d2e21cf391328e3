package license

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateBatch(licenses []License) ([]License, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out := make([]License, 0, len(licenses))
	for _, l := range licenses {
		err := tx.QueryRow(`INSERT INTO licenses
			(order_id, user_id, product_id, product_name, license_key, status, activations, version, expires_at, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			RETURNING license_id`,
			l.OrderID, l.UserID, l.ProductID, l.ProductName, l.Key, l.Status,
			l.Activations, l.Version, l.ExpiresAt, l.CreatedAt).Scan(&l.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]License, error) {
	rows, err := r.db.Query(`SELECT license_id, order_id, user_id, product_id, product_name, license_key, status, activations, version, expires_at, created_at
		FROM licenses WHERE user_id = $1 ORDER BY license_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]License, 0)
	for rows.Next() {
		var l License
		if err := rows.Scan(&l.ID, &l.OrderID, &l.UserID, &l.ProductID, &l.ProductName,
			&l.Key, &l.Status, &l.Activations, &l.Version, &l.ExpiresAt, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
