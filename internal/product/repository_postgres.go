package product

import (
	"database/sql"
	"sort"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `product_id, name, category, price, old_price, rating, reviews, description, image, license_terms, activations, support, version, popular, featured`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	var oldPrice decimal.NullDecimal
	var image, licenseTerms, activations, support, version sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &oldPrice, &p.Rating, &p.Reviews,
		&p.Description, &image, &licenseTerms, &activations, &support, &version, &p.Popular, &p.Featured)
	if err != nil {
		return Product{}, err
	}
	if oldPrice.Valid {
		p.OldPrice = &oldPrice.Decimal
	}
	p.Image = image.String
	p.LicenseTerms = licenseTerms.String
	p.Activations = activations.String
	p.Support = support.String
	p.Version = version.String
	return p, nil
}

func (r *PostgresRepository) queryProducts(query string, args ...any) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) List() []Product {
	products, err := r.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY product_id`)
	if err != nil {
		return []Product{}
	}
	return products
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByCategory(category string) []Product {
	products, err := r.queryProducts(`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY product_id`, category)
	if err != nil {
		return []Product{}
	}
	return products
}

// ListByIDs returns the products matching ids, ordered to match the input
// slice.
func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	return r.queryProducts(`SELECT `+productColumns+` FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)`, pq.Array(ids))
}

func (r *PostgresRepository) Categories() []string {
	rows, err := r.db.Query(`SELECT DISTINCT category FROM products`)
	if err != nil {
		return []string{}
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			continue
		}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (r *PostgresRepository) Featured() []Product {
	products, err := r.queryProducts(`SELECT ` + productColumns + ` FROM products WHERE featured OR popular ORDER BY product_id`)
	if err != nil {
		return []Product{}
	}
	return products
}
