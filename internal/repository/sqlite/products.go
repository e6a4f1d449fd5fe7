package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tkarimov/pricewatch/internal/models"
	"github.com/tkarimov/pricewatch/internal/repository"
)

// CreateProduct inserts a new product. URLs are unique: inserting an
// already-monitored URL returns repository.ErrDuplicateURL.
func (r *Repository) CreateProduct(ctx context.Context, name, url string) (models.Product, error) {
	const opn = "repository.sqlite.CreateProduct"

	var exists int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM products WHERE url = ?", url).Scan(&exists)
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: failed to check for duplicate URL: %w", opn, err)
	}
	if exists > 0 {
		return models.Product{}, repository.ErrDuplicateURL
	}

	res, err := r.db.ExecContext(ctx, "INSERT INTO products (name, url) VALUES (?, ?)", name, url)
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: failed to insert product: %w", opn, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: failed to get inserted id: %w", opn, err)
	}

	return models.Product{ID: id, Name: name, URL: url}, nil
}

// ListProducts returns all monitored products in insertion order.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	const opn = "repository.sqlite.ListProducts"

	rows, err := r.db.QueryContext(ctx, "SELECT id, name, url FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get products: %w", opn, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.URL); err != nil {
			return nil, fmt.Errorf("%s: failed to scan product: %w", opn, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return products, nil
}

// DeleteProduct removes a product by id and returns the deleted record,
// so the caller can evict its cache entry.
func (r *Repository) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	const opn = "repository.sqlite.DeleteProduct"

	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx is the default naming for a transaction
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // after a successful commit the rollback just returns sql.ErrTxDone

	var product models.Product
	err = tx.QueryRowContext(ctx, "SELECT id, name, url FROM products WHERE id = ?", id).
		Scan(&product.ID, &product.Name, &product.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, repository.ErrProductNotFound
		}
		return models.Product{}, fmt.Errorf("%s: failed to get product: %w", opn, err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return models.Product{}, fmt.Errorf("%s: failed to delete product: %w", opn, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Product{}, fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	return product, nil
}
