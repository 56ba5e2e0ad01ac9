package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
	domainErrors "github.com/mithaikart/storefront-service/internal/domain/errors"
	"github.com/mithaikart/storefront-service/internal/domain/catalog"
	"github.com/mithaikart/storefront-service/internal/infrastructure/monitoring"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(conn *Connection) *CatalogRepository {
	return &CatalogRepository{
		db: conn.GetDB(),
	}
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	query := `
		SELECT id, name, description, category, price, image_urls, available, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "products", query, id)
	product, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

func (r *CatalogRepository) GetProductsByIDs(ctx context.Context, ids []string) (map[string]*catalog.Product, error) {
	query := `
		SELECT id, name, description, category, price, image_urls, available, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "products", query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[string]*catalog.Product, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products[product.ID] = product
	}

	return products, rows.Err()
}

func (r *CatalogRepository) ListProducts(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	query := `
		SELECT id, name, description, category, price, image_urls, available, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "products", query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product *catalog.Product) error {
	query := `
		INSERT INTO products (id, name, description, category, price, image_urls, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	imageURLs, err := json.Marshal(product.ImageURLs)
	if err != nil {
		return err
	}

	_, err = monitoring.InstrumentExec(ctx, r.db, "INSERT", "products", query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, imageURLs, product.Available, product.CreatedAt, product.UpdatedAt,
	)
	return err
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *catalog.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, price = $5, image_urls = $6, available = $7, updated_at = $8
		WHERE id = $1
	`

	imageURLs, err := json.Marshal(product.ImageURLs)
	if err != nil {
		return err
	}

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "products", query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, imageURLs, product.Available, product.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrProductNotFound
	}

	return nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := monitoring.InstrumentExec(ctx, r.db, "DELETE", "products", query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrProductNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*catalog.Product, error) {
	var product catalog.Product
	var imageURLs []byte

	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Category,
		&product.Price, &imageURLs, &product.Available, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(imageURLs) > 0 {
		if err := json.Unmarshal(imageURLs, &product.ImageURLs); err != nil {
			return nil, err
		}
	}

	return &product, nil
}
