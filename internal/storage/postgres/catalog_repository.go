package postgres

import (
	"context"
	"fmt"

	"github.com/Magupe09/auth-prueba/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListProducts returns every product with its ingredients and the
// current per-variant price list, ordered by product id.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `SELECT product_id, name, image FROM products ORDER BY product_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	index := make(map[int64]int)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		return nil, nil
	}

	if err := r.attachIngredients(ctx, products, index); err != nil {
		return nil, err
	}
	if err := r.attachPrices(ctx, products, index); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) attachIngredients(ctx context.Context, products []domain.Product, index map[int64]int) error {
	const query = `SELECT product_id, ingredient FROM product_ingredients ORDER BY product_id, ingredient`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var ingredient string
		if err := rows.Scan(&productID, &ingredient); err != nil {
			return fmt.Errorf("scan ingredient: %w", err)
		}
		if i, ok := index[productID]; ok {
			products[i].Ingredients = append(products[i].Ingredients, ingredient)
		}
	}
	return rows.Err()
}

func (r *CatalogRepository) attachPrices(ctx context.Context, products []domain.Product, index map[int64]int) error {
	const query = `SELECT product_id, variant, unit_price FROM product_prices ORDER BY product_id, variant`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var opt domain.PriceOption
		if err := rows.Scan(&productID, &opt.Variant, &opt.UnitPrice); err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		if i, ok := index[productID]; ok {
			products[i].Prices = append(products[i].Prices, opt)
		}
	}
	return rows.Err()
}
