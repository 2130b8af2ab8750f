package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Magupe09/auth-prueba/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// WithTx opens the placement transaction at repeatable read so every
// price lookup of one order sees a single catalog snapshot.
func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.RepeatableRead}, fn)
}

func (r *OrderRepository) CreateOrder(ctx context.Context, userID int64, createdAt time.Time) (int64, error) {
	const stmt = `INSERT INTO orders (user_id, created_at) VALUES ($1, $2) RETURNING order_id`

	var orderID int64
	if err := r.queryRow(ctx, stmt, userID, createdAt).Scan(&orderID); err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("create order: %w", err)
	}
	return orderID, nil
}

// LookupPrice resolves the catalog price for an exact (product, variant)
// pair. No fuzzy matching, no default variant.
func (r *OrderRepository) LookupPrice(ctx context.Context, productID int64, variant string) (decimal.Decimal, error) {
	const query = `SELECT unit_price FROM product_prices WHERE product_id = $1 AND variant = $2`

	var price decimal.Decimal
	err := r.queryRow(ctx, query, productID, variant).Scan(&price)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Decimal{}, domain.ErrProductVariantNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("lookup price: %w", err)
	}
	return price, nil
}

func (r *OrderRepository) CreateOrderLine(ctx context.Context, orderID int64, line domain.OrderLine) error {
	const stmt = `
INSERT INTO order_items (order_id, product_id, variant, quantity, price_at_purchase)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.exec(ctx, stmt, orderID, line.ProductID, line.Variant, line.Quantity, line.PriceAtPurchase)
	if err != nil {
		return fmt.Errorf("create order line: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	const query = `
SELECT o.order_id, o.user_id, o.created_at,
       oi.product_id, p.name, oi.variant, oi.quantity, oi.price_at_purchase
FROM orders o
JOIN order_items oi ON oi.order_id = o.order_id
JOIN products p ON p.product_id = oi.product_id
WHERE o.order_id = $1
ORDER BY oi.order_item_id`

	rows, err := r.query(ctx, query, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	defer rows.Close()

	var order domain.Order
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.CreatedAt,
			&line.ProductID, &line.ProductName, &line.Variant, &line.Quantity, &line.PriceAtPurchase,
		); err != nil {
			return domain.Order{}, fmt.Errorf("scan order row: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(order.Lines) == 0 {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListUserOrders returns the user's orders newest first, each with its
// lines grouped from the flat join.
func (r *OrderRepository) ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	const query = `
SELECT o.order_id, o.created_at,
       oi.product_id, p.name, oi.variant, oi.quantity, oi.price_at_purchase
FROM orders o
JOIN order_items oi ON oi.order_id = o.order_id
JOIN products p ON p.product_id = oi.product_id
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.order_id DESC, oi.order_item_id`

	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var orderID int64
		var createdAt time.Time
		var line domain.OrderLine
		if err := rows.Scan(
			&orderID, &createdAt,
			&line.ProductID, &line.ProductName, &line.Variant, &line.Quantity, &line.PriceAtPurchase,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		if len(orders) == 0 || orders[len(orders)-1].ID != orderID {
			orders = append(orders, domain.Order{ID: orderID, UserID: userID, CreatedAt: createdAt})
		}
		last := &orders[len(orders)-1]
		last.Lines = append(last.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`

	var exists bool
	if err := r.queryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}

func (r *OrderRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *OrderRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *OrderRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
