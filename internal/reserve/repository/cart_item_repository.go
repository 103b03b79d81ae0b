package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopcart/internal/domain"
	apperrors "shopcart/internal/errors"
	"shopcart/internal/infrastructure/mysql"
)

type MySQLCartItemRepository struct {
	db *sql.DB
}

func NewMySQLCartItemRepository(db *sql.DB) *MySQLCartItemRepository {
	return &MySQLCartItemRepository{db: db}
}

func (r *MySQLCartItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.CartItem) (int64, error) {
	query := `INSERT INTO cart_items (reserve_id, product_id, quantity) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, item.ReserveID, item.ProductID, item.Quantity)
	if mysql.IsForeignKeyViolation(err) {
		return 0, apperrors.NewValidationError("unknown product in cart", apperrors.ValidationDetail{
			Field:   "cartItems",
			Message: fmt.Sprintf("product %d does not exist", item.ProductID),
		})
	}
	if err != nil {
		return 0, fmt.Errorf("inserting cart item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}

// FindByReserveID returns the reserve's items in insertion order, each with
// its product embedded.
func (r *MySQLCartItemRepository) FindByReserveID(ctx context.Context, reserveID int64) ([]domain.CartItem, error) {
	query := `
		SELECT ci.id, ci.reserve_id, ci.product_id, ci.quantity,
		       p.id, p.name, p.description, p.price, p.created_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.reserve_id = ?
		ORDER BY ci.id
	`

	rows, err := r.db.QueryContext(ctx, query, reserveID)
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var (
			item        domain.CartItem
			product     domain.Product
			description sql.NullString
		)
		err := rows.Scan(
			&item.ID, &item.ReserveID, &item.ProductID, &item.Quantity,
			&product.ID, &product.Name, &description, &product.Price, &product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning cart item row: %w", err)
		}
		product.Description = description.String
		item.Product = &product
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart item rows: %w", err)
	}

	return items, nil
}
