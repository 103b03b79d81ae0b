package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopcart/internal/domain"
	apperrors "shopcart/internal/errors"
)

type MySQLReserveRepository struct {
	db *sql.DB
}

func NewMySQLReserveRepository(db *sql.DB) *MySQLReserveRepository {
	return &MySQLReserveRepository{db: db}
}

// FindByID loads the reserve joined with its customer. Cart items are loaded
// separately by MySQLCartItemRepository.
func (r *MySQLReserveRepository) FindByID(ctx context.Context, id int64) (*domain.Reserve, error) {
	query := `
		SELECT r.id, r.description, r.created_at, c.id, c.name, c.email
		FROM reserves r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.id = ?
	`

	var (
		reserve     domain.Reserve
		description sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reserve.ID, &description, &reserve.CreatedAt,
		&reserve.Customer.ID, &reserve.Customer.Name, &reserve.Customer.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("reserve with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying reserve by id: %w", err)
	}
	reserve.Description = description.String

	return &reserve, nil
}

func (r *MySQLReserveRepository) Insert(ctx context.Context, tx *sql.Tx, reserve domain.Reserve) (int64, error) {
	query := `INSERT INTO reserves (description, customer_id, created_at) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, reserve.Description, reserve.Customer.ID, reserve.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("inserting reserve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}
