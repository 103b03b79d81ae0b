package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopcart/internal/domain"
	apperrors "shopcart/internal/errors"
	"shopcart/internal/infrastructure/mysql"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByEmail(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error) {
	query := `SELECT id, name, email FROM customers WHERE email = ?`

	var customer domain.Customer
	err := tx.QueryRowContext(ctx, query, email).Scan(&customer.ID, &customer.Name, &customer.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer with email %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by email: %w", err)
	}

	return &customer, nil
}

func (r *MySQLCustomerRepository) Insert(ctx context.Context, tx *sql.Tx, customer domain.Customer) (int64, error) {
	query := `INSERT INTO customers (name, email) VALUES (?, ?)`

	result, err := tx.ExecContext(ctx, query, customer.Name, customer.Email)
	if mysql.IsDuplicateEntry(err) {
		return 0, apperrors.NewConflictError(fmt.Sprintf("customer with email %s already exists", customer.Email))
	}
	if err != nil {
		return 0, fmt.Errorf("inserting customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}
