package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart/internal/domain"
)

type mockRepository struct {
	FindByEmailFunc func(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error)
	InsertFunc      func(ctx context.Context, tx *sql.Tx, customer domain.Customer) (int64, error)
}

func (m *mockRepository) FindByEmail(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error) {
	return m.FindByEmailFunc(ctx, tx, email)
}

func (m *mockRepository) Insert(ctx context.Context, tx *sql.Tx, customer domain.Customer) (int64, error) {
	return m.InsertFunc(ctx, tx, customer)
}

func TestFindCustomerByEmail_PassesThrough(t *testing.T) {
	svc := NewService(&mockRepository{
		FindByEmailFunc: func(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error) {
			return &domain.Customer{ID: 1, Name: "Ana", Email: email}, nil
		},
	})

	customer, err := svc.FindCustomerByEmail(context.Background(), nil, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", customer.Email)
}

func TestSave_ReturnsCustomerWithID(t *testing.T) {
	svc := NewService(&mockRepository{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, customer domain.Customer) (int64, error) {
			return 9, nil
		},
	})

	saved, err := svc.Save(context.Background(), nil, domain.Customer{Name: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	assert.Equal(t, &domain.Customer{ID: 9, Name: "Ana", Email: "ana@x.com"}, saved)
}

func TestSave_Error(t *testing.T) {
	svc := NewService(&mockRepository{
		InsertFunc: func(ctx context.Context, tx *sql.Tx, customer domain.Customer) (int64, error) {
			return 0, errors.New("insert failed")
		},
	})

	saved, err := svc.Save(context.Background(), nil, domain.Customer{Name: "Ana"})
	assert.Nil(t, saved)
	assert.EqualError(t, err, "insert failed")
}
