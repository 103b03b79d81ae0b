package service

import (
	"context"
	"database/sql"

	"shopcart/internal/domain"
)

type Repository interface {
	FindByEmail(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error)
	Insert(ctx context.Context, tx *sql.Tx, customer domain.Customer) (int64, error)
}

type CustomerService struct {
	repo Repository
}

func NewService(repo Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

// FindCustomerByEmail returns a NotFoundError when no customer has email.
func (s *CustomerService) FindCustomerByEmail(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error) {
	return s.repo.FindByEmail(ctx, tx, email)
}

func (s *CustomerService) Save(ctx context.Context, tx *sql.Tx, customer domain.Customer) (*domain.Customer, error) {
	id, err := s.repo.Insert(ctx, tx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	return &customer, nil
}
