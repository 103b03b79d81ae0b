package service

import (
	"context"

	"shopcart/internal/domain"
	apperrors "shopcart/internal/errors"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int64, error)
}

type ProductService struct {
	repo Repository
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("listing products", err)
	}
	return products, nil
}

// Save inserts p and returns it with its generated id.
func (s *ProductService) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id
	return p, nil
}
