package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopcart/internal/domain"
	apperrors "shopcart/internal/errors"
)

type ReserveRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Reserve, error)
	Insert(ctx context.Context, tx *sql.Tx, reserve domain.Reserve) (int64, error)
}

type CartItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.CartItem) (int64, error)
	FindByReserveID(ctx context.Context, reserveID int64) ([]domain.CartItem, error)
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, tx *sql.Tx, ids []int64) ([]domain.Product, error)
}

type ReserveService struct {
	reserveRepo  ReserveRepository
	cartItemRepo CartItemRepository
	productRepo  ProductRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewReserveService(
	reserveRepo ReserveRepository,
	cartItemRepo CartItemRepository,
	productRepo ProductRepository,
	logger *zap.Logger,
) *ReserveService {
	return &ReserveService{
		reserveRepo:  reserveRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GetReserveByID returns the reserve with its customer and cart items, or a
// NotFoundError.
func (s *ReserveService) GetReserveByID(ctx context.Context, id int64) (*domain.Reserve, error) {
	reserve, err := s.reserveRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.cartItemRepo.FindByReserveID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading cart items of reserve %d: %w", id, err)
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	reserve.CartItems = items

	return reserve, nil
}

// Save inserts the reserve and its cart items inside tx. The customer must
// already be persisted.
func (s *ReserveService) Save(ctx context.Context, tx *sql.Tx, reserve domain.Reserve) (*domain.Reserve, error) {
	if reserve.CreatedAt.IsZero() {
		reserve.CreatedAt = s.now().Truncate(time.Second)
	}

	id, err := s.reserveRepo.Insert(ctx, tx, reserve)
	if err != nil {
		return nil, err
	}
	reserve.ID = id

	items := make([]domain.CartItem, len(reserve.CartItems))
	for i, item := range reserve.CartItems {
		item.ReserveID = id
		itemID, err := s.cartItemRepo.Insert(ctx, tx, item)
		if err != nil {
			return nil, err
		}
		item.ID = itemID
		items[i] = item
	}
	reserve.CartItems = items

	return &reserve, nil
}

// GetCartAmount sums quantity x current product price over items, reading
// prices inside tx. A product that does not exist fails the whole cart.
func (s *ReserveService) GetCartAmount(ctx context.Context, tx *sql.Tx, items []domain.CartItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, nil
	}

	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, tx, ids)
	if err != nil {
		return decimal.Zero, apperrors.NewInternalError("loading cart products", err)
	}

	byID := make(map[int64]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	total := decimal.Zero
	var missing []apperrors.ValidationDetail
	for i, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			missing = append(missing, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("cartItems[%d].productId", i),
				Message: fmt.Sprintf("product %d does not exist", item.ProductID),
			})
			continue
		}
		item.Product = product
		total = total.Add(item.LineTotal())
	}
	if len(missing) > 0 {
		s.logger.Warn("cart references unknown products", zap.Int("count", len(missing)))
		return decimal.Zero, apperrors.NewValidationError("unknown products in cart", missing...)
	}

	return total, nil
}
