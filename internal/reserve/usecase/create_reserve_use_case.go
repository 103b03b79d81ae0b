package usecase

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopcart/internal/domain"
	"shopcart/internal/dto"
	apperrors "shopcart/internal/errors"
	applog "shopcart/internal/infrastructure/logger"
)

// invoiceNumberBound is the exclusive upper bound of generated invoice
// numbers. They are neither unique nor persisted.
const invoiceNumberBound = 1000

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type CustomerService interface {
	FindCustomerByEmail(ctx context.Context, tx *sql.Tx, email string) (*domain.Customer, error)
	Save(ctx context.Context, tx *sql.Tx, customer domain.Customer) (*domain.Customer, error)
}

type ReserveService interface {
	Save(ctx context.Context, tx *sql.Tx, reserve domain.Reserve) (*domain.Reserve, error)
	GetCartAmount(ctx context.Context, tx *sql.Tx, items []domain.CartItem) (decimal.Decimal, error)
}

type CreateReserveUseCase struct {
	db          TransactionManager
	customerSvc CustomerService
	reserveSvc  ReserveService
	logger      *zap.Logger
	txTimeout   time.Duration
	now         func() time.Time
	invoice     func() int
}

func NewCreateReserveUseCase(
	db TransactionManager,
	customerSvc CustomerService,
	reserveSvc ReserveService,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CreateReserveUseCase {
	return &CreateReserveUseCase{
		db:          db,
		customerSvc: customerSvc,
		reserveSvc:  reserveSvc,
		logger:      logger,
		txTimeout:   txTimeout,
		now:         func() time.Time { return time.Now().UTC() },
		invoice:     func() int { return rand.IntN(invoiceNumberBound) },
	}
}

func (uc *CreateReserveUseCase) CreateReserve(ctx context.Context, req dto.ReserveRequest) (*dto.ReserveOutput, error) {
	logger := applog.FromContext(ctx, uc.logger)
	logger.Info("reserve requested",
		zap.String("customerEmail", req.CustomerEmail),
		zap.Int("itemCount", len(req.CartItems)),
	)

	items := make([]domain.CartItem, len(req.CartItems))
	for i, item := range req.CartItems {
		items[i] = domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	saved, amount, err := uc.persist(ctx, req, items, logger)
	if err != nil {
		return nil, err
	}

	output := &dto.ReserveOutput{
		ReserveDescription: req.Description,
		DateTime:           uc.now(),
		InvoiceNumber:      uc.invoice(),
		Amount:             amount.Round(2),
	}
	logger.Info("reserve output created",
		zap.Int64("reserveId", saved.ID),
		zap.Int("invoiceNumber", output.InvoiceNumber),
		zap.String("amount", amount.StringFixed(2)),
	)

	return output, nil
}

// persist runs customer resolution, the reserve insert and the amount as one
// unit of work; any failure rolls all of it back. Read committed lets the
// conflict fallback see a customer committed by a concurrent request.
func (uc *CreateReserveUseCase) persist(ctx context.Context, req dto.ReserveRequest, items []domain.CartItem, logger *zap.Logger) (*domain.Reserve, decimal.Decimal, error) {
	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	tx, err := uc.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return nil, decimal.Zero, apperrors.NewInternalError("beginning reserve transaction", err)
	}
	// No-op once committed.
	defer tx.Rollback()

	customer, err := uc.resolveCustomer(txCtx, tx, req.CustomerName, req.CustomerEmail, logger)
	if err != nil {
		return nil, decimal.Zero, err
	}

	saved, err := uc.reserveSvc.Save(txCtx, tx, domain.Reserve{
		Description: req.Description,
		Customer:    *customer,
		CartItems:   items,
	})
	if err != nil {
		logger.Error("failed to save reserve", zap.Int64("customerId", customer.ID), zap.Error(err))
		return nil, decimal.Zero, err
	}

	amount, err := uc.reserveSvc.GetCartAmount(txCtx, tx, items)
	if err != nil {
		logger.Error("failed to compute cart amount", zap.Int64("reserveId", saved.ID), zap.Error(err))
		return nil, decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Int64("reserveId", saved.ID), zap.Error(err))
		return nil, decimal.Zero, apperrors.NewInternalError("committing reserve transaction", err)
	}
	logger.Info("reserve saved", zap.Int64("reserveId", saved.ID), zap.Int64("customerId", customer.ID))

	return saved, amount, nil
}

func (uc *CreateReserveUseCase) resolveCustomer(ctx context.Context, tx *sql.Tx, name, email string, logger *zap.Logger) (*domain.Customer, error) {
	logger.Debug("finding customer by email", zap.String("customerEmail", email))

	customer, err := uc.customerSvc.FindCustomerByEmail(ctx, tx, email)
	if err == nil {
		logger.Info("customer already exists", zap.Int64("customerId", customer.ID))
		return customer, nil
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		logger.Error("failed to find customer", zap.Error(err))
		return nil, err
	}

	saved, err := uc.customerSvc.Save(ctx, tx, domain.Customer{Name: name, Email: email})
	if err == nil {
		logger.Info("customer saved", zap.Int64("customerId", saved.ID))
		return saved, nil
	}
	if _, ok := apperrors.IsConflictError(err); !ok {
		logger.Error("failed to save customer", zap.Error(err))
		return nil, err
	}

	// Another request inserted the same email after our lookup.
	logger.Warn("customer created concurrently, reusing it", zap.String("customerEmail", email))
	customer, err = uc.customerSvc.FindCustomerByEmail(ctx, tx, email)
	if err != nil {
		logger.Error("failed to reload customer after conflict", zap.Error(err))
		return nil, err
	}
	return customer, nil
}
