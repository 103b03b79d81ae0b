package reserve

import (
	"database/sql"

	"shopcart/internal/binding"
	"shopcart/internal/config"
	customerrepo "shopcart/internal/customer/repository"
	customersvc "shopcart/internal/customer/service"
	productrepo "shopcart/internal/product/repository"
	"shopcart/internal/reserve/controller"
	reserverepo "shopcart/internal/reserve/repository"
	"shopcart/internal/reserve/service"
	"shopcart/internal/reserve/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.Controller {
	reserveRepo := reserverepo.NewMySQLReserveRepository(db)
	cartItemRepo := reserverepo.NewMySQLCartItemRepository(db)
	productRepo := productrepo.NewMySQLRepository(db)
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)

	reserveSvc := service.NewReserveService(reserveRepo, cartItemRepo, productRepo, logger)

	createReserve := usecase.NewCreateReserveUseCase(
		db,
		customersvc.NewService(customerRepo),
		reserveSvc,
		logger,
		cfg.Reserve.TxTimeout,
	)

	return controller.NewController(reserveSvc, createReserve, binding.New(), logger)
}
