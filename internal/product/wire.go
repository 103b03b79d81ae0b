package product

import (
	"database/sql"

	"shopcart/internal/product/controller"
	"shopcart/internal/product/repository"
	"shopcart/internal/product/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	return controller.NewController(NewService(db), logger)
}

// NewService exposes the product service for callers outside HTTP, such as
// the seed command.
func NewService(db *sql.DB) *service.ProductService {
	return service.NewService(repository.NewMySQLRepository(db))
}
