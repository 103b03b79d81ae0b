package controller

import (
	"context"
	"net/http"

	"shopcart/internal/domain"
	"shopcart/internal/dto"
	apperrors "shopcart/internal/errors"
	"shopcart/internal/infrastructure/httpx"
	"shopcart/internal/infrastructure/logger"

	"go.uber.org/zap"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
}

type Controller struct {
	service ProductService
	logger  *zap.Logger
}

func NewController(service ProductService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleGetAllProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), c.logger)

	products, err := c.service.GetAllProducts(r.Context())
	if err != nil {
		if ie, ok := apperrors.IsInternalError(err); ok {
			log.Error("get all products failed", zap.String("reason", ie.Message), zap.NamedError("cause", ie.Cause))
		} else {
			log.Error("get all products failed", zap.Error(err))
		}
		httpx.WriteJSON(w, http.StatusInternalServerError,
			dto.NewErrorResponse[[]dto.ProductDTO]("an unexpected error occurred"), c.logger)
		return
	}

	out := dto.NewProductDTOs(products)
	log.Debug("products listed", zap.Int("count", len(out)))
	httpx.WriteJSON(w, http.StatusOK, dto.NewResponse(&out), c.logger)
}
