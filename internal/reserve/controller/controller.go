package controller

import (
	"context"
	"net/http"

	"shopcart/internal/binding"
	"shopcart/internal/domain"
	"shopcart/internal/dto"
	apperrors "shopcart/internal/errors"
	"shopcart/internal/infrastructure/httpx"
	"shopcart/internal/infrastructure/logger"

	"go.uber.org/zap"
)

const unexpectedErrorMessage = "an unexpected error occurred"

type ReserveService interface {
	GetReserveByID(ctx context.Context, id int64) (*domain.Reserve, error)
}

type CreateReserveUseCase interface {
	CreateReserve(ctx context.Context, req dto.ReserveRequest) (*dto.ReserveOutput, error)
}

type Controller struct {
	service ReserveService
	useCase CreateReserveUseCase
	binder  *binding.Binder
	logger  *zap.Logger
}

func NewController(service ReserveService, useCase CreateReserveUseCase, binder *binding.Binder, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		useCase: useCase,
		binder:  binder,
		logger:  logger,
	}
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), c.logger)

	id, err := c.binder.PathID(r, "reserveId")
	if err != nil {
		log.Warn("invalid reserveId in path", zap.Error(err))
		writeValidationError[dto.ReserveDTO](w, err, c.logger)
		return
	}

	reserve, err := c.service.GetReserveByID(r.Context(), id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			log.Info("reserve not found", zap.Int64("reserveId", id))
			httpx.WriteJSON(w, http.StatusNotFound, dto.NewErrorResponse[dto.ReserveDTO](), c.logger)
			return
		}
		logFailure(log.With(zap.Int64("reserveId", id)), "get reserve failed", err)
		httpx.WriteJSON(w, http.StatusInternalServerError,
			dto.NewErrorResponse[dto.ReserveDTO](unexpectedErrorMessage), c.logger)
		return
	}

	out := dto.NewReserveDTO(*reserve)
	httpx.WriteJSON(w, http.StatusOK, dto.NewResponse(&out), c.logger)
}

func (c *Controller) HandleReserve(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), c.logger)

	var req dto.ReserveRequest
	if err := c.binder.BindJSON(r, &req); err != nil {
		log.Warn("invalid reserve request", zap.Error(err))
		writeValidationError[dto.ReserveOutput](w, err, c.logger)
		return
	}

	out, err := c.useCase.CreateReserve(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			httpx.WriteJSON(w, http.StatusBadRequest, dto.NewErrorResponse[dto.ReserveOutput](ve.Messages()...), c.logger)
			return
		}
		logFailure(log, "create reserve failed", err)
		httpx.WriteJSON(w, http.StatusInternalServerError,
			dto.NewErrorResponse[dto.ReserveOutput](unexpectedErrorMessage), c.logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewResponse(out), c.logger)
}

// logFailure logs err before a 500. An InternalError is split into its
// message and cause.
func logFailure(log *zap.Logger, msg string, err error) {
	if ie, ok := apperrors.IsInternalError(err); ok {
		log.Error(msg, zap.String("reason", ie.Message), zap.NamedError("cause", ie.Cause))
		return
	}
	log.Error(msg, zap.Error(err))
}

func writeValidationError[T any](w http.ResponseWriter, err error, logger *zap.Logger) {
	msgs := []string{err.Error()}
	if ve, ok := apperrors.IsValidationError(err); ok {
		msgs = ve.Messages()
	}
	httpx.WriteJSON(w, http.StatusBadRequest, dto.NewErrorResponse[T](msgs...), logger)
}
