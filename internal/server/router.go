package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shopcart/internal/infrastructure/httpx"
)

type ProductController interface {
	HandleGetAllProducts(w http.ResponseWriter, r *http.Request)
}

type ReserveController interface {
	HandleGetOrder(w http.ResponseWriter, r *http.Request)
	HandleReserve(w http.ResponseWriter, r *http.Request)
}

// Pinger reports database liveness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewRouter(products ProductController, reserves ReserveController, db Pinger, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httpx.TraceID)
	r.Use(httpx.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler(db, logger))

	r.Route("/cart", func(r chi.Router) {
		r.Get("/getAllProducts", products.HandleGetAllProducts)
		r.Get("/getOrder/{reserveId}", reserves.HandleGetOrder)
		r.Post("/reserve", reserves.HandleReserve)
	})

	return r
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthHandler(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"}, logger)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"}, logger)
	}
}
