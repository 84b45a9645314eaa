package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	billingctrl "smaug/internal/billing/controller"
	"smaug/internal/catalog"
	"smaug/internal/stock"
)

func NewRouter(
	billingCtrl *billingctrl.BillingController,
	catalogCtrl *catalog.Controller,
	stockCtrl *stock.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/billing", func(r chi.Router) {
			r.Post("/preview", billingCtrl.PreviewBill)
			r.Post("/confirm", billingCtrl.ConfirmBill)
		})

		r.Get("/products/{productID}", catalogCtrl.HandleGetProduct)
		r.Get("/offers/{productID}", catalogCtrl.HandleGetActiveOffer)

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", stockCtrl.HandleListStock)
			r.Get("/low", stockCtrl.HandleLowStock)
		})
	})

	return r
}
