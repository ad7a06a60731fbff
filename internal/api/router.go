package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/couponhub/payment/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/orders", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateOrder)
			r.Get("/{orderId}", h.Order)
			r.Post("/{orderId}/slips", h.SubmitSlip)
		})

		r.Route("/merchants", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/{merchant_id}/orders", h.Orders)
		})

		r.Route("/callbacks", func(r chi.Router) {
			r.Use(mw.SlipCallbackIPWL)
			r.Post("/slip", h.SlipCallback)
		})

		r.Route("/internal", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/orders/{orderId}/cancel", h.CancelOrder)
		})
	})

	return mux
}
