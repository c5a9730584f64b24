package api

import (
	"net/http"
	_ "pricesplash/docs"
	"pricesplash/internal/platform/metrics"
	pricehandler "pricesplash/internal/price/handler"
	splashhandler "pricesplash/internal/splash/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

// NewPriceRouter serves /prices and answers everything else with 404.
// Routing is by path only, so every method on /prices is served.
func NewPriceRouter(priceHandler *pricehandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(metrics.Instrument("prices"))

	router.HandleFunc("/prices", priceHandler.GetPrices)
	router.NotFound(priceHandler.NotFound)
	router.MethodNotAllowed(priceHandler.NotFound)
	return router
}

// NewSplashRouter refuses every request.
func NewSplashRouter(splashHandler *splashhandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(metrics.Instrument("splash"))

	router.HandleFunc("/*", splashHandler.Deny)
	router.NotFound(splashHandler.Deny)
	router.MethodNotAllowed(splashHandler.Deny)
	return router
}

// NewOpsRouter exposes health, metrics and API docs on the internal listener.
func NewOpsRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	return router
}
