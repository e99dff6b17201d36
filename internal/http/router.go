package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
)

func NewRouter(
	registry *Registry,
	catalogRepo catalog.Repository,
	authManager *auth.Manager,
	publisher events.Publisher,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.CORS(corsOrigins))

	r.Get("/health", healthHandler)

	catalogHandler := NewCatalogHandler(catalogRepo)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{productId}", catalogHandler.GetProduct)
	})

	authHandler := NewAuthHandler(authManager)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
	})

	cartHandler := NewCartHandler(registry, catalogRepo, publisher)
	r.Route("/api/cart/{userId}", func(r chi.Router) {
		r.Use(middleware.SessionGuard(authManager))
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productId}", cartHandler.UpdateItem)
		r.Delete("/items/{productId}", cartHandler.RemoveItem)
		r.Post("/checkout", cartHandler.Checkout)
	})

	selectionHandler := NewSelectionHandler(registry, catalogRepo)
	r.Route("/api/selection/{userId}", func(r chi.Router) {
		r.Use(middleware.SessionGuard(authManager))
		r.Get("/", selectionHandler.Get)
		r.Post("/", selectionHandler.Select)
		r.Put("/quantity", selectionHandler.SetQuantity)
		r.Post("/increment", selectionHandler.Increment)
		r.Post("/decrement", selectionHandler.Decrement)
		r.Delete("/", selectionHandler.Clear)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront-service",
	})
}
