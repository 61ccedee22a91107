package routes

import (
	"net/http"

	"github.com/kvasnikov/workorders/internal/api/handlers"
	"github.com/kvasnikov/workorders/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler  *handlers.UserHandler
	orderHandler *handlers.OrderHandler
	offerHandler *handlers.OfferHandler

	cacheMiddleware *middleware.CacheMiddleware
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	orderHandler *handlers.OrderHandler,
	offerHandler *handlers.OfferHandler,
	cacheMiddleware *middleware.CacheMiddleware,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		userHandler:     userHandler,
		orderHandler:    orderHandler,
		offerHandler:    offerHandler,
		cacheMiddleware: cacheMiddleware,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// User endpoints
	r.mux.HandleFunc("GET /users", r.userHandler.ListUsers)
	r.mux.HandleFunc("POST /users", r.userHandler.CreateUser)
	r.mux.HandleFunc("GET /users/{id}", r.userHandler.GetUser)
	r.mux.HandleFunc("PUT /users/{id}", r.userHandler.UpdateUser)
	r.mux.HandleFunc("DELETE /users/{id}", r.userHandler.DeleteUser)

	// Order endpoints
	r.mux.HandleFunc("GET /orders", r.orderHandler.ListOrders)
	r.mux.HandleFunc("POST /orders", r.orderHandler.CreateOrder)
	r.mux.HandleFunc("GET /orders/{id}", r.orderHandler.GetOrder)
	r.mux.HandleFunc("PUT /orders/{id}", r.orderHandler.UpdateOrder)
	r.mux.HandleFunc("DELETE /orders/{id}", r.orderHandler.DeleteOrder)

	// Offer endpoints
	r.mux.HandleFunc("GET /offers", r.offerHandler.ListOffers)
	r.mux.HandleFunc("POST /offers", r.offerHandler.CreateOffer)
	r.mux.HandleFunc("GET /offers/{id}", r.offerHandler.GetOffer)
	r.mux.HandleFunc("PUT /offers/{id}", r.offerHandler.UpdateOffer)
	r.mux.HandleFunc("DELETE /offers/{id}", r.offerHandler.DeleteOffer)

	// Middleware applied in reverse order (last middleware wraps first).
	// CORS is outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
