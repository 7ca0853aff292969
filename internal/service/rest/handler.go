// Package rest реализует HTTP JSON API back-office.
package rest

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/auth"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/customer"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/order"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/product"
)

// Handler объединяет HTTP-обработчики API.
type Handler struct {
	auth      auth.Service
	customers customer.Service
	products  product.Service
	orders    order.Service
	files     domain.FileShare
	logger    *log.Entry
}

// New создаёт HTTP-обработчик API.
func New(
	authSvc auth.Service,
	customers customer.Service,
	products product.Service,
	orders order.Service,
	files domain.FileShare,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "rest")
	}
	return &Handler{
		auth:      authSvc,
		customers: customers,
		products:  products,
		orders:    orders,
		files:     files,
		logger:    logger,
	}
}

// Routes собирает маршруты API. Все маршруты данных требуют
// административной сессии; регистрация и вход открыты.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)

	mux.Handle("POST /api/customers", h.requireAdmin(h.handleCustomerCreate))
	mux.Handle("GET /api/customers", h.requireAdmin(h.handleCustomerList))
	mux.Handle("GET /api/customers/{row}", h.requireAdmin(h.handleCustomerGet))
	mux.Handle("DELETE /api/customers/{row}", h.requireAdmin(h.handleCustomerDelete))

	mux.Handle("POST /api/products", h.requireAdmin(h.handleProductCreate))
	mux.Handle("GET /api/products", h.requireAdmin(h.handleProductList))
	mux.Handle("GET /api/products/{row}", h.requireAdmin(h.handleProductGet))
	mux.Handle("DELETE /api/products/{row}", h.requireAdmin(h.handleProductDelete))

	mux.Handle("POST /api/orders", h.requireAdmin(h.handleOrderCreate))
	mux.Handle("PUT /api/orders/{row}", h.requireAdmin(h.handleOrderEdit))
	mux.Handle("GET /api/orders", h.requireAdmin(h.handleOrderList))
	mux.Handle("GET /api/orders/{row}", h.requireAdmin(h.handleOrderGet))
	mux.Handle("DELETE /api/orders/{row}", h.requireAdmin(h.handleOrderDelete))

	mux.Handle("POST /api/files", h.requireAdmin(h.handleFileUpload))
	mux.Handle("GET /api/files", h.requireAdmin(h.handleFileList))
	mux.Handle("DELETE /api/files/{name}", h.requireAdmin(h.handleFileDelete))

	return mux
}
