// Package handler exposes the REST surface: orders, admin, seller, mail.
package handler

import (
	"net/http"

	"github.com/monish-s03/grokart-api/internal/domain/user"
)

// Deps bundles the services the REST surface depends on.
type Deps struct {
	Orders   OrderService
	Users    user.Repository
	Mailer   MailService
	Verifier TokenVerifier
	Admin    AdminVerifier
}

// NewMux assembles the API routes. Health endpoints are registered by the
// caller on the same mux.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/orders", RequireAuth(d.Verifier, HandleCreateOrder(d.Orders)))
	mux.HandleFunc("GET /api/orders/{email}", HandleListOrders(d.Orders))
	mux.HandleFunc("DELETE /api/orders/{id}", HandleCancelOrder(d.Orders))

	mux.HandleFunc("GET /api/admin/users", RequireAdmin(d.Admin, HandleListUsers(d.Users)))

	mux.HandleFunc("POST /api/seller/apply", HandleSellerApply(d.Mailer))
	mux.HandleFunc("POST /api/test-email", HandleTestEmail(d.Mailer))

	return mux
}
