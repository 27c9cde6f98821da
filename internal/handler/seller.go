package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/monish-s03/grokart-api/internal/mail"
)

// MailService is the minimal interface needed by the mail-dispatching
// endpoints that do not touch the order store.
type MailService interface {
	SellerApplication(ctx context.Context, app mail.SellerApplication) error
	TestMessage(ctx context.Context, to, subject, body string) error
}

type sellerApplyRequest struct {
	Name        string `json:"name"`
	ShopName    string `json:"shopName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// HandleSellerApply returns the handler for POST /api/seller/apply. The
// application is forwarded to the operator inbox; unlike order mail this
// dispatch IS the operation, so its failure surfaces as a server error.
func HandleSellerApply(mailer MailService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sellerApplyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := mailer.SellerApplication(r.Context(), mail.SellerApplication{
			Name:        req.Name,
			ShopName:    req.ShopName,
			Email:       req.Email,
			Phone:       req.Phone,
			Description: req.Description,
		})
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Application submitted successfully")
	}
}

type testEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// HandleTestEmail returns the handler for POST /api/test-email, which relays
// a caller-supplied message. Intended for verifying relay credentials.
func HandleTestEmail(mailer MailService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req testEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.To == "" {
			writeMessage(w, http.StatusBadRequest, "Recipient required")
			return
		}

		if err := mailer.TestMessage(r.Context(), req.To, req.Subject, req.Message); err != nil {
			writeServerError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Email sent successfully")
	}
}
