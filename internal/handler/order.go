package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/monish-s03/grokart-api/internal/domain/order"
)

// OrderService is the minimal interface needed by the order endpoints.
type OrderService interface {
	Create(ctx context.Context, req order.CreateRequest) (*order.CreateResult, error)
	ListByEmail(ctx context.Context, email string) ([]order.Order, error)
	Cancel(ctx context.Context, id string) (*order.CancelResult, error)
}

type createOrderRequest struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
	UserID      string   `json:"userId"`
	UserEmail   string   `json:"userEmail"`
	Quantity    int      `json:"quantity"`
}

// orderResponse mirrors the wire format the storefront frontend consumes,
// including the document-style "_id" field.
type orderResponse struct {
	ID          string    `json:"_id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Image       string    `json:"image,omitempty"`
	Price       float64   `json:"price"`
	UserID      string    `json:"userId,omitempty"`
	UserEmail   string    `json:"userEmail"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

type createOrderResponse struct {
	Message string        `json:"message"`
	Order   orderResponse `json:"order"`
}

func toOrderResponse(o order.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Image:       o.Image,
		Price:       o.Price.InexactFloat64(),
		UserID:      o.UserID,
		UserEmail:   o.UserEmail,
		Quantity:    o.Quantity,
		CreatedAt:   o.CreatedAt,
	}
}

// HandleCreateOrder returns the handler for POST /api/orders.
func HandleCreateOrder(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var price *decimal.Decimal
		if req.Price != nil {
			d := decimal.NewFromFloat(*req.Price)
			price = &d
		}

		res, err := svc.Create(r.Context(), order.CreateRequest{
			ProductID:   req.ProductID,
			ProductName: req.ProductName,
			Image:       req.Image,
			Price:       price,
			UserID:      req.UserID,
			UserEmail:   req.UserEmail,
			Quantity:    req.Quantity,
		})
		if err != nil {
			var vErr *order.ValidationError
			if errors.As(err, &vErr) {
				writeMessage(w, http.StatusBadRequest, "Missing fields")
				return
			}
			writeServerError(w, r, err)
			return
		}

		msg := "Order saved"
		if res.NotificationErr == nil {
			msg = "Order saved & email sent"
		}
		writeJSON(w, http.StatusCreated, createOrderResponse{
			Message: msg,
			Order:   toOrderResponse(*res.Order),
		})
	}
}

// HandleListOrders returns the handler for GET /api/orders/{email}.
//
// The route requires no authentication: the original system exposed purchase
// history to anyone who knows the purchaser's address, and its clients
// depend on that. Each hit is logged so the gap stays visible in operation.
func HandleListOrders(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.PathValue("email")

		orders, err := svc.ListByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, order.ErrInvalidEmail) {
				writeMessage(w, http.StatusBadRequest, "Invalid email")
				return
			}
			writeServerError(w, r, err)
			return
		}

		zctx.From(r.Context()).Info("unauthenticated order listing",
			zap.String("user_email", email),
			zap.Int("count", len(orders)),
		)

		resp := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, toOrderResponse(o))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleCancelOrder returns the handler for DELETE /api/orders/{id}.
func HandleCancelOrder(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		res, err := svc.Cancel(r.Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Order not found")
				return
			}
			writeServerError(w, r, err)
			return
		}

		msg := "Order cancelled"
		if res.NotificationErr == nil {
			msg = "Order cancelled & email sent"
		}
		writeMessage(w, http.StatusOK, msg)
	}
}
