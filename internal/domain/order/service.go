package order

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/monish-s03/grokart-api/internal/clock"
)

// CreateRequest holds the input for placing an order. Price uses decimal
// arithmetic end to end; Quantity defaults to 1 when zero or absent, and a
// negative value is a validation error.
type CreateRequest struct {
	ProductID   string
	ProductName string
	Image       string
	Price       *decimal.Decimal
	UserID      string
	UserEmail   string
	Quantity    int
}

// CreateResult separates the primary outcome (the persisted order) from the
// secondary notification outcome. NotificationErr is informational: a failed
// confirmation mail never fails the create.
type CreateResult struct {
	Order           *Order
	NotificationErr error
}

// CancelResult reports a completed cancellation and, separately, whether the
// cancellation mail could be dispatched.
type CancelResult struct {
	Order           *Order
	NotificationErr error
}

// Service orchestrates the order lifecycle: create, list by purchaser,
// cancel. Mail dispatch is best-effort and at-most-once.
type Service struct {
	orders   Repository
	notifier Notifier
	clock    clock.Clock
	lg       *zap.Logger
}

// NewService creates an order Service with the required dependencies.
func NewService(orders Repository, notifier Notifier, clk clock.Clock, lg *zap.Logger) *Service {
	return &Service{
		orders:   orders,
		notifier: notifier,
		clock:    clk,
		lg:       lg,
	}
}

// Create validates the request, persists the order with a server-assigned ID
// and creation time, then attempts the confirmation mail. A persistence
// failure aborts before any mail is attempted; a mail failure is logged and
// reported in the result only.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	o := &Order{
		ID:          uuid.New().String(),
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Image:       req.Image,
		Price:       *req.Price,
		UserID:      req.UserID,
		UserEmail:   req.UserEmail,
		Quantity:    qty,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	result := &CreateResult{Order: o}
	if err := s.notifier.OrderConfirmed(ctx, *o); err != nil {
		s.lg.Warn("confirmation mail failed",
			zap.String("order_id", o.ID),
			zap.String("user_email", o.UserEmail),
			zap.Error(err),
		)
		result.NotificationErr = err
	}
	return result, nil
}

// ListByEmail returns the purchaser's orders, newest first. The literal
// string "undefined" is a frontend serialization bug, not an empty query,
// and is rejected as an input error.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	if email == "" || email == "undefined" {
		return nil, ErrInvalidEmail
	}
	orders, err := s.orders.ListByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

// Cancel looks up the order, attempts the cancellation mail, then hard
// deletes the record. The mail is rendered from the still-present record and
// its failure never blocks the delete. An unknown id returns ErrNotFound
// without touching the mail relay.
func (s *Service) Cancel(ctx context.Context, id string) (*CancelResult, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get order")
	}

	result := &CancelResult{Order: o}
	if err := s.notifier.OrderCancelled(ctx, *o, s.clock.Now()); err != nil {
		s.lg.Warn("cancellation mail failed",
			zap.String("order_id", o.ID),
			zap.String("user_email", o.UserEmail),
			zap.Error(err),
		)
		result.NotificationErr = err
	}

	if err := s.orders.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "delete order")
	}
	return result, nil
}

func validateCreate(req CreateRequest) error {
	var missing []string
	if req.ProductID == "" {
		missing = append(missing, "productId")
	}
	if req.ProductName == "" {
		missing = append(missing, "productName")
	}
	if req.Price == nil {
		missing = append(missing, "price")
	}
	if req.UserEmail == "" {
		missing = append(missing, "userEmail")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	if req.Price.IsNegative() {
		return &ValidationError{Reason: "price must not be negative"}
	}
	if req.Quantity < 0 {
		return &ValidationError{Reason: "quantity must not be negative"}
	}
	return nil
}
