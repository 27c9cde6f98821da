package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for order operations.
var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidEmail = errors.New("invalid email")
)

// ValidationError indicates that a create request is missing required fields
// or carries an out-of-range value.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing fields: %s", strings.Join(e.Missing, ", "))
	}
	return e.Reason
}

// Order represents one purchased item instance.
type Order struct {
	ID          string
	ProductID   string
	ProductName string
	Image       string
	Price       decimal.Decimal
	UserID      string
	UserEmail   string
	Quantity    int
	CreatedAt   time.Time
}

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByEmail(ctx context.Context, email string) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	DeleteByID(ctx context.Context, id string) error
}

// Notifier dispatches transactional mail for order lifecycle events.
type Notifier interface {
	OrderConfirmed(ctx context.Context, o Order) error
	OrderCancelled(ctx context.Context, o Order, cancelledAt time.Time) error
}
