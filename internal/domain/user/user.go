// Package user holds the account records consulted by the admin surface.
package user

import (
	"context"
	"time"
)

// User is an account as exposed by listings. Password material never leaves
// the storage layer; the type has no field for it.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Repository provides read access to user accounts.
type Repository interface {
	List(ctx context.Context) ([]User, error)
}
