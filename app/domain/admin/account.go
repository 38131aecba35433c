package admin

import (
	"context"
	"time"
)

// Account is a dashboard administrator. Admins are provisioned from the
// environment at startup, never self-registered.
type Account struct {
	ID           uint
	PublicID     string
	Name         string
	Email        string
	Enabled      bool
	PasswordHash string
	CreatedAt    time.Time
}

type AccountFilter struct {
	Email    *string
	PublicID *string
	Enabled  *bool
}

type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	Update(ctx context.Context, a *Account) error
	FindFirst(ctx context.Context, filter AccountFilter) (*Account, error)
	FindByFilter(ctx context.Context, filter AccountFilter) ([]*Account, error)
}
