package ports

import (
	"context"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

// UserRepository is the credential store. Create must be atomic with the
// email uniqueness check: concurrent inserts of the same email may produce at
// most one record, the loser receiving domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
