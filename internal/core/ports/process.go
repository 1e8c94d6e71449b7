package ports

import (
	"context"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

// CreateProcessInput carries the data needed to open a new process record.
type CreateProcessInput struct {
	Number  string
	Court   string
	Subject string
	Status  string
	OwnerID string
}

// UpdateProcessInput carries a full replacement of the mutable fields.
// Ownership never changes.
type UpdateProcessInput struct {
	ID      string
	Number  string
	Court   string
	Subject string
	Status  string
	OwnerID string
}

// ProcessRepository defines persistence for process records. Queries that
// take an ownerID must filter by it so a record never leaks across owners.
type ProcessRepository interface {
	Create(ctx context.Context, p *domain.Process) (*domain.Process, error)
	FindByID(ctx context.Context, id string) (*domain.Process, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Process, error)
	Update(ctx context.Context, p *domain.Process) error
	Delete(ctx context.Context, id string) error
}

// ProcessService defines the owner-scoped use cases for processes.
type ProcessService interface {
	Create(ctx context.Context, input CreateProcessInput) (*domain.Process, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Process, error)
	List(ctx context.Context, ownerID string) ([]*domain.Process, error)
	Update(ctx context.Context, input UpdateProcessInput) (*domain.Process, error)
	Delete(ctx context.Context, id, ownerID string) error
}
