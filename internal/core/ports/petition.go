package ports

import (
	"context"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

// CreatePetitionInput carries the data for a new petition document.
type CreatePetitionInput struct {
	Title         string
	Body          string
	ProcessNumber string
	AuthorID      string
	AuthorName    string
}

// UpdatePetitionInput replaces the mutable fields of a petition.
type UpdatePetitionInput struct {
	ID            string
	Title         string
	Body          string
	ProcessNumber string
}

// PetitionRepository defines persistence for petition documents.
type PetitionRepository interface {
	Create(ctx context.Context, p *domain.Petition) (*domain.Petition, error)
	FindByID(ctx context.Context, id string) (*domain.Petition, error)
	List(ctx context.Context) ([]*domain.Petition, error)
	Update(ctx context.Context, p *domain.Petition) error
	Delete(ctx context.Context, id string) error
}

// PetitionService defines the shared petition use cases. Petitions are not
// owner-scoped: any authenticated user may read or modify any petition.
type PetitionService interface {
	Create(ctx context.Context, input CreatePetitionInput) (*domain.Petition, error)
	Get(ctx context.Context, id string) (*domain.Petition, error)
	List(ctx context.Context) ([]*domain.Petition, error)
	Update(ctx context.Context, input UpdatePetitionInput) (*domain.Petition, error)
	Delete(ctx context.Context, id string) error
}
