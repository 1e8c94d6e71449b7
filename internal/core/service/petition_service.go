package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

// PetitionService implements the shared petition use cases. Petitions carry
// an author for attribution but are intentionally not owner-scoped.
type PetitionService struct {
	repo   ports.PetitionRepository
	logger zerolog.Logger
}

func NewPetitionService(repo ports.PetitionRepository, logger zerolog.Logger) *PetitionService {
	return &PetitionService{repo: repo, logger: logger}
}

func (s *PetitionService) Create(ctx context.Context, input ports.CreatePetitionInput) (*domain.Petition, error) {
	if input.Title == "" || input.Body == "" {
		return nil, domain.ErrMissingField
	}

	now := time.Now().UTC()
	petition := &domain.Petition{
		Title:         input.Title,
		Body:          input.Body,
		ProcessNumber: input.ProcessNumber,
		AuthorID:      input.AuthorID,
		AuthorName:    input.AuthorName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, petition)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create petition")
		return nil, err
	}

	s.logger.Info().Str("petition_id", created.ID).Str("author_id", input.AuthorID).Msg("petition created")
	return created, nil
}

func (s *PetitionService) Get(ctx context.Context, id string) (*domain.Petition, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PetitionService) List(ctx context.Context) ([]*domain.Petition, error) {
	return s.repo.List(ctx)
}

func (s *PetitionService) Update(ctx context.Context, input ports.UpdatePetitionInput) (*domain.Petition, error) {
	petition, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		petition.Title = input.Title
	}
	if input.Body != "" {
		petition.Body = input.Body
	}
	if input.ProcessNumber != "" {
		petition.ProcessNumber = input.ProcessNumber
	}
	petition.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, petition); err != nil {
		s.logger.Error().Err(err).Str("petition_id", petition.ID).Msg("failed to update petition")
		return nil, err
	}
	return petition, nil
}

func (s *PetitionService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("petition_id", id).Msg("failed to delete petition")
		return err
	}
	s.logger.Info().Str("petition_id", id).Msg("petition deleted")
	return nil
}
