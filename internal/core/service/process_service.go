package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

// ProcessService implements the owner-scoped process use cases. Ownership is
// checked on every read and write: a record belonging to another user is
// reported as forbidden, never returned.
type ProcessService struct {
	repo   ports.ProcessRepository
	logger zerolog.Logger
}

func NewProcessService(repo ports.ProcessRepository, logger zerolog.Logger) *ProcessService {
	return &ProcessService{repo: repo, logger: logger}
}

func (s *ProcessService) Create(ctx context.Context, input ports.CreateProcessInput) (*domain.Process, error) {
	status := domain.ProcessStatus(input.Status)
	if status == "" {
		status = domain.ProcessActive
	}
	if !domain.ValidProcessStatus(status) {
		return nil, domain.ErrMissingField
	}

	now := time.Now().UTC()
	process := &domain.Process{
		Number:    input.Number,
		Court:     input.Court,
		Subject:   input.Subject,
		Status:    status,
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, process)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create process")
		return nil, err
	}

	s.logger.Info().Str("process_id", created.ID).Str("owner_id", input.OwnerID).Msg("process created")
	return created, nil
}

func (s *ProcessService) Get(ctx context.Context, id, ownerID string) (*domain.Process, error) {
	return s.fetchOwned(ctx, id, ownerID)
}

func (s *ProcessService) List(ctx context.Context, ownerID string) ([]*domain.Process, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ProcessService) Update(ctx context.Context, input ports.UpdateProcessInput) (*domain.Process, error) {
	process, err := s.fetchOwned(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" && !domain.ValidProcessStatus(domain.ProcessStatus(input.Status)) {
		return nil, domain.ErrMissingField
	}

	if input.Number != "" {
		process.Number = input.Number
	}
	if input.Court != "" {
		process.Court = input.Court
	}
	if input.Subject != "" {
		process.Subject = input.Subject
	}
	if input.Status != "" {
		process.Status = domain.ProcessStatus(input.Status)
	}
	process.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, process); err != nil {
		s.logger.Error().Err(err).Str("process_id", process.ID).Msg("failed to update process")
		return nil, err
	}
	return process, nil
}

func (s *ProcessService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.fetchOwned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("process_id", id).Msg("failed to delete process")
		return err
	}
	s.logger.Info().Str("process_id", id).Msg("process deleted")
	return nil
}

func (s *ProcessService) fetchOwned(ctx context.Context, id, ownerID string) (*domain.Process, error) {
	process, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if process.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return process, nil
}
