package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

type stubProcessRepo struct {
	processes map[string]*domain.Process
	nextID    int
}

func newStubProcessRepo() *stubProcessRepo {
	return &stubProcessRepo{processes: make(map[string]*domain.Process)}
}

func (r *stubProcessRepo) Create(_ context.Context, p *domain.Process) (*domain.Process, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.processes[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubProcessRepo) FindByID(_ context.Context, id string) (*domain.Process, error) {
	if p, ok := r.processes[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProcessNotFound
}

func (r *stubProcessRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Process, error) {
	var out []*domain.Process
	for _, p := range r.processes {
		if p.OwnerID == ownerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProcessRepo) Update(_ context.Context, p *domain.Process) error {
	if _, ok := r.processes[p.ID]; !ok {
		return domain.ErrProcessNotFound
	}
	clone := *p
	r.processes[p.ID] = &clone
	return nil
}

func (r *stubProcessRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.processes[id]; !ok {
		return domain.ErrProcessNotFound
	}
	delete(r.processes, id)
	return nil
}

func TestProcessService_Create_DefaultStatus(t *testing.T) {
	svc := NewProcessService(newStubProcessRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProcessInput{
		Number:  "0001234-56.2025.8.26.0100",
		Court:   "TJSP",
		Subject: "Cobrança",
		OwnerID: "u1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.ProcessActive {
		t.Fatalf("expected default status %s, got %s", domain.ProcessActive, created.Status)
	}
	if created.OwnerID != "u1" {
		t.Fatalf("owner not recorded: %+v", created)
	}
}

func TestProcessService_Create_InvalidStatus(t *testing.T) {
	svc := NewProcessService(newStubProcessRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProcessInput{
		Number: "123", Status: "bogus", OwnerID: "u1",
	}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for invalid status, got %v", err)
	}
}

func TestProcessService_Get_EnforcesOwnership(t *testing.T) {
	repo := newStubProcessRepo()
	svc := NewProcessService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProcessInput{Number: "1", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID, "u2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other owner, got %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID, "u1"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
}

func TestProcessService_List_ScopedToOwner(t *testing.T) {
	repo := newStubProcessRepo()
	svc := NewProcessService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateProcessInput{Number: "1", OwnerID: "u1"})
	_, _ = svc.Create(context.Background(), ports.CreateProcessInput{Number: "2", OwnerID: "u1"})
	_, _ = svc.Create(context.Background(), ports.CreateProcessInput{Number: "3", OwnerID: "u2"})

	list, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 processes for u1, got %d", len(list))
	}
	for _, p := range list {
		if p.OwnerID != "u1" {
			t.Fatalf("leaked process from owner %s", p.OwnerID)
		}
	}
}

func TestProcessService_Update_PartialAndForbidden(t *testing.T) {
	repo := newStubProcessRepo()
	svc := NewProcessService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateProcessInput{
		Number: "1", Court: "TJSP", Subject: "Original", OwnerID: "u1",
	})

	updated, err := svc.Update(context.Background(), ports.UpdateProcessInput{
		ID: created.ID, Subject: "Revisado", Status: string(domain.ProcessArchived), OwnerID: "u1",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Subject != "Revisado" || updated.Status != domain.ProcessArchived {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Number != "1" || updated.Court != "TJSP" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), ports.UpdateProcessInput{
		ID: created.ID, Subject: "x", OwnerID: "u2",
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProcessService_Delete(t *testing.T) {
	repo := newStubProcessRepo()
	svc := NewProcessService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateProcessInput{Number: "1", OwnerID: "u1"})

	if err := svc.Delete(context.Background(), created.ID, "u2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "u1"); !errors.Is(err, domain.ErrProcessNotFound) {
		t.Fatalf("expected ErrProcessNotFound, got %v", err)
	}
}
