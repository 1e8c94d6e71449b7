package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jurisdesk/case-tracker/internal/api/middleware"
	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

type stubProcessService struct {
	createFn func(ctx context.Context, input ports.CreateProcessInput) (*domain.Process, error)
	getFn    func(ctx context.Context, id, ownerID string) (*domain.Process, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.Process, error)
	updateFn func(ctx context.Context, input ports.UpdateProcessInput) (*domain.Process, error)
	deleteFn func(ctx context.Context, id, ownerID string) error
}

func (s *stubProcessService) Create(ctx context.Context, input ports.CreateProcessInput) (*domain.Process, error) {
	return s.createFn(ctx, input)
}

func (s *stubProcessService) Get(ctx context.Context, id, ownerID string) (*domain.Process, error) {
	return s.getFn(ctx, id, ownerID)
}

func (s *stubProcessService) List(ctx context.Context, ownerID string) ([]*domain.Process, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubProcessService) Update(ctx context.Context, input ports.UpdateProcessInput) (*domain.Process, error) {
	return s.updateFn(ctx, input)
}

func (s *stubProcessService) Delete(ctx context.Context, id, ownerID string) error {
	return s.deleteFn(ctx, id, ownerID)
}

func newProcessContext(t *testing.T, method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func TestProcessHandler_Create(t *testing.T) {
	stub := &stubProcessService{
		createFn: func(_ context.Context, input ports.CreateProcessInput) (*domain.Process, error) {
			if input.OwnerID != "u1" {
				t.Fatalf("owner not taken from context: %q", input.OwnerID)
			}
			return &domain.Process{ID: "p1", Number: input.Number, Court: input.Court, Subject: input.Subject, Status: domain.ProcessActive, OwnerID: input.OwnerID}, nil
		},
	}
	handler := NewProcessHandler(stub)

	c, rec := newProcessContext(t, http.MethodPost, "/api/processes",
		`{"number":"0001234-56.2025.8.26.0100","court":"TJSP","subject":"Cobrança"}`,
		&domain.User{ID: "u1"})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "p1" || resp["owner_id"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProcessHandler_Create_ValidationFailure(t *testing.T) {
	handler := NewProcessHandler(&stubProcessService{})

	c, rec := newProcessContext(t, http.MethodPost, "/api/processes",
		`{"court":"TJSP"}`, &domain.User{ID: "u1"})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProcessHandler_Get_ForbiddenPropagates(t *testing.T) {
	stub := &stubProcessService{
		getFn: func(context.Context, string, string) (*domain.Process, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewProcessHandler(stub)

	c, _ := newProcessContext(t, http.MethodGet, "/api/processes/p1", "", &domain.User{ID: "u2"})
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestProcessHandler_List(t *testing.T) {
	stub := &stubProcessService{
		listFn: func(_ context.Context, ownerID string) ([]*domain.Process, error) {
			return []*domain.Process{
				{ID: "p1", Number: "1", OwnerID: ownerID},
				{ID: "p2", Number: "2", OwnerID: ownerID},
			}, nil
		},
	}
	handler := NewProcessHandler(stub)

	c, rec := newProcessContext(t, http.MethodGet, "/api/processes", "", &domain.User{ID: "u1"})

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Data))
	}
}

func TestProcessHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubProcessService{
		deleteFn: func(_ context.Context, id, ownerID string) error {
			deleted = id + ":" + ownerID
			return nil
		},
	}
	handler := NewProcessHandler(stub)

	c, rec := newProcessContext(t, http.MethodDelete, "/api/processes/p1", "", &domain.User{ID: "u1"})
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "p1:u1" {
		t.Fatalf("service called with %q", deleted)
	}
}

func TestProcessHandler_RequiresGate(t *testing.T) {
	handler := NewProcessHandler(&stubProcessService{})

	c, _ := newProcessContext(t, http.MethodGet, "/api/processes", "", nil)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
