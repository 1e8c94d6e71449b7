package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing field", domain.ErrMissingField, http.StatusBadRequest, "campos obrigatórios ausentes"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "e-mail já cadastrado"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "credenciais inválidas"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Muitas tentativas de login"},
		{"token missing", domain.ErrTokenMissing, http.StatusUnauthorized, "Token ausente"},
		{"token invalid", domain.ErrTokenInvalid, http.StatusUnauthorized, "Token inválido"},
		{"subject gone", domain.ErrSubjectGone, http.StatusUnauthorized, "Usuário não encontrado"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "acesso negado"},
		{"process not found", domain.ErrProcessNotFound, http.StatusNotFound, "processo não encontrado"},
		{"petition not found", domain.ErrPetitionNotFound, http.StatusNotFound, "petição não encontrada"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection refused to 10.0.0.3"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "erro interno do servidor" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Token ausente"))
	if code != http.StatusUnauthorized || msg != "Token ausente" {
		t.Fatalf("expected 401 Token ausente, got %d %q", code, msg)
	}
}
