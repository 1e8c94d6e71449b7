package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jurisdesk/case-tracker/internal/api/metrics"
	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

// ProcessHandler handles HTTP requests for process records.
type ProcessHandler struct {
	service ports.ProcessService
}

func NewProcessHandler(service ports.ProcessService) *ProcessHandler {
	return &ProcessHandler{service: service}
}

// Create handles POST /api/processes.
//
// @Summary      Create a process
// @Tags         processes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProcessRequest  true  "Process details"
// @Success      201   {object}  processResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/processes [post]
func (h *ProcessHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createProcessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "payload inválido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateProcessInput{
		Number:  req.Number,
		Court:   req.Court,
		Subject: req.Subject,
		Status:  req.Status,
		OwnerID: user.ID,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("process").Inc()
	return c.JSON(http.StatusCreated, toProcessResponse(created))
}

// List handles GET /api/processes, scoped to the authenticated owner.
//
// @Summary      List own processes
// @Tags         processes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProcessesResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/processes [get]
func (h *ProcessHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	processes, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	items := make([]processResponse, 0, len(processes))
	for _, p := range processes {
		items = append(items, toProcessResponse(p))
	}
	return c.JSON(http.StatusOK, listProcessesResponse{Data: items})
}

// Get handles GET /api/processes/:id.
//
// @Summary      Get a process
// @Tags         processes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Process id"
// @Success      200  {object}  processResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/processes/{id} [get]
func (h *ProcessHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	process, err := h.service.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProcessResponse(process))
}

// Update handles PUT /api/processes/:id.
//
// @Summary      Update a process
// @Tags         processes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Process id"
// @Param        body  body      updateProcessRequest  true  "Fields to update"
// @Success      200   {object}  processResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/processes/{id} [put]
func (h *ProcessHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateProcessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "payload inválido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateProcessInput{
		ID:      c.Param("id"),
		Number:  req.Number,
		Court:   req.Court,
		Subject: req.Subject,
		Status:  req.Status,
		OwnerID: user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProcessResponse(updated))
}

// Delete handles DELETE /api/processes/:id.
//
// @Summary      Delete a process
// @Tags         processes
// @Security     BearerAuth
// @Param        id  path  string  true  "Process id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/processes/{id} [delete]
func (h *ProcessHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProcessResponse(p *domain.Process) processResponse {
	return processResponse{
		ID:        p.ID,
		Number:    p.Number,
		Court:     p.Court,
		Subject:   p.Subject,
		Status:    string(p.Status),
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
