package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jurisdesk/case-tracker/internal/api/metrics"
	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

// PetitionHandler handles HTTP requests for shared petition documents.
type PetitionHandler struct {
	service ports.PetitionService
}

func NewPetitionHandler(service ports.PetitionService) *PetitionHandler {
	return &PetitionHandler{service: service}
}

// Create handles POST /api/petitions.
//
// @Summary      Create a petition
// @Tags         petitions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPetitionRequest  true  "Petition details"
// @Success      201   {object}  petitionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/petitions [post]
func (h *PetitionHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createPetitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "payload inválido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreatePetitionInput{
		Title:         req.Title,
		Body:          req.Body,
		ProcessNumber: req.ProcessNumber,
		AuthorID:      user.ID,
		AuthorName:    user.Name,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("petition").Inc()
	return c.JSON(http.StatusCreated, toPetitionResponse(created))
}

// List handles GET /api/petitions. Petitions are shared: the listing is not
// filtered by author.
//
// @Summary      List petitions
// @Tags         petitions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPetitionsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/petitions [get]
func (h *PetitionHandler) List(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	petitions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]petitionResponse, 0, len(petitions))
	for _, p := range petitions {
		items = append(items, toPetitionResponse(p))
	}
	return c.JSON(http.StatusOK, listPetitionsResponse{Data: items})
}

// Get handles GET /api/petitions/:id.
//
// @Summary      Get a petition
// @Tags         petitions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Petition id"
// @Success      200  {object}  petitionResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/petitions/{id} [get]
func (h *PetitionHandler) Get(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	petition, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPetitionResponse(petition))
}

// Update handles PUT /api/petitions/:id.
//
// @Summary      Update a petition
// @Tags         petitions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Petition id"
// @Param        body  body      updatePetitionRequest  true  "Fields to update"
// @Success      200   {object}  petitionResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/petitions/{id} [put]
func (h *PetitionHandler) Update(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	var req updatePetitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "payload inválido"})
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdatePetitionInput{
		ID:            c.Param("id"),
		Title:         req.Title,
		Body:          req.Body,
		ProcessNumber: req.ProcessNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPetitionResponse(updated))
}

// Delete handles DELETE /api/petitions/:id.
//
// @Summary      Delete a petition
// @Tags         petitions
// @Security     BearerAuth
// @Param        id  path  string  true  "Petition id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/petitions/{id} [delete]
func (h *PetitionHandler) Delete(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toPetitionResponse(p *domain.Petition) petitionResponse {
	return petitionResponse{
		ID:            p.ID,
		Title:         p.Title,
		Body:          p.Body,
		ProcessNumber: p.ProcessNumber,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
