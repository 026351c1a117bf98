package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// AdoptionHandler serves the authenticated adopter's flows: submitting an
// application, the dashboard, and withdrawing.
type AdoptionHandler struct {
	service ports.AdoptionService
}

func NewAdoptionHandler(service ports.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{service: service}
}

type submitAdoptionRequest struct {
	PetID string `json:"petId" validate:"required"`
}

type adoptionResponse struct {
	Message  string                 `json:"message"`
	Adoption domain.AdoptionRequest `json:"adoption"`
}

type adoptionListResponse struct {
	Data       []domain.AdoptionRequest `json:"data"`
	Pagination paginate.Info            `json:"pagination"`
}

// Submit handles POST /adoptions.
//
// @Summary      Apply to adopt a pet
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitAdoptionRequest  true  "Pet to adopt"
// @Success      201   {object}  adoptionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /adoptions [post]
func (h *AdoptionHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req submitAdoptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome, err := h.service.Submit(c.Request().Context(), sess, req.PetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, adoptionResponse{
		Message:  outcome.Message,
		Adoption: outcome.Adoption,
	})
}

// Dashboard handles GET /adoptions, the user's own requests.
//
// @Summary      My adoption requests
// @Tags         adoptions
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Success      200   {object}  adoptionListResponse
// @Router       /adoptions [get]
func (h *AdoptionHandler) Dashboard(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.service.Dashboard(c.Request().Context(), sess, queryPage(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adoptionListResponse{Data: page.Requests, Pagination: page.Pagination})
}

// Withdraw handles DELETE /adoptions/:id.
//
// @Summary      Withdraw an adoption request
// @Tags         adoptions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Adoption request ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /adoptions/{id} [delete]
func (h *AdoptionHandler) Withdraw(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msg, err := h.service.Withdraw(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}
