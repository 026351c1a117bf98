package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// PetHandler serves the public browsing endpoints. No authentication is
// required for any of them.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

type petListResponse struct {
	Data       []domain.Pet  `json:"data"`
	Pagination paginate.Info `json:"pagination"`
}

type breedsResponse struct {
	Breeds []string `json:"breeds"`
}

// Browse handles GET /pets with optional search, species, breed, age and
// page query parameters.
//
// @Summary      Browse adoptable pets
// @Tags         pets
// @Produce      json
// @Param        search   query     string  false  "Name or breed substring"
// @Param        species  query     string  false  "Species filter"
// @Param        breed    query     string  false  "Breed filter"
// @Param        age      query     string  false  "Age bracket filter"
// @Param        page     query     int     false  "Page number (1-based)"
// @Success      200      {object}  petListResponse
// @Failure      502      {object}  map[string]string
// @Router       /pets [get]
func (h *PetHandler) Browse(c echo.Context) error {
	page, err := h.service.Browse(c.Request().Context(), ports.BrowsePetsInput{
		Search:  c.QueryParam("search"),
		Species: c.QueryParam("species"),
		Breed:   c.QueryParam("breed"),
		Age:     c.QueryParam("age"),
		Page:    queryPage(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, petListResponse{Data: page.Pets, Pagination: page.Pagination})
}

// Detail handles GET /pets/:id.
//
// @Summary      Pet detail
// @Tags         pets
// @Produce      json
// @Param        id   path      string  true  "Pet ID"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  map[string]string
// @Router       /pets/{id} [get]
func (h *PetHandler) Detail(c echo.Context) error {
	pet, err := h.service.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pet)
}

// Breeds handles GET /pets/breeds, feeding the filter dropdown.
//
// @Summary      Known breeds
// @Tags         pets
// @Produce      json
// @Success      200  {object}  breedsResponse
// @Router       /pets/breeds [get]
func (h *PetHandler) Breeds(c echo.Context) error {
	breeds, err := h.service.Breeds(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, breedsResponse{Breeds: breeds})
}

// queryPage parses the page query parameter. Anything unusable means page 1;
// out-of-range values are clamped downstream.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
