package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// AdminHandler serves the admin console: listing management and adoption
// review. Every route is mounted behind RequireAdmin.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type petResponse struct {
	Message string     `json:"message"`
	Pet     domain.Pet `json:"pet"`
}

type adoptionReviewResponse struct {
	Data       []domain.AdoptionRequest `json:"data"`
	Counts     ports.AdoptionCounts     `json:"counts"`
	Pagination paginate.Info            `json:"pagination"`
}

// Pets handles GET /admin/pets.
//
// @Summary      All pet listings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Success      200   {object}  petListResponse
// @Router       /admin/pets [get]
func (h *AdminHandler) Pets(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.service.Pets(c.Request().Context(), sess, queryPage(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, petListResponse{Data: page.Pets, Pagination: page.Pagination})
}

// CreatePet handles POST /admin/pets (multipart, image required).
//
// @Summary      Create a pet listing
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  petResponse
// @Failure      400  {object}  map[string]string
// @Router       /admin/pets [post]
func (h *AdminHandler) CreatePet(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	form, closeImage, err := bindPetForm(c)
	if err != nil {
		return err
	}
	defer closeImage()

	pet, msg, err := h.service.AddPet(c.Request().Context(), sess, form)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, petResponse{Message: msg, Pet: *pet})
}

// UpdatePet handles PUT /admin/pets/:id (multipart, image optional).
//
// @Summary      Update a pet listing
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pet ID"
// @Success      200  {object}  petResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/pets/{id} [put]
func (h *AdminHandler) UpdatePet(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	form, closeImage, err := bindPetForm(c)
	if err != nil {
		return err
	}
	defer closeImage()

	pet, msg, err := h.service.UpdatePet(c.Request().Context(), sess, c.Param("id"), form)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, petResponse{Message: msg, Pet: *pet})
}

// DeletePet handles DELETE /admin/pets/:id.
//
// @Summary      Delete a pet listing
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pet ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/pets/{id} [delete]
func (h *AdminHandler) DeletePet(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msg, err := h.service.RemovePet(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Adoptions handles GET /admin/adoptions, the review board.
//
// @Summary      Review adoption requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter (pending, approved, rejected or all)"
// @Param        page    query     int     false  "Page number (1-based)"
// @Success      200     {object}  adoptionReviewResponse
// @Router       /admin/adoptions [get]
func (h *AdminHandler) Adoptions(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.service.Adoptions(c.Request().Context(), sess, c.QueryParam("status"), queryPage(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adoptionReviewResponse{
		Data:       page.Requests,
		Counts:     page.Counts,
		Pagination: page.Pagination,
	})
}

// Approve handles PUT /admin/adoptions/:id/approve.
//
// @Summary      Approve an adoption request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Adoption request ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/adoptions/{id}/approve [put]
func (h *AdminHandler) Approve(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msg, err := h.service.Approve(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Reject handles PUT /admin/adoptions/:id/reject.
//
// @Summary      Reject an adoption request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Adoption request ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/adoptions/{id}/reject [put]
func (h *AdminHandler) Reject(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	msg, err := h.service.Reject(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// bindPetForm reads the multipart pet form. The image part is optional here;
// the service decides whether its absence is acceptable for the operation.
// The returned closer is always safe to call.
func bindPetForm(c echo.Context) (ports.PetUpload, func(), error) {
	age, _ := strconv.Atoi(c.FormValue("age"))
	form := ports.PetUpload{
		Name:        c.FormValue("name"),
		Species:     c.FormValue("species"),
		Breed:       c.FormValue("breed"),
		Age:         age,
		Gender:      c.FormValue("gender"),
		Description: c.FormValue("description"),
		Status:      c.FormValue("status"),
	}

	fh, err := c.FormFile("image")
	if err != nil {
		// No image part at all.
		return form, func() {}, nil
	}

	src, err := fh.Open()
	if err != nil {
		return form, func() {}, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}

	form.Image = &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: imageContentType(fh),
		Size:        fh.Size,
		Content:     src,
	}
	return form, func() { _ = src.Close() }, nil
}

func imageContentType(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}
