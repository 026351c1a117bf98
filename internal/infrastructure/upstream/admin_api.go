package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

type wirePetResponse struct {
	Message string  `json:"message"`
	Pet     wirePet `json:"pet"`
}

func petFormFields(form ports.PetUpload) map[string]string {
	fields := map[string]string{
		"name":        form.Name,
		"species":     form.Species,
		"breed":       form.Breed,
		"age":         strconv.Itoa(form.Age),
		"gender":      form.Gender,
		"description": form.Description,
	}
	if form.Status != "" {
		fields["status"] = form.Status
	}
	return fields
}

// ListAllPets fetches the full inventory from GET /admin/pets, including
// pending and adopted listings the public endpoint hides.
func (c *Client) ListAllPets(ctx context.Context, token string) ([]domain.Pet, error) {
	var resp []wirePet
	if err := c.doJSON(ctx, "admin_pets_list", http.MethodGet, "/admin/pets", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return wirePetsToDomain(resp), nil
}

// CreatePet adds a listing via POST /admin/pets (multipart, includes image).
func (c *Client) CreatePet(ctx context.Context, token string, form ports.PetUpload) (*domain.Pet, string, error) {
	var resp wirePetResponse
	if err := c.doMultipart(ctx, "admin_pets_create", http.MethodPost, "/admin/pets", token, petFormFields(form), form.Image, &resp); err != nil {
		return nil, "", err
	}
	pet := resp.Pet.toDomain()
	return &pet, resp.Message, nil
}

// UpdatePet edits a listing via PUT /admin/pets/:id. The image part is
// omitted when the picture is unchanged.
func (c *Client) UpdatePet(ctx context.Context, token, petID string, form ports.PetUpload) (*domain.Pet, string, error) {
	var resp wirePetResponse
	err := c.doMultipart(ctx, "admin_pets_update", http.MethodPut, "/admin/pets/"+url.PathEscape(petID), token, petFormFields(form), form.Image, &resp)
	if err != nil {
		return nil, "", asNotFound(err, domain.ErrPetNotFound)
	}
	pet := resp.Pet.toDomain()
	return &pet, resp.Message, nil
}

// DeletePet removes a listing via DELETE /admin/pets/:id.
func (c *Client) DeletePet(ctx context.Context, token, petID string) (string, error) {
	var resp wireMessage
	err := c.doJSON(ctx, "admin_pets_delete", http.MethodDelete, "/admin/pets/"+url.PathEscape(petID), nil, token, nil, &resp)
	if err != nil {
		return "", asNotFound(err, domain.ErrPetNotFound)
	}
	return resp.Message, nil
}

// ListAllAdoptions fetches every adoption request from GET /admin/adoptions.
func (c *Client) ListAllAdoptions(ctx context.Context, token string) ([]domain.AdoptionRequest, error) {
	var resp []wireAdoption
	if err := c.doJSON(ctx, "admin_adoptions_list", http.MethodGet, "/admin/adoptions", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return wireAdoptionsToDomain(resp), nil
}

// ApproveAdoption marks a request approved via PUT /admin/adoptions/:id/approve.
func (c *Client) ApproveAdoption(ctx context.Context, token, adoptionID string) (string, error) {
	var resp wireMessage
	err := c.doJSON(ctx, "admin_adoptions_approve", http.MethodPut, "/admin/adoptions/"+url.PathEscape(adoptionID)+"/approve", nil, token, nil, &resp)
	if err != nil {
		return "", asNotFound(err, domain.ErrAdoptionNotFound)
	}
	return resp.Message, nil
}

// RejectAdoption marks a request rejected via PUT /admin/adoptions/:id/reject.
func (c *Client) RejectAdoption(ctx context.Context, token, adoptionID string) (string, error) {
	var resp wireMessage
	err := c.doJSON(ctx, "admin_adoptions_reject", http.MethodPut, "/admin/adoptions/"+url.PathEscape(adoptionID)+"/reject", nil, token, nil, &resp)
	if err != nil {
		return "", asNotFound(err, domain.ErrAdoptionNotFound)
	}
	return resp.Message, nil
}
