package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

type wireAdoptionResponse struct {
	Message  string       `json:"message"`
	Adoption wireAdoption `json:"adoption"`
}

type wireMessage struct {
	Message string `json:"message"`
}

// SubmitAdoption applies to adopt a pet via POST /users/adopt.
func (c *Client) SubmitAdoption(ctx context.Context, token, petID string) (*ports.AdoptionOutcome, error) {
	var resp wireAdoptionResponse
	err := c.doJSON(ctx, "adoption_submit", http.MethodPost, "/users/adopt", nil, token, map[string]string{
		"petId": petID,
	}, &resp)
	if err != nil {
		return nil, asNotFound(err, domain.ErrPetNotFound)
	}
	return &ports.AdoptionOutcome{Message: resp.Message, Adoption: resp.Adoption.toDomain()}, nil
}

// ListAdoptions fetches the caller's own requests from GET /users/adoptions.
func (c *Client) ListAdoptions(ctx context.Context, token string) ([]domain.AdoptionRequest, error) {
	var resp []wireAdoption
	if err := c.doJSON(ctx, "adoption_list", http.MethodGet, "/users/adoptions", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return wireAdoptionsToDomain(resp), nil
}

// WithdrawAdoption cancels a pending request via DELETE /users/adoptions/:id.
func (c *Client) WithdrawAdoption(ctx context.Context, token, adoptionID string) (string, error) {
	var resp wireMessage
	err := c.doJSON(ctx, "adoption_withdraw", http.MethodDelete, "/users/adoptions/"+url.PathEscape(adoptionID), nil, token, nil, &resp)
	if err != nil {
		return "", asNotFound(err, domain.ErrAdoptionNotFound)
	}
	return resp.Message, nil
}
