package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

// ListPets fetches the public listing from GET /pets with the given filters.
func (c *Client) ListPets(ctx context.Context, filter ports.PetFilter) ([]domain.Pet, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Species != "" {
		query.Set("species", filter.Species)
	}
	if filter.Breed != "" {
		query.Set("breed", filter.Breed)
	}
	if filter.Age != "" {
		query.Set("age", filter.Age)
	}

	var resp []wirePet
	if err := c.doJSON(ctx, "pets_list", http.MethodGet, "/pets", query, "", nil, &resp); err != nil {
		return nil, err
	}
	return wirePetsToDomain(resp), nil
}

// GetPet fetches one listing from GET /pets/:id. An upstream 404 surfaces as
// domain.ErrPetNotFound so the detail view can render its not-found state.
func (c *Client) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	var resp wirePet
	if err := c.doJSON(ctx, "pets_get", http.MethodGet, "/pets/"+url.PathEscape(id), nil, "", nil, &resp); err != nil {
		return nil, asNotFound(err, domain.ErrPetNotFound)
	}
	pet := resp.toDomain()
	return &pet, nil
}

// ListBreeds fetches the distinct breed names from GET /pets/breeds.
func (c *Client) ListBreeds(ctx context.Context) ([]string, error) {
	var resp []string
	if err := c.doJSON(ctx, "pets_breeds", http.MethodGet, "/pets/breeds", nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
