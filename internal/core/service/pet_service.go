package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// browsePageSize is how many pets the public listing shows per page.
const browsePageSize = 9

// PetService serves the public browsing views over the upstream inventory.
type PetService struct {
	api    ports.PetAPI
	logger zerolog.Logger
}

func NewPetService(api ports.PetAPI, logger zerolog.Logger) *PetService {
	return &PetService{api: api, logger: logger}
}

// Browse fetches the filtered listing and pages it locally. The "All" filter
// values the original UI sends are treated as no filter.
func (s *PetService) Browse(ctx context.Context, input ports.BrowsePetsInput) (*ports.PetPage, error) {
	pets, err := s.api.ListPets(ctx, ports.PetFilter{
		Search:  input.Search,
		Species: normalizeFilter(input.Species),
		Breed:   normalizeFilter(input.Breed),
		Age:     input.Age,
	})
	if err != nil {
		return nil, err
	}

	page, info := paginate.Page(pets, input.Page, browsePageSize)
	return &ports.PetPage{Pets: page, Pagination: info}, nil
}

func (s *PetService) Detail(ctx context.Context, id string) (*domain.Pet, error) {
	if id == "" {
		return nil, domain.ErrPetNotFound
	}
	return s.api.GetPet(ctx, id)
}

func (s *PetService) Breeds(ctx context.Context) ([]string, error) {
	return s.api.ListBreeds(ctx)
}

func normalizeFilter(v string) string {
	if v == "All" {
		return ""
	}
	return v
}
