package ports

import (
	"context"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// BrowsePetsInput carries the public listing filters and the requested page.
type BrowsePetsInput struct {
	Search  string
	Species string
	Breed   string
	Age     string
	Page    int
}

// PetPage is one page of a pet listing.
type PetPage struct {
	Pets       []domain.Pet
	Pagination paginate.Info
}

// PetService serves the public browsing views. Nothing is cached between
// calls; every page load re-fetches from the upstream.
type PetService interface {
	Browse(ctx context.Context, input BrowsePetsInput) (*PetPage, error)
	Detail(ctx context.Context, id string) (*domain.Pet, error)
	Breeds(ctx context.Context) ([]string, error)
}
