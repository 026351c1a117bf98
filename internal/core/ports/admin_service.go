package ports

import (
	"context"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// AdoptionCounts are the per-status totals shown on the admin review board.
// They are computed over the full collection, not the current page.
type AdoptionCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// AdoptionReviewPage is one page of the admin adoption review board.
type AdoptionReviewPage struct {
	Requests   []domain.AdoptionRequest
	Counts     AdoptionCounts
	Pagination paginate.Info
}

// AdminService serves the admin console: listing management and adoption
// decisions.
type AdminService interface {
	Pets(ctx context.Context, sess domain.Session, page int) (*PetPage, error)
	AddPet(ctx context.Context, sess domain.Session, form PetUpload) (*domain.Pet, string, error)
	UpdatePet(ctx context.Context, sess domain.Session, petID string, form PetUpload) (*domain.Pet, string, error)
	RemovePet(ctx context.Context, sess domain.Session, petID string) (string, error)
	Adoptions(ctx context.Context, sess domain.Session, status string, page int) (*AdoptionReviewPage, error)
	Approve(ctx context.Context, sess domain.Session, adoptionID string) (string, error)
	Reject(ctx context.Context, sess domain.Session, adoptionID string) (string, error)
}
