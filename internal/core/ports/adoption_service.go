package ports

import (
	"context"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// AdoptionPage is one page of the user's own adoption requests.
type AdoptionPage struct {
	Requests   []domain.AdoptionRequest
	Pagination paginate.Info
}

// AdoptionService serves the authenticated user's adoption flows.
type AdoptionService interface {
	Submit(ctx context.Context, sess domain.Session, petID string) (*AdoptionOutcome, error)
	Dashboard(ctx context.Context, sess domain.Session, page int) (*AdoptionPage, error)
	Withdraw(ctx context.Context, sess domain.Session, adoptionID string) (string, error)
}
