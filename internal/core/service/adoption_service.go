package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

// dashboardPageSize is how many requests the user dashboard shows per page.
const dashboardPageSize = 6

// AdoptionService serves the authenticated user's adoption flows: submitting
// a request, browsing own requests, withdrawing one.
type AdoptionService struct {
	actionGuard
	api ports.AdoptionAPI
}

func NewAdoptionService(api ports.AdoptionAPI, inflight ports.InflightGuard, notifier ports.Notifier, logger zerolog.Logger) *AdoptionService {
	return &AdoptionService{
		actionGuard: actionGuard{inflight: inflight, notifier: notifier, logger: logger},
		api:         api,
	}
}

func (s *AdoptionService) Submit(ctx context.Context, sess domain.Session, petID string) (*ports.AdoptionOutcome, error) {
	if petID == "" {
		return nil, domain.ErrPetNotFound
	}

	release, err := s.claim(ctx, sess.ID, "adopt", petID)
	if err != nil {
		return nil, err
	}
	defer release()

	outcome, err := s.api.SubmitAdoption(ctx, sess.Token, petID)
	if err != nil {
		s.notifyFailure(ctx, sess.ID, err, "Adoption failed. Please try again.")
		return nil, err
	}

	s.notify(ctx, sess.ID, orDefault(outcome.Message, "Adoption request submitted!"), domain.SeveritySuccess)
	s.logger.Info().Str("user_id", sess.User.ID).Str("pet_id", petID).Msg("adoption request submitted")
	return outcome, nil
}

func (s *AdoptionService) Dashboard(ctx context.Context, sess domain.Session, page int) (*ports.AdoptionPage, error) {
	requests, err := s.api.ListAdoptions(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	items, info := paginate.Page(requests, page, dashboardPageSize)
	return &ports.AdoptionPage{Requests: items, Pagination: info}, nil
}

func (s *AdoptionService) Withdraw(ctx context.Context, sess domain.Session, adoptionID string) (string, error) {
	if adoptionID == "" {
		return "", domain.ErrAdoptionNotFound
	}

	release, err := s.claim(ctx, sess.ID, "withdraw", adoptionID)
	if err != nil {
		return "", err
	}
	defer release()

	msg, err := s.api.WithdrawAdoption(ctx, sess.Token, adoptionID)
	if err != nil {
		s.notifyFailure(ctx, sess.ID, err, "Failed to withdraw request.")
		return "", err
	}

	s.notify(ctx, sess.ID, orDefault(msg, "Adoption request withdrawn."), domain.SeveritySuccess)
	return msg, nil
}
