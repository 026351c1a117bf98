package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
	"github.com/pawhaven/adoption-gateway/pkg/paginate"
)

const (
	// adminPageSize is shared by the pet management and review boards.
	adminPageSize = 8

	// maxImageBytes caps uploaded pet images, matching the original form rule.
	maxImageBytes = 5 << 20
)

// AdminService serves the admin console: pet listing management and adoption
// decisions, all proxied to the upstream admin endpoints.
type AdminService struct {
	actionGuard
	api ports.AdminAPI
}

func NewAdminService(api ports.AdminAPI, inflight ports.InflightGuard, notifier ports.Notifier, logger zerolog.Logger) *AdminService {
	return &AdminService{
		actionGuard: actionGuard{inflight: inflight, notifier: notifier, logger: logger},
		api:         api,
	}
}

func (s *AdminService) Pets(ctx context.Context, sess domain.Session, page int) (*ports.PetPage, error) {
	pets, err := s.api.ListAllPets(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	items, info := paginate.Page(pets, page, adminPageSize)
	return &ports.PetPage{Pets: items, Pagination: info}, nil
}

func (s *AdminService) AddPet(ctx context.Context, sess domain.Session, form ports.PetUpload) (*domain.Pet, string, error) {
	if err := validateImage(form.Image, true); err != nil {
		return nil, "", err
	}

	pet, msg, err := s.api.CreatePet(ctx, sess.Token, form)
	if err != nil {
		s.notifyFailure(ctx, sess.ID, err, "Failed to add pet.")
		return nil, "", err
	}

	s.notify(ctx, sess.ID, orDefault(msg, "Pet added successfully."), domain.SeveritySuccess)
	s.logger.Info().Str("admin_id", sess.User.ID).Str("pet_id", pet.ID).Msg("pet listing created")
	return pet, msg, nil
}

func (s *AdminService) UpdatePet(ctx context.Context, sess domain.Session, petID string, form ports.PetUpload) (*domain.Pet, string, error) {
	if petID == "" {
		return nil, "", domain.ErrPetNotFound
	}
	if err := validateImage(form.Image, false); err != nil {
		return nil, "", err
	}

	pet, msg, err := s.api.UpdatePet(ctx, sess.Token, petID, form)
	if err != nil {
		s.notifyFailure(ctx, sess.ID, err, "Failed to update pet.")
		return nil, "", err
	}

	s.notify(ctx, sess.ID, orDefault(msg, "Pet updated successfully."), domain.SeveritySuccess)
	return pet, msg, nil
}

func (s *AdminService) RemovePet(ctx context.Context, sess domain.Session, petID string) (string, error) {
	if petID == "" {
		return "", domain.ErrPetNotFound
	}

	release, err := s.claim(ctx, sess.ID, "delete_pet", petID)
	if err != nil {
		return "", err
	}
	defer release()

	msg, err := s.api.DeletePet(ctx, sess.Token, petID)
	if err != nil {
		s.notifyFailure(ctx, sess.ID, err, "Failed to delete pet.")
		return "", err
	}

	s.notify(ctx, sess.ID, orDefault(msg, "Pet deleted."), domain.SeveritySuccess)
	s.logger.Info().Str("admin_id", sess.User.ID).Str("pet_id", petID).Msg("pet listing deleted")
	return msg, nil
}

// Adoptions returns one page of the review board. Counts cover the whole
// collection; the optional status filter narrows the paged rows only.
func (s *AdminService) Adoptions(ctx context.Context, sess domain.Session, status string, page int) (*ports.AdoptionReviewPage, error) {
	requests, err := s.api.ListAllAdoptions(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	var counts ports.AdoptionCounts
	for _, r := range requests {
		switch r.Status {
		case domain.AdoptionPending:
			counts.Pending++
		case domain.AdoptionApproved:
			counts.Approved++
		case domain.AdoptionRejected:
			counts.Rejected++
		}
	}

	filtered := requests
	if status != "" && status != "all" {
		filtered = make([]domain.AdoptionRequest, 0, len(requests))
		for _, r := range requests {
			if string(r.Status) == status {
				filtered = append(filtered, r)
			}
		}
	}

	items, info := paginate.Page(filtered, page, adminPageSize)
	return &ports.AdoptionReviewPage{Requests: items, Counts: counts, Pagination: info}, nil
}

func (s *AdminService) Approve(ctx context.Context, sess domain.Session, adoptionID string) (string, error) {
	return s.decide(ctx, sess, adoptionID, "approve")
}

func (s *AdminService) Reject(ctx context.Context, sess domain.Session, adoptionID string) (string, error) {
	return s.decide(ctx, sess, adoptionID, "reject")
}

func (s *AdminService) decide(ctx context.Context, sess domain.Session, adoptionID, decision string) (string, error) {
	if adoptionID == "" {
		return "", domain.ErrAdoptionNotFound
	}

	release, err := s.claim(ctx, sess.ID, decision, adoptionID)
	if err != nil {
		return "", err
	}
	defer release()

	var msg string
	if decision == "approve" {
		msg, err = s.api.ApproveAdoption(ctx, sess.Token, adoptionID)
	} else {
		msg, err = s.api.RejectAdoption(ctx, sess.Token, adoptionID)
	}
	if err != nil {
		s.notifyFailure(ctx, sess.ID, err, "Failed to "+decision+" adoption.")
		return "", err
	}

	if decision == "approve" {
		s.notify(ctx, sess.ID, orDefault(msg, "Adoption approved!"), domain.SeveritySuccess)
	} else {
		s.notify(ctx, sess.ID, orDefault(msg, "Adoption rejected."), domain.SeveritySuccess)
	}
	s.logger.Info().Str("admin_id", sess.User.ID).Str("adoption_id", adoptionID).Str("decision", decision).Msg("adoption decided")
	return msg, nil
}

// validateImage enforces the form rules before anything leaves the gateway:
// images only, at most 5 MB. required distinguishes create (image mandatory)
// from update (image optional).
func validateImage(img *ports.ImageUpload, required bool) error {
	if img == nil {
		if required {
			return domain.ErrInvalidImage
		}
		return nil
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return domain.ErrInvalidImage
	}
	if img.Size > maxImageBytes {
		return domain.ErrInvalidImage
	}
	return nil
}
