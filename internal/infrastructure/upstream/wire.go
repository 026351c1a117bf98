package upstream

import (
	"strings"
	"time"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

// Wire types mirror the upstream JSON exactly and are decoded into domain
// entities at this boundary; nothing else in the gateway sees upstream field
// names.

type wireUser struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (w wireUser) toDomain() domain.User {
	role := strings.ToLower(w.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}
	return domain.User{
		ID:       w.ID,
		FullName: w.FullName,
		Email:    w.Email,
		Phone:    w.Phone,
		Role:     role,
	}
}

type wirePet struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (w wirePet) toDomain() domain.Pet {
	return domain.Pet{
		ID:          w.ID,
		Name:        w.Name,
		Species:     w.Species,
		Breed:       w.Breed,
		Age:         w.Age,
		Gender:      w.Gender,
		Description: w.Description,
		Image:       w.Image,
		// The upstream has been seen returning capitalised statuses.
		Status:    domain.PetStatus(strings.ToLower(w.Status)),
		CreatedAt: w.CreatedAt,
	}
}

func wirePetsToDomain(pets []wirePet) []domain.Pet {
	out := make([]domain.Pet, 0, len(pets))
	for _, p := range pets {
		out = append(out, p.toDomain())
	}
	return out
}

type wireApplicant struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type wireAdoptionPet struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Image  string `json:"image"`
	Status string `json:"status"`
}

type wireAdoption struct {
	ID        string          `json:"_id"`
	User      wireApplicant   `json:"user"`
	Pet       wireAdoptionPet `json:"pet"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (w wireAdoption) toDomain() domain.AdoptionRequest {
	return domain.AdoptionRequest{
		ID: w.ID,
		User: domain.Applicant{
			ID:       w.User.ID,
			FullName: w.User.FullName,
			Email:    w.User.Email,
			Phone:    w.User.Phone,
		},
		Pet: domain.AdoptionPet{
			ID:     w.Pet.ID,
			Name:   w.Pet.Name,
			Breed:  w.Pet.Breed,
			Image:  w.Pet.Image,
			Status: domain.PetStatus(strings.ToLower(w.Pet.Status)),
		},
		Status:    domain.AdoptionStatus(strings.ToLower(w.Status)),
		CreatedAt: w.CreatedAt,
	}
}

func wireAdoptionsToDomain(reqs []wireAdoption) []domain.AdoptionRequest {
	out := make([]domain.AdoptionRequest, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.toDomain())
	}
	return out
}
