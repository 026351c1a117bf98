package ports

import (
	"context"
	"io"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

// Credentials is the login payload forwarded to the upstream API.
type Credentials struct {
	Email    string
	Password string
}

// RegistrationInput is the profile forwarded to the upstream registration
// endpoint.
type RegistrationInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// AuthResult is what the upstream auth endpoints return on success.
type AuthResult struct {
	Token string
	User  domain.User
}

// PetFilter carries the public listing filters, passed through as query
// parameters. Empty fields are omitted.
type PetFilter struct {
	Search  string
	Species string
	Breed   string
	Age     string
}

// ImageUpload is a pet image streamed through to the upstream multipart
// endpoint.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// PetUpload carries the admin pet form. Image is nil on updates that keep the
// existing picture.
type PetUpload struct {
	Name        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	Description string
	Status      string
	Image       *ImageUpload
}

// AdoptionOutcome is the upstream response to a submitted adoption request.
type AdoptionOutcome struct {
	Message  string
	Adoption domain.AdoptionRequest
}

// AuthAPI is the upstream authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, input RegistrationInput) (*AuthResult, error)
	Me(ctx context.Context, token string) (*domain.User, error)
}

// PetAPI is the public pet inventory surface.
type PetAPI interface {
	ListPets(ctx context.Context, filter PetFilter) ([]domain.Pet, error)
	GetPet(ctx context.Context, id string) (*domain.Pet, error)
	ListBreeds(ctx context.Context) ([]string, error)
}

// AdoptionAPI is the authenticated user surface for adoption requests.
type AdoptionAPI interface {
	SubmitAdoption(ctx context.Context, token, petID string) (*AdoptionOutcome, error)
	ListAdoptions(ctx context.Context, token string) ([]domain.AdoptionRequest, error)
	WithdrawAdoption(ctx context.Context, token, adoptionID string) (string, error)
}

// AdminAPI is the admin console surface for managing listings and decisions.
type AdminAPI interface {
	ListAllPets(ctx context.Context, token string) ([]domain.Pet, error)
	CreatePet(ctx context.Context, token string, form PetUpload) (*domain.Pet, string, error)
	UpdatePet(ctx context.Context, token, petID string, form PetUpload) (*domain.Pet, string, error)
	DeletePet(ctx context.Context, token, petID string) (string, error)
	ListAllAdoptions(ctx context.Context, token string) ([]domain.AdoptionRequest, error)
	ApproveAdoption(ctx context.Context, token, adoptionID string) (string, error)
	RejectAdoption(ctx context.Context, token, adoptionID string) (string, error)
}
