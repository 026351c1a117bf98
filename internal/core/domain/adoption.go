package domain

import (
	"errors"
	"time"
)

// AdoptionStatus represents the lifecycle state of an adoption request.
// The lifecycle is owned by the upstream API; the gateway only issues
// transition requests and reflects the returned status.
type AdoptionStatus string

const (
	AdoptionPending   AdoptionStatus = "pending"
	AdoptionApproved  AdoptionStatus = "approved"
	AdoptionRejected  AdoptionStatus = "rejected"
	AdoptionWithdrawn AdoptionStatus = "withdrawn"
)

var ErrAdoptionNotFound = errors.New("adoption request not found")
var ErrActionInFlight = errors.New("action already in progress")

// Applicant is the user embedded in an adoption request as the upstream
// returns it to admins.
type Applicant struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// AdoptionPet is the pet summary embedded in an adoption request.
type AdoptionPet struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Breed  string    `json:"breed"`
	Image  string    `json:"image"`
	Status PetStatus `json:"status,omitempty"`
}

// AdoptionRequest is a server-tracked application by a user to adopt a pet.
type AdoptionRequest struct {
	ID        string         `json:"id"`
	User      Applicant      `json:"user"`
	Pet       AdoptionPet    `json:"pet"`
	Status    AdoptionStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
