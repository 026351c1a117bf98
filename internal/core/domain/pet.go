package domain

import (
	"errors"
	"time"
)

// PetStatus represents the adoption availability of a pet listing.
type PetStatus string

const (
	PetAvailable PetStatus = "available"
	PetPending   PetStatus = "pending"
	PetAdopted   PetStatus = "adopted"
)

var ErrPetNotFound = errors.New("pet not found")
var ErrInvalidImage = errors.New("invalid pet image")

// Pet is a listing owned by the upstream API. The gateway holds transient
// copies fetched per request and never writes them back.
type Pet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Status      PetStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
