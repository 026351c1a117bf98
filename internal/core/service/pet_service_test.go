package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

type stubPetAPI struct {
	listFn   func(ctx context.Context, filter ports.PetFilter) ([]domain.Pet, error)
	getFn    func(ctx context.Context, id string) (*domain.Pet, error)
	breedsFn func(ctx context.Context) ([]string, error)
}

func (s *stubPetAPI) ListPets(ctx context.Context, filter ports.PetFilter) ([]domain.Pet, error) {
	return s.listFn(ctx, filter)
}

func (s *stubPetAPI) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	return s.getFn(ctx, id)
}

func (s *stubPetAPI) ListBreeds(ctx context.Context) ([]string, error) {
	return s.breedsFn(ctx)
}

func TestPetService_Browse_NormalizesAllFilters(t *testing.T) {
	api := &stubPetAPI{
		listFn: func(_ context.Context, filter ports.PetFilter) ([]domain.Pet, error) {
			if filter.Species != "" || filter.Breed != "" {
				t.Fatalf(`"All" must become no filter, got %+v`, filter)
			}
			if filter.Search != "rex" {
				t.Fatalf("search must pass through, got %q", filter.Search)
			}
			return nil, nil
		},
	}
	svc := NewPetService(api, zerolog.Nop())

	if _, err := svc.Browse(context.Background(), ports.BrowsePetsInput{Search: "rex", Species: "All", Breed: "All", Page: 1}); err != nil {
		t.Fatalf("Browse returned error: %v", err)
	}
}

func TestPetService_Browse_PagesListing(t *testing.T) {
	pets := make([]domain.Pet, 20)
	for i := range pets {
		pets[i] = domain.Pet{ID: fmt.Sprintf("p%d", i)}
	}
	api := &stubPetAPI{
		listFn: func(context.Context, ports.PetFilter) ([]domain.Pet, error) {
			return pets, nil
		},
	}
	svc := NewPetService(api, zerolog.Nop())

	page, err := svc.Browse(context.Background(), ports.BrowsePetsInput{Page: 3})
	if err != nil {
		t.Fatalf("Browse returned error: %v", err)
	}
	if page.Pagination.TotalPages != 3 {
		t.Fatalf("20 pets at 9/page should be 3 pages, got %d", page.Pagination.TotalPages)
	}
	if len(page.Pets) != 2 {
		t.Fatalf("last page should hold 2 pets, got %d", len(page.Pets))
	}
}

func TestPetService_Browse_ClampsPageBeyondEnd(t *testing.T) {
	pets := make([]domain.Pet, 10)
	api := &stubPetAPI{
		listFn: func(context.Context, ports.PetFilter) ([]domain.Pet, error) {
			return pets, nil
		},
	}
	svc := NewPetService(api, zerolog.Nop())

	page, err := svc.Browse(context.Background(), ports.BrowsePetsInput{Page: 99})
	if err != nil {
		t.Fatalf("Browse returned error: %v", err)
	}
	if page.Pagination.Page != 2 {
		t.Fatalf("page should clamp to the last page, got %d", page.Pagination.Page)
	}
	if len(page.Pets) != 1 {
		t.Fatalf("clamped page should hold the final pet, got %d", len(page.Pets))
	}
}

func TestPetService_Detail_EmptyID(t *testing.T) {
	svc := NewPetService(&stubPetAPI{}, zerolog.Nop())

	if _, err := svc.Detail(context.Background(), ""); !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestPetService_Breeds_PassThrough(t *testing.T) {
	api := &stubPetAPI{
		breedsFn: func(context.Context) ([]string, error) {
			return []string{"Beagle", "Siamese"}, nil
		},
	}
	svc := NewPetService(api, zerolog.Nop())

	breeds, err := svc.Breeds(context.Background())
	if err != nil {
		t.Fatalf("Breeds returned error: %v", err)
	}
	if len(breeds) != 2 || breeds[0] != "Beagle" {
		t.Fatalf("unexpected breeds: %v", breeds)
	}
}
