package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"homestock/internal/domain"
	"homestock/internal/metrics"
	"homestock/internal/repos"
)

// ItemInput is the full field set a caller supplies for create and update.
// Pointer fields distinguish "absent" from an explicit zero so defaults
// only apply when the field was left out.
type ItemInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    *int   `json:"quantity"`
	MinQuantity *int   `json:"minQuantity"`
	Unit        string `json:"unit"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type ItemService struct {
	Items *repos.ItemRepo

	// Now is swappable in tests.
	Now func() string
}

func NewItemService(items *repos.ItemRepo) *ItemService {
	return &ItemService{Items: items, Now: domain.Now}
}

// NewItemID builds a creation-time id from the wall clock plus a random
// suffix, so concurrent creators don't collide.
func NewItemID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("item-%d-%s", time.Now().UnixMilli(), suffix)
}

func (s *ItemService) List() ([]domain.Item, error) {
	return s.Items.List()
}

func (s *ItemService) Get(id string) (domain.Item, error) {
	return s.Items.Get(id)
}

// Create validates, applies defaults, assigns identity and timestamps,
// and inserts. Duplicate ids fail with ErrConflict.
func (s *ItemService) Create(in ItemInput) (domain.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Item{}, count("create", fmt.Errorf("%w: name is required", domain.ErrValidation))
	}

	now := s.Now()
	it := domain.Item{
		ID:          in.ID,
		Name:        name,
		Category:    in.Category,
		MinQuantity: 1,
		Unit:        strings.TrimSpace(in.Unit),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if it.ID == "" {
		it.ID = NewItemID()
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		it.MinQuantity = *in.MinQuantity
	}
	if it.Unit == "" {
		it.Unit = domain.DefaultUnit
	}
	// Clients may carry their own timestamps (they predate the request).
	if in.CreatedAt != "" {
		it.CreatedAt = in.CreatedAt
	}
	if in.UpdatedAt != "" {
		it.UpdatedAt = in.UpdatedAt
	}
	// updatedAt never precedes createdAt, whatever the client sent.
	if it.UpdatedAt < it.CreatedAt {
		it.UpdatedAt = it.CreatedAt
	}

	return it, count("create", s.Items.Insert(it))
}

// Update writes the complete mutable field set exactly as provided; it
// never merges with the stored record, so omitted fields land as their
// zero values. CreatedAt is untouched.
func (s *ItemService) Update(id string, in ItemInput) (domain.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Item{}, count("update", fmt.Errorf("%w: name is required", domain.ErrValidation))
	}

	it := domain.Item{
		ID:       id,
		Name:     name,
		Category: in.Category,
		Unit:     strings.TrimSpace(in.Unit),
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		it.MinQuantity = *in.MinQuantity
	}
	if it.Unit == "" {
		it.Unit = domain.DefaultUnit
	}
	it.UpdatedAt = in.UpdatedAt
	if it.UpdatedAt == "" {
		it.UpdatedAt = s.Now()
	}

	return it, count("update", s.Items.Update(it))
}

func (s *ItemService) Delete(id string) error {
	return count("delete", s.Items.Delete(id))
}

// Increment bumps quantity by one. Read-then-write without isolation:
// concurrent callers on the same id race, last write wins.
func (s *ItemService) Increment(id string) (domain.Item, error) {
	it, err := s.Items.Get(id)
	if err != nil {
		return domain.Item{}, count("increment", err)
	}
	it.Quantity++
	it.UpdatedAt = s.Now()
	return it, count("increment", s.Items.Update(it))
}

// Decrement lowers quantity by one, never below zero. At zero it is a
// no-op: nothing is written and updatedAt does not advance.
func (s *ItemService) Decrement(id string) (domain.Item, error) {
	it, err := s.Items.Get(id)
	if err != nil {
		return domain.Item{}, count("decrement", err)
	}
	if it.Quantity == 0 {
		return it, nil
	}
	it.Quantity--
	it.UpdatedAt = s.Now()
	return it, count("decrement", s.Items.Update(it))
}

func count(op string, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.Mutations.WithLabelValues(op, outcome).Inc()
	return err
}
