package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"lookbook/internal/domain"
)

const universesFile = "universes"

// ListUniverses returns every saved universe.
func (s *Store) ListUniverses() ([]domain.Universe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.Universe
	if err := s.readCollection(universesFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetUniverse loads one universe by id.
func (s *Store) GetUniverse(id string) (*domain.Universe, error) {
	items, err := s.ListUniverses()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateUniverse mints an id, stamps the timestamps, and persists.
func (s *Store) CreateUniverse(u domain.Universe) (*domain.Universe, error) {
	if u.Label == "" {
		return nil, domain.ErrInvalidEntity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Universe
	if err := s.readCollection(universesFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if strings.EqualFold(items[i].Label, u.Label) {
			return nil, domain.ErrDuplicateLabel
		}
	}

	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	items = append(items, u)

	if err := s.writeCollection(universesFile, items); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUniverse replaces the stored universe. The id and createdAt are
// immutable; updatedAt advances monotonically on every call.
func (s *Store) UpdateUniverse(id string, u domain.Universe) (*domain.Universe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Universe
	if err := s.readCollection(universesFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		u.ID = items[i].ID
		u.CreatedAt = items[i].CreatedAt
		u.UpdatedAt = items[i].UpdatedAt
		u.Touch(time.Now().UTC())
		items[i] = u
		if err := s.writeCollection(universesFile, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, domain.ErrNotFound
}

// DeleteUniverse removes the universe. Catalog locations that back-reference
// it via sourceUniverseId are left untouched: the reference is non-owning.
func (s *Store) DeleteUniverse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Universe
	if err := s.readCollection(universesFile, &items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.writeCollection(universesFile, items)
		}
	}
	return domain.ErrNotFound
}
