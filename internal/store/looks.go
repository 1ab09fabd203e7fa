package store

import (
	"time"

	"github.com/google/uuid"

	"lookbook/internal/domain"
)

const looksFile = "looks"

// ListLooks returns every saved look.
func (s *Store) ListLooks() ([]domain.Look, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.Look
	if err := s.readCollection(looksFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetLook loads one look by id.
func (s *Store) GetLook(id string) (*domain.Look, error) {
	items, err := s.ListLooks()
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

// CreateLook persists a new look.
func (s *Store) CreateLook(l domain.Look) (*domain.Look, error) {
	if l.Label == "" {
		return nil, domain.ErrInvalidEntity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Look
	if err := s.readCollection(looksFile, &items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	items = append(items, l)

	if err := s.writeCollection(looksFile, items); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLook replaces a look, keeping id and createdAt.
func (s *Store) UpdateLook(id string, l domain.Look) (*domain.Look, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Look
	if err := s.readCollection(looksFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		l.ID = items[i].ID
		l.CreatedAt = items[i].CreatedAt
		l.UpdatedAt = time.Now().UTC()
		items[i] = l
		if err := s.writeCollection(looksFile, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, domain.ErrNotFound
}

// DeleteLook removes a look.
func (s *Store) DeleteLook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Look
	if err := s.readCollection(looksFile, &items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.writeCollection(looksFile, items)
		}
	}
	return domain.ErrNotFound
}
