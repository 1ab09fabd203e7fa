package store

import (
	"time"

	"github.com/google/uuid"

	"lookbook/internal/domain"
)

const modelsFile = "models"

// ListModels returns every saved model identity.
func (s *Store) ListModels() ([]domain.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.Model
	if err := s.readCollection(modelsFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetModel loads one model identity by id.
func (s *Store) GetModel(id string) (*domain.Model, error) {
	items, err := s.ListModels()
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

// CreateModel persists a new model identity.
func (s *Store) CreateModel(m domain.Model) (*domain.Model, error) {
	if m.Label == "" {
		return nil, domain.ErrInvalidEntity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Model
	if err := s.readCollection(modelsFile, &items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	items = append(items, m)

	if err := s.writeCollection(modelsFile, items); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateModel replaces a model identity, keeping id and createdAt.
func (s *Store) UpdateModel(id string, m domain.Model) (*domain.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Model
	if err := s.readCollection(modelsFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		m.ID = items[i].ID
		m.CreatedAt = items[i].CreatedAt
		m.UpdatedAt = time.Now().UTC()
		items[i] = m
		if err := s.writeCollection(modelsFile, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, domain.ErrNotFound
}

// DeleteModel removes a model identity.
func (s *Store) DeleteModel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Model
	if err := s.readCollection(modelsFile, &items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.writeCollection(modelsFile, items)
		}
	}
	return domain.ErrNotFound
}
