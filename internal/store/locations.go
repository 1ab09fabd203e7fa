package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lookbook/internal/domain"
)

const locationsFile = "locations"

// ListLocations returns the global location catalog.
func (s *Store) ListLocations() ([]domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.Location
	if err := s.readCollection(locationsFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetLocation loads one catalog location by id.
func (s *Store) GetLocation(id string) (*domain.Location, error) {
	items, err := s.ListLocations()
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

// CreateLocation adds a location to the global catalog.
func (s *Store) CreateLocation(l domain.Location) (*domain.Location, error) {
	if l.Label == "" {
		return nil, domain.ErrInvalidEntity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Location
	if err := s.readCollection(locationsFile, &items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	items = append(items, l)

	if err := s.writeCollection(locationsFile, items); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLocation replaces a catalog location, keeping id and createdAt.
func (s *Store) UpdateLocation(id string, l domain.Location) (*domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Location
	if err := s.readCollection(locationsFile, &items); err != nil {
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
		if err := s.writeCollection(locationsFile, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, domain.ErrNotFound
}

// DeleteLocation removes a catalog location.
func (s *Store) DeleteLocation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.Location
	if err := s.readCollection(locationsFile, &items); err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.writeCollection(locationsFile, items)
		}
	}
	return domain.ErrNotFound
}

// Snippet returns the location's prompt snippet, deriving and caching it when
// no hand-written snippet exists.
func (s *Store) Snippet(l domain.Location) string {
	if l.PromptSnippet != "" {
		return l.PromptSnippet
	}
	key := fmt.Sprintf("%s@%d", l.ID, l.UpdatedAt.UnixNano())
	if cached, ok := s.snippets.Get(key); ok {
		return cached.(string)
	}
	snippet := l.DeriveSnippet()
	s.snippets.SetDefault(key, snippet)
	return snippet
}
