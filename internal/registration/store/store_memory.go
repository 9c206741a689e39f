package store

import (
	"context"
	"strings"
	"sync"

	"insightx/internal/registration/models"
	"insightx/pkg/platform/sentinel"
)

// InMemory keeps registrations in process memory with the same conflict
// semantics as the Postgres store. Used by unit tests and local runs; favors
// clarity over performance.
type InMemory struct {
	mu        sync.RWMutex
	byEmail   map[string]*models.Registration
	byContact map[string]*models.Registration
}

// NewInMemory constructs an empty in-memory registration store.
func NewInMemory() *InMemory {
	return &InMemory{
		byEmail:   make(map[string]*models.Registration),
		byContact: make(map[string]*models.Registration),
	}
}

// Create inserts a registration, enforcing email and contact-number
// uniqueness under a single lock so concurrent callers cannot both succeed.
func (s *InMemory) Create(_ context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	emailKey := strings.ToLower(reg.Email)
	if _, ok := s.byEmail[emailKey]; ok {
		return sentinel.ErrConflict
	}
	if _, ok := s.byContact[reg.ContactNumber]; ok {
		return sentinel.ErrConflict
	}
	stored := *reg
	s.byEmail[emailKey] = &stored
	s.byContact[reg.ContactNumber] = &stored
	return nil
}

// FindByEmailOrContact returns a matching registration or sentinel.ErrNotFound.
func (s *InMemory) FindByEmailOrContact(_ context.Context, email, contactNumber string) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if reg, ok := s.byEmail[strings.ToLower(email)]; ok {
		found := *reg
		return &found, nil
	}
	if reg, ok := s.byContact[contactNumber]; ok {
		found := *reg
		return &found, nil
	}
	return nil, sentinel.ErrNotFound
}

// Count reports the number of stored registrations.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail), nil
}
