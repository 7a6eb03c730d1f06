// Package memory provides an in-process store backend for development and
// tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/awelabs/awe.agency/internal/store"
)

// Store keeps dashboard records in maps guarded by one mutex.
type Store struct {
	mu       sync.RWMutex
	users    map[string]store.User
	byEmail  map[string]string
	profiles map[string]store.BusinessProfile
	metrics  map[string][]store.AdMetric
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		users:    make(map[string]store.User),
		byEmail:  make(map[string]string),
		profiles: make(map[string]store.BusinessProfile),
		metrics:  make(map[string][]store.AdMetric),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser adds a user. Email uniqueness is case-insensitive.
func (s *Store) CreateUser(_ context.Context, u store.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalizeEmail(u.Email)
	if _, exists := s.byEmail[key]; exists {
		return store.ErrEmailTaken
	}
	s.users[u.ID] = u
	s.byEmail[key] = u.ID
	return nil
}

// GetUser looks a user up by ID.
func (s *Store) GetUser(_ context.Context, userID string) (store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return store.User{}, store.ErrNotFound
	}
	return u, nil
}

// GetUserByEmail looks a user up by email, case-insensitively.
func (s *Store) GetUserByEmail(_ context.Context, email string) (store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return store.User{}, store.ErrNotFound
	}
	return s.users[userID], nil
}

// PutProfile creates or replaces the user's business profile.
func (s *Store) PutProfile(_ context.Context, p store.BusinessProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Interests = append([]string(nil), p.Interests...)
	s.profiles[p.UserID] = p
	return nil
}

// GetProfile returns the user's business profile.
func (s *Store) GetProfile(_ context.Context, userID string) (store.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return store.BusinessProfile{}, store.ErrNotFound
	}
	p.Interests = append([]string(nil), p.Interests...)
	return p, nil
}

// PutMetric records one campaign metric row.
func (s *Store) PutMetric(_ context.Context, m store.AdMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics[m.UserID] = append(s.metrics[m.UserID], m)
	return nil
}

// ListMetricsByUser returns the user's metric rows, newest first.
func (s *Store) ListMetricsByUser(_ context.Context, userID string) ([]store.AdMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := append([]store.AdMetric(nil), s.metrics[userID]...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RecordedAt.After(rows[j].RecordedAt)
	})
	return rows, nil
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error { return nil }
