package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Ramsha-Haris/table/internal/model"
)

// Terminator ends the server-side session.
type Terminator interface {
	Logout(ctx context.Context) error
}

// Store is the authentication state shared by every command in one run.
type Store struct {
	mu      sync.RWMutex
	user    *model.User
	storage Storage
	remote  Terminator
	log     logrus.FieldLogger
}

// New creates a Store and rehydrates it from storage. Unreadable storage is
// logged and treated as logged out.
func New(storage Storage, remote Terminator, log logrus.FieldLogger) *Store {
	s := &Store{storage: storage, remote: remote, log: log}

	u, err := storage.Load()
	if err != nil {
		log.WithError(err).Warn("discarding unreadable session")
		return s
	}
	s.user = u
	return s
}

// Login records the user and persists it.
func (s *Store) Login(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u
	return s.storage.Save(&u)
}

// Logout ends the remote session and clears local state. Local state is
// cleared even when the remote call fails; the failure is only logged.
func (s *Store) Logout(ctx context.Context) {
	if s.remote != nil {
		if err := s.remote.Logout(ctx); err != nil {
			s.log.WithError(err).Error("logout request failed")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.storage.Clear(); err != nil {
		s.log.WithError(err).Error("clearing session storage")
	}
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoggedIn reports whether a user is held.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
