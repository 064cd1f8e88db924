package users

import (
	"context"
	"sync"
)

// Store owns the ordered user collection. Lookups address the first record
// with a matching id in insertion order.
type Store interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, name, email string) (*User, error)
	Update(ctx context.Context, id int, name, email string) (*User, error)
	Delete(ctx context.Context, id int) (*User, error)
}

// MemoryStore keeps users in a slice guarded by a single lock.
type MemoryStore struct {
	mu     sync.RWMutex
	users  []User
	policy IDPolicy
	lastID int
}

// NewMemoryStore creates a store holding seed, renumbered 1..N.
// An unrecognized policy falls back to IDPolicyLength.
func NewMemoryStore(policy IDPolicy, seed []User) *MemoryStore {
	if !policy.Valid() {
		policy = IDPolicyLength
	}
	s := &MemoryStore{
		users:  make([]User, 0, len(seed)),
		policy: policy,
	}
	for i, u := range seed {
		u.ID = i + 1
		s.users = append(s.users, u)
	}
	s.lastID = len(seed)
	return s
}

// List returns a copy of every user in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// Get returns the user with the given id.
func (s *MemoryStore) Get(_ context.Context, id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	u := s.users[i]
	return &u, nil
}

// Create appends a new user and returns it.
func (s *MemoryStore) Create(_ context.Context, name, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextID(), Name: name, Email: email}
	s.users = append(s.users, u)
	if u.ID > s.lastID {
		s.lastID = u.ID
	}
	return &u, nil
}

// Update replaces name and email in place, keeping id and position.
func (s *MemoryStore) Update(_ context.Context, id int, name, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	s.users[i].Name = name
	s.users[i].Email = email
	u := s.users[i]
	return &u, nil
}

// Delete removes the user and returns the removed record.
func (s *MemoryStore) Delete(_ context.Context, id int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	return &removed, nil
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id int) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with mu held.
func (s *MemoryStore) nextID() int {
	if s.policy == IDPolicySequence {
		return s.lastID + 1
	}
	return len(s.users) + 1
}
