package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ziadkadry99/usuarios-api/internal/db"
)

// SQLStore keeps users in the in-memory SQLite users table. Insertion order
// is the seq column.
type SQLStore struct {
	db     *db.DB
	mu     sync.Mutex
	policy IDPolicy
	lastID int
}

// NewSQLStore creates a store over database and inserts seed, renumbered 1..N.
func NewSQLStore(ctx context.Context, database *db.DB, policy IDPolicy, seed []User) (*SQLStore, error) {
	if !policy.Valid() {
		policy = IDPolicyLength
	}
	s := &SQLStore{db: database, policy: policy}

	for i, u := range seed {
		if _, err := database.ExecContext(ctx,
			`INSERT INTO users (id, nombre, email) VALUES (?, ?, ?)`,
			i+1, u.Name, u.Email,
		); err != nil {
			return nil, fmt.Errorf("seeding user %d: %w", i+1, err)
		}
	}
	s.lastID = len(seed)
	return s, nil
}

// List returns every user in insertion order.
func (s *SQLStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nombre, email FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Get returns the first user with the given id.
func (s *SQLStore) Get(ctx context.Context, id int) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, nombre, email FROM users WHERE id = ? ORDER BY seq LIMIT 1`, id,
	).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &u, nil
}

// Create appends a new user and returns it.
func (s *SQLStore) Create(ctx context.Context, name, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := s.lastID + 1
	if s.policy == IDPolicyLength {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting users: %w", err)
		}
		id = n + 1
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, nombre, email) VALUES (?, ?, ?)`, id, name, email,
	); err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing user: %w", err)
	}

	if id > s.lastID {
		s.lastID = id
	}
	return &User{ID: id, Name: name, Email: email}, nil
}

// Update replaces name and email of the first matching user.
func (s *SQLStore) Update(ctx context.Context, id int, name, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	seq, _, err := firstMatch(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET nombre = ?, email = ? WHERE seq = ?`, name, email, seq,
	); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update: %w", err)
	}
	return &User{ID: id, Name: name, Email: email}, nil
}

// Delete removes the first matching user and returns it.
func (s *SQLStore) Delete(ctx context.Context, id int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	seq, u, err := firstMatch(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE seq = ?`, seq); err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing delete: %w", err)
	}
	return u, nil
}

func firstMatch(ctx context.Context, tx *sql.Tx, id int) (int64, *User, error) {
	var seq int64
	var u User
	err := tx.QueryRowContext(ctx,
		`SELECT seq, id, nombre, email FROM users WHERE id = ? ORDER BY seq LIMIT 1`, id,
	).Scan(&seq, &u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, ErrNotFound
	}
	if err != nil {
		return 0, nil, fmt.Errorf("finding user: %w", err)
	}
	return seq, &u, nil
}
