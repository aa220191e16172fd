package store

import (
	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/fixture"
)

// ListAuthors regenerates the full synthetic roster before slicing happens
// upstream. Identity fields are stable across calls; the random per-author
// fields (work count, status) are re-rolled every request — a documented
// non-determinism of the fixture, not a bug.
func (s *Store) ListAuthors() []domain.Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fixture.AuthorRoster(s.rng, s.now())
}
