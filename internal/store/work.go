package store

import "github.com/glodam/glodam-mock-api/internal/domain"

// ListWorks returns a copy of the work list in seed/creation order.
// The fixture ignores author filtering: every caller sees the same list.
func (s *Store) ListWorks() []domain.Work {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Work(nil), s.works...)
}

// GetWork returns the work with the given id
func (s *Store) GetWork(id int) (domain.Work, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.works {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Work{}, false
}

// CreateWork appends a new work and returns only its id. Ids derive from a
// creation counter offset by 100, so they sit above the 1..5 seed ids and
// the flagship id, stay strictly increasing, and are never reused even
// after a delete.
func (s *Store) CreateWork(patch domain.WorkPatch) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w := domain.Work{
		ID:        s.worksSeq + 100,
		Status:    domain.WorkStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&w)
	s.worksSeq++

	s.works = append(s.works, w)
	s.updateGauges()
	return w.ID
}

// UpdateWorkStatus overwrites only the status field. A missing work is a
// silent no-op — the HTTP layer reports success either way (fixture
// contract), so the boolean is for internal callers and tests.
func (s *Store) UpdateWorkStatus(id int, status domain.WorkStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.works {
		if s.works[i].ID == id {
			s.works[i].Status = status
			s.works[i].UpdatedAt = s.now()
			return true
		}
	}
	return false
}

// UpdateWork shallow-merges the patch onto the work; silent no-op when absent
func (s *Store) UpdateWork(id int, patch domain.WorkPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.works {
		if s.works[i].ID == id {
			patch.Apply(&s.works[i])
			s.works[i].UpdatedAt = s.now()
			return true
		}
	}
	return false
}

// DeleteWork removes the work from the list. It does NOT cascade: lorebook
// and manuscript collections under the id stay retrievable. The frontend
// relies on that quirk, so it is kept on purpose.
func (s *Store) DeleteWork(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.works {
		if s.works[i].ID == id {
			s.works = append(s.works[:i], s.works[i+1:]...)
			s.updateGauges()
			return true
		}
	}
	return false
}
