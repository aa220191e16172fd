package store

import "github.com/glodam/glodam-mock-api/internal/domain"

// ListLorebooks returns the work's entries in creation order
func (s *Store) ListLorebooks(workID int) []domain.Lorebook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Lorebook(nil), s.lorebooks[workID]...)
}

// ListLorebooksByCategory filters by exact category match; "*" and "all"
// mean no filter and return the same sequence as ListLorebooks
func (s *Store) ListLorebooksByCategory(workID int, category string) []domain.Lorebook {
	if domain.IsAllCategory(category) {
		return s.ListLorebooks(workID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Lorebook{}
	for _, e := range s.lorebooks[workID] {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// CreateLorebook appends a new entry to the work's collection and returns
// it. The new id is max(existing ids in that collection)+1, 1 for an empty
// collection — uniqueness holds only within the inspected collection.
func (s *Store) CreateLorebook(workID int, patch domain.LorebookPatch) domain.Lorebook {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, e := range s.lorebooks[workID] {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	now := s.now()
	e := domain.Lorebook{
		ID:        maxID + 1,
		WorkID:    workID,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&e)

	s.lorebooks[workID] = append(s.lorebooks[workID], e)
	s.trackWork(workID)
	s.updateGauges()
	return e
}

// UpdateLorebook merge-updates the entry with the given id and refreshes
// updatedAt. Update requests do not reliably carry a workId, so the owning
// collection is found by scanning every work in insertion order; the first
// match wins.
func (s *Store) UpdateLorebook(id int, patch domain.LorebookPatch) (domain.Lorebook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, workID := range s.workOrder {
		entries := s.lorebooks[workID]
		for i := range entries {
			if entries[i].ID == id {
				patch.Apply(&entries[i])
				entries[i].UpdatedAt = s.now()
				return entries[i], true
			}
		}
	}
	return domain.Lorebook{}, false
}

// DeleteLorebook removes the entry via the same global scan; silent no-op
// when no work owns the id
func (s *Store) DeleteLorebook(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, workID := range s.workOrder {
		entries := s.lorebooks[workID]
		for i := range entries {
			if entries[i].ID == id {
				s.lorebooks[workID] = append(entries[:i], entries[i+1:]...)
				s.updateGauges()
				return true
			}
		}
	}
	return false
}
