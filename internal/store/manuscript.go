package store

import "github.com/glodam/glodam-mock-api/internal/domain"

// FallbackManuscriptID is returned by UpdateManuscriptText when the request
// carries no id — a degraded "success" signal the frontend relies on
const FallbackManuscriptID = 1

// ListManuscripts returns the work's episodes in creation order
func (s *Store) ListManuscripts(workID int) []domain.Manuscript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Manuscript(nil), s.manuscripts[workID]...)
}

// GetManuscript scans every work's collection in insertion order and
// returns the first entry with the given id. Manuscript ids can collide
// across works; the scan order is what resolves duplicates.
func (s *Store) GetManuscript(id int) (domain.Manuscript, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, workID := range s.workOrder {
		for _, m := range s.manuscripts[workID] {
			if m.ID == id {
				return m, true
			}
		}
	}
	return domain.Manuscript{}, false
}

// CreateManuscript appends a new episode with a random id in [0, 100000).
// No collision check — at fixture scale a clash with a per-work seed
// counter id is tolerated, not prevented.
func (s *Store) CreateManuscript(workID int, patch domain.ManuscriptPatch) domain.Manuscript {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.Manuscript{
		ID:        s.rng.Intn(100000),
		WorkID:    workID,
		Episode:   len(s.manuscripts[workID]) + 1,
		CreatedAt: s.now(),
	}
	patch.Apply(&m)

	s.manuscripts[workID] = append(s.manuscripts[workID], m)
	s.trackWork(workID)
	s.updateGauges()
	return m
}

// UpdateManuscriptText replaces the text of the identified episode and
// echoes the supplied id; a request without an id (id <= 0) touches nothing
// and reports FallbackManuscriptID.
func (s *Store) UpdateManuscriptText(id int, txt string) int {
	if id <= 0 {
		return FallbackManuscriptID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, workID := range s.workOrder {
		entries := s.manuscripts[workID]
		for i := range entries {
			if entries[i].ID == id {
				entries[i].Txt = txt
				return id
			}
		}
	}
	// 대상이 없어도 요청한 id를 그대로 돌려준다 (픽스처 계약)
	return id
}

// UpdateManuscriptInfo is a stub: the fixture never looks at the
// identifying parameters and reports success unconditionally, so callers
// cannot detect a missing target. Kept as-is.
func (s *Store) UpdateManuscriptInfo(id int, patch domain.ManuscriptPatch) bool {
	_ = id
	_ = patch
	return true
}

// DeleteManuscript is the same kind of stub: always "success", nothing
// removed
func (s *Store) DeleteManuscript(id int) bool {
	_ = id
	return true
}
