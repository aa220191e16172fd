package store

import "github.com/glodam/glodam-mock-api/internal/domain"

// ProposalStatusAll means "no filter" on the proposal list
const ProposalStatusAll = "ALL"

// ListProposals returns proposals newest-created-first, optionally filtered
// by status; "" and "ALL" mean no filter
func (s *Store) ListProposals(status string) []domain.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Proposal{}
	for _, p := range s.proposals {
		if status == "" || status == ProposalStatusAll || string(p.Status) == status {
			out = append(out, p)
		}
	}
	return out
}

// GetProposal returns the proposal with the given id
func (s *Store) GetProposal(id int) (domain.Proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.proposals {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Proposal{}, false
}

// CreateProposal inserts a new proposal at the front of the sequence
// (newest-first order) with a random id in [20000, 120000). No reuse
// check — collision odds are accepted as negligible at fixture scale.
func (s *Store) CreateProposal(patch domain.ProposalPatch) domain.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := domain.Proposal{
		ID:        20000 + s.rng.Intn(100000),
		Status:    domain.ProposalStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.Apply(&p)

	s.proposals = append([]domain.Proposal{p}, s.proposals...)
	s.updateGauges()
	return p
}

// UpdateProposal merge-updates the proposal and refreshes updatedAt
func (s *Store) UpdateProposal(id int, patch domain.ProposalPatch) (domain.Proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.proposals {
		if s.proposals[i].ID == id {
			patch.Apply(&s.proposals[i])
			s.proposals[i].UpdatedAt = s.now()
			return s.proposals[i], true
		}
	}
	return domain.Proposal{}, false
}

// DeleteProposal removes the proposal from the sequence; silent no-op when
// absent
func (s *Store) DeleteProposal(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.proposals {
		if s.proposals[i].ID == id {
			s.proposals = append(s.proposals[:i], s.proposals[i+1:]...)
			s.updateGauges()
			return true
		}
	}
	return false
}
