// Package store implements the in-memory entity store the mock server
// serves from. Collections are derived from the fixture catalog once per
// process and mutated in place; nothing is persisted. Gin serves requests
// concurrently, so every logical operation holds the store mutex —
// id derivation is read-modify-write and must be serialized.
package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/fixture"
)

var collectionSize = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "mock_store_collection_size",
		Help: "Number of records per fixture collection",
	},
	[]string{"collection"},
)

// Store holds the mutable fixture collections
type Store struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time

	works    []domain.Work
	worksSeq int // creation counter; never decremented, so ids stay monotonic

	lorebooks   map[int][]domain.Lorebook
	manuscripts map[int][]domain.Manuscript
	// workOrder is the key insertion order of the keyed collections.
	// Child-id lookups that arrive without a workId scan in this order,
	// first match wins.
	workOrder []int

	proposals []domain.Proposal
}

// Option configures a Store
type Option func(*Store)

// WithRand injects the random source used for manuscript/proposal ids and
// the synthetic author roster
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithClock injects the clock used for createdAt/updatedAt stamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New constructs a store from a seed catalog
func New(seed fixture.Seed, opts ...Option) *Store {
	s := &Store{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(seed)
	return s
}

// Reset rebuilds all collections from a seed catalog
func (s *Store) Reset(seed fixture.Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(seed)
}

func (s *Store) load(seed fixture.Seed) {
	s.works = append([]domain.Work(nil), seed.Works...)
	s.worksSeq = len(seed.Works)

	s.lorebooks = map[int][]domain.Lorebook{}
	for id, entries := range seed.LorebooksByWork {
		s.lorebooks[id] = append([]domain.Lorebook(nil), entries...)
	}
	s.manuscripts = map[int][]domain.Manuscript{}
	for id, entries := range seed.ManuscriptsByWork {
		s.manuscripts[id] = append([]domain.Manuscript(nil), entries...)
	}
	s.workOrder = append([]int(nil), seed.WorkOrder...)

	s.proposals = append([]domain.Proposal(nil), seed.Proposals...)
	s.updateGauges()
}

// trackWork registers a work id in the keyed-collection scan order.
// Ids already present (including ids of since-deleted works — orphaned
// collections stay reachable) are kept in their original position.
func (s *Store) trackWork(workID int) {
	for _, id := range s.workOrder {
		if id == workID {
			return
		}
	}
	s.workOrder = append(s.workOrder, workID)
}

// updateGauges refreshes the collection-size metrics; call with the mutex held
func (s *Store) updateGauges() {
	lorebookTotal := 0
	for _, entries := range s.lorebooks {
		lorebookTotal += len(entries)
	}
	manuscriptTotal := 0
	for _, entries := range s.manuscripts {
		manuscriptTotal += len(entries)
	}

	collectionSize.WithLabelValues("works").Set(float64(len(s.works)))
	collectionSize.WithLabelValues("lorebooks").Set(float64(lorebookTotal))
	collectionSize.WithLabelValues("manuscripts").Set(float64(manuscriptTotal))
	collectionSize.WithLabelValues("proposals").Set(float64(len(s.proposals)))
}
