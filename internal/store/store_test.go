package store

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/fixture"
)

var testEpoch = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

// fakeClock advances one second per call so updatedAt comparisons are
// strict without sleeping
type fakeClock struct {
	mu    sync.Mutex
	t     time.Time
	ticks int
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: testEpoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	return c.t.Add(time.Duration(c.ticks) * time.Second)
}

func newTestStore(seedVal int64) (*Store, *fakeClock) {
	rng := rand.New(rand.NewSource(seedVal))
	clock := newFakeClock()
	seed := fixture.BuildSeed(rng, testEpoch)
	s := New(seed, WithRand(rng), WithClock(clock.Now))
	return s, clock
}

// Reset은 핸들러에서 락 없이 시드를 새로 만들어 들어온다. 시드 빌더가
// 스토어 rng와 소스를 공유하면 여기서 경합하므로, 프로세스 배선과 같은
// 모양(별도 소스 + 자체 뮤텍스)으로 rng를 쓰는 연산과 겹쳐 돌린다.
// -race에서 검증된다.
func TestResetConcurrentWithRandomizedOps(t *testing.T) {
	var seedMu sync.Mutex
	seedRng := rand.New(rand.NewSource(7))
	newSeed := func() fixture.Seed {
		seedMu.Lock()
		defer seedMu.Unlock()
		return fixture.BuildSeed(seedRng, testEpoch)
	}

	s := New(newSeed(), WithRand(rand.New(rand.NewSource(7))))

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				s.Reset(newSeed())
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				_ = s.ListAuthors()
				_ = s.CreateManuscript(1, domain.ManuscriptPatch{})
				_ = s.CreateProposal(domain.ProposalPatch{})
			}
		}()
	}
	wg.Wait()

	// 마지막 Reset 이후의 정확한 상태는 비결정적이지만 시드 작품 수는 불변
	assert.Len(t, s.ListWorks(), 5)
	assert.Len(t, s.ListAuthors(), fixture.RosterSize)
}
