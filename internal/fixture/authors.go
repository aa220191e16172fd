package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/glodam/glodam-mock-api/internal/domain"
)

// RosterSize is the fixed size of the synthetic author roster
const RosterSize = 50

var (
	authorSurnames = []string{"김", "이", "박", "최", "정", "한", "윤", "장", "서", "문"}
	authorGivens   = []string{"도현", "서윤", "하람", "지안", "태오", "수빈", "연우", "가온", "시우", "나경"}
	penPrefixes    = []string{"달빛", "새벽", "먹물", "종이", "남색", "흰밤", "소금", "안개", "첫눈", "모래"}
	penSuffixes    = []string{"서가", "필방", "연가", "작가", "수첩"}

	authorStatuses = []domain.AuthorStatus{
		domain.AuthorStatusActive,
		domain.AuthorStatusActive,
		domain.AuthorStatusActive,
		domain.AuthorStatusInactive,
		domain.AuthorStatusDormant,
	}
)

// AuthorRoster regenerates the 50-author roster. Identity fields (id, name,
// pen name, email, join date) are a pure function of the index so paging is
// stable across calls; work counts and statuses are re-rolled from the
// supplied random source on every call. That per-request churn is a known
// quirk of the fixture, kept on purpose.
func AuthorRoster(rng *rand.Rand, now time.Time) []domain.Author {
	authors := make([]domain.Author, 0, RosterSize)
	for i := 0; i < RosterSize; i++ {
		name := authorSurnames[i%len(authorSurnames)] + authorGivens[i/len(authorGivens)%len(authorGivens)]
		penName := penPrefixes[i%len(penPrefixes)] + " " + penSuffixes[i/len(penPrefixes)%len(penSuffixes)]

		authors = append(authors, domain.Author{
			ID:        i + 1,
			Name:      name,
			PenName:   penName,
			Email:     fmt.Sprintf("author%02d@glodam.dev", i+1),
			WorkCount: rng.Intn(12),
			Status:    authorStatuses[rng.Intn(len(authorStatuses))],
			JoinedAt:  now.AddDate(0, 0, -(i * 11)),
		})
	}
	return authors
}
