package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/fixture"
)

func strPtr(s string) *string { return &s }

func TestCreateWorkAssignsOffsetIDs(t *testing.T) {
	s, _ := newTestStore(1)

	// 시드 작품 5개 위에서 첫 생성은 105
	id := s.CreateWork(domain.WorkPatch{Title: strPtr("T")})
	assert.Equal(t, 105, id)

	work, ok := s.GetWork(105)
	assert.True(t, ok)
	assert.Equal(t, "T", work.Title)
	assert.Empty(t, work.Description)
	assert.Empty(t, work.Synopsis)
	assert.Equal(t, domain.WorkStatusNew, work.Status)
}

func TestCreateWorkIDsAreMonotonic(t *testing.T) {
	s, _ := newTestStore(1)

	var ids []int
	for i := 0; i < 4; i++ {
		ids = append(ids, s.CreateWork(domain.WorkPatch{}))
	}
	assert.Equal(t, []int{105, 106, 107, 108}, ids)

	// 삭제 후에도 id는 재사용되지 않는다
	assert.True(t, s.DeleteWork(106))
	next := s.CreateWork(domain.WorkPatch{})
	assert.Equal(t, 109, next)

	for _, id := range append(ids, next) {
		assert.NotContains(t, []int{1, 2, 3, 4, 5, fixture.FlagshipWorkID}, id)
	}
}

func TestUpdateWorkStatusOnlyTouchesStatus(t *testing.T) {
	s, _ := newTestStore(1)

	before, _ := s.GetWork(3)
	assert.True(t, s.UpdateWorkStatus(3, domain.WorkStatusCompleted))

	after, _ := s.GetWork(3)
	assert.Equal(t, domain.WorkStatusCompleted, after.Status)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Genre, after.Genre)
	assert.Equal(t, before.StatusDescription, after.StatusDescription)
}

func TestUpdateWorkStatusMissingIsSilentNoop(t *testing.T) {
	s, _ := newTestStore(1)
	assert.False(t, s.UpdateWorkStatus(999, domain.WorkStatusDropped))
	assert.Len(t, s.ListWorks(), 5)
}

func TestUpdateWorkMergePreservesUntouchedFields(t *testing.T) {
	s, _ := newTestStore(1)

	before, _ := s.GetWork(2)
	assert.True(t, s.UpdateWork(2, domain.WorkPatch{Description: strPtr("새 소개")}))

	after, _ := s.GetWork(2)
	assert.Equal(t, "새 소개", after.Description)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Synopsis, after.Synopsis)
	assert.Equal(t, before.Status, after.Status)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestDeleteWorkDoesNotCascade(t *testing.T) {
	s, _ := newTestStore(1)

	manuscripts := s.ListManuscripts(2)
	assert.NotEmpty(t, manuscripts)

	assert.True(t, s.DeleteWork(2))
	_, ok := s.GetWork(2)
	assert.False(t, ok)

	// 고아가 된 자식 컬렉션은 그대로 조회된다
	assert.Equal(t, manuscripts, s.ListManuscripts(2))

	// 삭제된 작품 삭제는 no-op
	assert.False(t, s.DeleteWork(2))
}
