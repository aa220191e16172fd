package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glodam/glodam-mock-api/internal/domain"
	"github.com/glodam/glodam-mock-api/internal/fixture"
)

func TestCreateLorebookDerivesIDFromCollectionMax(t *testing.T) {
	s, _ := newTestStore(1)

	// 플래그십 카탈로그의 최대 id는 6001
	entry := s.CreateLorebook(fixture.FlagshipWorkID, domain.LorebookPatch{
		Category: strPtr(domain.CategoryPerson),
		Title:    strPtr("X"),
	})
	assert.Equal(t, 6002, entry.ID)
	assert.Equal(t, fixture.FlagshipWorkID, entry.WorkID)

	// 빈 컬렉션에서는 1부터
	first := s.CreateLorebook(3, domain.LorebookPatch{Title: strPtr("첫 설정")})
	assert.Equal(t, 1, first.ID)

	second := s.CreateLorebook(3, domain.LorebookPatch{Title: strPtr("둘째 설정")})
	assert.Equal(t, 2, second.ID)
}

func TestListLorebooksByCategory(t *testing.T) {
	s, _ := newTestStore(1)

	all := s.ListLorebooks(fixture.FlagshipWorkID)
	assert.Len(t, all, 10)

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"star filter returns everything", "*", 10},
		{"all keyword returns everything", "all", 10},
		{"person", domain.CategoryPerson, 3},
		{"place", domain.CategoryPlace, 2},
		{"item", domain.CategoryItem, 1},
		{"group", domain.CategoryGroup, 2},
		{"era", domain.CategoryEra, 1},
		{"event", domain.CategoryEvent, 1},
		{"unknown category", "요리", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ListLorebooksByCategory(fixture.FlagshipWorkID, tt.category)
			assert.Len(t, got, tt.want)
		})
	}

	// 무필터 값은 전체 목록과 순서까지 동일해야 한다
	assert.Equal(t, all, s.ListLorebooksByCategory(fixture.FlagshipWorkID, "*"))
	assert.Equal(t, all, s.ListLorebooksByCategory(fixture.FlagshipWorkID, "all"))
}

func TestUpdateLorebookMergesAndRefreshesTimestamp(t *testing.T) {
	s, _ := newTestStore(1)

	before := s.ListLorebooks(fixture.FlagshipWorkID)[0]
	updated, ok := s.UpdateLorebook(before.ID, domain.LorebookPatch{
		Description: strPtr("x"),
	})

	assert.True(t, ok)
	assert.Equal(t, "x", updated.Description)
	assert.Equal(t, before.Tags, updated.Tags)
	assert.Equal(t, before.Content, updated.Content)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.Setting, updated.Setting)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateLorebookScansAllWorks(t *testing.T) {
	s, _ := newTestStore(1)

	// workId 없이 id만으로 갱신 — 소유 작품은 전역 탐색으로 찾는다
	created := s.CreateLorebook(4, domain.LorebookPatch{Title: strPtr("이동 요새")})
	updated, ok := s.UpdateLorebook(created.ID, domain.LorebookPatch{Keyword: strPtr("요새")})
	assert.True(t, ok)
	assert.Equal(t, 4, updated.WorkID)
	assert.Equal(t, "요새", updated.Keyword)

	_, ok = s.UpdateLorebook(99999, domain.LorebookPatch{})
	assert.False(t, ok)
}

func TestDeleteLorebook(t *testing.T) {
	s, _ := newTestStore(1)

	entries := s.ListLorebooks(fixture.FlagshipWorkID)
	target := entries[4]

	assert.True(t, s.DeleteLorebook(target.ID))
	after := s.ListLorebooks(fixture.FlagshipWorkID)
	assert.Len(t, after, len(entries)-1)
	for _, e := range after {
		assert.NotEqual(t, target.ID, e.ID)
	}

	// 없는 id 삭제는 silent no-op
	assert.False(t, s.DeleteLorebook(target.ID))
}

func TestLorebooksSurviveWorkDeletion(t *testing.T) {
	s, _ := newTestStore(1)

	created := s.CreateLorebook(5, domain.LorebookPatch{Title: strPtr("붉은 탑")})
	assert.True(t, s.DeleteWork(5))

	// 문서화된 quirk: 작품이 지워져도 설정집은 남는다
	remaining := s.ListLorebooks(5)
	assert.Len(t, remaining, 1)
	assert.Equal(t, created.ID, remaining[0].ID)

	// 고아 항목도 전역 탐색 갱신이 닿는다
	_, ok := s.UpdateLorebook(created.ID, domain.LorebookPatch{Content: strPtr("본문")})
	assert.True(t, ok)
}
