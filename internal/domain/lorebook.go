package domain

import "time"

// Lorebook categories (설정집 분류)
const (
	CategoryPerson = "인물"
	CategoryPlace  = "장소"
	CategoryItem   = "아이템"
	CategoryGroup  = "집단"
	CategoryEra    = "시대"
	CategoryEvent  = "사건"
)

// Lorebook domain model — a worldbuilding entry attached to a work.
// Setting holds an opaque JSON-encoded string produced by the editor widget;
// the server never interprets it.
type Lorebook struct {
	ID          int       `json:"id"`
	WorkID      int       `json:"workId"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Keyword     string    `json:"keyword"`
	Setting     string    `json:"setting"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LorebookPatch partial update payload; nil fields are left untouched.
// WorkID rides along on create requests that carry it in the body.
type LorebookPatch struct {
	WorkID      *int      `json:"workId"`
	Category    *string   `json:"category"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Keyword     *string   `json:"keyword"`
	Setting     *string   `json:"setting"`
	Tags        *[]string `json:"tags"`
}

// Apply merges the patch onto the entry (object-merge semantics:
// present fields overwrite, missing fields are retained)
func (p LorebookPatch) Apply(e *Lorebook) {
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Keyword != nil {
		e.Keyword = *p.Keyword
	}
	if p.Setting != nil {
		e.Setting = *p.Setting
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
}

// IsAllCategory reports whether the category value means "no filter"
func IsAllCategory(category string) bool {
	return category == "*" || category == "all"
}
