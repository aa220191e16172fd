package domain

import "time"

// WorkStatus 작품 연재 상태
type WorkStatus string

// Work statuses
const (
	WorkStatusNew       WorkStatus = "NEW"
	WorkStatusOngoing   WorkStatus = "ONGOING"
	WorkStatusCompleted WorkStatus = "COMPLETED"
	WorkStatusHiatus    WorkStatus = "HIATUS"
	WorkStatusDropped   WorkStatus = "DROPPED"
)

// Work domain model — a top-level creative project (story/series)
type Work struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Synopsis          string     `json:"synopsis"`
	Genre             string     `json:"genre"`
	CoverImageURL     string     `json:"coverImageUrl"`
	Status            WorkStatus `json:"status"`
	StatusDescription string     `json:"statusDescription"`
	Writer            string     `json:"writer"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// WorkPatch partial update payload; nil fields are left untouched
type WorkPatch struct {
	Title             *string     `json:"title"`
	Description       *string     `json:"description"`
	Synopsis          *string     `json:"synopsis"`
	Genre             *string     `json:"genre"`
	CoverImageURL     *string     `json:"coverImageUrl"`
	Status            *WorkStatus `json:"status"`
	StatusDescription *string     `json:"statusDescription"`
	Writer            *string     `json:"writer"`
}

// Apply merges the patch onto the work (shallow, field-by-field)
func (p WorkPatch) Apply(w *Work) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Synopsis != nil {
		w.Synopsis = *p.Synopsis
	}
	if p.Genre != nil {
		w.Genre = *p.Genre
	}
	if p.CoverImageURL != nil {
		w.CoverImageURL = *p.CoverImageURL
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.StatusDescription != nil {
		w.StatusDescription = *p.StatusDescription
	}
	if p.Writer != nil {
		w.Writer = *p.Writer
	}
}
