package domain

import "time"

// ProposalStatus IP 확장 제안 진행 상태
type ProposalStatus string

// Proposal statuses
const (
	ProposalStatusPending   ProposalStatus = "PENDING"
	ProposalStatusReviewing ProposalStatus = "REVIEWING"
	ProposalStatusApproved  ProposalStatus = "APPROVED"
	ProposalStatusRejected  ProposalStatus = "REJECTED"
	ProposalStatusOnHold    ProposalStatus = "ON_HOLD"
)

// ProposalBusiness 사업성 세부 정보
type ProposalBusiness struct {
	Budget          string   `json:"budget"`
	ExpectedRevenue string   `json:"expectedRevenue"`
	TargetMarket    string   `json:"targetMarket"`
	Partners        []string `json:"partners"`
}

// ProposalMediaDetails 미디어 전환 세부 정보
type ProposalMediaDetails struct {
	MediaType    string `json:"mediaType"`
	EpisodeCount int    `json:"episodeCount"`
	Duration     string `json:"duration"`
	Platform     string `json:"platform"`
}

// ProposalContentStrategy 콘텐츠 전략
type ProposalContentStrategy struct {
	TargetAudience  string `json:"targetAudience"`
	Differentiation string `json:"differentiation"`
	MarketingPlan   string `json:"marketingPlan"`
}

// Proposal domain model — an IP-expansion (adaptation) request for a work
type Proposal struct {
	ID              int                     `json:"id"`
	Title           string                  `json:"title"`
	AuthorID        int                     `json:"authorId"`
	AuthorName      string                  `json:"authorName"`
	WorkID          int                     `json:"workId"`
	WorkTitle       string                  `json:"workTitle"`
	Format          string                  `json:"format"`
	Status          ProposalStatus          `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Business        ProposalBusiness        `json:"business"`
	MediaDetails    ProposalMediaDetails    `json:"mediaDetails"`
	ContentStrategy ProposalContentStrategy `json:"contentStrategy"`
}

// ProposalPatch partial update payload; nil fields are left untouched.
// Sub-records are replaced whole when present (shallow merge).
type ProposalPatch struct {
	Title           *string                  `json:"title"`
	AuthorID        *int                     `json:"authorId"`
	AuthorName      *string                  `json:"authorName"`
	WorkID          *int                     `json:"workId"`
	WorkTitle       *string                  `json:"workTitle"`
	Format          *string                  `json:"format"`
	Status          *ProposalStatus          `json:"status"`
	Business        *ProposalBusiness        `json:"business"`
	MediaDetails    *ProposalMediaDetails    `json:"mediaDetails"`
	ContentStrategy *ProposalContentStrategy `json:"contentStrategy"`
}

// Apply merges the patch onto the proposal
func (p ProposalPatch) Apply(pr *Proposal) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.AuthorID != nil {
		pr.AuthorID = *p.AuthorID
	}
	if p.AuthorName != nil {
		pr.AuthorName = *p.AuthorName
	}
	if p.WorkID != nil {
		pr.WorkID = *p.WorkID
	}
	if p.WorkTitle != nil {
		pr.WorkTitle = *p.WorkTitle
	}
	if p.Format != nil {
		pr.Format = *p.Format
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Business != nil {
		pr.Business = *p.Business
	}
	if p.MediaDetails != nil {
		pr.MediaDetails = *p.MediaDetails
	}
	if p.ContentStrategy != nil {
		pr.ContentStrategy = *p.ContentStrategy
	}
}
