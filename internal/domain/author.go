package domain

import "time"

// AuthorStatus 작가 계정 상태
type AuthorStatus string

// Author statuses
const (
	AuthorStatusActive   AuthorStatus = "ACTIVE"
	AuthorStatusInactive AuthorStatus = "INACTIVE"
	AuthorStatusDormant  AuthorStatus = "DORMANT"
)

// Author synthetic model for the manager screens. Never persisted —
// the full roster is regenerated on every list request.
type Author struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	PenName   string       `json:"penName"`
	Email     string       `json:"email"`
	WorkCount int          `json:"workCount"`
	Status    AuthorStatus `json:"status"`
	JoinedAt  time.Time    `json:"joinedAt"`
}
