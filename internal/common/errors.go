package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Work errors
	ErrWorkNotFound = errors.New("work not found")

	// Lorebook errors
	ErrLorebookNotFound = errors.New("lorebook entry not found")

	// Manuscript errors
	ErrManuscriptNotFound = errors.New("manuscript not found")

	// Proposal errors
	ErrProposalNotFound = errors.New("proposal not found")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
