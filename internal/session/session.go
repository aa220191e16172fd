// Package session keeps the single process-wide role flag the auth
// endpoints mutate. It is deliberately the only piece of cross-request
// state outside the store.
package session

import "sync"

// Role 로그인 시 추론된 호출자 역할
type Role string

// Roles
const (
	RoleNone    Role = ""
	RoleAuthor  Role = "AUTHOR"
	RoleManager Role = "MANAGER"
)

// Flag is the process-wide session flag: set on login, cleared on logout
type Flag struct {
	mu   sync.RWMutex
	role Role
}

// NewFlag returns an empty session flag
func NewFlag() *Flag {
	return &Flag{}
}

// Set stores the inferred role
func (f *Flag) Set(role Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.role = role
}

// Clear resets the flag
func (f *Flag) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.role = RoleNone
}

// Current returns the stored role (RoleNone when logged out)
func (f *Flag) Current() Role {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.role
}
