package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glodam/glodam-mock-api/internal/session"
)

func TestInferRole(t *testing.T) {
	tests := []struct {
		email string
		want  session.Role
	}{
		{"manager@glodam.dev", session.RoleManager},
		{"manager01@glodam.dev", session.RoleManager},
		{"Manager@glodam.dev", session.RoleManager},
		{"author@glodam.dev", session.RoleAuthor},
		{"haerin.seo@glodam.dev", session.RoleAuthor},
		{"ipmanager@glodam.dev", session.RoleAuthor},
		{"manager", session.RoleManager},
		{"", session.RoleAuthor},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, inferRole(tt.email))
		})
	}
}
