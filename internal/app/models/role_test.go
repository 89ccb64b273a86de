package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAtLeast(t *testing.T) {
	ordered := []Role{RoleUser, RoleResearcher, RoleModerator, RoleAdmin}

	// An action gated at a role must be rejected for every lower role and
	// accepted for that role and everything above it.
	for i, actor := range ordered {
		for j, gate := range ordered {
			got := actor.AtLeast(gate)
			want := i >= j
			assert.Equal(t, want, got, "actor=%s gate=%s", actor, gate)
		}
	}
}

func TestRoleAtLeastUnknownRole(t *testing.T) {
	assert.False(t, Role("superuser").AtLeast(RoleUser))
	assert.False(t, Role("").AtLeast(RoleUser))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("moderator")
	assert.True(t, ok)
	assert.Equal(t, RoleModerator, r)

	_, ok = ParseRole("owner")
	assert.False(t, ok)
}

func TestParseReviewAction(t *testing.T) {
	for _, s := range []string{"approve", "reject", "request_revisions"} {
		_, ok := ParseReviewAction(s)
		assert.True(t, ok, s)
	}
	_, ok := ParseReviewAction("publish")
	assert.False(t, ok)
}
