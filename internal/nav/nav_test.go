package nav

import (
	"testing"

	"coursedeck/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestEntriesFor_KnownRoles(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleStudent, entity.RoleInstructor, entity.RoleAdmin} {
		entries := EntriesFor(role)
		assert.NotEmpty(t, entries, "role %s has no navigation", role)
		assert.Equal(t, "overview", entries[0].ID)
	}

	admin := EntriesFor(entity.RoleAdmin)
	ids := make([]string, len(admin))
	for i, e := range admin {
		ids[i] = e.ID
	}
	assert.Contains(t, ids, "users")
}

func TestEntriesFor_UnknownRoleFallsBackToStudent(t *testing.T) {
	assert.Equal(t, EntriesFor(entity.RoleStudent), EntriesFor(entity.Role("unknown-role")))
	assert.Equal(t, EntriesFor(entity.RoleStudent), EntriesFor(entity.Role("")))
}

func TestEntriesFor_IDsUniqueAndStable(t *testing.T) {
	for role, entries := range table {
		seen := map[string]bool{}
		for _, e := range entries {
			assert.NotEmpty(t, e.ID, "role %s has an entry without an ID", role)
			assert.NotEmpty(t, e.Label)
			assert.NotEmpty(t, e.Icon)
			assert.False(t, seen[e.ID], "role %s repeats entry ID %q", role, e.ID)
			seen[e.ID] = true
		}
	}

	// Repeated calls return identical lists.
	assert.Equal(t, EntriesFor(entity.RoleInstructor), EntriesFor(entity.RoleInstructor))
}

func TestEntriesFor_ReturnsCopy(t *testing.T) {
	entries := EntriesFor(entity.RoleStudent)
	SetBadge(entries, "notifications", 7)

	fresh := EntriesFor(entity.RoleStudent)
	for _, e := range fresh {
		assert.Zero(t, e.Badge)
	}
}

func TestSetBadge(t *testing.T) {
	entries := EntriesFor(entity.RoleStudent)
	SetBadge(entries, "notifications", 3)

	found := false
	for _, e := range entries {
		if e.ID == "notifications" {
			found = true
			assert.Equal(t, 3, e.Badge)
		}
	}
	assert.True(t, found)

	// Unknown IDs are a no-op.
	SetBadge(entries, "does-not-exist", 9)
}
