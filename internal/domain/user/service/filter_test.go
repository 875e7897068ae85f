package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stars_admin/internal/domain/user/model"
)

func testUser(id, first, last, username, role, status string, followers int, created time.Time) model.User {
	f := make([]string, followers)
	for i := range f {
		f[i] = "follower"
	}
	return model.User{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		Status:    status,
		Followers: f,
		CreatedAt: created,
	}
}

func TestUserFilterSearch(t *testing.T) {
	now := time.Now()
	users := []model.User{
		testUser("u1", "Alice", "Smith", "asmith", model.RoleUser, model.StatusActive, 3, now),
		testUser("u2", "Bob", "Jones", "bjones", model.RoleUser, model.StatusActive, 1, now),
	}

	t.Run("matches full name case-insensitively", func(t *testing.T) {
		out := Filter(users, Criteria{Search: "alice sm"})
		require.Len(t, out, 1)
		assert.Equal(t, "u1", out[0].ID)
	})

	t.Run("matches username and email", func(t *testing.T) {
		assert.Len(t, Filter(users, Criteria{Search: "bjones"}), 1)
		assert.Len(t, Filter(users, Criteria{Search: "bjones@example"}), 1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		out := Filter(users, Criteria{Search: "nobody"})
		assert.Empty(t, out)
	})
}

func TestUserFilterRoleAndStatus(t *testing.T) {
	now := time.Now()
	users := []model.User{
		testUser("u1", "A", "A", "a", model.RoleAdmin, model.StatusActive, 0, now),
		testUser("u2", "B", "B", "b", model.RoleUser, model.StatusSuspended, 0, now),
		testUser("u3", "C", "C", "c", model.RoleUser, model.StatusActive, 0, now),
	}

	out := Filter(users, Criteria{Role: model.RoleUser, Status: model.StatusActive})
	require.Len(t, out, 1)
	assert.Equal(t, "u3", out[0].ID)

	// "all" disables the criterion like the zero value does.
	assert.Len(t, Filter(users, Criteria{Role: "all", Status: "all"}), 3)
}

func TestUserSort(t *testing.T) {
	now := time.Now()
	users := []model.User{
		testUser("u1", "A", "A", "a", model.RoleUser, model.StatusActive, 5, now.Add(-time.Hour)),
		testUser("u2", "B", "B", "b", model.RoleUser, model.StatusActive, 1, now),
		testUser("u3", "C", "C", "c", model.RoleUser, model.StatusActive, 9, now.Add(-2*time.Hour)),
	}

	t.Run("by followers descending", func(t *testing.T) {
		items := append([]model.User(nil), users...)
		Sort(items, SortSpec{Field: SortByFollowers, Desc: true})
		assert.Equal(t, []string{"u3", "u1", "u2"}, []string{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("by creation time ascending", func(t *testing.T) {
		items := append([]model.User(nil), users...)
		Sort(items, SortSpec{Field: SortByCreatedAt})
		assert.Equal(t, "u3", items[0].ID)
		assert.Equal(t, "u2", items[2].ID)
	})

	t.Run("empty field leaves order untouched", func(t *testing.T) {
		items := append([]model.User(nil), users...)
		Sort(items, SortSpec{})
		assert.Equal(t, "u1", items[0].ID)
	})
}

func TestIsSuspendedEncodings(t *testing.T) {
	byStatus := model.User{Status: model.StatusSuspended}
	byRole := model.User{Role: model.RoleSuspended, Status: model.StatusActive}
	active := model.User{Role: model.RoleUser, Status: model.StatusActive}

	assert.True(t, byStatus.IsSuspended())
	assert.True(t, byRole.IsSuspended())
	assert.False(t, active.IsSuspended())
}
