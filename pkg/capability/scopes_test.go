package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/missionloop/groundcontrol/pkg/models"
)

func TestCanonicalize(t *testing.T) {
	t.Run("sorts and dedups", func(t *testing.T) {
		got := Canonicalize(models.ScopeSet{
			Rooms: []string{"r2", "r1", "r2"},
			Tools: []string{"t1"},
		})
		assert.Equal(t, []string{"r1", "r2"}, got.Rooms)
		assert.Equal(t, []string{"t1"}, got.Tools)
	})

	t.Run("drops empty keys", func(t *testing.T) {
		got := Canonicalize(models.ScopeSet{
			Rooms:      []string{},
			DataAccess: &models.DataAccess{},
		})
		assert.Nil(t, got.Rooms)
		assert.Nil(t, got.DataAccess)
		assert.True(t, IsEmpty(got))
	})
}

func TestIntersect(t *testing.T) {
	t.Run("per-key set intersection", func(t *testing.T) {
		parent := models.ScopeSet{
			Rooms: []string{"r1", "r2"},
			Tools: []string{"t1", "t2", "t3"},
		}
		requested := models.ScopeSet{
			Rooms: []string{"r2", "r3"},
			Tools: []string{"t1", "t4"},
		}
		got := Intersect(parent, requested)
		assert.Equal(t, []string{"r2"}, got.Rooms)
		assert.Equal(t, []string{"t1"}, got.Tools)
	})

	t.Run("key absent in parent drops out", func(t *testing.T) {
		parent := models.ScopeSet{Rooms: []string{"r1"}}
		requested := models.ScopeSet{
			Rooms:         []string{"r1"},
			EgressDomains: []string{"example.com"},
		}
		got := Intersect(parent, requested)
		assert.Equal(t, []string{"r1"}, got.Rooms)
		assert.Nil(t, got.EgressDomains)
	})

	t.Run("empty intersection drops the key", func(t *testing.T) {
		got := Intersect(
			models.ScopeSet{Rooms: []string{"r1"}},
			models.ScopeSet{Rooms: []string{"r9"}},
		)
		assert.Nil(t, got.Rooms)
	})

	t.Run("wildcard intersects as identity", func(t *testing.T) {
		got := Intersect(
			models.ScopeSet{Rooms: []string{models.Wildcard}},
			models.ScopeSet{Rooms: []string{"r1", "r2"}},
		)
		assert.Equal(t, []string{"r1", "r2"}, got.Rooms)

		got = Intersect(
			models.ScopeSet{Rooms: []string{"r1"}},
			models.ScopeSet{Rooms: []string{models.Wildcard}},
		)
		assert.Equal(t, []string{"r1"}, got.Rooms)

		got = Intersect(
			models.ScopeSet{Rooms: []string{models.Wildcard}},
			models.ScopeSet{Rooms: []string{models.Wildcard}},
		)
		assert.Equal(t, []string{models.Wildcard}, got.Rooms)
	})

	t.Run("data access intersects per sub-key", func(t *testing.T) {
		got := Intersect(
			models.ScopeSet{DataAccess: &models.DataAccess{Read: []string{"a", "b"}, Write: []string{"a"}}},
			models.ScopeSet{DataAccess: &models.DataAccess{Read: []string{"b", "c"}, Write: []string{"z"}}},
		)
		assert.Equal(t, []string{"b"}, got.DataAccess.Read)
		assert.Nil(t, got.DataAccess.Write)
	})
}

func TestCovers(t *testing.T) {
	assert.True(t, Covers([]string{"r1", "r2"}, "r2"))
	assert.False(t, Covers([]string{"r1"}, "r2"))
	assert.True(t, Covers([]string{models.Wildcard}, "anything"))
	assert.False(t, Covers(nil, "r1"))
}
