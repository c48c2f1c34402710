package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	set := Builtin()

	assert.Equal(t, "vehicle-control", set.Name)
	assert.Equal(t, 48, set.Len())

	seen := make(map[string]bool, set.Len())
	for _, e := range set.Entries {
		require.NotEmpty(t, e.Short)
		require.NotEmpty(t, e.Comment)
		assert.False(t, seen[e.Short], "duplicate short form %q", e.Short)
		seen[e.Short] = true
	}
}

func TestSet_Strings(t *testing.T) {
	set := &Set{
		Name: "test",
		Entries: []Entry{
			{Short: "Pltog", Comment: "Power limit toggle"},
			{Short: "lcKi", Comment: "Launch control Ki"},
		},
	}

	assert.Equal(t, []string{"Pltog", "lcKi"}, set.Strings())
	assert.Equal(t, 2, set.Len())
}

func TestSet_Strings_Empty(t *testing.T) {
	set := &Set{Name: "empty"}
	assert.Empty(t, set.Strings())
	assert.Equal(t, 0, set.Len())
}
