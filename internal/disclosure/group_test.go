package disclosure

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_SingleModeScenario(t *testing.T) {
	g := NewGroup(Single)

	g.Toggle("a")
	assert.Equal(t, []string{"a"}, g.Open())

	g.Toggle("b")
	assert.Equal(t, []string{"b"}, g.Open())
	assert.False(t, g.IsOpen("a"))

	g.Toggle("b")
	assert.Empty(t, g.Open())
	assert.Equal(t, 0, g.Len())
}

func TestGroup_MultipleModeIndependentPanels(t *testing.T) {
	g := NewGroup(Multiple)

	g.Toggle("a")
	g.Toggle("b")
	assert.Equal(t, []string{"a", "b"}, g.Open())

	g.Toggle("a")
	assert.Equal(t, []string{"b"}, g.Open())
	assert.True(t, g.IsOpen("b"))
}

func TestGroup_SetOpen(t *testing.T) {
	t.Run("single replaces", func(t *testing.T) {
		g := NewGroup(Single, "a")
		g.SetOpen("b")
		assert.Equal(t, []string{"b"}, g.Open())
	})
	t.Run("single is idempotent", func(t *testing.T) {
		g := NewGroup(Single)
		g.SetOpen("a")
		g.SetOpen("a")
		assert.Equal(t, []string{"a"}, g.Open())
	})
	t.Run("multiple adds once", func(t *testing.T) {
		g := NewGroup(Multiple, "a")
		g.SetOpen("b")
		g.SetOpen("b")
		assert.Equal(t, []string{"a", "b"}, g.Open())
	})
}

func TestGroup_NewGroupSingleKeepsLastInitial(t *testing.T) {
	g := NewGroup(Single, "a", "b", "c")
	assert.Equal(t, []string{"c"}, g.Open())
}

func TestGroup_UnknownPanelTracked(t *testing.T) {
	g := NewGroup(Multiple)
	g.Toggle("not-rendered")
	assert.True(t, g.IsOpen("not-rendered"))
}

func TestGroup_CloseAndCloseAll(t *testing.T) {
	g := NewGroup(Multiple, "a", "b", "c")

	g.Close("b")
	assert.Equal(t, []string{"a", "c"}, g.Open())

	g.Close("missing")
	assert.Equal(t, 2, g.Len())

	g.CloseAll()
	assert.Equal(t, 0, g.Len())
}

func TestGroup_SetModeSingleKeepsMostRecent(t *testing.T) {
	g := NewGroup(Multiple)
	g.Toggle("b")
	g.Toggle("a")
	g.Toggle("c")

	g.SetMode(Single)
	require.Equal(t, Single, g.Mode())
	assert.Equal(t, []string{"c"}, g.Open())

	g.SetMode(Multiple)
	g.Toggle("a")
	assert.Equal(t, []string{"a", "c"}, g.Open())
}

func TestGroup_SingleModeNeverExceedsOne(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	panels := []string{"a", "b", "c", "d"}
	g := NewGroup(Single)

	for i := 0; i < 2000; i++ {
		id := panels[rng.IntN(len(panels))]
		if rng.IntN(3) == 0 {
			g.SetOpen(id)
		} else {
			g.Toggle(id)
		}
		require.LessOrEqual(t, g.Len(), 1, "step %d", i)
	}
}

func TestGroup_DoubleToggleRestores(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	panels := []string{"a", "b", "c", "d", "e"}

	for _, mode := range []Mode{Single, Multiple} {
		t.Run(mode.String(), func(t *testing.T) {
			g := NewGroup(mode)
			for i := 0; i < 500; i++ {
				// Random prefix to reach an arbitrary start state.
				g.Toggle(panels[rng.IntN(len(panels))])

				before := g.Open()
				id := panels[rng.IntN(len(panels))]
				g.Toggle(id)
				g.Toggle(id)
				after := g.Open()

				if mode == Multiple {
					require.Equal(t, before, after, "toggle %q twice from %v", id, before)
					continue
				}
				// Single: toggling twice returns to the original set when id
				// was the sole open panel or nothing was open; otherwise the
				// second toggle closes id, leaving the set empty.
				if len(before) == 0 || (len(before) == 1 && before[0] == id) {
					require.Equal(t, before, after)
				} else {
					require.Empty(t, after)
				}
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("multiple")
	assert.True(t, ok)
	assert.Equal(t, Multiple, m)

	_, ok = ParseMode("accordion")
	assert.False(t, ok)
}
