package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformMask(w, h, v int) [][]int {
	m := make([][]int, w)
	for x := range m {
		m[x] = make([]int, h)
		for y := range m[x] {
			m[x][y] = v
		}
	}
	return m
}

func TestNewFromMaskRejectsEmpty(t *testing.T) {
	_, err := NewFromMask(nil)
	assert.Error(t, err)
	assert.True(t, err.(Status).Failed())
}

func TestNewFromMaskRejectsRagged(t *testing.T) {
	mask := [][]int{{1, 1}, {1}}
	_, err := NewFromMask(mask)
	assert.Error(t, err)
}

func TestDijkstraFromOpenField(t *testing.T) {
	g, err := NewFromMask(uniformMask(10, 10, 1))
	assert.NoError(t, err)

	visits := g.DijkstraFrom(Pos{5, 5}, 3)
	assert.NotEmpty(t, visits)
	for _, v := range visits {
		assert.LessOrEqual(t, v.Distance, 3.0)
	}
	// the origin itself must be present with distance 0.
	found := false
	for _, v := range visits {
		if v.Pos == (Pos{5, 5}) {
			assert.Equal(t, 0.0, v.Distance)
			found = true
		}
	}
	assert.True(t, found)
}

func TestDijkstraFromUnwalkableOrigin(t *testing.T) {
	mask := uniformMask(5, 5, 1)
	mask[2][2] = 0
	g, err := NewFromMask(mask)
	assert.NoError(t, err)

	assert.Empty(t, g.DijkstraFrom(Pos{2, 2}, 5))
}

func TestReverseDijkstraFromAllowsUnwalkableOrigin(t *testing.T) {
	mask := uniformMask(5, 5, 1)
	mask[2][2] = 0 // origin itself is unwalkable, as a border tile always is.
	g, err := NewFromMask(mask)
	assert.NoError(t, err)

	visits := g.ReverseDijkstraFrom(Pos{2, 2}, 5)
	assert.NotEmpty(t, visits, "an unwalkable origin must not short-circuit a reverse search")
}

func TestCreateAndRemoveBlock(t *testing.T) {
	g, err := NewFromMask(uniformMask(10, 10, 1))
	assert.NoError(t, err)

	g.CreateBlock(Pos{5, 5}, [2]int{3, 3})
	assert.False(t, g.Walkable(5, 5))
	assert.False(t, g.Walkable(4, 4))

	g.RemoveBlock(Pos{5, 5}, [2]int{3, 3})
	assert.True(t, g.Walkable(5, 5))
}

func TestResetToInitial(t *testing.T) {
	mask := uniformMask(6, 6, 1)
	mask[0][0] = 0
	g, err := NewFromMask(mask)
	assert.NoError(t, err)

	g.CreateBlock(Pos{3, 3}, [2]int{4, 4})
	g.ResetToInitial()

	assert.True(t, g.Walkable(3, 3))
	assert.False(t, g.Walkable(0, 0))
}

func TestDijkstraRespectsWalls(t *testing.T) {
	mask := uniformMask(7, 1, 1)
	mask[3][0] = 0 // a wall splitting the 1-wide corridor in two.
	g, err := NewFromMask(mask)
	assert.NoError(t, err)

	visits := g.DijkstraFrom(Pos{0, 0}, 100)
	reached := map[Pos]bool{}
	for _, v := range visits {
		reached[v.Pos] = true
	}
	assert.True(t, reached[Pos{2, 0}])
	assert.False(t, reached[Pos{4, 0}], "wall at x=3 must block the corridor")
}
