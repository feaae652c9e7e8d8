package mapcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktrackingColoring(t *testing.T) {
	solution, err := Solve(false)
	require.NoError(t, err)
	assertValidColoring(t, solution)
}

func TestSATColoring(t *testing.T) {
	solution, err := Solve(true)
	require.NoError(t, err)
	assertValidColoring(t, solution)
}

func assertValidColoring(t *testing.T, solution map[string]string) {
	t.Helper()
	require.Len(t, solution, len(Regions))
	palette := map[string]bool{}
	for _, color := range Colors {
		palette[color] = true
	}
	for region, color := range solution {
		assert.True(t, palette[color], "region %s has unknown color %s", region, color)
	}
	for _, border := range Borders {
		assert.NotEqual(t, solution[border[0]], solution[border[1]],
			"%s and %s share a border and a color", border[0], border[1])
	}
}
