package analysis

import (
	"testing"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	return testutil.MustParseBoard(t, rows...)
}

func TestClusters(t *testing.T) {
	b := board(t,
		"XXX.......",
		"........X.",
		".X......X.",
		"X.X.......",
		".X.....o..",
	)

	clusters := Clusters(b)
	require.Len(t, clusters, 6)
	assert.ElementsMatch(t, []core.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, clusters[0])
	assert.ElementsMatch(t, []core.Cell{{Row: 1, Col: 8}, {Row: 2, Col: 8}}, clusters[1])
	for _, c := range clusters[2:] {
		assert.Len(t, c, 1, "diagonal hits are separate clusters")
	}
}

func TestClusters_LShape(t *testing.T) {
	b := board(t,
		"X.........",
		"X.........",
		"XXX.......",
	)
	clusters := Clusters(b)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 5)
}

func TestRemainingFleet(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected []int
	}{
		{
			name:     "empty board keeps the full fleet",
			expected: []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1},
		},
		{
			name:     "horizontal three removes one three",
			rows:     []string{"..XXX....."},
			expected: []int{4, 3, 2, 2, 2, 1, 1, 1, 1},
		},
		{
			name:     "vertical pair and single",
			rows:     []string{"X.....X...", "X........."},
			expected: []int{4, 3, 3, 2, 2, 1, 1, 1},
		},
		{
			name:     "misses are ignored",
			rows:     []string{"oooo......"},
			expected: []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1},
		},
		{
			name:     "cluster larger than any ship leaves fleet unchanged",
			rows:     []string{"XXXXX....."},
			expected: []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1},
		},
		{
			name:     "third three-cluster finds no match",
			rows:     []string{"XXX.XXX...", "..........", "XXX......."},
			expected: []int{4, 2, 2, 2, 1, 1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fleet := core.DefaultFleet()
			got := RemainingFleet(board(t, tt.rows...), fleet)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, core.StandardFleet, fleet, "input fleet must not be modified")
		})
	}
}

func TestRemainingFleet_Idempotent(t *testing.T) {
	b := board(t, "XX........", "....X.....", "....X.....", "....X.....")
	first := RemainingFleet(b, core.StandardFleet)
	second := RemainingFleet(b, core.StandardFleet)
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []int{4, 3, 2, 2, 1, 1, 1, 1}, first)
}
