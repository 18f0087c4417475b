// Package analysis infers what is left of a fleet from the hits observed on a board.
package analysis

import "github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"

// Clusters returns every maximal group of edge-connected Hit cells. Groups are
// discovered in row-major order of their first cell.
func Clusters(board *core.Board) [][]core.Cell {
	var visited [core.NumCells]bool
	var clusters [][]core.Cell
	stack := make([]core.Cell, 0, core.NumCells)

	for idx, st := range board.T {
		if st != core.Hit || visited[idx] {
			continue
		}
		visited[idx] = true
		stack = append(stack[:0], core.FromIndex(idx))
		var cluster []core.Cell
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cluster = append(cluster, c)
			for _, n := range c.ValidNeighbors() {
				ni := n.ToIndex()
				if !visited[ni] && board.T[ni] == core.Hit {
					visited[ni] = true
					stack = append(stack, n)
				}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// RemainingFleet returns the ship sizes not yet explained by hit clusters.
// Each cluster whose size matches a size still in the list removes one
// instance of it; clusters with no match leave the list unchanged. fleet is
// not modified.
func RemainingFleet(board *core.Board, fleet []int) []int {
	remaining := append([]int(nil), fleet...)
	for _, cluster := range Clusters(board) {
		remaining = removeOne(remaining, len(cluster))
	}
	return remaining
}

func removeOne(sizes []int, size int) []int {
	for i, s := range sizes {
		if s == size {
			return append(sizes[:i], sizes[i+1:]...)
		}
	}
	return sizes
}
