// Package dijkstra builds and consumes the named Dijkstra-map potential
// fields used for monster navigation, grounded on
// original_source/w4/dijkstraMapGen.cpp (the relaxation algorithm) and
// original_source/w4/dmapFollower.cpp (the follower that consumes them).
package dijkstra

import "github.com/471VE/ai-roguelike/world"

// Fill relaxes map so every floor cell holds the shortest orthogonal-step
// distance to its nearest seed (a cell pre-set to 0 by the caller), exactly
// reproducing process_dmap's bounded scan: repeatedly sweep the grid and
// pull each floor cell toward its cheapest neighbor plus one, until a full
// sweep makes no further improvement. Relaxation only steps between
// orthogonally adjacent floor cells, so a floor cell with no floor path to a
// seed keeps world.Invalid. reach, if non-nil, additionally restricts the
// sweep to cells inside the seeds' connected components, so cells outside
// them are skipped instead of being re-examined on every sweep.
func Fill(m *world.DMap, tiles *world.TileMap, reach *Reachability) {
	passable := func(x, y int) bool {
		if tiles.At(x, y) != world.Floor {
			return false
		}
		return reach == nil || reach.At(x, y)
	}
	getAt := func(x, y int, def float64) float64 {
		if x < 0 || x >= tiles.Width || y < 0 || y >= tiles.Height {
			return def
		}
		if !passable(x, y) {
			return def
		}
		return m.At(x, y)
	}
	minNeighbor := func(x, y int) float64 {
		val := m.At(x, y)
		val = minF(val, getAt(x-1, y, val))
		val = minF(val, getAt(x+1, y, val))
		val = minF(val, getAt(x, y-1, val))
		val = minF(val, getAt(x, y+1, val))
		return val
	}

	for {
		done := true
		for y := 0; y < tiles.Height; y++ {
			for x := 0; x < tiles.Width; x++ {
				if !passable(x, y) {
					continue
				}
				myVal := getAt(x, y, world.Invalid)
				minVal := minNeighbor(x, y)
				if minVal < myVal-1 {
					m.Set(x, y, minVal+1)
					done = false
				}
			}
		}
		if done {
			break
		}
	}
}

func minF(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

// NewSeededMap allocates a DMap the size of tiles with every cell at
// world.Invalid, ready for a caller to zero out seed cells before Fill.
func NewSeededMap(tiles *world.TileMap) *world.DMap {
	return world.NewDMap(tiles.Width, tiles.Height)
}
