package dijkstra

import (
	"github.com/katalvlaran/lvlath/gridgraph"

	"github.com/471VE/ai-roguelike/world"
)

// Reachability marks which floor tiles share a connected component with a
// seed tile, so callers can keep unreachable pockets at world.Invalid
// instead of letting Fill's bounded scan silently treat them as ordinary
// floor with no seed nearby.
type Reachability struct {
	reachable []bool
	width     int
}

// At reports whether (x,y) is reachable from the seed set Reachability was
// built with.
func (r *Reachability) At(x, y int) bool {
	idx := y*r.width + x
	if idx < 0 || idx >= len(r.reachable) {
		return false
	}
	return r.reachable[idx]
}

// ComputeReachability groups the dungeon's floor cells into connected
// components via gridgraph.ConnectedComponents and marks every cell sharing
// a component with one of seeds as reachable.
func ComputeReachability(tiles *world.TileMap, seeds []world.Position) *Reachability {
	grid := make([][]int, tiles.Height)
	for y := 0; y < tiles.Height; y++ {
		grid[y] = make([]int, tiles.Width)
		for x := 0; x < tiles.Width; x++ {
			if tiles.At(x, y) == world.Floor {
				grid[y][x] = 1
			}
		}
	}

	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 1
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		// An empty or non-rectangular tile map is a construction bug, not a
		// runtime condition callers can recover from.
		panic("dijkstra: " + err.Error())
	}

	// Every floor cell carries the grid value 1, so the land components we
	// care about are components[1]: one []Cell per maximal contiguous floor
	// region.
	floorComponents := gg.ConnectedComponents()[1]
	reachable := make([]bool, tiles.Width*tiles.Height)

	for _, comp := range floorComponents {
		hasSeed := false
		for _, cell := range comp {
			for _, s := range seeds {
				if cell.X == s.X && cell.Y == s.Y {
					hasSeed = true
				}
			}
		}
		if !hasSeed {
			continue
		}
		for _, cell := range comp {
			reachable[cell.Y*tiles.Width+cell.X] = true
		}
	}

	return &Reachability{reachable: reachable, width: tiles.Width}
}
