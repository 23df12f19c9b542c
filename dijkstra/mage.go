package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	lvdijkstra "github.com/katalvlaran/lvlath/dijkstra"

	"github.com/471VE/ai-roguelike/world"
)

// visibility edge costs, matching visibility_value's straight/diagonal/
// perpendicular branches.
const (
	straightCost  int64 = 1
	diagonalCost  int64 = 2
	wallPenalty   int64 = int64(world.Invalid)
	infEdgeCutoff int64 = wallPenalty
)

func vertexID(p world.Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func sign(d int) int {
	if d > 0 {
		return 1
	}
	return -1
}

// visibilityWeight scores how exposed the cell at v is to an observer
// standing at src: straight-line approaches cost 1, diagonal ones cost 2,
// and a corner whose near wall blocks the observer's sightline to v adds a
// near-impassable penalty on top, mirroring visibility_value's
// direction/wall-penalty formula. This is a per-destination weight (every
// edge arriving at v from an orthogonal floor neighbor shares the same
// cost), which is what lets a single conventional Dijkstra run stand in for
// the original's source-relative recursive relaxation.
func visibilityWeight(tiles *world.TileMap, src, v world.Position) int64 {
	dirX := sign(src.X - v.X)
	dirY := sign(src.Y - v.Y)
	adx := absInt(src.X - v.X)
	ady := absInt(src.Y - v.Y)

	var base int64
	var wallX, wallY int
	switch {
	case adx > ady:
		base = straightCost
		wallX, wallY = src.X-dirX, src.Y
	case adx == ady:
		base = diagonalCost
		wallX, wallY = src.X-dirX, src.Y-dirY
	default:
		base = straightCost
		wallX, wallY = src.X, src.Y-dirY
	}
	if tiles.At(wallX, wallY) == world.Wall {
		return base + wallPenalty
	}
	return base
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GenVisionMap runs a single-source Dijkstra from src over every floor cell,
// weighting edges by visibilityWeight, matching gen_player_vision_map's
// priority-queue expansion. Vertices the search can't reach (blocked off by
// the InfEdgeThreshold wall penalty) are left at world.Invalid.
func GenVisionMap(tiles *world.TileMap, src world.Position) *world.DMap {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	ids := make(map[world.Position]string)
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			if tiles.At(x, y) != world.Floor {
				continue
			}
			p := world.Position{X: x, Y: y}
			id := vertexID(p)
			ids[p] = id
			if err := g.AddVertex(id); err != nil {
				panic("dijkstra: " + err.Error())
			}
		}
	}

	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for p, id := range ids {
		for _, d := range offsets {
			np := world.Position{X: p.X + d[0], Y: p.Y + d[1]}
			nid, ok := ids[np]
			if !ok {
				continue
			}
			weight := visibilityWeight(tiles, src, np)
			if _, err := g.AddEdge(id, nid, weight); err != nil {
				panic("dijkstra: " + err.Error())
			}
		}
	}

	m := world.NewDMap(tiles.Width, tiles.Height)
	srcID, ok := ids[src]
	if !ok {
		return m
	}
	dist, _, err := lvdijkstra.Dijkstra(g, lvdijkstra.Source(srcID), lvdijkstra.WithInfEdgeThreshold(infEdgeCutoff))
	if err != nil {
		panic("dijkstra: " + err.Error())
	}
	for p, id := range ids {
		if d, ok := dist[id]; ok {
			m.Set(p.X, p.Y, float64(d))
		}
	}
	return m
}

// GenMageMap combines the approach and vision maps into a targeting field
// that favors a fixed standoff distance of 4 tiles from the player,
// matching gen_mage_map: |approach - 4| wherever both inputs are finite,
// Invalid everywhere else.
func GenMageMap(approach, vision *world.DMap, tiles *world.TileMap) *world.DMap {
	m := world.NewDMap(tiles.Width, tiles.Height)
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			a := approach.At(x, y)
			v := vision.At(x, y)
			if a >= world.Invalid || v >= world.Invalid {
				continue
			}
			m.Set(x, y, math.Abs(a-4))
		}
	}
	return m
}
