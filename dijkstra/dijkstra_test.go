package dijkstra_test

import (
	"testing"

	aidijkstra "github.com/471VE/ai-roguelike/dijkstra"
	"github.com/471VE/ai-roguelike/world"
)

func openTiles(w, h int) *world.TileMap {
	return world.NewTileMap(w, h)
}

func TestFillProducesManhattanDistanceOnOpenFloor(t *testing.T) {
	tiles := openTiles(5, 5)
	m := world.NewDMap(5, 5)
	m.Set(0, 0, 0)
	aidijkstra.Fill(m, tiles, nil)

	if got := m.At(2, 0); got != 2 {
		t.Errorf("At(2,0) = %v, want 2", got)
	}
	if got := m.At(2, 2); got != 4 {
		t.Errorf("At(2,2) = %v, want 4", got)
	}
}

func TestFillLeavesUnreachablePocketAtInvalid(t *testing.T) {
	tiles := world.NewTileMap(5, 1)
	tiles.Set(2, 0, world.Wall)
	m := world.NewDMap(5, 1)
	m.Set(0, 0, 0)

	reach := aidijkstra.ComputeReachability(tiles, []world.Position{{X: 0, Y: 0}})
	aidijkstra.Fill(m, tiles, reach)

	if got := m.At(4, 0); got != world.Invalid {
		t.Errorf("At(4,0) across a sealed wall = %v, want Invalid", got)
	}
	if got := m.At(1, 0); got != 1 {
		t.Errorf("At(1,0) = %v, want 1", got)
	}
}

func TestGenFleeMapPointsAwayFromApproach(t *testing.T) {
	tiles := openTiles(5, 1)
	approach := world.NewDMap(5, 1)
	approach.Set(0, 0, 0)
	aidijkstra.Fill(approach, tiles, nil)

	flee := aidijkstra.GenFleeMap(approach, tiles)
	if flee.At(4, 0) >= flee.At(0, 0) {
		t.Errorf("flee value should fall (grow more negative) with distance from the approach seed: near=%v far=%v", flee.At(0, 0), flee.At(4, 0))
	}
}

func TestGenMageMapFavorsStandoffDistance(t *testing.T) {
	tiles := openTiles(9, 1)
	approach := world.NewDMap(9, 1)
	approach.Set(0, 0, 0)
	aidijkstra.Fill(approach, tiles, nil)

	vision := aidijkstra.GenVisionMap(tiles, world.Position{X: 0, Y: 0})
	mage := aidijkstra.GenMageMap(approach, vision, tiles)

	// Cell at distance 4 should score lower (closer to the ideal standoff)
	// than the cell right next to the source.
	if mage.At(4, 0) >= mage.At(1, 0) {
		t.Errorf("mage value at standoff distance 4 (%v) should be lower than at distance 1 (%v)", mage.At(4, 0), mage.At(1, 0))
	}
}

func TestFollowerPicksLowestWeightMove(t *testing.T) {
	tiles := openTiles(5, 5)
	approach := world.NewDMap(5, 5)
	approach.Set(4, 2, 0)
	aidijkstra.Fill(approach, tiles, nil)

	w := world.NewArkWorld(tiles)
	e := w.SpawnActor(world.Position{X: 2, Y: 2}, world.Team{}, world.Hitpoints{HP: 10})

	f := &aidijkstra.Follower{Weights: []aidijkstra.Weight{
		{Map: approach, Weight: aidijkstra.Linear(1)},
	}}
	f.Follow(w, e)

	if got := w.Action(e); got != world.MoveRight {
		t.Errorf("Follow() action = %v, want MoveRight (toward the lower-value seed)", got)
	}
}
