package dijkstra

import (
	"github.com/471VE/ai-roguelike/logging"
	"github.com/471VE/ai-roguelike/world"
)

// WeightFunc scores one candidate cell's contribution to a follower's move
// decision, given the live dmap value at that cell.
type WeightFunc func(value float64) float64

// Weight is a single named-map contribution to a Follower, matching one
// entry of the original's per-entity DmapTransform.
type Weight struct {
	Map    *world.DMap
	Weight WeightFunc
}

// Linear returns a WeightFunc that scales the dmap value by factor,
// matching the common "just add the map times a coefficient" case.
func Linear(factor float64) WeightFunc {
	return func(value float64) float64 { return value * factor }
}

// Follower picks the lowest-total-weight move among stay/left/right/up/down
// by summing every named map's (possibly negative) contribution at each
// candidate cell, matching process_dmap_followers.
type Follower struct {
	Weights []Weight
}

// candidates returns stay/left/right/up/down positions in Action-index
// order (world.NOP..world.MoveDown), matching the original's EA_NOP..
// EA_MOVE_DOWN layout.
func candidates(pos world.Position) [5]world.Position {
	return [5]world.Position{
		pos,
		{X: pos.X - 1, Y: pos.Y},
		{X: pos.X + 1, Y: pos.Y},
		{X: pos.X, Y: pos.Y - 1},
		{X: pos.X, Y: pos.Y + 1},
	}
}

var candidateActions = [5]world.Action{world.NOP, world.MoveLeft, world.MoveRight, world.MoveUp, world.MoveDown}

// Follow scores every candidate move for e and issues the lowest-weight
// one via w.SetAction. For the player entity, callers should only invoke
// this while the player's current action is world.Explore, matching the
// original's "only steer the player while exploring" gate.
func (f *Follower) Follow(w world.World, e world.Entity) {
	pos := w.Position(e)
	cells := candidates(pos)

	var moveWeights [5]float64
	for _, entry := range f.Weights {
		for i, c := range cells {
			moveWeights[i] += entry.Weight(entry.Map.At(c.X, c.Y))
		}
	}

	best := 0
	minWeight := moveWeights[0]
	for i := 1; i < len(moveWeights); i++ {
		if moveWeights[i] < minWeight {
			minWeight = moveWeights[i]
			best = i
		}
	}
	logging.Logger.Trace().Int("best", best).Float64("weight", minWeight).Msg("dmap follower chose a move")
	w.SetAction(e, candidateActions[best])
}
