package behavior

import (
	"math/rand"

	"github.com/471VE/ai-roguelike/world"
)

// MoveToPosition steps toward the world.Position stored in bb's key slot,
// succeeding on arrival.
func MoveToPosition(key world.Key[world.Position]) Node {
	return NodeFunc(func(w world.World, e world.Entity, bb *world.Blackboard) Result {
		target := world.Get(bb, key)
		pos := w.Position(e)
		if pos == target {
			return Success
		}
		w.SetAction(e, moveTowards(pos, target))
		return Running
	})
}

// RandomMove always takes a random step drawn from rng and reports Running.
func RandomMove(rng *rand.Rand) Node {
	directions := []world.Action{world.MoveLeft, world.MoveRight, world.MoveUp, world.MoveDown}
	return NodeFunc(func(w world.World, e world.Entity, _ *world.Blackboard) Result {
		w.SetAction(e, directions[rng.Intn(len(directions))])
		return Running
	})
}

// PatchUp issues HealSelf while e's hitpoints remain below threshold, and
// succeeds once they reach it.
func PatchUp(threshold float64) Node {
	return NodeFunc(func(w world.World, e world.Entity, _ *world.Blackboard) Result {
		if w.Hitpoints(e).HP >= threshold {
			return Success
		}
		w.SetAction(e, world.HealSelf)
		return Running
	})
}
