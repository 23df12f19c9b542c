package fsm

import (
	"math"
	"math/rand"

	"github.com/471VE/ai-roguelike/world"
)

// moveTowards picks a single step from `from` toward `to` along whichever
// axis has the larger offset. When from == to there is no direction to
// move and NOP is returned.
func moveTowards(from, to world.Position) world.Action {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return world.NOP
	}
	if absInt(dx) > absInt(dy) {
		if dx > 0 {
			return world.MoveRight
		}
		return world.MoveLeft
	}
	if dy < 0 {
		return world.MoveUp
	}
	return world.MoveDown
}

func inverseMove(a world.Action) world.Action {
	switch a {
	case world.MoveLeft:
		return world.MoveRight
	case world.MoveRight:
		return world.MoveLeft
	case world.MoveUp:
		return world.MoveDown
	case world.MoveDown:
		return world.MoveUp
	default:
		return a
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func distance(a, b world.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveToEnemy steers e directly toward its nearest enemy.
func MoveToEnemy() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		enemy, ok := w.ClosestEnemy(e, math.MaxInt32)
		if !ok {
			return
		}
		w.SetAction(e, moveTowards(w.Position(e), w.Position(enemy)))
	}}
}

// FleeFromEnemy steers e directly away from its nearest enemy.
func FleeFromEnemy() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		enemy, ok := w.ClosestEnemy(e, math.MaxInt32)
		if !ok {
			return
		}
		w.SetAction(e, inverseMove(moveTowards(w.Position(e), w.Position(enemy))))
	}}
}

// Patrol walks e back toward its patrol anchor once it strays farther than
// patrolDist, and otherwise takes a random step drawn from rng, per the
// original's recovery-walk / random-walk split.
func Patrol(patrolDist float64, rng *rand.Rand) *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		if !w.HasPatrolPos(e) {
			return
		}
		pos := w.Position(e)
		anchor := w.PatrolPos(e).ToPosition()
		if distance(pos, anchor) > patrolDist {
			w.SetAction(e, moveTowards(pos, anchor))
			return
		}
		directions := []world.Action{world.MoveLeft, world.MoveRight, world.MoveUp, world.MoveDown}
		w.SetAction(e, directions[rng.Intn(len(directions))])
	}}
}

// Nop leaves e's action untouched.
func Nop() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {}}
}

// HealSelf issues the HealSelf action.
func HealSelf() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		w.SetAction(e, world.HealSelf)
	}}
}

// MoveToPlayer steers e toward the player.
func MoveToPlayer() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		player, ok := w.Player()
		if !ok {
			return
		}
		w.SetAction(e, moveTowards(w.Position(e), w.Position(player)))
	}}
}

// HealPlayer issues the HealPlayer action.
func HealPlayer() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		w.SetAction(e, world.HealPlayer)
	}}
}

// MoveToRestingBase steers e toward its resting anchor.
func MoveToRestingBase() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		if !w.HasRestingBase(e) {
			return
		}
		w.SetAction(e, moveTowards(w.Position(e), w.RestingBase(e).ToPosition()))
	}}
}

// Sleeping issues the Sleep action.
func Sleeping() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		w.SetAction(e, world.Sleep)
	}}
}

// MoveToNextPosition steers e toward its next-heal target tile.
func MoveToNextPosition() *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		if !w.HasNextHealPosition(e) {
			return
		}
		w.SetAction(e, moveTowards(w.Position(e), w.NextHealPosition(e).ToPosition()))
	}}
}

// PlantHeal issues the PlantHeal action once e reaches its target tile,
// then rolls a fresh target in [minCoord,maxCoord] (drawn from rng) for the
// next trip.
func PlantHeal(minCoord, maxCoord int, rng *rand.Rand) *State {
	return &State{ActFunc: func(w world.World, e world.Entity) {
		if !w.HasNextHealPosition(e) {
			return
		}
		pos := w.Position(e)
		target := w.NextHealPosition(e).ToPosition()
		if pos != target {
			return
		}
		w.SetAction(e, world.PlantHeal)
		span := maxCoord - minCoord + 1
		next := world.Position{
			X: minCoord + rng.Intn(span),
			Y: minCoord + rng.Intn(span),
		}
		w.SetNextHealPosition(e, world.NextHealPositionFrom(next))
	}}
}
