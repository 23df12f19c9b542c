// Package predicate implements the boolean transition algebra state
// machines use to decide when to switch states, grounded on
// original_source/w1/aiLibrary.cpp's StateTransition subclasses.
package predicate

import (
	"math"

	"github.com/471VE/ai-roguelike/world"
)

// Predicate reports whether a transition should fire for e this tick. Some
// predicates have side effects on first becoming true (AtRestingBase,
// FinishedSleeping) — see their doc comments.
type Predicate func(w world.World, e world.Entity) bool

func dist(a, b world.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// EnemyAvailable reports whether any enemy entity lies within triggerDist.
func EnemyAvailable(triggerDist float64) Predicate {
	return func(w world.World, e world.Entity) bool {
		closest, ok := w.ClosestEnemy(e, int(math.Ceil(triggerDist)))
		if !ok {
			return false
		}
		return dist(w.Position(e), w.Position(closest)) <= triggerDist
	}
}

// HitpointsLessThan reports whether e's own hitpoints fall below threshold.
func HitpointsLessThan(threshold float64) Predicate {
	return func(w world.World, e world.Entity) bool {
		return w.Hitpoints(e).HP < threshold
	}
}

// PlayerAvailable reports whether the player is within triggerDist of e.
func PlayerAvailable(triggerDist float64) Predicate {
	return func(w world.World, e world.Entity) bool {
		player, ok := w.Player()
		if !ok {
			return false
		}
		return dist(w.Position(e), w.Position(player)) <= triggerDist
	}
}

// PlayerHitpointsLessThan reports whether the player's hitpoints fall below
// threshold.
func PlayerHitpointsLessThan(threshold float64) Predicate {
	return func(w world.World, _ world.Entity) bool {
		player, ok := w.Player()
		if !ok {
			return false
		}
		return w.Hitpoints(player).HP < threshold
	}
}

// PlayerHealingCooldown reports whether the player's heal cooldown is still
// ticking down.
func PlayerHealingCooldown() Predicate {
	return func(w world.World, _ world.Entity) bool {
		player, ok := w.Player()
		if !ok {
			return false
		}
		if !w.HasPlayerHealingCooldown(player) {
			return false
		}
		return w.PlayerHealingCooldown(player).Cooldown > 0
	}
}

// AtRestingBase reports whether e stands on its own resting base tile.
// Edge-triggered: on the false→true transition it arms e's sleep timer
// (restarting it only if the timer had fully drained, so an interrupted
// sleep resumes instead of resetting) and sets ShouldSleep. A predicate
// queried twice in the same tick after the first true evaluation is
// idempotent — the timer/flag writes only happen once per arrival.
func AtRestingBase() Predicate {
	return func(w world.World, e world.Entity) bool {
		if !w.HasRestingBase(e) {
			return false
		}
		atBase := w.Position(e) == w.RestingBase(e).ToPosition()
		if !atBase {
			return false
		}
		if w.HasShouldSleep(e) {
			// already latched this stay; re-arming would reset an
			// in-progress rest.
			return true
		}
		timer := w.SleepTimer(e)
		if timer.TimeLeft == 0 {
			timer.TimeLeft = timer.Timer
			w.SetSleepTimer(e, timer)
		}
		w.SetShouldSleep(e, true)
		return true
	}
}

// AtNextHealPosition reports whether e stands on its own next-heal target
// tile.
func AtNextHealPosition() Predicate {
	return func(w world.World, e world.Entity) bool {
		if !w.HasNextHealPosition(e) {
			return false
		}
		return w.Position(e) == w.NextHealPosition(e).ToPosition()
	}
}

// AlwaysTrue always fires.
func AlwaysTrue() Predicate {
	return func(world.World, world.Entity) bool { return true }
}

// WorkDone reports whether e has planted as many heals as required.
func WorkDone() Predicate {
	return func(w world.World, e world.Entity) bool {
		if !w.HasNumHealsPlanted(e) {
			return false
		}
		n := w.NumHealsPlanted(e)
		return n.Planted == n.Needed
	}
}

// FinishedSleeping reports whether e's sleep timer has drained to zero.
// Edge-triggered: only fires while ShouldSleep is set, and on firing it
// resets the work counter and clears ShouldSleep, matching the original's
// "entity.remove<ShouldSleep>()" side effect.
func FinishedSleeping() Predicate {
	return func(w world.World, e world.Entity) bool {
		if !w.HasShouldSleep(e) {
			return false
		}
		if !w.HasSleepTimer(e) {
			return false
		}
		if w.SleepTimer(e).TimeLeft != 0 {
			return false
		}
		if w.HasNumHealsPlanted(e) {
			n := w.NumHealsPlanted(e)
			n.Planted = 0
			w.SetNumHealsPlanted(e, n)
		}
		w.SetShouldSleep(e, false)
		return true
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(w world.World, e world.Entity) bool { return !p(w, e) }
}

// And is true only when every predicate is true, left-to-right, stopping at
// the first false result — so a conjunct after a decided false never runs,
// matching the original's lhs->isAvailable(...) && rhs->isAvailable(...).
// Side-effecting predicates (AtRestingBase, FinishedSleeping) only latch
// when the whole chain up to and including them is still true.
func And(predicates ...Predicate) Predicate {
	return func(w world.World, e world.Entity) bool {
		for _, p := range predicates {
			if !p(w, e) {
				return false
			}
		}
		return true
	}
}

// Or is true when any predicate is true, left-to-right, stopping at the
// first true result, matching the original's || chaining.
func Or(predicates ...Predicate) Predicate {
	return func(w world.World, e world.Entity) bool {
		for _, p := range predicates {
			if p(w, e) {
				return true
			}
		}
		return false
	}
}
