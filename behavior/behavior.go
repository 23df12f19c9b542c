// Package behavior implements the behaviour tree (compound nodes and
// leaves) and utility selectors, grounded on original_source/w2/behLibrary.cpp
// and w3/behLibrary.cpp.
package behavior

import (
	"math"
	"math/rand"

	"github.com/471VE/ai-roguelike/world"
)

// Result is a node's tri-state outcome for this tick.
type Result int

const (
	Running Result = iota
	Success
	Fail
)

// Node is a behaviour-tree node: one Update call per tick.
type Node interface {
	Update(w world.World, e world.Entity, bb *world.Blackboard) Result
}

// NodeFunc adapts a plain function to Node.
type NodeFunc func(w world.World, e world.Entity, bb *world.Blackboard) Result

func (f NodeFunc) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	return f(w, e, bb)
}

// Sequence succeeds only if every child succeeds in order, stopping (and
// returning) on the first non-success result.
type Sequence struct{ Nodes []Node }

func NewSequence(nodes ...Node) *Sequence { return &Sequence{Nodes: nodes} }

func (s *Sequence) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	for _, n := range s.Nodes {
		if res := n.Update(w, e, bb); res != Success {
			return res
		}
	}
	return Success
}

// Selector returns the first child result that isn't Fail, stopping there;
// Fail only if every child fails.
type Selector struct{ Nodes []Node }

func NewSelector(nodes ...Node) *Selector { return &Selector{Nodes: nodes} }

func (s *Selector) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	for _, n := range s.Nodes {
		if res := n.Update(w, e, bb); res != Fail {
			return res
		}
	}
	return Fail
}

// Parallel runs every child this tick and returns Running unless some
// child returns a non-Running result, in which case that result is
// returned immediately (later children in the list still run this tick
// only up to that point, matching the original's early-return loop).
type Parallel struct{ Nodes []Node }

func NewParallel(nodes ...Node) *Parallel { return &Parallel{Nodes: nodes} }

func (p *Parallel) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	for _, n := range p.Nodes {
		if res := n.Update(w, e, bb); res != Running {
			return res
		}
	}
	return Running
}

// Negate flips Success/Fail and passes Running through unchanged.
type Negate struct{ Node Node }

func NewNegate(n Node) *Negate { return &Negate{Node: n} }

func (neg *Negate) Update(w world.World, e world.Entity, bb *world.Blackboard) Result {
	switch neg.Node.Update(w, e, bb) {
	case Success:
		return Fail
	case Fail:
		return Success
	default:
		return Running
	}
}

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

func dist(a, b world.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// MoveToEntity steps toward the entity stored in bb's key slot,
// succeeding on arrival and failing if the target has died.
func MoveToEntity(key world.Key[world.Entity]) Node {
	return NodeFunc(func(w world.World, e world.Entity, bb *world.Blackboard) Result {
		target := world.Get(bb, key)
		if !w.Alive(target) {
			return Fail
		}
		pos, targetPos := w.Position(e), w.Position(target)
		if pos == targetPos {
			return Success
		}
		w.SetAction(e, moveTowards(pos, targetPos))
		return Running
	})
}

// IsLowHp succeeds when e's own hitpoints fall below threshold.
func IsLowHp(threshold float64) Node {
	return NodeFunc(func(w world.World, e world.Entity, _ *world.Blackboard) Result {
		if w.Hitpoints(e).HP < threshold {
			return Success
		}
		return Fail
	})
}

// FindEnemy looks for the nearest enemy within distance and, on success,
// records it in bb's key slot.
func FindEnemy(distance float64, key world.Key[world.Entity]) Node {
	return NodeFunc(func(w world.World, e world.Entity, bb *world.Blackboard) Result {
		closest, ok := w.ClosestEnemy(e, int(math.Ceil(distance)))
		if !ok || dist(w.Position(e), w.Position(closest)) > distance {
			return Fail
		}
		world.Set(bb, key, closest)
		return Success
	})
}

// FindBuff looks for the nearest buff pickup and, on success, records it
// in bb's key slot.
func FindBuff(key world.Key[world.Entity]) Node {
	return NodeFunc(func(w world.World, e world.Entity, bb *world.Blackboard) Result {
		pos := w.Position(e)
		var closest world.Entity
		found := false
		closestDist := math.MaxFloat64
		w.BuffEntities(func(buff world.Entity) {
			d := dist(pos, w.Position(buff))
			if d < closestDist {
				closestDist = d
				closest = buff
				found = true
			}
		})
		if !found {
			return Fail
		}
		world.Set(bb, key, closest)
		return Success
	})
}

// MoveToNextWaypoint steps e toward its entity's current waypoint,
// advancing (with wraparound) once it arrives. The current index lives on
// the node itself, matching the original's per-node currentWaypoint field.
type MoveToNextWaypointNode struct {
	current int
}

// NewMoveToNextWaypoint returns a fresh waypoint-cycling node starting at
// index 0.
func NewMoveToNextWaypoint() *MoveToNextWaypointNode { return &MoveToNextWaypointNode{} }

func (n *MoveToNextWaypointNode) Update(w world.World, e world.Entity, _ *world.Blackboard) Result {
	if !w.HasWayPoints(e) {
		return Fail
	}
	wp := w.WayPoints(e)
	if len(wp.Positions) == 0 {
		return Fail
	}
	if n.current >= len(wp.Positions) {
		n.current = 0
	}
	target := wp.Positions[n.current]
	pos := w.Position(e)
	if pos != target {
		w.SetAction(e, moveTowards(pos, target))
		return Running
	}
	n.current = (n.current + 1) % len(wp.Positions)
	return Success
}

// Say sets every entity with an Expression component to text/colorName.
// The original broadcasts to a query of Expression-bearing entities (a
// speech-bubble overlay), so this leaf takes the world-wide fan-out
// explicitly via a caller-supplied list rather than guessing at a query
// shape the world package doesn't otherwise need.
func Say(text, colorName string, targets ...world.Entity) Node {
	return NodeFunc(func(w world.World, _ world.Entity, _ *world.Blackboard) Result {
		for _, t := range targets {
			if w.Alive(t) && w.HasExpression(t) {
				w.SetExpression(t, world.Expression{Text: text, ColorName: colorName})
			}
		}
		return Success
	})
}

// Flee steps directly away from the entity stored in bb's key slot,
// failing if that target has died.
func Flee(key world.Key[world.Entity]) Node {
	return NodeFunc(func(w world.World, e world.Entity, bb *world.Blackboard) Result {
		target := world.Get(bb, key)
		if !w.Alive(target) {
			return Fail
		}
		w.SetAction(e, inverseMove(moveTowards(w.Position(e), w.Position(target))))
		return Running
	})
}

// Patrol recovery-walks e toward its patrol anchor once it strays beyond
// patrolDist, otherwise takes a random step drawn from rng.
func Patrol(patrolDist float64, rng *rand.Rand) Node {
	return NodeFunc(func(w world.World, e world.Entity, _ *world.Blackboard) Result {
		if !w.HasPatrolPos(e) {
			return Fail
		}
		pos := w.Position(e)
		anchor := w.PatrolPos(e).ToPosition()
		if dist(pos, anchor) > patrolDist {
			w.SetAction(e, moveTowards(pos, anchor))
			return Running
		}
		directions := []world.Action{world.MoveLeft, world.MoveRight, world.MoveUp, world.MoveDown}
		w.SetAction(e, directions[rng.Intn(len(directions))])
		return Running
	})
}
