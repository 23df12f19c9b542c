// Package ai wires the decision structures (fsm, behavior, dijkstra) into a
// per-tick runtime, grounded on the teacher's main.go system dispatch: one
// measured Update call per subsystem, in a fixed order, every tick.
package ai

import (
	"github.com/471VE/ai-roguelike/behavior"
	"github.com/471VE/ai-roguelike/fsm"
	"github.com/471VE/ai-roguelike/world"
)

// Decider chooses entity e's action for the current tick. Each living
// entity owns exactly one Decider instance: an fsm.Machine tracks its
// current child by index and a waypoint-cycling behavior.Node tracks its
// current target index, so deciders are never shared between entities.
type Decider interface {
	Decide(w world.World, e world.Entity)
}

// FSMDecider drives e's hierarchical state machine for one tick.
type FSMDecider struct {
	Machine *fsm.Machine
}

func (d *FSMDecider) Decide(w world.World, e world.Entity) {
	d.Machine.Act(w, e)
}

// BTDecider drives e's behaviour tree for one tick.
type BTDecider struct {
	Root behavior.Node
}

func (d *BTDecider) Decide(w world.World, e world.Entity) {
	bb := w.Blackboard(e)
	d.Root.Update(w, e, bb)
}
