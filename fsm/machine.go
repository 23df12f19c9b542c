// Package fsm implements the hierarchical state machine, grounded 1:1 on
// original_source/w1/stateMachine.h/.cpp: a tree of Machine nodes where a
// leaf runs a single State and a composite scans its current child's
// transitions before acting, expressed as owned Go values instead of the
// original's owning raw pointers.
package fsm

import (
	"github.com/471VE/ai-roguelike/predicate"
	"github.com/471VE/ai-roguelike/world"
)

// State is a single action plus optional enter/exit hooks. All of the
// leaf states in this package use no-op Enter/Exit, matching the original
// library, but composite children (sub-machines) have their own
// Enter/Exit driven by Machine itself.
type State struct {
	EnterFunc func(w world.World, e world.Entity)
	ExitFunc  func(w world.World, e world.Entity)
	ActFunc   func(w world.World, e world.Entity)
}

func (s *State) enter(w world.World, e world.Entity) {
	if s.EnterFunc != nil {
		s.EnterFunc(w, e)
	}
}

func (s *State) exit(w world.World, e world.Entity) {
	if s.ExitFunc != nil {
		s.ExitFunc(w, e)
	}
}

func (s *State) act(w world.World, e world.Entity) {
	if s.ActFunc != nil {
		s.ActFunc(w, e)
	}
}

type transition struct {
	pred predicate.Predicate
	to   int
}

// Machine is either a leaf wrapping a single State, or a composite holding
// child Machines and the transitions between them.
type Machine struct {
	leaf *State

	children    []*Machine
	transitions [][]transition
	cur         int
}

// NewLeaf wraps a single State as a one-node Machine.
func NewLeaf(s *State) *Machine {
	return &Machine{leaf: s}
}

// NewComposite returns an empty composite machine ready for AddState /
// AddChild / AddTransition calls.
func NewComposite() *Machine {
	return &Machine{}
}

// AddState appends a leaf state as a new child and returns its index.
func (m *Machine) AddState(s *State) int {
	return m.AddChild(NewLeaf(s))
}

// AddChild appends an existing (possibly composite) sub-machine as a new
// child and returns its index.
func (m *Machine) AddChild(child *Machine) int {
	idx := len(m.children)
	m.children = append(m.children, child)
	m.transitions = append(m.transitions, nil)
	return idx
}

// AddTransition registers a transition from child index `from` to child
// index `to`. Act tries `from`'s transitions in the order added on every
// call while `from` is the current child.
func (m *Machine) AddTransition(pred predicate.Predicate, from, to int) {
	m.transitions[from] = append(m.transitions[from], transition{pred: pred, to: to})
}

// Enter resets the machine to its first child (or runs the leaf's enter).
func (m *Machine) Enter(w world.World, e world.Entity) {
	m.cur = 0
	if m.leaf != nil {
		m.leaf.enter(w, e)
		return
	}
	if len(m.children) > 0 {
		m.children[m.cur].Enter(w, e)
	}
}

// Exit runs the leaf's exit, or the current child's exit.
func (m *Machine) Exit(w world.World, e world.Entity) {
	if m.leaf != nil {
		m.leaf.exit(w, e)
		return
	}
	if len(m.children) > 0 {
		m.children[m.cur].Exit(w, e)
	}
}

// Act runs the leaf's action, or: scans the current child's transitions in
// insertion order and fires the first available one (exiting the old
// child, entering the new one), then runs the now-current child's Act.
// Only the newly entered child's Act runs on the tick a transition fires —
// the old child's Act does not also run.
func (m *Machine) Act(w world.World, e world.Entity) {
	if m.leaf != nil {
		m.leaf.act(w, e)
		return
	}
	if m.cur >= len(m.children) {
		m.cur = 0
		return
	}
	for _, t := range m.transitions[m.cur] {
		if t.pred(w, e) {
			m.children[m.cur].Exit(w, e)
			m.cur = t.to
			m.children[m.cur].Enter(w, e)
			break
		}
	}
	m.children[m.cur].Act(w, e)
}
