package world

// Batch collects AI-phase writes during a tick and applies them in one
// flush, the same shape as the collect-then-flush toRemove slice a query
// loop fills before entities are mutated after iteration ends. Only Action
// writes go through a Batch: everything else the AI phase touches
// (blackboard state, latch components, sleep timers) is exclusive to the
// entity being decided this tick and can be written immediately without
// risking a concurrent query over the same component.
type Batch struct {
	world   World
	actions map[Entity]Action
	removed map[Entity]struct{}
}

func newBatch(w World) *Batch {
	return &Batch{
		world:   w,
		actions: make(map[Entity]Action),
		removed: make(map[Entity]struct{}),
	}
}

// SetAction records a to-be-applied action for e, overwriting any action
// already queued for the same entity this tick.
func (b *Batch) SetAction(e Entity, a Action) {
	b.actions[e] = a
}

// RemoveEntity queues e for removal at Flush. The AI phase itself never
// decides to remove entities, but a batch exposes the hook so a host
// runtime can thread removals through the same deferred queue it uses for
// actions.
func (b *Batch) RemoveEntity(e Entity) {
	b.removed[e] = struct{}{}
}

// Flush applies every queued action write, then every queued removal, in
// that order, and clears the batch for reuse.
func (b *Batch) Flush() {
	for e, a := range b.actions {
		if b.world.Alive(e) {
			b.world.SetAction(e, a)
		}
	}
	for e := range b.removed {
		if b.world.Alive(e) {
			b.world.RemoveEntity(e)
		}
	}
	b.actions = make(map[Entity]Action)
	b.removed = make(map[Entity]struct{})
}
