package ai

import (
	"sync"

	"github.com/471VE/ai-roguelike/dijkstra"
	"github.com/471VE/ai-roguelike/logging"
	"github.com/471VE/ai-roguelike/world"
)

// minEntitiesForParallel below this, spinning up goroutines costs more
// than it saves, matching the teacher's minOrganismsForParallel threshold.
const minEntitiesForParallel = 100

// Runtime owns every entity's Decider and dmap Follower assignments. Tick
// (or TickParallel) runs the deciders and FollowDMaps runs the followers;
// the maps themselves come from the package-level RegenerateMaps.
type Runtime struct {
	deciders   map[world.Entity]Decider
	followers  map[world.Entity]*dijkstra.Follower
	numWorkers int

	order []world.Entity
}

// NewRuntime returns an empty Runtime configured to use numWorkers
// goroutines when TickParallel's batch is large enough to bother.
func NewRuntime(numWorkers int) *Runtime {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Runtime{
		deciders:   make(map[world.Entity]Decider),
		followers:  make(map[world.Entity]*dijkstra.Follower),
		numWorkers: numWorkers,
	}
}

// AssignDecider binds e to d, replacing any previous assignment.
func (r *Runtime) AssignDecider(e world.Entity, d Decider) {
	if _, exists := r.deciders[e]; !exists {
		r.order = append(r.order, e)
	}
	r.deciders[e] = d
}

// AssignFollower binds e to a dmap follower, used during FollowDMaps.
func (r *Runtime) AssignFollower(e world.Entity, f *dijkstra.Follower) {
	r.followers[e] = f
}

// Forget drops e's decider/follower assignments, e.g. once it dies.
func (r *Runtime) Forget(e world.Entity) {
	delete(r.deciders, e)
	delete(r.followers, e)
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Tick runs every assigned, living entity's Decider once, in assignment
// order.
func (r *Runtime) Tick(w world.World) {
	logging.Logger.Trace().Int("entities", len(r.order)).Msg("ai tick")
	for _, e := range r.order {
		d, ok := r.deciders[e]
		if !ok || !w.Alive(e) {
			continue
		}
		d.Decide(w, e)
	}
}

// TickParallel behaves like Tick but splits the live entity set into
// r.numWorkers chunks run on separate goroutines once the batch is large
// enough to be worth it, matching the teacher's UpdateParallel chunking
// shape (each goroutine owns a disjoint index range, no shared mutable
// state besides each entity's own components).
func (r *Runtime) TickParallel(w world.World) {
	live := make([]world.Entity, 0, len(r.order))
	for _, e := range r.order {
		if _, ok := r.deciders[e]; ok && w.Alive(e) {
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return
	}
	if len(live) < minEntitiesForParallel {
		for _, e := range live {
			r.deciders[e].Decide(w, e)
		}
		return
	}

	// Blackboard creates boards lazily in a map shared by the whole world;
	// create them here so the workers below only ever read that map.
	for _, e := range live {
		w.Blackboard(e)
	}

	numWorkers := r.numWorkers
	if numWorkers > len(live) {
		numWorkers = len(live)
	}
	chunkSize := (len(live) + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		start := worker * chunkSize
		end := start + chunkSize
		if end > len(live) {
			end = len(live)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for _, e := range live[start:end] {
				r.deciders[e].Decide(w, e)
			}
		}(start, end)
	}
	wg.Wait()
}

// RegenerateMaps rebuilds every named Dijkstra map for the current world
// state. src is the position vision/mage maps are computed relative to
// (normally the player's position); if there is no alive player, Vision and
// Mage are left nil.
func RegenerateMaps(w world.World) *dijkstra.Maps {
	logging.Logger.Debug().Msg("regenerating dijkstra maps")
	maps := dijkstra.Regenerate(w)
	player, ok := w.Player()
	if !ok {
		return maps
	}
	tiles := w.TileMap()
	src := w.Position(player)
	maps.Vision = dijkstra.GenVisionMap(tiles, src)
	maps.Mage = dijkstra.GenMageMap(maps.Approach, maps.Vision, tiles)
	return maps
}

// FollowDMaps runs every assigned follower once against maps. The player's
// follower (if any) only runs while the player's current action is
// world.Explore, matching process_dmap_followers' IsPlayer gate.
func (r *Runtime) FollowDMaps(w world.World) {
	player, hasPlayer := w.Player()
	for e, f := range r.followers {
		if !w.Alive(e) {
			continue
		}
		if hasPlayer && e == player && w.Action(e) != world.Explore {
			continue
		}
		f.Follow(w, e)
	}
}
