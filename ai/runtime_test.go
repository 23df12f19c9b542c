package ai_test

import (
	"testing"

	"github.com/471VE/ai-roguelike/ai"
	"github.com/471VE/ai-roguelike/behavior"
	"github.com/471VE/ai-roguelike/dijkstra"
	"github.com/471VE/ai-roguelike/world"
)

func newWorld() *world.ArkWorld {
	return world.NewArkWorld(world.NewTileMap(8, 8))
}

func TestTickRunsAssignedDeciders(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{X: 0, Y: 0}, world.Team{}, world.Hitpoints{HP: 10})

	var ran int
	rt := ai.NewRuntime(4)
	rt.AssignDecider(e, &ai.BTDecider{Root: behavior.NodeFunc(func(world.World, world.Entity, *world.Blackboard) behavior.Result {
		ran++
		return behavior.Success
	})})

	rt.Tick(w)
	if ran != 1 {
		t.Fatalf("ran = %d, want 1", ran)
	}
}

func TestTickSkipsDeadEntities(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{X: 0, Y: 0}, world.Team{}, world.Hitpoints{HP: 10})

	var ran int
	rt := ai.NewRuntime(4)
	rt.AssignDecider(e, &ai.BTDecider{Root: behavior.NodeFunc(func(world.World, world.Entity, *world.Blackboard) behavior.Result {
		ran++
		return behavior.Success
	})})
	w.RemoveEntity(e)

	rt.Tick(w)
	if ran != 0 {
		t.Fatalf("ran = %d, want 0 for a removed entity", ran)
	}
}

func TestTickParallelMatchesSequentialResult(t *testing.T) {
	w := newWorld()
	rt := ai.NewRuntime(4)

	const n = 250
	entities := make([]world.Entity, n)
	for i := 0; i < n; i++ {
		entities[i] = w.SpawnActor(world.Position{X: i % 8, Y: 0}, world.Team{}, world.Hitpoints{HP: 10})
		rt.AssignDecider(entities[i], &ai.BTDecider{Root: behavior.NodeFunc(func(w world.World, e world.Entity, _ *world.Blackboard) behavior.Result {
			w.SetAction(e, world.Sleep)
			return behavior.Success
		})})
	}

	rt.TickParallel(w)

	for _, e := range entities {
		if got := w.Action(e); got != world.Sleep {
			t.Fatalf("entity %v action = %v, want Sleep", e, got)
		}
	}
}

func TestFollowDMapsGatesPlayerOnExploreAction(t *testing.T) {
	w := newWorld()
	player := w.SpawnActor(world.Position{X: 0, Y: 0}, world.Team{}, world.Hitpoints{HP: 10})
	w.SetPlayer(player)
	w.SetAction(player, world.NOP)

	tiles := w.TileMap()
	m := world.NewDMap(8, 8)
	m.Set(5, 0, 0)
	dijkstra.Fill(m, tiles, nil)

	rt := ai.NewRuntime(1)
	rt.AssignFollower(player, &dijkstra.Follower{Weights: []dijkstra.Weight{{Map: m, Weight: dijkstra.Linear(1)}}})

	rt.FollowDMaps(w)
	if got := w.Action(player); got != world.NOP {
		t.Fatalf("player action = %v, want untouched NOP while not exploring", got)
	}

	w.SetAction(player, world.Explore)
	rt.FollowDMaps(w)
	if got := w.Action(player); got != world.MoveRight {
		t.Fatalf("player action = %v, want MoveRight while exploring", got)
	}
}
