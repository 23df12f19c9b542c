package world_test

import (
	"testing"

	"github.com/471VE/ai-roguelike/world"
)

func newTestWorld(t *testing.T) *world.ArkWorld {
	t.Helper()
	tiles := world.NewTileMap(4, 4)
	return world.NewArkWorld(tiles)
}

func TestSpawnActorDefaults(t *testing.T) {
	w := newTestWorld(t)
	e := w.SpawnActor(world.Position{X: 1, Y: 2}, world.Team{ID: 1}, world.Hitpoints{HP: 10})

	if !w.Alive(e) {
		t.Fatal("spawned entity should be alive")
	}
	if got := w.Position(e); got != (world.Position{X: 1, Y: 2}) {
		t.Errorf("Position = %+v, want {1 2}", got)
	}
	if got := w.Action(e); got != world.NOP {
		t.Errorf("Action = %v, want NOP", got)
	}
	if got := w.Team(e); got.ID != 1 {
		t.Errorf("Team.ID = %d, want 1", got.ID)
	}
}

func TestSetActionAndPosition(t *testing.T) {
	w := newTestWorld(t)
	e := w.SpawnActor(world.Position{}, world.Team{ID: 0}, world.Hitpoints{HP: 5})

	w.SetAction(e, world.MoveRight)
	if got := w.Action(e); got != world.MoveRight {
		t.Errorf("Action = %v, want MoveRight", got)
	}

	w.SetPosition(e, world.Position{X: 3, Y: 3})
	if got := w.Position(e); got != (world.Position{X: 3, Y: 3}) {
		t.Errorf("Position = %+v, want {3 3}", got)
	}
}

func TestPlayerLookup(t *testing.T) {
	w := newTestWorld(t)
	if _, ok := w.Player(); ok {
		t.Fatal("expected no player before one is tagged")
	}

	p := w.SpawnActor(world.Position{X: 0, Y: 0}, world.Team{ID: 0}, world.Hitpoints{HP: 20})
	w.SetPlayer(p)

	got, ok := w.Player()
	if !ok || got != p {
		t.Fatalf("Player() = %v, %v, want %v, true", got, ok, p)
	}
}

func TestClosestEnemyRespectsTeamAndRadius(t *testing.T) {
	w := newTestWorld(t)
	hero := w.SpawnActor(world.Position{X: 0, Y: 0}, world.Team{ID: 0}, world.Hitpoints{HP: 10})
	ally := w.SpawnActor(world.Position{X: 1, Y: 0}, world.Team{ID: 0}, world.Hitpoints{HP: 10})
	near := w.SpawnActor(world.Position{X: 2, Y: 0}, world.Team{ID: 1}, world.Hitpoints{HP: 10})
	far := w.SpawnActor(world.Position{X: 10, Y: 10}, world.Team{ID: 1}, world.Hitpoints{HP: 10})
	_ = ally
	_ = far

	got, ok := w.ClosestEnemy(hero, 5)
	if !ok {
		t.Fatal("expected an enemy within radius")
	}
	if got != near {
		t.Errorf("ClosestEnemy = %v, want %v", got, near)
	}

	if _, ok := w.ClosestEnemy(hero, 1); ok {
		t.Error("expected no enemy within radius 1")
	}
}

func TestRemoveEntityClearsBlackboard(t *testing.T) {
	w := newTestWorld(t)
	e := w.SpawnActor(world.Position{}, world.Team{}, world.Hitpoints{HP: 1})

	key := world.Register[int](w.Blackboard(e), "hits")
	world.Set(w.Blackboard(e), key, 3)

	w.RemoveEntity(e)
	if w.Alive(e) {
		t.Fatal("entity should no longer be alive after RemoveEntity")
	}
	if w.Blackboard(e).Has("hits") {
		t.Error("blackboard slot survived RemoveEntity")
	}
}

func TestBatchFlushAppliesQueuedActions(t *testing.T) {
	w := newTestWorld(t)
	e := w.SpawnActor(world.Position{}, world.Team{}, world.Hitpoints{HP: 1})

	b := w.NewBatch()
	b.SetAction(e, world.Sleep)
	if got := w.Action(e); got != world.NOP {
		t.Fatal("action should not be visible before Flush")
	}
	b.Flush()
	if got := w.Action(e); got != world.Sleep {
		t.Errorf("Action after Flush = %v, want Sleep", got)
	}
}

func TestExplorationTilesSkipsExplored(t *testing.T) {
	w := newTestWorld(t)
	w.MarkExplored(0, 0)

	count := 0
	w.ExplorationTiles(func(x, y int) {
		if x == 0 && y == 0 {
			t.Error("explored tile (0,0) should not be reported")
		}
		count++
	})
	if want := 4*4 - 1; count != want {
		t.Errorf("unexplored tile count = %d, want %d", count, want)
	}
}
