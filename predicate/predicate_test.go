package predicate_test

import (
	"testing"

	"github.com/471VE/ai-roguelike/predicate"
	"github.com/471VE/ai-roguelike/world"
)

func newWorld() *world.ArkWorld {
	return world.NewArkWorld(world.NewTileMap(8, 8))
}

func TestEnemyAvailable(t *testing.T) {
	w := newWorld()
	hero := w.SpawnActor(world.Position{X: 0, Y: 0}, world.Team{ID: 0}, world.Hitpoints{HP: 10})
	w.SpawnActor(world.Position{X: 5, Y: 5}, world.Team{ID: 1}, world.Hitpoints{HP: 10})

	if predicate.EnemyAvailable(3)(w, hero) {
		t.Error("enemy at distance ~7 should not be available within 3")
	}
	w.SpawnActor(world.Position{X: 1, Y: 0}, world.Team{ID: 1}, world.Hitpoints{HP: 10})
	if !predicate.EnemyAvailable(3)(w, hero) {
		t.Error("enemy at distance 1 should be available within 3")
	}
}

func TestHitpointsLessThan(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{}, world.Team{}, world.Hitpoints{HP: 5})
	if predicate.HitpointsLessThan(5)(w, e) {
		t.Error("5 < 5 should be false")
	}
	if !predicate.HitpointsLessThan(6)(w, e) {
		t.Error("5 < 6 should be true")
	}
}

func TestAtRestingBaseLatchesOnce(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{X: 2, Y: 2}, world.Team{}, world.Hitpoints{HP: 10})
	w.SetRestingBaseComp(e, world.RestingBaseFrom(world.Position{X: 2, Y: 2}))
	w.SetSleepTimer(e, world.SleepTimer{Timer: 10, TimeLeft: 0})

	pred := predicate.AtRestingBase()
	if !pred(w, e) {
		t.Fatal("expected AtRestingBase to fire on arrival")
	}
	if !w.HasShouldSleep(e) {
		t.Error("expected ShouldSleep to be set")
	}
	if got := w.SleepTimer(e).TimeLeft; got != 10 {
		t.Errorf("TimeLeft = %d, want 10", got)
	}

	// Simulate the timer ticking down externally, then re-evaluate: since
	// ShouldSleep is already set, the predicate must not re-arm the timer.
	w.SetSleepTimer(e, world.SleepTimer{Timer: 10, TimeLeft: 4})
	if !pred(w, e) {
		t.Fatal("expected AtRestingBase to keep firing while still at base")
	}
	if got := w.SleepTimer(e).TimeLeft; got != 4 {
		t.Errorf("TimeLeft should not be reset by a repeated arrival, got %d", got)
	}
}

func TestFinishedSleepingResetsWork(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{}, world.Team{}, world.Hitpoints{HP: 10})
	w.SetShouldSleep(e, true)
	w.SetSleepTimer(e, world.SleepTimer{Timer: 5, TimeLeft: 0})
	w.SetNumHealsPlanted(e, world.NumHealsPlanted{Planted: 3, Needed: 3})

	if !predicate.FinishedSleeping()(w, e) {
		t.Fatal("expected FinishedSleeping to fire when timer is drained")
	}
	if w.HasShouldSleep(e) {
		t.Error("ShouldSleep should be cleared")
	}
	if got := w.NumHealsPlanted(e).Planted; got != 0 {
		t.Errorf("Planted = %d, want 0", got)
	}
}

func TestNotAndOr(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{}, world.Team{}, world.Hitpoints{HP: 10})

	yes := predicate.AlwaysTrue()
	no := predicate.Not(yes)

	if no(w, e) {
		t.Error("Not(AlwaysTrue) should be false")
	}
	if !predicate.And(yes, yes)(w, e) {
		t.Error("And(true, true) should be true")
	}
	if predicate.And(yes, no)(w, e) {
		t.Error("And(true, false) should be false")
	}
	if !predicate.Or(no, yes)(w, e) {
		t.Error("Or(false, true) should be true")
	}
}

func TestAndShortCircuitsBeforeSideEffectingConjunct(t *testing.T) {
	w := newWorld()
	e := w.SpawnActor(world.Position{X: 2, Y: 2}, world.Team{}, world.Hitpoints{HP: 10})
	w.SetRestingBaseComp(e, world.RestingBaseFrom(world.Position{X: 2, Y: 2}))
	w.SetSleepTimer(e, world.SleepTimer{Timer: 10, TimeLeft: 0})

	combined := predicate.And(predicate.Not(predicate.AlwaysTrue()), predicate.AtRestingBase())
	if combined(w, e) {
		t.Fatal("And(false, AtRestingBase) should be false")
	}
	if w.HasShouldSleep(e) {
		t.Error("AtRestingBase must not run (and so must not latch) once an earlier conjunct is false")
	}
}
