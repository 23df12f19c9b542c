package world

import "github.com/mlange-42/ark/ecs"

// Entity is an opaque handle into the entity/component store.
type Entity = ecs.Entity

// World is the minimal read/write surface the decision packages (predicate,
// fsm, behavior, dijkstra) see. It never exposes the underlying ECS so those
// packages stay independent of the storage library.
type World interface {
	// Alive reports whether e still exists.
	Alive(e Entity) bool

	Position(e Entity) Position
	SetPosition(e Entity, p Position)

	Action(e Entity) Action
	SetAction(e Entity, a Action)

	Team(e Entity) Team
	Hitpoints(e Entity) Hitpoints
	SetHitpoints(e Entity, hp Hitpoints)

	HasWayPoints(e Entity) bool
	WayPoints(e Entity) WayPoints

	HasPatrolPos(e Entity) bool
	PatrolPos(e Entity) PatrolPos
	SetPatrolPos(e Entity, p PatrolPos)

	HasRestingBase(e Entity) bool
	RestingBase(e Entity) RestingBase

	HasSleepTimer(e Entity) bool
	SleepTimer(e Entity) SleepTimer
	SetSleepTimer(e Entity, s SleepTimer)

	HasShouldSleep(e Entity) bool
	SetShouldSleep(e Entity, on bool)

	HasNumHealsPlanted(e Entity) bool
	NumHealsPlanted(e Entity) NumHealsPlanted
	SetNumHealsPlanted(e Entity, n NumHealsPlanted)

	HasNextHealPosition(e Entity) bool
	NextHealPosition(e Entity) NextHealPosition
	SetNextHealPosition(e Entity, p NextHealPosition)

	HasPlayerHealingCooldown(e Entity) bool
	PlayerHealingCooldown(e Entity) PlayerHealingCooldown
	SetPlayerHealingCooldown(e Entity, c PlayerHealingCooldown)

	HasExpression(e Entity) bool
	SetExpression(e Entity, x Expression)

	IsBuff(e Entity) bool
	IsHive(e Entity) bool
	HasShootDamage(e Entity) bool

	// Blackboard returns the entity's behaviour-tree scratchpad, creating one
	// on first access.
	Blackboard(e Entity) *Blackboard

	// Player returns the single designated player entity and true, or the
	// zero Entity and false if none is alive.
	Player() (Entity, bool)

	// EntitiesWithTeam calls fn for every alive entity on the given team.
	EntitiesWithTeam(team int, fn func(Entity))

	// ClosestEnemy returns the living entity whose team differs from e's team
	// that is nearest to e by Euclidean distance, considering only entities
	// within a Chebyshev radius of e, or false if none is found. Ties go to
	// the first one the query yields.
	ClosestEnemy(e Entity, radius int) (Entity, bool)

	// HiveEntities calls fn for every alive entity tagged Hive.
	HiveEntities(fn func(Entity))

	// AllyEntities calls fn for every alive, non-ShootDamage entity on team.
	AllyEntities(team int, fn func(Entity))

	// BuffEntities calls fn for every alive entity tagged IsBuff.
	BuffEntities(fn func(Entity))

	// TileMap returns the static dungeon grid.
	TileMap() *TileMap

	// ExplorationTiles calls fn for every background tile not yet marked
	// explored, in row-major order.
	ExplorationTiles(fn func(x, y int))

	// NewBatch returns a fresh deferred-mutation batch bound to this world.
	NewBatch() *Batch

	// RemoveEntity destroys e immediately. The AI phase itself never calls
	// this directly (entity lifecycle is a turn-resolution concern) but the
	// runtime and tests use it to manage fixtures.
	RemoveEntity(e Entity)
}
