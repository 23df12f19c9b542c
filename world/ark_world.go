package world

import "github.com/mlange-42/ark/ecs"

// PlayerTag marks the single player-controlled entity.
type PlayerTag struct{}

// ArkWorld is the github.com/mlange-42/ark-backed implementation of World.
// It mirrors the teacher's own pattern of one *ecs.Map[T] per component type
// plus pre-built *ecs.FilterN query handles held as struct fields, never
// touching archetype internals directly.
type ArkWorld struct {
	world *ecs.World
	tiles *TileMap

	// explored mirrors tiles cell-for-cell; true once a background tile has
	// been observed. Not an ECS component: exploration state belongs to the
	// dungeon grid, not to an entity.
	explored []bool

	positionMap    *ecs.Map[Position]
	actionMap      *ecs.Map[Action]
	teamMap        *ecs.Map[Team]
	hitpointsMap   *ecs.Map[Hitpoints]
	wayPointsMap   *ecs.Map[WayPoints]
	patrolMap      *ecs.Map[PatrolPos]
	restingMap     *ecs.Map[RestingBase]
	sleepTimerMap  *ecs.Map[SleepTimer]
	shouldSleepMap *ecs.Map[ShouldSleep]
	healsMap       *ecs.Map[NumHealsPlanted]
	nextHealMap    *ecs.Map[NextHealPosition]
	cooldownMap    *ecs.Map[PlayerHealingCooldown]
	expressionMap  *ecs.Map[Expression]
	playerMap      *ecs.Map[PlayerTag]
	hiveMap        *ecs.Map[Hive]
	shootMap       *ecs.Map[ShootDamage]
	buffMap        *ecs.Map[IsBuff]

	teamFilter   *ecs.Filter2[Position, Team]
	playerFilter *ecs.Filter1[PlayerTag]
	hiveFilter   *ecs.Filter1[Hive]
	buffFilter   *ecs.Filter1[IsBuff]

	blackboards map[ecs.Entity]*Blackboard

	mapper *ecs.Map7[Position, Action, Team, Hitpoints, PlayerHealingCooldown, NumHealsPlanted, SleepTimer]
}

// NewArkWorld builds an empty world over the given static dungeon grid.
func NewArkWorld(tiles *TileMap) *ArkWorld {
	w := ecs.NewWorld()

	aw := &ArkWorld{
		world:    &w,
		tiles:    tiles,
		explored: make([]bool, tiles.Width*tiles.Height),

		positionMap:    ecs.NewMap[Position](&w),
		actionMap:      ecs.NewMap[Action](&w),
		teamMap:        ecs.NewMap[Team](&w),
		hitpointsMap:   ecs.NewMap[Hitpoints](&w),
		wayPointsMap:   ecs.NewMap[WayPoints](&w),
		patrolMap:      ecs.NewMap[PatrolPos](&w),
		restingMap:     ecs.NewMap[RestingBase](&w),
		sleepTimerMap:  ecs.NewMap[SleepTimer](&w),
		shouldSleepMap: ecs.NewMap[ShouldSleep](&w),
		healsMap:       ecs.NewMap[NumHealsPlanted](&w),
		nextHealMap:    ecs.NewMap[NextHealPosition](&w),
		cooldownMap:    ecs.NewMap[PlayerHealingCooldown](&w),
		expressionMap:  ecs.NewMap[Expression](&w),
		playerMap:      ecs.NewMap[PlayerTag](&w),
		hiveMap:        ecs.NewMap[Hive](&w),
		shootMap:       ecs.NewMap[ShootDamage](&w),
		buffMap:        ecs.NewMap[IsBuff](&w),

		teamFilter:   ecs.NewFilter2[Position, Team](&w),
		playerFilter: ecs.NewFilter1[PlayerTag](&w),
		hiveFilter:   ecs.NewFilter1[Hive](&w),
		buffFilter:   ecs.NewFilter1[IsBuff](&w),

		blackboards: make(map[ecs.Entity]*Blackboard),
	}
	aw.mapper = ecs.NewMap7[Position, Action, Team, Hitpoints, PlayerHealingCooldown, NumHealsPlanted, SleepTimer](&w)
	return aw
}

// SpawnActor creates a new AI-controlled entity with the mandatory
// components every decision package assumes are present.
func (w *ArkWorld) SpawnActor(pos Position, team Team, hp Hitpoints) Entity {
	return w.mapper.NewEntity(&pos, new(Action), &team, &hp,
		&PlayerHealingCooldown{}, &NumHealsPlanted{}, &SleepTimer{})
}

// SetPlayer tags e as the single player entity.
func (w *ArkWorld) SetPlayer(e Entity) {
	w.playerMap.Add(e, &PlayerTag{})
}

// SetHive tags e as a hive-map seed.
func (w *ArkWorld) SetHive(e Entity) { w.hiveMap.Add(e, &Hive{}) }

// SetShootDamage tags e as a ranged attacker, excluded from the ally map.
func (w *ArkWorld) SetShootDamage(e Entity) { w.shootMap.Add(e, &ShootDamage{}) }

// SetBuff tags e as a pickup FindBuff can target.
func (w *ArkWorld) SetBuff(e Entity) { w.buffMap.Add(e, &IsBuff{}) }

// SetWayPoints attaches a patrol route to e.
func (w *ArkWorld) SetWayPoints(e Entity, wp WayPoints) {
	if w.wayPointsMap.Has(e) {
		*w.wayPointsMap.Get(e) = wp
		return
	}
	w.wayPointsMap.Add(e, &wp)
}

// SetRestingBaseComp attaches a resting anchor to e.
func (w *ArkWorld) SetRestingBaseComp(e Entity, rb RestingBase) {
	if w.restingMap.Has(e) {
		*w.restingMap.Get(e) = rb
		return
	}
	w.restingMap.Add(e, &rb)
}

func (w *ArkWorld) Alive(e Entity) bool { return w.world.Alive(e) }

func (w *ArkWorld) Position(e Entity) Position { return *w.positionMap.Get(e) }
func (w *ArkWorld) SetPosition(e Entity, p Position) { *w.positionMap.Get(e) = p }

func (w *ArkWorld) Action(e Entity) Action { return *w.actionMap.Get(e) }
func (w *ArkWorld) SetAction(e Entity, a Action) { *w.actionMap.Get(e) = a }

func (w *ArkWorld) Team(e Entity) Team { return *w.teamMap.Get(e) }

func (w *ArkWorld) Hitpoints(e Entity) Hitpoints { return *w.hitpointsMap.Get(e) }
func (w *ArkWorld) SetHitpoints(e Entity, hp Hitpoints) { *w.hitpointsMap.Get(e) = hp }

func (w *ArkWorld) HasWayPoints(e Entity) bool { return w.wayPointsMap.Has(e) }
func (w *ArkWorld) WayPoints(e Entity) WayPoints { return *w.wayPointsMap.Get(e) }

func (w *ArkWorld) HasPatrolPos(e Entity) bool { return w.patrolMap.Has(e) }
func (w *ArkWorld) PatrolPos(e Entity) PatrolPos { return *w.patrolMap.Get(e) }
func (w *ArkWorld) SetPatrolPos(e Entity, p PatrolPos) {
	if w.patrolMap.Has(e) {
		*w.patrolMap.Get(e) = p
		return
	}
	w.patrolMap.Add(e, &p)
}

func (w *ArkWorld) HasRestingBase(e Entity) bool { return w.restingMap.Has(e) }
func (w *ArkWorld) RestingBase(e Entity) RestingBase { return *w.restingMap.Get(e) }

func (w *ArkWorld) HasSleepTimer(e Entity) bool { return w.sleepTimerMap.Has(e) }
func (w *ArkWorld) SleepTimer(e Entity) SleepTimer { return *w.sleepTimerMap.Get(e) }
func (w *ArkWorld) SetSleepTimer(e Entity, s SleepTimer) { *w.sleepTimerMap.Get(e) = s }

func (w *ArkWorld) HasShouldSleep(e Entity) bool { return w.shouldSleepMap.Has(e) }
func (w *ArkWorld) SetShouldSleep(e Entity, on bool) {
	switch {
	case on && !w.shouldSleepMap.Has(e):
		w.shouldSleepMap.Add(e, &ShouldSleep{})
	case !on && w.shouldSleepMap.Has(e):
		w.shouldSleepMap.Remove(e)
	}
}

func (w *ArkWorld) HasNumHealsPlanted(e Entity) bool { return w.healsMap.Has(e) }
func (w *ArkWorld) NumHealsPlanted(e Entity) NumHealsPlanted { return *w.healsMap.Get(e) }
func (w *ArkWorld) SetNumHealsPlanted(e Entity, n NumHealsPlanted) { *w.healsMap.Get(e) = n }

func (w *ArkWorld) HasNextHealPosition(e Entity) bool { return w.nextHealMap.Has(e) }
func (w *ArkWorld) NextHealPosition(e Entity) NextHealPosition { return *w.nextHealMap.Get(e) }
func (w *ArkWorld) SetNextHealPosition(e Entity, p NextHealPosition) {
	if w.nextHealMap.Has(e) {
		*w.nextHealMap.Get(e) = p
		return
	}
	w.nextHealMap.Add(e, &p)
}

func (w *ArkWorld) HasPlayerHealingCooldown(e Entity) bool { return w.cooldownMap.Has(e) }
func (w *ArkWorld) PlayerHealingCooldown(e Entity) PlayerHealingCooldown {
	return *w.cooldownMap.Get(e)
}
func (w *ArkWorld) SetPlayerHealingCooldown(e Entity, c PlayerHealingCooldown) {
	*w.cooldownMap.Get(e) = c
}

func (w *ArkWorld) HasExpression(e Entity) bool { return w.expressionMap.Has(e) }
func (w *ArkWorld) SetExpression(e Entity, x Expression) {
	if w.expressionMap.Has(e) {
		*w.expressionMap.Get(e) = x
		return
	}
	w.expressionMap.Add(e, &x)
}

func (w *ArkWorld) IsBuff(e Entity) bool         { return w.buffMap.Has(e) }
func (w *ArkWorld) IsHive(e Entity) bool         { return w.hiveMap.Has(e) }
func (w *ArkWorld) HasShootDamage(e Entity) bool { return w.shootMap.Has(e) }

func (w *ArkWorld) Blackboard(e Entity) *Blackboard {
	bb, ok := w.blackboards[e]
	if !ok {
		bb = New()
		w.blackboards[e] = bb
	}
	return bb
}

func (w *ArkWorld) Player() (Entity, bool) {
	query := w.playerFilter.Query()
	defer query.Close()
	if query.Next() {
		return query.Entity(), true
	}
	return Entity{}, false
}

func (w *ArkWorld) EntitiesWithTeam(team int, fn func(Entity)) {
	query := w.teamFilter.Query()
	defer query.Close()
	for query.Next() {
		_, t := query.Get()
		if t.ID == team {
			fn(query.Entity())
		}
	}
}

func (w *ArkWorld) ClosestEnemy(e Entity, radius int) (Entity, bool) {
	if !w.Alive(e) {
		return Entity{}, false
	}
	self := w.Position(e)
	selfTeam := w.Team(e)

	best := Entity{}
	bestSq := 0
	found := false

	query := w.teamFilter.Query()
	defer query.Close()
	for query.Next() {
		other := query.Entity()
		if other == e {
			continue
		}
		pos, team := query.Get()
		if team.ID == selfTeam.ID {
			continue
		}
		if chebyshev(self, *pos) > radius {
			continue
		}
		dx, dy := pos.X-self.X, pos.Y-self.Y
		sq := dx*dx + dy*dy
		if !found || sq < bestSq {
			bestSq = sq
			best = other
			found = true
		}
	}
	return best, found
}

func chebyshev(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func (w *ArkWorld) HiveEntities(fn func(Entity)) {
	query := w.hiveFilter.Query()
	defer query.Close()
	for query.Next() {
		fn(query.Entity())
	}
}

func (w *ArkWorld) AllyEntities(team int, fn func(Entity)) {
	query := w.teamFilter.Query()
	defer query.Close()
	for query.Next() {
		_, t := query.Get()
		if t.ID != team {
			continue
		}
		e := query.Entity()
		if w.HasShootDamage(e) {
			continue
		}
		fn(e)
	}
}

func (w *ArkWorld) BuffEntities(fn func(Entity)) {
	query := w.buffFilter.Query()
	defer query.Close()
	for query.Next() {
		fn(query.Entity())
	}
}

func (w *ArkWorld) TileMap() *TileMap { return w.tiles }

func (w *ArkWorld) ExplorationTiles(fn func(x, y int)) {
	for y := 0; y < w.tiles.Height; y++ {
		for x := 0; x < w.tiles.Width; x++ {
			if !w.explored[w.tiles.Index(x, y)] {
				fn(x, y)
			}
		}
	}
}

// MarkExplored flips a tile's explored bit. Exercised by test fixtures; the
// AI core's own read path never calls this (spec §9's
// exploration-map open question treats "marked explored" as an external
// invariant).
func (w *ArkWorld) MarkExplored(x, y int) {
	w.explored[w.tiles.Index(x, y)] = true
}

func (w *ArkWorld) NewBatch() *Batch { return newBatch(w) }

func (w *ArkWorld) RemoveEntity(e Entity) {
	delete(w.blackboards, e)
	w.world.RemoveEntity(e)
}
