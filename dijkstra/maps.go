package dijkstra

import "github.com/471VE/ai-roguelike/world"

// Maps holds every named potential field regenerated once per AI frame,
// grounded on the gen_*_map family in the original dijkstraMapGen.cpp.
type Maps struct {
	Approach    *world.DMap
	Flee        *world.DMap
	Hive        *world.DMap
	Ally        *world.DMap
	Exploration *world.DMap
	Vision      *world.DMap
	Mage        *world.DMap
}

func seedAndFill(tiles *world.TileMap, seeds []world.Position) *world.DMap {
	m := NewSeededMap(tiles)
	for _, p := range seeds {
		m.Set(p.X, p.Y, 0)
	}
	reach := ComputeReachability(tiles, seeds)
	Fill(m, tiles, reach)
	return m
}

// GenApproachMap seeds every living player-team (team 0) entity at distance
// zero and relaxes outward, matching gen_player_approach_map. Cells that
// can't actually be walked to from any seed (a pocket on the far side of an
// unbroken wall) stay at world.Invalid; ComputeReachability keeps Fill's
// sweep away from them.
func GenApproachMap(w world.World) *world.DMap {
	tiles := w.TileMap()
	var seeds []world.Position
	w.EntitiesWithTeam(0, func(e world.Entity) {
		seeds = append(seeds, w.Position(e))
	})
	return seedAndFill(tiles, seeds)
}

// GenFleeMap derives a flee field from an already-filled approach map: every
// finite cell is scaled by -1.2 (so monsters climb away from the player
// faster than they'd otherwise descend toward it) and the result is relaxed
// again, matching gen_player_flee_map.
func GenFleeMap(approach *world.DMap, tiles *world.TileMap) *world.DMap {
	m := world.NewDMap(tiles.Width, tiles.Height)
	var seeds []world.Position
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			if tiles.At(x, y) != world.Floor {
				continue
			}
			v := approach.At(x, y)
			if v < world.Invalid {
				m.Set(x, y, v*-1.2)
				seeds = append(seeds, world.Position{X: x, Y: y})
			}
		}
	}
	Fill(m, tiles, ComputeReachability(tiles, seeds))
	return m
}

// GenHiveMap seeds every Hive-tagged entity, matching gen_hive_pack_map.
func GenHiveMap(w world.World) *world.DMap {
	tiles := w.TileMap()
	var seeds []world.Position
	w.HiveEntities(func(e world.Entity) {
		seeds = append(seeds, w.Position(e))
	})
	return seedAndFill(tiles, seeds)
}

// GenAllyMap seeds every melee (non-ShootDamage) entity on team 1, matching
// gen_ally_map.
func GenAllyMap(w world.World) *world.DMap {
	tiles := w.TileMap()
	var seeds []world.Position
	w.AllyEntities(1, func(e world.Entity) {
		seeds = append(seeds, w.Position(e))
	})
	return seedAndFill(tiles, seeds)
}

// GenExplorationMap seeds every unexplored background tile, matching
// gen_exploration_map.
func GenExplorationMap(w world.World) *world.DMap {
	tiles := w.TileMap()
	var seeds []world.Position
	w.ExplorationTiles(func(x, y int) {
		seeds = append(seeds, world.Position{X: x, Y: y})
	})
	return seedAndFill(tiles, seeds)
}

// Regenerate rebuilds every named map for the current world state, except
// Vision/Mage, which GenVisionMap and GenMageMap produce separately (the
// vision map needs a source position, normally the player's; see
// ai.RegenerateMaps).
func Regenerate(w world.World) *Maps {
	tiles := w.TileMap()
	approach := GenApproachMap(w)
	return &Maps{
		Approach:    approach,
		Flee:        GenFleeMap(approach, tiles),
		Hive:        GenHiveMap(w),
		Ally:        GenAllyMap(w),
		Exploration: GenExplorationMap(w),
	}
}
