// Command dmapdebug carves a small demo dungeon, regenerates the named
// Dijkstra maps, runs a handful of dmap-follower entities for N ticks, and
// writes a per-tick CSV decision trace. It exists purely to exercise the
// dijkstra/ai/telemetry wiring in isolation, grounded on the teacher's
// cmd/optimize (flag-parsed standalone tool) and cmd/potentialpreview
// (subsystem-in-isolation) shape.
package main

import (
	"flag"
	"fmt"
	"os"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/471VE/ai-roguelike/ai"
	"github.com/471VE/ai-roguelike/dijkstra"
	"github.com/471VE/ai-roguelike/logging"
	"github.com/471VE/ai-roguelike/telemetry"
	"github.com/471VE/ai-roguelike/world"
)

func main() {
	width := flag.Int("width", 48, "dungeon width")
	height := flag.Int("height", 32, "dungeon height")
	ticks := flag.Int("ticks", 200, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "cave-carving noise seed")
	monsters := flag.Int("monsters", 8, "number of approach-map followers to spawn")
	tracePath := flag.String("trace", "dmapdebug_trace.csv", "CSV trace output path")
	flag.Parse()

	tiles := carveDungeon(*width, *height, *seed)
	w := world.NewArkWorld(tiles)

	player := w.SpawnActor(world.Position{X: *width / 2, Y: *height / 2}, world.Team{ID: 0}, world.Hitpoints{HP: 100})
	w.SetPlayer(player)

	rt := ai.NewRuntime(4)
	followerEntities := make([]world.Entity, 0, *monsters)
	for i := 0; i < *monsters; i++ {
		pos := findFloor(tiles, i)
		e := w.SpawnActor(pos, world.Team{ID: 1}, world.Hitpoints{HP: 10})
		followerEntities = append(followerEntities, e)
	}

	trace, err := telemetry.NewTraceWriter(*tracePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dmapdebug:", err)
		os.Exit(1)
	}
	defer trace.Close()

	for tick := 0; tick < *ticks; tick++ {
		maps := ai.RegenerateMaps(w)
		for _, e := range followerEntities {
			f := &dijkstra.Follower{Weights: []dijkstra.Weight{{Map: maps.Approach, Weight: dijkstra.Linear(1)}}}
			rt.AssignFollower(e, f)
		}
		rt.FollowDMaps(w)

		for _, e := range followerEntities {
			pos := w.Position(e)
			if err := trace.Write(telemetry.DecisionRecord{
				Tick:     tick,
				Entity:   uint64(e.ID()),
				X:        pos.X,
				Y:        pos.Y,
				Action:   actionName(w.Action(e)),
				MapValue: maps.Approach.At(pos.X, pos.Y),
			}); err != nil {
				fmt.Fprintln(os.Stderr, "dmapdebug: writing trace:", err)
				os.Exit(1)
			}
		}
	}

	logging.Logger.Info().Int("ticks", *ticks).Str("trace", *tracePath).Msg("dmapdebug run complete")
}

// carveDungeon builds a width*height tile map using 2D OpenSimplex noise as
// a cave-carving heuristic (cells above a threshold become floor),
// reusing the teacher's noise library for a throwaway demo shape rather
// than any real dungeon-generation algorithm, which stays out of scope.
func carveDungeon(width, height int, seed int64) *world.TileMap {
	noise := opensimplex.New(seed)
	tiles := world.NewTileMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := noise.Eval2(float64(x)/6, float64(y)/6)
			if n < -0.1 {
				tiles.Set(x, y, world.Wall)
			}
		}
	}
	return tiles
}

func findFloor(tiles *world.TileMap, seed int) world.Position {
	for offset := 0; offset < tiles.Width*tiles.Height; offset++ {
		idx := (seed*7 + offset) % (tiles.Width * tiles.Height)
		x, y := idx%tiles.Width, idx/tiles.Width
		if tiles.At(x, y) == world.Floor {
			return world.Position{X: x, Y: y}
		}
	}
	return world.Position{}
}

func actionName(a world.Action) string {
	switch a {
	case world.NOP:
		return "NOP"
	case world.MoveLeft:
		return "MoveLeft"
	case world.MoveRight:
		return "MoveRight"
	case world.MoveUp:
		return "MoveUp"
	case world.MoveDown:
		return "MoveDown"
	case world.Attack:
		return "Attack"
	case world.HealSelf:
		return "HealSelf"
	case world.HealPlayer:
		return "HealPlayer"
	case world.PlantHeal:
		return "PlantHeal"
	case world.Sleep:
		return "Sleep"
	case world.Explore:
		return "Explore"
	default:
		return "Unknown"
	}
}
