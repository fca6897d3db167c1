package maze

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

// Mode selects the branch termination policy of the carving walk
type Mode uint8

const (
	// ModeRandom picks maze or cave once per run using Config.MazeProbability
	ModeRandom Mode = iota
	// ModeMaze always extends to a random unvisited neighbor, carving the whole grid
	ModeMaze
	// ModeCave gates every step by decay^visited, producing shorter enclosed branches
	ModeCave
)

func (m Mode) String() string {
	switch m {
	case ModeMaze:
		return "maze"
	case ModeCave:
		return "cave"
	default:
		return "random"
	}
}

// ParseMode accepts "random", "maze" or "cave", empty maps to random
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return ModeRandom, nil
	case "maze":
		return ModeMaze, nil
	case "cave":
		return ModeCave, nil
	default:
		return ModeRandom, fmt.Errorf("unknown maze mode %q", s)
	}
}

type Config struct {
	Width, Height int

	// Rooms is the number of extra open tiles scattered in maze mode, cave mode scatters none
	Rooms int

	// MazeProbability is the chance ModeRandom resolves to ModeMaze
	MazeProbability float64

	// CaveDecay is the per-visited-cell decay base of the cave step gate, in (0, 1)
	CaveDecay float64

	Mode Mode
}

// DefaultConfig returns the stock 128x128 setup
func DefaultConfig() Config {
	return Config{
		Width:           parameter.MazeWidth,
		Height:          parameter.MazeHeight,
		Rooms:           parameter.MazeRooms,
		MazeProbability: parameter.MazeModeProbability,
		CaveDecay:       parameter.CaveDecayBase,
		Mode:            ModeRandom,
	}
}

type Result struct {
	Maze  *Maze
	Mode  Mode // Resolved mode, never ModeRandom
	Start TilePosition

	// Rooms lists scattered room cells followed by the start cell
	Rooms []TilePosition

	// Visited is the number of cells the walk reached
	Visited int
}

// Generate carves a new grid from the center cell and scatters rooms
func Generate(cfg Config, rng *vmath.FastRand) Result {
	m := New(cfg.Width, cfg.Height)
	start := m.Center()

	mode := cfg.Mode
	if mode == ModeRandom {
		if rng.Bool(cfg.MazeProbability) {
			mode = ModeMaze
		} else {
			mode = ModeCave
		}
	}

	visited := m.Carve(start, mode, cfg.CaveDecay, rng)

	rooms := 0
	if mode == ModeMaze {
		rooms = cfg.Rooms
	}

	return Result{
		Maze:    m,
		Mode:    mode,
		Start:   start,
		Rooms:   m.ScatterRooms(start, rooms, rng),
		Visited: visited,
	}
}

// Carve runs the randomized backtracking walk from start and returns the visited cell count
// Each step opens the shared wall from both sides; the walk ends when the route stack drains
func (m *Maze) Carve(start TilePosition, mode Mode, caveDecay float64, rng *vmath.FastRand) int {
	visited := make([]bool, len(m.Tiles))
	visited[m.Idx(start.X, start.Y)] = true
	visitedCount := 1

	route := make([]TilePosition, 1, len(m.Tiles))
	route[0] = start
	pos := start

	for {
		next, dir, ok := m.nextStep(pos, visited, visitedCount, mode, caveDecay, rng)
		if !ok {
			if len(route) == 0 {
				break
			}
			pos = route[len(route)-1]
			route = route[:len(route)-1]
			continue
		}

		m.At(pos.X, pos.Y).Open(dir)
		m.At(next.X, next.Y).Open(dir.Opposite())

		visited[m.Idx(next.X, next.Y)] = true
		visitedCount++
		route = append(route, next)
		pos = next
	}

	return visitedCount
}

// nextStep picks a uniformly random unvisited neighbor of pos
// Cave mode first runs a Bernoulli gate with p = decay^visitedCount
func (m *Maze) nextStep(pos TilePosition, visited []bool, visitedCount int, mode Mode, decay float64, rng *vmath.FastRand) (TilePosition, Direction, bool) {
	if mode == ModeCave && !rng.Bool(math.Pow(decay, float64(visitedCount))) {
		return TilePosition{}, 0, false
	}

	var candidates [4]Neighbor
	n := 0
	for _, nb := range m.Neighbors(pos) {
		// Clamped border neighbors resolve to pos itself, which is always visited
		if !visited[m.Idx(nb.Pos.X, nb.Pos.Y)] {
			candidates[n] = nb
			n++
		}
	}
	if n == 0 {
		return TilePosition{}, 0, false
	}

	c := candidates[rng.Intn(n)]
	return c.Pos, c.Dir, true
}

// ScatterRooms turns count random distinct cells plus start into rooms
// Returns the room cells, start last
func (m *Maze) ScatterRooms(start TilePosition, count int, rng *vmath.FastRand) []TilePosition {
	picked := rng.Sample(len(m.Tiles), count)

	rooms := make([]TilePosition, 0, len(picked)+1)
	for _, i := range picked {
		rooms = append(rooms, TilePosition{X: i % m.Width, Y: i / m.Width})
	}
	rooms = append(rooms, start)

	for _, p := range rooms {
		m.MakeRoom(p)
	}
	return rooms
}

// MakeRoom opens all sides of p, places food and opens the facing side of every neighbor
func (m *Maze) MakeRoom(p TilePosition) {
	m.At(p.X, p.Y).
		Open(Top).
		Open(Right).
		Open(Bottom).
		Open(Left).
		SetFood(true)

	for _, nb := range m.Neighbors(p) {
		m.At(nb.Pos.X, nb.Pos.Y).Open(nb.Dir.Opposite())
	}
}
