package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/web-bg/vmath"
)

func testConfig(mode Mode) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	cfg.Rooms = 16
	cfg.Mode = mode
	return cfg
}

// assertPaired checks that every shared wall reads the same from both sides
func assertPaired(t *testing.T, m *Maze) {
	t.Helper()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			a := m.Get(x, y)
			for _, d := range Directions {
				p, ok := m.step(TilePosition{X: x, Y: y}, d)
				if !ok {
					continue
				}
				b := m.Get(p.X, p.Y)
				if a.IsOpen(d) != b.IsOpen(d.Opposite()) {
					t.Fatalf("wall between (%d,%d) and %v via %s is one-sided", x, y, p, d)
				}
			}
		}
	}
}

func TestGenerateMazeIsFullyConnected(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		res := Generate(testConfig(ModeMaze), vmath.NewFastRand(seed))
		m := res.Maze

		require.Equal(t, ModeMaze, res.Mode)
		assert.Equal(t, m.Width*m.Height, res.Visited, "seed %d", seed)
		assert.Equal(t, m.Width*m.Height, m.Reachable(res.Start), "seed %d", seed)
		assertPaired(t, m)
	}
}

func TestGenerateStartsAtCenter(t *testing.T) {
	res := Generate(testConfig(ModeMaze), vmath.NewFastRand(3))
	assert.Equal(t, TilePosition{X: 16, Y: 12}, res.Start)
	require.NotEmpty(t, res.Rooms)
	assert.Equal(t, res.Start, res.Rooms[len(res.Rooms)-1])
}

func TestGenerateRoomInvariant(t *testing.T) {
	res := Generate(testConfig(ModeMaze), vmath.NewFastRand(42))
	m := res.Maze

	// Sampled cells are distinct, the start may coincide with one of them
	assert.GreaterOrEqual(t, len(res.Rooms), 17)

	for _, p := range res.Rooms {
		tile := m.Get(p.X, p.Y)
		assert.True(t, tile.HasFood(), "room %v", p)
		for _, nb := range m.Neighbors(p) {
			assert.True(t, tile.IsOpen(nb.Dir), "room %v side %s", p, nb.Dir)
			assert.True(t, m.Get(nb.Pos.X, nb.Pos.Y).IsOpen(nb.Dir.Opposite()), "room %v neighbor %v", p, nb.Pos)
		}
	}
	assertPaired(t, m)
}

func TestGenerateOnlyRoomsHaveFood(t *testing.T) {
	res := Generate(testConfig(ModeMaze), vmath.NewFastRand(9))
	rooms := make(map[TilePosition]bool, len(res.Rooms))
	for _, p := range res.Rooms {
		rooms[p] = true
	}

	food := 0
	for y := 0; y < res.Maze.Height; y++ {
		for x := 0; x < res.Maze.Width; x++ {
			if res.Maze.Get(x, y).HasFood() {
				food++
				assert.True(t, rooms[TilePosition{X: x, Y: y}])
			}
		}
	}
	assert.Equal(t, len(rooms), food)
}

func TestGenerateCave(t *testing.T) {
	cfg := testConfig(ModeCave)
	cfg.CaveDecay = 0.99

	for seed := uint64(1); seed <= 10; seed++ {
		res := Generate(cfg, vmath.NewFastRand(seed))
		m := res.Maze

		require.Equal(t, ModeCave, res.Mode)
		require.Equal(t, []TilePosition{res.Start}, res.Rooms, "cave scatters no rooms")
		assert.True(t, m.Get(res.Start.X, res.Start.Y).HasFood())
		assertPaired(t, m)

		// Every carved cell is connected to the start, untouched ones stay sealed
		open := 0
		for _, tile := range m.Tiles {
			if !tile.IsFullyClosed() {
				open++
			}
		}
		assert.Equal(t, open, m.Reachable(res.Start), "seed %d", seed)
		assert.LessOrEqual(t, res.Visited, m.Width*m.Height)
	}
}

func TestCaveDecayShortensWalk(t *testing.T) {
	cfg := testConfig(ModeCave)
	cfg.Width, cfg.Height = 64, 64
	cfg.CaveDecay = 0.9

	res := Generate(cfg, vmath.NewFastRand(5))
	assert.Less(t, res.Visited, 64*64)
}

func TestGenerateRandomModeResolves(t *testing.T) {
	seen := map[Mode]bool{}
	for seed := uint64(1); seed <= 64; seed++ {
		res := Generate(testConfig(ModeRandom), vmath.NewFastRand(seed))
		require.NotEqual(t, ModeRandom, res.Mode)
		seen[res.Mode] = true
	}
	assert.True(t, seen[ModeMaze])
	assert.True(t, seen[ModeCave])
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(testConfig(ModeRandom), vmath.NewFastRand(77))
	b := Generate(testConfig(ModeRandom), vmath.NewFastRand(77))
	assert.Equal(t, a.Mode, b.Mode)
	assert.Equal(t, a.Maze.Tiles, b.Maze.Tiles)
	assert.Equal(t, a.Rooms, b.Rooms)
}

func TestCarveSpanningTree4x4(t *testing.T) {
	m := New(4, 4)
	start := TilePosition{X: 1, Y: 1}
	m.At(start.X, start.Y).Open(Top).Open(Right).Open(Bottom).Open(Left)

	visited := m.Carve(start, ModeMaze, 0, vmath.NewFastRand(11))

	assert.Equal(t, 16, visited)
	assert.Equal(t, 4*4-1, m.OpenWallPairs())
	assert.Equal(t, 16, m.Reachable(start))
}

func TestCarveSingleCell(t *testing.T) {
	m := New(1, 1)
	assert.Equal(t, 1, m.Carve(TilePosition{}, ModeMaze, 0, vmath.NewFastRand(1)))
	assert.True(t, m.Get(0, 0).IsFullyClosed())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeRandom, false},
		{"random", ModeRandom, false},
		{"Maze", ModeMaze, false},
		{" cave ", ModeCave, false},
		{"dungeon", ModeRandom, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
