package parameter

// Maze generation defaults
const (
	// MazeWidth and MazeHeight are the grid dimensions in tiles
	MazeWidth  = 128
	MazeHeight = 128

	// MazeRooms is the number of extra fully open tiles scattered in maze mode
	MazeRooms = 128

	// MazeModeProbability is the chance a run uses maze mode instead of cave mode
	MazeModeProbability = 0.75

	// CaveDecayBase is raised to the visited cell count to gate each cave step
	CaveDecayBase = 0.999
)
