package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/web-bg/maze"
	"github.com/lixenwraith/web-bg/parameter"
	"github.com/lixenwraith/web-bg/vmath"
)

var (
	widthFlag  = flag.Int("w", 0, "Width in tiles, prompts when 0")
	heightFlag = flag.Int("h", 0, "Height in tiles, prompts when 0")
	modeFlag   = flag.String("mode", "", "random, maze or cave, prompts when empty")
	seedFlag   = flag.Uint64("seed", 0, "Generation seed, 0 picks one from the clock")
	onceFlag   = flag.Bool("once", false, "Generate once without prompting to continue")
)

func main() {
	flag.Parse()
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== WEB-BG MAZE GENERATOR ===")

		cfg := maze.DefaultConfig()
		cfg.Width = pick(*widthFlag, func() int { return getInt(reader, "Width (default 32): ", 32) })
		cfg.Height = pick(*heightFlag, func() int { return getInt(reader, "Height (default 16): ", 16) })

		modeName := *modeFlag
		if modeName == "" {
			fmt.Print("Mode [random/maze/cave] (default random): ")
			modeName, _ = reader.ReadString('\n')
		}
		mode, err := maze.ParseMode(strings.TrimSpace(modeName))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Mode = mode
		cfg.Rooms = cfg.Width * cfg.Height / 64

		seed := *seedFlag
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res := maze.Generate(cfg, vmath.NewFastRand(seed))
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		printStats(os.Stdout, res, seed)
		draw(os.Stdout, res)

		if *onceFlag {
			return
		}
		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func printStats(w io.Writer, res maze.Result, seed uint64) {
	m := res.Maze
	fmt.Fprintf(w, "Seed: %d\n", seed)
	fmt.Fprintf(w, "Grid Dimensions: %dx%d\n", m.Width, m.Height)
	fmt.Fprintf(w, "Mode: %s\n", res.Mode)
	fmt.Fprintf(w, "Visited: %d / %d\n", res.Visited, m.Width*m.Height)
	fmt.Fprintf(w, "Rooms: %d\n", len(res.Rooms))
	fmt.Fprintf(w, "Reachable From Start: %d\n", m.Reachable(res.Start))
	fmt.Fprintf(w, "Open Wall Pairs: %d\n", m.OpenWallPairs())
}

// draw prints every tile as its sub-tile grid, top row of the maze first
func draw(w io.Writer, res maze.Result) {
	m := res.Maze
	span := parameter.SubtileSpan

	var sb strings.Builder
	for y := m.Height - 1; y >= 0; y-- {
		for sy := span; sy >= -span; sy-- {
			for x := 0; x < m.Width; x++ {
				p := maze.TilePosition{X: x, Y: y}
				for sx := -span; sx <= span; sx++ {
					sb.WriteRune(glyph(m, res.Start, p, sx, sy))
				}
			}
			sb.WriteByte('\n')
		}
	}
	fmt.Fprint(w, sb.String())
}

func glyph(m *maze.Maze, start, p maze.TilePosition, sx, sy int) rune {
	switch {
	case m.SubtileIsWall(p.X, p.Y, sx, sy):
		return '█'
	case sx != 0 || sy != 0:
		return ' '
	case p == start:
		return 'S'
	case m.Get(p.X, p.Y).HasFood():
		return '*'
	}
	return ' '
}

// --- Input Helpers ---

func pick(flagValue int, prompt func() int) int {
	if flagValue > 0 {
		return flagValue
	}
	return prompt()
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
