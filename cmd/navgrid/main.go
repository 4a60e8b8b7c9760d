// Command navgrid loads (or generates) a terrain map, walks a unit from its
// start marker to its target marker, and prints the outcome.
//
// Usage:
//
//	navgrid [flags] <map_file> <x_max> <y_max>
//	navgrid -gen random|maze [flags] <x_max> <y_max>
//
// The map file is a JSON map with a "world" layer of row-major terrain codes
// (-1 open, 3 blocked, 0 target, ≥8 start), optionally lz4-compressed.
// Every flag may also be set in a TOML file passed with -config; flags given
// on the command line win over the file.
//
// Exit status is 0 whether or not a route exists, 1 on a fatal error and 2
// on a usage error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/navgrid/gridgraph"
	"github.com/katalvlaran/navgrid/mapgen"
	"github.com/katalvlaran/navgrid/render"
	"github.com/katalvlaran/navgrid/route"
	"github.com/katalvlaran/navgrid/tilemap"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// newScreen opens the terminal for -tui.
var newScreen = tcell.NewScreen

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, for tests.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "navgrid: ", 0)

	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Print(err)
		return exitUsage
	}

	if err = execute(cfg, stdout, logger); err != nil {
		logger.Print(err)
		return exitFatal
	}
	return exitOK
}

// parseArgs resolves defaults, the -config file, explicit flags and
// positionals into a validated Config.
func parseArgs(args []string, stderr io.Writer) (Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("navgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: navgrid [flags] <map_file> <x_max> <y_max>")
		fmt.Fprintln(stderr, "       navgrid -gen random|maze [flags] <x_max> <y_max>")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	var (
		fl         Config
		configPath string
	)
	fs.StringVar(&configPath, "config", "", "TOML config file")
	fs.IntVar(&fl.Unit, "unit", def.Unit, "unit id written into committed cells")
	fs.BoolVar(&fl.Verbose, "v", false, "log every commit and dead end")
	fs.StringVar(&fl.PNG, "png", "", "write the map and route to this PNG file")
	fs.IntVar(&fl.Scale, "scale", def.Scale, "PNG pixels per cell")
	fs.BoolVar(&fl.TUI, "tui", false, "show the result in an interactive terminal view")
	fs.StringVar(&fl.Generate, "gen", "", "generate a map instead of loading one: random or maze")
	fs.Int64Var(&fl.Seed, "seed", 0, "generator seed (0 = fixed default)")
	fs.Float64Var(&fl.Density, "density", def.Density, "obstacle density (random) or braiding ratio (maze)")
	fs.StringVar(&fl.Save, "save", "", "write the generated map to this file (.lz4 compresses)")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "unit":
			cfg.Unit = fl.Unit
		case "v":
			cfg.Verbose = fl.Verbose
		case "png":
			cfg.PNG = fl.PNG
		case "scale":
			cfg.Scale = fl.Scale
		case "tui":
			cfg.TUI = fl.TUI
		case "gen":
			cfg.Generate = fl.Generate
		case "seed":
			cfg.Seed = fl.Seed
		case "density":
			cfg.Density = fl.Density
		case "save":
			cfg.Save = fl.Save
		}
	})

	if err := applyPositionals(&cfg, fs.Args()); err != nil {
		fs.Usage()
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyPositionals fills MapFile, XMax and YMax. Without -gen the map file
// comes first; any positional may be omitted when the config file sets it.
func applyPositionals(cfg *Config, pos []string) error {
	want := 3
	if cfg.Generate != "" {
		want = 2
	}
	switch len(pos) {
	case 0:
		return nil
	case want:
	default:
		return fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidConfig, want, len(pos))
	}
	if want == 3 {
		cfg.MapFile, pos = pos[0], pos[1:]
	}
	var err error
	if cfg.XMax, err = strconv.Atoi(pos[0]); err != nil {
		return fmt.Errorf("%w: x_max: %v", ErrInvalidConfig, err)
	}
	if cfg.YMax, err = strconv.Atoi(pos[1]); err != nil {
		return fmt.Errorf("%w: y_max: %v", ErrInvalidConfig, err)
	}
	return nil
}

// execute runs the driver flow for a validated cfg.
func execute(cfg Config, out io.Writer, logger *log.Logger) error {
	// 1) Obtain terrain codes.
	codes, err := terrain(cfg, out)
	if err != nil {
		return err
	}

	// 2) Locate the markers and build the grid; Build checks the length first.
	g, err := tilemap.Build(cfg.Unit, cfg.XMax, cfg.YMax, codes)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Reading map..")
	if err = render.Map(out, g); err != nil {
		return err
	}
	fmt.Fprintf(out, "Start at %v\n", g.Start().Coord)
	fmt.Fprintf(out, "Target at %v\n", g.Target().Coord)

	// 3) Connectivity diagnostic.
	if cfg.Verbose {
		comps := g.Components()
		connected := g.Connected(g.Start().Coord, g.Target().Coord)
		logger.Printf("%d walkable regions; start and target connected: %t", len(comps), connected)
	}

	// 4) Search.
	var opts []route.Option
	if cfg.Verbose {
		opts = append(opts,
			route.WithOnCommit(func(c gridgraph.Coord) error {
				logger.Printf("commit %v", c)
				return nil
			}),
			route.WithOnDeadEnd(func(c gridgraph.Coord) error {
				logger.Printf("dead end %v", c)
				return nil
			}),
		)
	}
	fmt.Fprintln(out, "Running path finding..")
	res, err := route.Find(g, opts...)
	if err != nil {
		return err
	}

	// 5) Report.
	if res.Found {
		fmt.Fprintln(out, "Found a path!")
		fmt.Fprintln(out, "Printing path..")
		if err = render.Path(out, g); err != nil {
			return err
		}
		fmt.Fprintf(out, "Route (%d moves): %s\n", res.Len(), render.FormatRoute(res.Route))
	} else {
		fmt.Fprintln(out, "No valid path found!")
	}
	if cfg.Verbose {
		logger.Printf("committed %d cells, %d dead ends", res.Committed, res.DeadEnds)
	}

	// 6) Optional outputs.
	if cfg.PNG != "" {
		if err = render.SavePNG(cfg.PNG, g, res.Route, cfg.Scale); err != nil {
			return err
		}
		logger.Printf("wrote %s", cfg.PNG)
	}
	if cfg.TUI {
		return showTUI(g)
	}
	return nil
}

// terrain loads the world layer of cfg.MapFile, or generates a map and
// optionally saves it.
func terrain(cfg Config, out io.Writer) ([]float64, error) {
	if cfg.Generate == "" {
		fmt.Fprintf(out, "Map file: %s\n", cfg.MapFile)
		fmt.Fprintf(out, "x_max: %d\n", cfg.XMax)
		fmt.Fprintf(out, "y_max: %d\n", cfg.YMax)

		m, err := tilemap.Load(cfg.MapFile)
		if err != nil {
			return nil, err
		}
		world, err := m.World()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.MapFile, err)
		}
		return world.Data, nil
	}

	gen := mapgen.Random
	if cfg.Generate == GenMaze {
		gen = mapgen.Maze
	}
	t, err := gen(mapgen.Config{
		Rows:    cfg.XMax,
		Cols:    cfg.YMax,
		Density: cfg.Density,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Generated %s map: %d×%d, seed %d\n", cfg.Generate, cfg.XMax, cfg.YMax, cfg.Seed)
	if cfg.Save != "" {
		if err = tilemap.Save(cfg.Save, t.ToMap()); err != nil {
			return nil, err
		}
	}
	return t.Codes, nil
}

func showTUI(g *gridgraph.Grid) error {
	s, err := newScreen()
	if err != nil {
		return fmt.Errorf("navgrid: terminal: %w", err)
	}
	if err = s.Init(); err != nil {
		return fmt.Errorf("navgrid: terminal: %w", err)
	}
	defer s.Fini()
	return render.Show(s, g, render.DefaultTheme())
}
