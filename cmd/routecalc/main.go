// Command routecalc finds a shortest walking route on a small obstacle board
// and prints the board with the route marked.
//
// Interactive use (default): the predefined obstacles are shown, extra
// obstacles are read until "-1 -1", then start and goal are asked for until
// both are valid.
//
//	routecalc
//	routecalc -empty -width 20 -height 8
//	routecalc -random 30 -seed 7
//
// Batch use: a YAML scenario replaces all prompts.
//
//	routecalc -config scenario.yaml
//
// Legend: . free, # obstacle, * route, I start, F goal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/grid"
	"github.com/katalvlaran/lvroute/render"
	"github.com/katalvlaran/lvroute/route"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// config holds the parsed command line.
type config struct {
	scenario      string
	width, height int
	empty         bool
	random        int
	seed          uint64
	maxExpansions int
	noAxes        bool
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("routecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.scenario, "config", "", "YAML scenario file; disables prompts")
	fs.IntVar(&c.width, "width", grid.DefaultWidth, "board width")
	fs.IntVar(&c.height, "height", grid.DefaultHeight, "board height")
	fs.BoolVar(&c.empty, "empty", false, "start without the predefined obstacles")
	fs.IntVar(&c.random, "random", 0, "add N randomly placed obstacles")
	fs.Uint64Var(&c.seed, "seed", 1, "seed for -random")
	fs.IntVar(&c.maxExpansions, "max-expansions", 0, "abort the search after N expansions (0 = no limit)")
	fs.BoolVar(&c.noAxes, "no-axes", false, "omit row and column indices")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("routecalc: unexpected arguments %v", fs.Args())
	}
	if c.maxExpansions < 0 {
		return c, fmt.Errorf("routecalc: -max-expansions cannot be negative (%d)", c.maxExpansions)
	}
	if c.random < 0 {
		return c, fmt.Errorf("routecalc: -random cannot be negative (%d)", c.random)
	}
	return c, nil
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	planner := route.NewPlanner(logger, astar.WithMaxExpansions(cfg.maxExpansions))

	var renderOpts []render.Option
	if !cfg.noAxes {
		renderOpts = append(renderOpts, render.WithAxes())
	}

	var out route.Outcome
	if cfg.scenario != "" {
		out, err = runScenario(ctx, planner, cfg.scenario)
	} else {
		out, err = runInteractive(ctx, planner, cfg, stdin, stdout, renderOpts)
	}
	if err != nil {
		logger.Error("routecalc failed", slog.String("error", err.Error()))
		return 1
	}

	if out.Result.Found {
		fmt.Fprintf(stdout, "Route found (%d steps):\n", out.Result.Length)
	} else {
		fmt.Fprintln(stdout, "No route could be found.")
	}
	if err := render.Render(stdout, out.Grid, renderOpts...); err != nil {
		logger.Error("render failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func runScenario(ctx context.Context, planner *route.Planner, path string) (route.Outcome, error) {
	s, err := route.LoadScenario(path)
	if err != nil {
		return route.Outcome{}, err
	}
	return planner.Plan(ctx, s)
}

func runInteractive(
	ctx context.Context,
	planner *route.Planner,
	cfg config,
	stdin io.Reader,
	stdout io.Writer,
	renderOpts []render.Option,
) (route.Outcome, error) {
	g, err := grid.New(grid.WithSize(cfg.width, cfg.height))
	if err != nil {
		return route.Outcome{}, err
	}

	var preset []grid.Point
	if !cfg.empty {
		preset = append(preset, grid.DefaultObstacles()...)
	}
	if cfg.random > 0 {
		r := rand.New(rand.NewSource(cfg.seed))
		preset = append(preset, grid.RandomObstacles(r, cfg.width, cfg.height, cfg.random)...)
	}
	warnObstacles(ctx, planner.Logger, g.MarkObstacles(preset))

	fmt.Fprintln(stdout, "Current board:")
	if err := render.Render(stdout, g, renderOpts...); err != nil {
		return route.Outcome{}, err
	}

	p := newPrompter(stdin, stdout)
	extra, err := p.obstacles()
	if err != nil {
		return route.Outcome{}, err
	}
	warnObstacles(ctx, planner.Logger, g.MarkObstacles(extra))

	start, goal, err := p.endpoints(g)
	if err != nil {
		return route.Outcome{}, err
	}
	if err := g.SetStart(start.X, start.Y); err != nil {
		return route.Outcome{}, err
	}
	if err := g.SetGoal(goal.X, goal.Y); err != nil {
		return route.Outcome{}, err
	}
	fmt.Fprintf(stdout, "\nStart: %d %d\nGoal:  %d %d\n", start.X, start.Y, goal.X, goal.Y)

	return planner.Search(ctx, g)
}

func warnObstacles(ctx context.Context, logger *slog.Logger, warnings []error) {
	for _, w := range warnings {
		logger.WarnContext(ctx, "obstacle ignored", slog.String("reason", w.Error()))
	}
}
