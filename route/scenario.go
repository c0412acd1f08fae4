package route

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/grid"
)

// ErrScenario indicates a scenario document could not be decoded.
var ErrScenario = errors.New("route: invalid scenario")

// Coord is a YAML-friendly [x, y] pair.
type Coord [2]int

// Point converts c to a grid.Point.
func (c Coord) Point() grid.Point { return grid.Point{X: c[0], Y: c[1]} }

// Scenario describes one route request: board size, obstacles and endpoints.
//
//	width: 10
//	height: 10
//	use_default_obstacles: true
//	obstacles: [[4, 4], [4, 5]]
//	start: [0, 0]
//	goal: [9, 9]
type Scenario struct {
	Width               int     `yaml:"width"`
	Height              int     `yaml:"height"`
	UseDefaultObstacles bool    `yaml:"use_default_obstacles"`
	Obstacles           []Coord `yaml:"obstacles"`
	Start               Coord   `yaml:"start"`
	Goal                Coord   `yaml:"goal"`
}

// DefaultScenario returns the classic board: 10×10, predefined obstacles,
// from the top-left to the bottom-right corner.
func DefaultScenario() Scenario {
	return Scenario{
		Width:               grid.DefaultWidth,
		Height:              grid.DefaultHeight,
		UseDefaultObstacles: true,
		Start:               Coord{0, 0},
		Goal:                Coord{grid.DefaultWidth - 1, grid.DefaultHeight - 1},
	}
}

// ObstaclePoints returns every obstacle the scenario asks for, predefined
// ones first, in grid.Point form.
func (s Scenario) ObstaclePoints() []grid.Point {
	var out []grid.Point
	if s.UseDefaultObstacles {
		out = append(out, grid.DefaultObstacles()...)
	}
	for _, c := range s.Obstacles {
		out = append(out, c.Point())
	}
	return out
}

// scenarioDoc is the on-disk form of a Scenario; nil endpoints mean the key
// was absent.
type scenarioDoc struct {
	Width               int     `yaml:"width"`
	Height              int     `yaml:"height"`
	UseDefaultObstacles bool    `yaml:"use_default_obstacles"`
	Obstacles           []Coord `yaml:"obstacles"`
	Start               *Coord  `yaml:"start"`
	Goal                *Coord  `yaml:"goal"`
}

// DecodeScenario reads a YAML scenario from r. Missing width/height fall back
// to the 10×10 default; unknown keys and missing start or goal are rejected.
func DecodeScenario(r io.Reader) (Scenario, error) {
	var doc scenarioDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrScenario, err)
	}
	if doc.Start == nil {
		return Scenario{}, fmt.Errorf("%w: start is required", ErrScenario)
	}
	if doc.Goal == nil {
		return Scenario{}, fmt.Errorf("%w: goal is required", ErrScenario)
	}

	s := Scenario{
		Width:               doc.Width,
		Height:              doc.Height,
		UseDefaultObstacles: doc.UseDefaultObstacles,
		Obstacles:           doc.Obstacles,
		Start:               *doc.Start,
		Goal:                *doc.Goal,
	}
	if s.Width == 0 {
		s.Width = grid.DefaultWidth
	}
	if s.Height == 0 {
		s.Height = grid.DefaultHeight
	}
	return s, nil
}

// LoadScenario opens path and decodes it with DecodeScenario.
func LoadScenario(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("route: open scenario: %w", err)
	}
	defer f.Close()

	return DecodeScenario(f)
}
