package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvroute/grid"
)

// errInputClosed is returned when stdin ends in the middle of a prompt.
var errInputClosed = errors.New("routecalc: input closed")

// prompter reads whitespace-separated integer pairs from an interactive stream.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &prompter{in: sc, out: w}
}

// readInt returns the next integer token, re-asking after junk tokens.
func (p *prompter) readInt() (int, error) {
	for p.in.Scan() {
		v, err := strconv.Atoi(p.in.Text())
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "%q is not a whole number, try again: ", p.in.Text())
	}
	if err := p.in.Err(); err != nil {
		return 0, fmt.Errorf("routecalc: read input: %w", err)
	}
	return 0, errInputClosed
}

// point prints label and reads an "x y" pair.
func (p *prompter) point(label string) (grid.Point, error) {
	fmt.Fprint(p.out, label)
	x, err := p.readInt()
	if err != nil {
		return grid.Point{}, err
	}
	y, err := p.readInt()
	if err != nil {
		return grid.Point{}, err
	}
	return grid.Pt(x, y), nil
}

// obstacles reads pairs until the -1 -1 sentinel.
func (p *prompter) obstacles() ([]grid.Point, error) {
	var out []grid.Point
	for {
		pt, err := p.point("Enter obstacle coordinates (or -1 -1 to finish): ")
		if err != nil {
			return nil, err
		}
		if pt.X == -1 && pt.Y == -1 {
			return out, nil
		}
		out = append(out, pt)
	}
}

// endpoints asks for start and goal until both are valid on g.
func (p *prompter) endpoints(g *grid.Grid) (start, goal grid.Point, err error) {
	for {
		if start, err = p.point("\nEnter start coordinates: "); err != nil {
			return start, goal, err
		}
		if goal, err = p.point("Enter goal coordinates: "); err != nil {
			return start, goal, err
		}
		if g.IsValidEndpoint(start.X, start.Y) && g.IsValidEndpoint(goal.X, goal.Y) {
			return start, goal, nil
		}
		fmt.Fprintln(p.out, "\nCoordinates out of range or on an obstacle. Try again.")
	}
}
