package model

import "fmt"

const boardSize = 8

// Coord is a (row, col) pair. Row 0 is white's back rank, col 0 is the a-file.
// A Coord may hold an off-board offset; use Valid before indexing a Board with it.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Sq returns the on-board coordinate (row, col) and panics if it is off the board.
func Sq(row, col int) Coord {
	c := Coord{Row: row, Col: col}
	if !c.Valid() {
		panic(fmt.Errorf("%w: (%d,%d)", ErrInvalidCoord, row, col))
	}
	return c
}

func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < boardSize && c.Col >= 0 && c.Col < boardSize
}

func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coord) Step(b Bearing) Coord {
	return c.Add(b.Delta())
}

// String returns the square name, e.g. "e4". Off-board coordinates print as a pair.
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// Bearing is one of the eight compass directions a sliding scan can follow.
type Bearing uint8

const (
	North Bearing = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var bearingDeltas = [...]Coord{
	North:     {Row: 1, Col: 0},
	NorthEast: {Row: 1, Col: 1},
	East:      {Row: 0, Col: 1},
	SouthEast: {Row: -1, Col: 1},
	South:     {Row: -1, Col: 0},
	SouthWest: {Row: -1, Col: -1},
	West:      {Row: 0, Col: -1},
	NorthWest: {Row: 1, Col: -1},
}

var bearingNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (b Bearing) Delta() Coord {
	return bearingDeltas[b]
}

func (b Bearing) String() string {
	if int(b) < len(bearingNames) {
		return bearingNames[b]
	}
	return fmt.Sprintf("bearing(%d)", b)
}

var (
	StraightBearings = []Bearing{North, East, South, West}
	DiagonalBearings = []Bearing{NorthEast, SouthEast, SouthWest, NorthWest}
	AllBearings      = []Bearing{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

var knightOffsets = []Coord{
	{Row: -2, Col: 1}, {Row: -1, Col: 2}, {Row: -2, Col: -1}, {Row: -1, Col: -2},
	{Row: 1, Col: -2}, {Row: 2, Col: -1}, {Row: 2, Col: 1}, {Row: 1, Col: 2},
}

var kingOffsets = []Coord{
	{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 1},
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1},
}

// KnightSquares returns the on-board squares a knight standing on c could jump to.
func KnightSquares(c Coord) []Coord {
	return offsetSquares(c, knightOffsets)
}

func offsetSquares(c Coord, offsets []Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		if t := c.Add(d); t.Valid() {
			out = append(out, t)
		}
	}
	return out
}
