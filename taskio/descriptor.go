package taskio

import (
	"strconv"
	"strings"

	"github.com/dkrasov/wrapgrid/booster"
	"github.com/dkrasov/wrapgrid/geom"
)

// BoosterPlacement pairs a point with the booster kind sitting on it.
type BoosterPlacement struct {
	Point geom.Point
	Kind  booster.Kind
}

// Descriptor is the decoded form of a task description: the mine
// polygon, the initial agent position, obstacle polygons, and booster
// placements.
type Descriptor struct {
	Polygon   []geom.Point
	Start     geom.Point
	Obstacles [][]geom.Point
	Boosters  []BoosterPlacement
}

// ParseDescriptor decodes a single-line task description of the form
//
//	<polygon>#<start>#<obstacle>;<obstacle>;...#<booster>;<booster>;...
//
// Each polygon is "(x1,y1),(x2,y2),...". The obstacles and boosters
// sections may be empty, yielding empty slices. Any malformed section
// returns a *ParseError identifying the section and offending token.
func ParseDescriptor(text string) (Descriptor, error) {
	sections := strings.Split(text, "#")
	if len(sections) != 4 {
		return Descriptor{}, &ParseError{Section: "descriptor", Token: text, Err: ErrSectionCount}
	}

	polygon, err := parsePolygon(sections[0])
	if err != nil {
		return Descriptor{}, &ParseError{Section: "map polygon", Token: sections[0], Err: err}
	}

	start, err := parsePoint(sections[1])
	if err != nil {
		return Descriptor{}, &ParseError{Section: "initial position", Token: sections[1], Err: err}
	}

	obstacles, err := parseObstacles(sections[2])
	if err != nil {
		return Descriptor{}, &ParseError{Section: "obstacles", Token: sections[2], Err: err}
	}

	boosters, err := parseBoosters(sections[3])
	if err != nil {
		return Descriptor{}, &ParseError{Section: "boosters", Token: sections[3], Err: err}
	}

	return Descriptor{Polygon: polygon, Start: start, Obstacles: obstacles, Boosters: boosters}, nil
}

// parsePoint decodes a single "(x,y)" token, with no surrounding
// whitespace tolerated (whitespace inside a parenthesised point is not
// part of the wire format).
func parsePoint(s string) (geom.Point, error) {
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return geom.Point{}, ErrMalformedPoint
	}
	body := s[1 : len(s)-1]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return geom.Point{}, ErrMalformedPoint
	}
	x, err := strconv.Atoi(body[:comma])
	if err != nil {
		return geom.Point{}, ErrMalformedPoint
	}
	y, err := strconv.Atoi(body[comma+1:])
	if err != nil {
		return geom.Point{}, ErrMalformedPoint
	}
	return geom.Point{X: x, Y: y}, nil
}

// parsePolygon decodes "(x1,y1),(x2,y2),..." into its vertex list.
func parsePolygon(s string) ([]geom.Point, error) {
	if s == "" {
		return nil, nil
	}
	tokens := splitPoints(s)
	points := make([]geom.Point, 0, len(tokens))
	for _, tok := range tokens {
		p, err := parsePoint(tok)
		if err != nil {
			return nil, ErrMalformedPolygon
		}
		points = append(points, p)
	}
	return points, nil
}

// splitPoints splits a "(a,b),(c,d)" string back into ["(a,b)", "(c,d)"]
// tokens, since a plain strings.Split(s, ",") would break each point's
// own internal comma.
func splitPoints(s string) []string {
	var tokens []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				tokens = append(tokens, s[start:i+1])
				start = i + 1
			}
		}
	}
	return tokens
}

// parseObstacles decodes ";"-separated polygons; an empty section yields
// no obstacles.
func parseObstacles(s string) ([][]geom.Point, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	result := make([][]geom.Point, 0, len(parts))
	for _, part := range parts {
		poly, err := parsePolygon(part)
		if err != nil {
			return nil, err
		}
		result = append(result, poly)
	}
	return result, nil
}

// parseBoosters decodes ";"-separated "<K>(x,y)" tokens; an empty
// section yields no boosters.
func parseBoosters(s string) ([]BoosterPlacement, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	result := make([]BoosterPlacement, 0, len(parts))
	for _, part := range parts {
		if len(part) < 2 {
			return nil, ErrMalformedBooster
		}
		k, err := booster.ParseKind(part[0])
		if err != nil {
			return nil, ErrMalformedBooster
		}
		p, err := parsePoint(part[1:])
		if err != nil {
			return nil, ErrMalformedBooster
		}
		result = append(result, BoosterPlacement{Point: p, Kind: k})
	}
	return result, nil
}
