// Package tsplib reads TSPLIB-format instances with node coordinates.
//
// Only the parts the solver core consumes are interpreted: the NAME and
// DIMENSION headers and the NODE_COORD_SECTION entries (id, x, y). All
// other header metadata (EDGE_WEIGHT_TYPE, COMMENT, …) is ignored, and EOF
// terminates the scan. City ids in the file are 1-based; the core works on
// 0-based slice indices and keeps the file id in City.ID for presentation.
package tsplib

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/freezing1116/tspsolve/tsp"
)

// Problem is one parsed TSPLIB instance.
type Problem struct {
	// Name is the NAME header value, or the empty string when absent.
	Name string
	// Dimension is the DIMENSION header value.
	Dimension int
	// Cities holds the NODE_COORD_SECTION entries in file order.
	Cities []tsp.City
}

// ReadFile parses a .tsp file from disk.
func ReadFile(path string) (*Problem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := parse(bufio.NewScanner(file))
	if err != nil {
		return nil, fmt.Errorf("tsplib: %s: %w", path, err)
	}
	return p, nil
}

// parse consumes the header lines, then the coordinate section.
func parse(scanner *bufio.Scanner) (*Problem, error) {
	var (
		p        Problem
		inCoords bool
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if !inCoords {
			switch {
			case strings.HasPrefix(line, "NAME"):
				p.Name = headerValue(line)
			case strings.HasPrefix(line, "DIMENSION"):
				d, err := strconv.Atoi(headerValue(line))
				if err != nil {
					return nil, fmt.Errorf("bad DIMENSION header %q: %w", line, err)
				}
				p.Dimension = d
			case line == "NODE_COORD_SECTION":
				inCoords = true
			}
			// Any other header (COMMENT, TYPE, EDGE_WEIGHT_TYPE, …) is
			// metadata the solver does not need.
			continue
		}

		city, err := parseCoordLine(line)
		if err != nil {
			return nil, err
		}
		p.Cities = append(p.Cities, city)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !inCoords {
		return nil, fmt.Errorf("no NODE_COORD_SECTION found")
	}
	if p.Dimension != 0 && len(p.Cities) != p.Dimension {
		return nil, fmt.Errorf("DIMENSION is %d but %d coordinates were read",
			p.Dimension, len(p.Cities))
	}
	if p.Dimension == 0 {
		p.Dimension = len(p.Cities)
	}
	return &p, nil
}

// headerValue returns the trimmed text after the first colon, or the part
// after the keyword when no colon is present ("NAME : x" and "NAME x").
func headerValue(line string) string {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// parseCoordLine parses one "id x y" node entry.
func parseCoordLine(line string) (tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return tsp.City{}, fmt.Errorf("bad coordinate line %q", line)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.City{}, fmt.Errorf("bad city id in %q: %w", line, err)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("bad x coordinate in %q: %w", line, err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("bad y coordinate in %q: %w", line, err)
	}

	return tsp.City{ID: id, X: x, Y: y}, nil
}
