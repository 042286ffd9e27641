package entity

// Lines is the fixed table of every straight line through the cube:
// 9 per axis (27 axis-aligned), 2 diagonals on each of the 9 faces'
// planes (18 face diagonals) and 4 corner-to-corner space diagonals,
// 49 in total. Win detection and the bot's hypothetical lookahead both
// read this one table.
var Lines = buildLines()

func buildLines() [][3]Coord {
	lines := make([][3]Coord, 0, 49)

	// lines along the X axis
	for y := 0; y < BoardSize; y++ {
		for z := 0; z < BoardSize; z++ {
			lines = append(lines, [3]Coord{{0, y, z}, {1, y, z}, {2, y, z}})
		}
	}

	// lines along the Y axis
	for x := 0; x < BoardSize; x++ {
		for z := 0; z < BoardSize; z++ {
			lines = append(lines, [3]Coord{{x, 0, z}, {x, 1, z}, {x, 2, z}})
		}
	}

	// lines along the Z axis
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			lines = append(lines, [3]Coord{{x, y, 0}, {x, y, 1}, {x, y, 2}})
		}
	}

	// face diagonals on XY planes
	for z := 0; z < BoardSize; z++ {
		lines = append(lines,
			[3]Coord{{0, 0, z}, {1, 1, z}, {2, 2, z}},
			[3]Coord{{0, 2, z}, {1, 1, z}, {2, 0, z}},
		)
	}

	// face diagonals on XZ planes
	for y := 0; y < BoardSize; y++ {
		lines = append(lines,
			[3]Coord{{0, y, 0}, {1, y, 1}, {2, y, 2}},
			[3]Coord{{0, y, 2}, {1, y, 1}, {2, y, 0}},
		)
	}

	// face diagonals on YZ planes
	for x := 0; x < BoardSize; x++ {
		lines = append(lines,
			[3]Coord{{x, 0, 0}, {x, 1, 1}, {x, 2, 2}},
			[3]Coord{{x, 0, 2}, {x, 1, 1}, {x, 2, 0}},
		)
	}

	// space diagonals, corner to corner
	lines = append(lines,
		[3]Coord{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}},
		[3]Coord{{0, 0, 2}, {1, 1, 1}, {2, 2, 0}},
		[3]Coord{{0, 2, 0}, {1, 1, 1}, {2, 0, 2}},
		[3]Coord{{0, 2, 2}, {1, 1, 1}, {2, 0, 0}},
	)

	return lines
}

// LinesThrough returns every winning line that passes through the given
// cell: 13 through the center, 7 through a corner, 5 through a face
// center, 4 through an edge center.
func LinesThrough(cell Coord) [][3]Coord {
	through := make([][3]Coord, 0, 13)
	for _, line := range Lines {
		if lineContains(line, cell) {
			through = append(through, line)
		}
	}

	return through
}

func lineContains(line [3]Coord, cell Coord) bool {
	return line[0] == cell || line[1] == cell || line[2] == cell
}
