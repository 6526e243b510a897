package rules

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

	alive && (neighbors <= 1 || neighbors >= 4) -> dead   (isolation, overcrowding)
	alive && (neighbors == 2 || neighbors == 3) -> alive  (stable)
	!alive && neighbors == 3                    -> alive  (birth)
	!alive && neighbors != 3                    -> dead
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
