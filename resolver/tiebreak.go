package resolver

import "github.com/katalvlaran/gridbot/grid"

// directionalBias picks among equally priced candidates the one that closes
// the remaining distance to start most directly. start is clamped into the
// row and column span of the tied set; the candidate nearest that point
// wins, then the one nearest start, then the earliest in tied.
func directionalBias(tied []candidate, start grid.Position) candidate {
	lo, hi := tied[0].at, tied[0].at
	for _, c := range tied[1:] {
		lo.Row, hi.Row = min(lo.Row, c.at.Row), max(hi.Row, c.at.Row)
		lo.Col, hi.Col = min(lo.Col, c.at.Col), max(hi.Col, c.at.Col)
	}
	target := grid.Position{
		Row: clamp(start.Row, lo.Row, hi.Row),
		Col: clamp(start.Col, lo.Col, hi.Col),
	}

	best := tied[0]
	for _, c := range tied[1:] {
		dc, db := c.at.Manhattan(target), best.at.Manhattan(target)
		if dc < db || (dc == db && c.at.Manhattan(start) < best.at.Manhattan(start)) {
			best = c
		}
	}

	return best
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
