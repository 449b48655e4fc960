package engine

// Combined-vertical projection constants. Team A is compressed into
// the top half of the single pitch, team B is mirrored and compressed
// into the bottom half, and both are widened about the centerline.
const (
	combinedTopStart    = 2.0
	combinedTopSpan     = 50.0
	combinedBottomStart = 48.0
	combinedBottomSpan  = 50.0
	combinedWiden       = 1.15
)

// ProjectCombined maps a split-space position into combined-vertical
// display space. This is a rendering-time projection only: overrides
// are always stored in split space.
func ProjectCombined(side TeamSide, p Position) Position {
	x := 50 + (p.X-50)*combinedWiden
	var y float64
	if side == TeamA {
		y = combinedTopStart + p.Y/100*combinedTopSpan
	} else {
		y = combinedBottomStart + (100-p.Y)/100*combinedBottomSpan
	}
	return Position{X: x, Y: y}
}

// UnprojectCombined is the exact inverse of ProjectCombined, applied
// to pointer-derived percentages before an override is stored while
// the display is in combined-vertical mode. The result is clamped so
// drags past the half boundary cannot leave split space.
func UnprojectCombined(side TeamSide, p Position) Position {
	x := 50 + (p.X-50)/combinedWiden
	var y float64
	if side == TeamA {
		y = (p.Y - combinedTopStart) / combinedTopSpan * 100
	} else {
		y = 100 - (p.Y-combinedBottomStart)/combinedBottomSpan*100
	}
	return Position{X: clampPct(x), Y: clampPct(y)}
}
