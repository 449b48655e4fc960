package engine

import (
	"strconv"
	"strings"
)

// Split-space vertical anchors: the goalkeeper sits at ownBaselineY,
// the most advanced line at attackY. Everything between is derived.
const (
	ownBaselineY = 90.0
	attackY      = 10.0

	// Seats in a line spread outward from the centerline by this factor.
	lineWidening = 1.2
)

// ComputePositions maps a formation to one split-space Position per
// seat, ordered exactly like the roster. Deterministic, no side
// effects; callers may memoize on formation identity.
//
// Within a line the geometric slots run left to right but are assigned
// to roster indices in reverse: the lowest roster index in a line
// renders rightmost. Downstream consumers key off seat index, so this
// correspondence must never change.
func ComputePositions(f Formation) ([]Position, error) {
	if err := validateFormation(f); err != nil {
		return nil, err
	}

	positions := make([]Position, 0, f.Seats())
	outfield := 0
	for _, n := range f.Lines[1:] {
		if n > 0 {
			outfield++
		}
	}

	lineIdx := 0 // counts non-empty outfield lines in roster order
	for li, n := range f.Lines {
		if n == 0 {
			continue
		}
		var y float64
		if li == 0 {
			y = ownBaselineY
		} else {
			// Re-index so 0 is the most advanced line; defenders end
			// up directly in front of the goalkeeper.
			back := outfield - 1 - lineIdx
			y = attackY + (ownBaselineY-attackY)/float64(outfield)*float64(back)
			lineIdx++
		}

		slots := make([]float64, n)
		step := 100.0 / float64(n+1)
		for k := 0; k < n; k++ {
			x := step * float64(k+1)
			x = 50 + (x-50)*lineWidening
			slots[k] = clampPct(x)
		}
		for j := 0; j < n; j++ {
			positions = append(positions, Position{X: slots[n-1-j], Y: y})
		}
	}
	return positions, nil
}

func validateFormation(f Formation) error {
	if len(f.Lines) < 2 || f.Lines[0] != 1 {
		return ErrDegenerateFormation
	}
	nonEmpty := 0
	for _, n := range f.Lines {
		if n < 0 {
			return ErrDegenerateFormation
		}
		if n > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return ErrDegenerateFormation
	}
	return nil
}

// ParseFormation turns a feed formation string like "4-2-3-1" into a
// Formation with the implicit goalkeeper line prefixed. Anything
// unparseable falls back to the default 4-3-3.
func ParseFormation(s string) Formation {
	trimmed := strings.TrimSpace(s)
	var lines []int
	for _, part := range strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '-' || r == ' '
	}) {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			continue
		}
		lines = append(lines, n)
	}
	if len(lines) == 0 {
		return DefaultFormation()
	}
	return Formation{Name: trimmed, Lines: append([]int{1}, lines...)}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
