package engine

// Overrides maps seat index to a manually dragged split-space
// position. An entry shadows the computed layout for that seat until
// the map is cleared.
type Overrides map[int]Position

func (o Overrides) Get(seat int) (Position, bool) {
	p, ok := o[seat]
	return p, ok
}

func (o *Overrides) Set(seat int, p Position) {
	if *o == nil {
		*o = Overrides{}
	}
	(*o)[seat] = Position{X: clampPct(p.X), Y: clampPct(p.Y)}
}

func (o *Overrides) Clear() {
	*o = Overrides{}
}

// Prune drops entries at or beyond the given seat count. Stale
// indices are inert either way; pruning keeps the map from growing
// across many formation switches in one session.
func (o Overrides) Prune(seats int) {
	for seat := range o {
		if seat < 0 || seat >= seats {
			delete(o, seat)
		}
	}
}

// EffectivePositions resolves override-or-computed for every seat of
// the team's formation. Overrides outside the seat range never leak
// into the result.
func (t *TeamState) EffectivePositions() ([]Position, error) {
	base, err := ComputePositions(t.Formation)
	if err != nil {
		return nil, err
	}
	for seat := range base {
		if p, ok := t.Overrides.Get(seat); ok {
			base[seat] = p
		}
	}
	return base, nil
}

// EffectivePosition resolves a single seat.
func (t *TeamState) EffectivePosition(seat int) (Position, error) {
	if seat < 0 || seat >= t.Formation.Seats() {
		return Position{}, ErrSeatOutOfRange
	}
	if p, ok := t.Overrides.Get(seat); ok {
		return p, nil
	}
	base, err := ComputePositions(t.Formation)
	if err != nil {
		return Position{}, err
	}
	return base[seat], nil
}
