// Package drag turns raw pointer gestures over a pitch surface into
// seat drags or click selections. One Controller handles one
// team-side pointer track; the two sides of a session get independent
// controllers and never interfere.
package drag

import (
	"math"
	"time"

	"github.com/mierzida/FLP-forBBK/internal/engine"
)

const (
	// A press that moves less than this many pixels is a click.
	ThresholdPx = 6.0

	// How long a click stays pending so a second press can upgrade it
	// to a double-click.
	ClickDelay = 250 * time.Millisecond
)

// PointerEvent carries pointer coordinates in pixels over the pitch
// surface, plus the surface size used to convert to pitch percent.
type PointerEvent struct {
	Seat   int
	X, Y   float64
	Width  float64
	Height float64
}

// Callbacks are invoked synchronously from the controller. Click
// fires from the scheduler, so whoever owns the controller decides
// which goroutine that is.
type Callbacks struct {
	SetOverride func(seat int, pos engine.Position)
	Click       func(seat int)
	DoubleClick func(seat int)
	DragEnd     func(seat int)
}

// Scheduler runs fn after d and returns a cancel func. Production
// wiring routes fn back through the session inbox; tests fire it by
// hand.
type Scheduler func(d time.Duration, fn func()) (cancel func())

type phase int

const (
	idle phase = iota
	pressed
	dragging
)

type Controller struct {
	side  engine.TeamSide
	sched Scheduler
	cb    Callbacks

	phase    phase
	seat     int
	vertical bool
	startX   float64
	startY   float64
	// Pointer-to-seat-center offset at press time, so the grabbed
	// point stays under the cursor instead of snapping the center.
	offX   float64
	offY   float64
	width  float64
	height float64

	// Pending click timers keyed by seat, so an unrelated press never
	// swallows another seat's click.
	gen     int
	pending map[int]*pendingClick
}

type pendingClick struct {
	gen    int
	cancel func()
}

func NewController(side engine.TeamSide, sched Scheduler, cb Callbacks) *Controller {
	return &Controller{side: side, sched: sched, cb: cb, pending: make(map[int]*pendingClick)}
}

// PointerDown starts a track. center is the seat's current visual
// center in display-space percent (already projected when vertical is
// true). A press on a seat with a pending click is the second half of
// a double-click and consumes the gesture immediately.
func (c *Controller) PointerDown(ev PointerEvent, center engine.Position, vertical bool) {
	if c.cancelClick(ev.Seat) {
		c.phase = idle
		if c.cb.DoubleClick != nil {
			c.cb.DoubleClick(ev.Seat)
		}
		return
	}

	c.phase = pressed
	c.seat = ev.Seat
	c.vertical = vertical
	c.startX, c.startY = ev.X, ev.Y
	c.width, c.height = ev.Width, ev.Height
	c.offX = ev.X - center.X/100*ev.Width
	c.offY = ev.Y - center.Y/100*ev.Height
}

// PointerMove either waits out the click threshold or, once past it,
// writes an override for the grabbed seat on every event.
func (c *Controller) PointerMove(ev PointerEvent) {
	switch c.phase {
	case idle:
		return
	case pressed:
		if math.Hypot(ev.X-c.startX, ev.Y-c.startY) < ThresholdPx {
			return
		}
		c.phase = dragging
	}

	if c.width <= 0 || c.height <= 0 {
		return
	}
	pos := engine.Position{
		X: (ev.X - c.offX) / c.width * 100,
		Y: (ev.Y - c.offY) / c.height * 100,
	}
	if c.vertical {
		pos = engine.UnprojectCombined(c.side, pos)
	}
	pos.X = clamp(pos.X)
	pos.Y = clamp(pos.Y)
	if c.cb.SetOverride != nil {
		c.cb.SetOverride(c.seat, pos)
	}
}

// PointerUp ends the track: a completed drag reports DragEnd and
// never a click; an under-threshold press schedules the click
// callback, leaving the double-click window open.
func (c *Controller) PointerUp() {
	switch c.phase {
	case dragging:
		if c.cb.DragEnd != nil {
			c.cb.DragEnd(c.seat)
		}
	case pressed:
		c.scheduleClick(c.seat)
	}
	c.phase = idle
}

func (c *Controller) scheduleClick(seat int) {
	c.cancelClick(seat)
	c.gen++
	p := &pendingClick{gen: c.gen}
	gen := p.gen
	p.cancel = c.sched(ClickDelay, func() {
		// A cancelled timer may already have been queued; the
		// generation check makes firing idempotent with cancel.
		cur, ok := c.pending[seat]
		if !ok || cur.gen != gen {
			return
		}
		delete(c.pending, seat)
		if c.cb.Click != nil {
			c.cb.Click(seat)
		}
	})
	c.pending[seat] = p
}

// cancelClick reports whether a click was pending on the seat.
func (c *Controller) cancelClick(seat int) bool {
	p, ok := c.pending[seat]
	if !ok {
		return false
	}
	p.cancel()
	delete(c.pending, seat)
	return true
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
