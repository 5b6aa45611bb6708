package widget

import (
	"image"

	"lifepaint/internal/core"
)

// Action is what a toolbar click asks the session to do.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionStop
	ActionShrink
	ActionGrow
	ActionSpeed
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionStop:
		return "stop"
	case ActionShrink:
		return "shrink"
	case ActionGrow:
		return "grow"
	case ActionSpeed:
		return "speed"
	default:
		return "none"
	}
}

// Height is the pixel height of the toolbar strip.
const Height = 44

const (
	padding     = 8
	buttonW     = 64
	stepperW    = 24
	buttonH     = Height - 2*padding
	gap         = 6
	sliderMinW  = 80
	sliderLabel = 48
)

// Toolbar is the strip of controls under the canvas.
type Toolbar struct {
	Bounds image.Rectangle

	Start  Button
	Pause  Button
	Stop   Button
	Shrink Button
	Grow   Button
	Speed  Slider
}

// NewToolbar lays the controls out left to right in a strip of the given
// width whose top edge sits at y = top. The slider takes its range and
// initial value from speed.
func NewToolbar(width, top int, speed core.ParameterControl, value float64) Toolbar {
	y0 := top + padding
	y1 := y0 + buttonH
	x := padding
	next := func(label string, w int) Button {
		b := Button{Label: label, Rect: image.Rect(x, y0, x+w, y1)}
		x += w + gap
		return b
	}

	tb := Toolbar{Bounds: image.Rect(0, top, width, top+Height)}
	tb.Start = next("Start", buttonW)
	tb.Pause = next("Pause", buttonW)
	tb.Stop = next("Stop", buttonW)
	x += gap
	tb.Shrink = next("-", stepperW)
	tb.Grow = next("+", stepperW)
	x += gap + sliderLabel

	right := width - padding
	if right-x < sliderMinW {
		right = x + sliderMinW
	}
	tb.Speed = Slider{
		Label: speed.Label,
		Rect:  image.Rect(x, y0, right, y1),
		Min:   speed.Min,
		Max:   speed.Max,
		Value: speed.Clamp(value),
	}
	return tb
}

// Hit maps a click to an action. Clicks outside every control are
// ActionNone.
func (t Toolbar) Hit(p image.Point) Action {
	switch {
	case t.Start.Contains(p):
		return ActionStart
	case t.Pause.Contains(p):
		return ActionPause
	case t.Stop.Contains(p):
		return ActionStop
	case t.Shrink.Contains(p):
		return ActionShrink
	case t.Grow.Contains(p):
		return ActionGrow
	case t.Speed.Contains(p):
		return ActionSpeed
	}
	return ActionNone
}

// Buttons lists the buttons in drawing order.
func (t *Toolbar) Buttons() []*Button {
	return []*Button{&t.Start, &t.Pause, &t.Stop, &t.Shrink, &t.Grow}
}
