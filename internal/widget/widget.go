// Package widget models the toolbar controls as plain data. Hit-testing and
// value mapping live here; drawing is left to the shell.
package widget

import (
	"image"
	"math"
)

// Button is a labelled clickable rectangle.
type Button struct {
	Label string
	Rect  image.Rectangle
}

// Contains reports whether p lies inside the button.
func (b Button) Contains(p image.Point) bool { return p.In(b.Rect) }

// Slider maps a horizontal track onto a continuous value in [Min, Max].
type Slider struct {
	Label string
	Rect  image.Rectangle
	Min   float64
	Max   float64
	Value float64
}

// Contains reports whether p lies on the slider track.
func (s Slider) Contains(p image.Point) bool { return p.In(s.Rect) }

// ValueAt returns the value under pixel column x. Positions beyond the track
// ends clamp to Min or Max.
func (s Slider) ValueAt(x int) float64 {
	span := s.Rect.Dx() - 1
	if span <= 0 || s.Max <= s.Min {
		return s.Min
	}
	t := float64(x-s.Rect.Min.X) / float64(span)
	t = math.Max(0, math.Min(1, t))
	return s.Min + t*(s.Max-s.Min)
}

// Set moves the slider to the value under x and returns it.
func (s *Slider) Set(x int) float64 {
	s.Value = s.ValueAt(x)
	return s.Value
}

// KnobX returns the pixel column of the current value.
func (s Slider) KnobX() int {
	span := s.Rect.Dx() - 1
	if span <= 0 || s.Max <= s.Min {
		return s.Rect.Min.X
	}
	t := (s.Value - s.Min) / (s.Max - s.Min)
	t = math.Max(0, math.Min(1, t))
	return s.Rect.Min.X + int(math.Round(t*float64(span)))
}
