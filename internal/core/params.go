package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes read-only text such as the playback state.
	ParamTypeString ParamType = "string"
)

// Parameter is a single labelled value shown in the status readout.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a session exposes at one instant.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable value exposed on the toolbar.
// Int controls are steppers; float controls are continuous sliders.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64
	Min  float64
	Max  float64
}

// Clamp limits v to [Min, Max] and rounds int controls to whole numbers.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.Type == ParamTypeInt {
		v = math.Round(v)
	}
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of toolbar-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows toolbar interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows toolbar interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
