package sim

import (
	"strconv"

	"lifepaint/internal/core"
)

// Parameters reports the session's status for the toolbar readout.
func (s *Session) Parameters() core.ParameterSnapshot {
	g := s.stepper.Grid()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: s.state.String()},
				intParam("generation", "Gen", s.Generation()),
				intParam("population", "Alive", g.Population()),
				floatParam(KeySpeed, "Speed", s.speed),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam(KeyCellSize, "Cell", s.cellSize),
				intParam("rows", "Rows", g.Rows()),
				intParam("cols", "Cols", g.Cols()),
			},
		},
	}}
}

// ParameterControls lists the adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{s.cellCtl, s.speedCtl}
}

// SetIntParameter updates an integer parameter by key.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != KeyCellSize {
		return false
	}
	s.SetCellSize(value)
	return true
}

// SetFloatParameter updates a floating point parameter by key.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != KeySpeed {
		return false
	}
	s.SetSpeed(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 1, 64),
	}
}

var (
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
	_ core.FloatParameterSetter      = (*Session)(nil)
)
