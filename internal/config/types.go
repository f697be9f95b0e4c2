package config

// Document is a preview document: a set of inputs rendered in one or more
// interaction states.
type Document struct {
	Name   string      `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Theme  string      `yaml:"theme,omitempty"`
	Width  int         `yaml:"width,omitempty" validate:"omitempty,min=10,max=400"`
	Inputs []InputSpec `yaml:"inputs" validate:"required,min=1,dive"`
}

// InputSpec declares one input and the states it is previewed in.
type InputSpec struct {
	Name        string         `yaml:"name" validate:"required,input_name"`
	Props       map[string]any `yaml:"props,omitempty" validate:"omitempty,dive,keys,prop_key,endkeys"`
	Disabled    bool           `yaml:"disabled,omitempty"`
	Invalid     bool           `yaml:"invalid,omitempty"`
	ReadOnly    bool           `yaml:"read_only,omitempty"`
	Required    bool           `yaml:"required,omitempty"`
	Placeholder string         `yaml:"placeholder,omitempty"`
	Value       string         `yaml:"value,omitempty"`
	Type        string         `yaml:"type,omitempty" validate:"omitempty,oneof=text password"`
	Helper      string         `yaml:"helper,omitempty"`
	Left        *AdornmentSpec `yaml:"left,omitempty"`
	Right       *AdornmentSpec `yaml:"right,omitempty"`
	States      []StateSpec    `yaml:"states,omitempty" validate:"omitempty,dive"`
}

// AdornmentSpec declares an adornment. Text and icon adornments are static;
// status adornments follow the interaction state.
type AdornmentSpec struct {
	Kind  string `yaml:"kind" validate:"required,adornment_kind"`
	Text  string `yaml:"text,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// StateSpec is one interaction snapshot to render.
type StateSpec struct {
	Name    string `yaml:"name" validate:"required"`
	Hovered bool   `yaml:"hovered,omitempty"`
	Focused bool   `yaml:"focused,omitempty"`
}

// PreviewStates returns the declared states, or a single idle state.
func (s InputSpec) PreviewStates() []StateSpec {
	if len(s.States) == 0 {
		return []StateSpec{{Name: "idle"}}
	}
	return s.States
}
