package issue

import (
	"fmt"
)

// Well-known state values seeded by the initial migration.
const (
	StateValueOpen   = 1
	StateValueClosed = 99
)

// State is a named, numerically ordered status value assignable to an issue.
type State struct {
	id    uint
	name  string
	value int
}

func NewState(name string, value int) (*State, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("state name is required")
	}
	if len(name) > 32 {
		return nil, fmt.Errorf("state name exceeds maximum length of 32 characters")
	}

	return &State{
		name:  name,
		value: value,
	}, nil
}

func ReconstructState(id uint, name string, value int) (*State, error) {
	if id == 0 {
		return nil, fmt.Errorf("state ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("state name is required")
	}

	return &State{
		id:    id,
		name:  name,
		value: value,
	}, nil
}

func (s *State) ID() uint {
	return s.id
}

func (s *State) Name() string {
	return s.name
}

func (s *State) Value() int {
	return s.value
}
