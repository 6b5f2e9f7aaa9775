package domain

import "fmt"

type RunState string

const (
	RunStateIdle    RunState = "idle"
	RunStateRunning RunState = "running"
	RunStatePaused  RunState = "paused"
)

type Command string

const (
	CommandStart     Command = "start"
	CommandPause     Command = "pause"
	CommandReset     Command = "reset"
	CommandLap       Command = "lap"
	CommandClearLaps Command = "clear-laps"
)

func (s RunState) Valid() bool {
	switch s {
	case RunStateIdle, RunStateRunning, RunStatePaused:
		return true
	default:
		return false
	}
}

// Label is the human status shown next to the clock.
func (s RunState) Label() string {
	switch s {
	case RunStateRunning:
		return "Running"
	case RunStatePaused:
		return "Paused"
	default:
		return "Ready"
	}
}

// NextState returns the state reached by applying cmd in state from. Commands
// that are not accepted in from return an error wrapping ErrInvalidTransition
// and leave from as the result.
func NextState(from RunState, cmd Command) (RunState, error) {
	switch cmd {
	case CommandStart:
		if from == RunStateIdle || from == RunStatePaused {
			return RunStateRunning, nil
		}
	case CommandPause:
		if from == RunStateRunning {
			return RunStatePaused, nil
		}
	case CommandLap:
		if from == RunStateRunning {
			return RunStateRunning, nil
		}
	case CommandReset:
		return RunStateIdle, nil
	case CommandClearLaps:
		return from, nil
	default:
		return from, fmt.Errorf("%w: unknown command %q", ErrInvalidTransition, cmd)
	}

	return from, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, cmd, from)
}
