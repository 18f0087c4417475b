package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseInitializing - Game object creation
	PhaseInitializing GamePhase = iota

	// PhasePlacing - Fleets are laid out on both boards
	PhasePlacing

	// PhaseRunning - Players alternate shots
	PhaseRunning

	// PhaseEnded - One fleet is destroyed
	PhaseEnded

	// PhaseError - Error recovery state
	PhaseError

	// PhaseReset - Reset the current game without full teardown
	PhaseReset
)

var phaseNames = [...]string{
	PhaseInitializing: "Initializing",
	PhasePlacing:      "Placing",
	PhaseRunning:      "Running",
	PhaseEnded:        "Ended",
	PhaseError:        "Error",
	PhaseReset:        "Reset",
}

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Unknown(%d)", p)
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanReceiveShots returns true if the game accepts real shots in this phase
func (p GamePhase) CanReceiveShots() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhasePlacing, PhaseError}
	case PhasePlacing:
		return []GamePhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []GamePhase{PhaseEnded, PhaseError}
	case PhaseEnded, PhaseError:
		return []GamePhase{PhaseReset}
	case PhaseReset:
		return []GamePhase{PhaseInitializing}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	for i, name := range phaseNames {
		if name == s {
			return GamePhase(i), nil
		}
	}
	return PhaseInitializing, fmt.Errorf("unknown game phase %q", s)
}
