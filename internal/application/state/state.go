// Package state defines the phases of a scene transition.
package state

// Phase represents where a transition currently is in its
// fade-out / load / fade-in sequence.
type Phase int

const (
	Idle Phase = iota
	FadingOut
	Loading
	FadingIn
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case FadingOut:
		return "FadingOut"
	case Loading:
		return "Loading"
	case FadingIn:
		return "FadingIn"
	default:
		return "Unknown"
	}
}
