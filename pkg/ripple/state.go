package ripple

import (
	"fmt"

	"github.com/go-drift/ripple/pkg/graphics"
)

// State is the container's interaction state.
type State int

const (
	// StateIdle means no pointer is down and nothing is drawn.
	StateIdle State = iota
	// StateAnimating means a pointer is down. The ripple may still be
	// growing or may have reached full size.
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// UnsetOrigin marks an AnimationState with no active touch.
var UnsetOrigin = graphics.Offset{X: -1, Y: -1}

// AnimationState is a snapshot of the running ripple.
type AnimationState struct {
	// Origin is the ripple center in container coordinates, or UnsetOrigin.
	Origin graphics.Offset
	// Progress is the normalized run position in [0, 1].
	Progress float64
	// Running reports whether the driver is still advancing Progress.
	Running bool
}

func idleAnimationState() AnimationState {
	return AnimationState{Origin: UnsetOrigin}
}
