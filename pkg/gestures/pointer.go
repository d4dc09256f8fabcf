// Package gestures defines the pointer events hosts deliver to render objects.
package gestures

import (
	"fmt"

	"github.com/go-drift/ripple/pkg/graphics"
)

// PointerPhase is the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown is a finger or button pressing down.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is movement while pressed.
	PointerPhaseMove
	// PointerPhaseUp is the release that ends an interaction.
	PointerPhaseUp
	// PointerPhaseCancel ends an interaction without a release, e.g. when
	// the host loses focus mid-press.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// IsTerminal reports whether the phase ends the pointer's interaction.
func (p PointerPhase) IsTerminal() bool {
	return p == PointerPhaseUp || p == PointerPhaseCancel
}

// PointerEvent is a single pointer sample.
//
// Position is in root coordinates. Delta is the movement since the previous
// event for the same pointer and is zero on down.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}

// WithPosition returns a copy of the event at a different position.
func (e PointerEvent) WithPosition(p graphics.Offset) PointerEvent {
	e.Position = p
	return e
}
