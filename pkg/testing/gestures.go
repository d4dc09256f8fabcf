package testing

import (
	"github.com/go-drift/ripple/pkg/gestures"
	"github.com/go-drift/ripple/pkg/graphics"
)

// TapAt sends a down and an up at pos without advancing time.
func (t *Tester) TapAt(pos graphics.Offset, pointerID int) error {
	if err := t.SendPointerDown(pos, pointerID); err != nil {
		return err
	}
	return t.SendPointerUp(pos, pointerID)
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int) error {
	return t.sendPointer(pos, pointerID, gestures.PointerPhaseDown)
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int) error {
	return t.sendPointer(pos, pointerID, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int) error {
	return t.sendPointer(pos, pointerID, gestures.PointerPhaseUp)
}

// SendPointerCancel cancels the pointer at its last known position.
func (t *Tester) SendPointerCancel(pointerID int) error {
	return t.sendPointer(t.pointers[pointerID], pointerID, gestures.PointerPhaseCancel)
}

func (t *Tester) sendPointer(pos graphics.Offset, pointerID int, phase gestures.PointerPhase) error {
	if t.engine == nil {
		return ErrNoRoot
	}
	if phase.IsTerminal() {
		delete(t.pointers, pointerID)
	} else {
		t.pointers[pointerID] = pos
	}
	t.engine.HandlePointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     phase,
	})
	return nil
}
