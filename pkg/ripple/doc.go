// Package ripple provides a single-child container that draws an expanding
// circular ripple while a pointer is held down on it.
//
// A container is built from a [Config], either directly with [New], through
// the fluent [Builder], or from a YAML attribute document with
// [ParseAttributes]. Construction validates every parameter and fails with
// an error matching errors.ErrInvalidConfiguration when one is out of range.
//
// At runtime the container intercepts every pointer sequence that lands on
// it. A pointer down starts a linear 0 to 1 run lasting [Duration]; each
// step repaints a filled circle of radius (MaxRadius - MinRadius) * progress
// centered at the touch point, or at the container center when UseCenter is
// set. A pointer up stops the run, clears the circle and forwards a click to
// the child.
//
//	r, err := ripple.NewBuilder().
//	    Color(graphics.ColorBlack).
//	    Alpha(0.2).
//	    MinRadius(100).
//	    MaxRadius(1500).
//	    Child(label).
//	    Build()
package ripple
