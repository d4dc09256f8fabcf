// Package animation provides the frame-driven timing primitives behind the
// ripple effect.
//
// A [Ticker] is a callback registered in a process-wide registry while it
// is active. The host steps every active ticker once per frame with
// [StepTickers]. [AnimationController] builds on a ticker to move a value
// linearly from 0 to 1 over a fixed duration and notifies listeners on
// every step.
//
// All timing reads the package [Clock], which tests replace with
// [SetClock] to advance time deterministically.
package animation
