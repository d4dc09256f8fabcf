package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is the run state of an [AnimationController].
//
//	           Forward()              duration elapsed
//	Dismissed ──────────► Forward ──────────────────► Completed
//	    ▲                    │                            │
//	    └────── Reset() ─────┴──────── Reset() ───────────┘
//
// Stop leaves the status unchanged and freezes the value.
type AnimationStatus int

const (
	// AnimationDismissed means the value is at zero and nothing is running.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is advancing toward one.
	AnimationForward
	// AnimationCompleted means the value reached one and the ticker stopped.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives Value linearly from its current position to 1
// over Duration, one step per frame.
//
// Listeners run on every step with the new Value. Call Dispose when done so
// the ticker leaves the registry.
type AnimationController struct {
	// Value is the current progress in [0, 1].
	Value float64

	// Duration is the time a full 0 to 1 run takes.
	Duration time.Duration

	status          AnimationStatus
	ticker          *Ticker
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates a dismissed controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward starts advancing from the current value toward 1, replacing any
// run already in progress.
func (c *AnimationController) Forward() {
	c.stopTicker()
	c.startValue = c.Value
	c.setStatus(AnimationForward)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = float64(elapsed) / float64(c.Duration)
		if progress > 1 {
			progress = 1
		}
	}
	// Scale the remaining distance so a run resumed mid-way still ends at
	// exactly 1 when Duration has elapsed.
	c.Value = c.startValue + (1-c.startValue)*progress
	c.notifyListeners()

	if progress >= 1 {
		c.Value = 1
		c.stopTicker()
		c.setStatus(AnimationCompleted)
	}
}

// Stop freezes the value where it is. No further listener calls are made
// until the next Forward.
func (c *AnimationController) Stop() {
	c.stopTicker()
}

// Reset stops any run and sets the value back to zero.
func (c *AnimationController) Reset() {
	c.stopTicker()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a ticker is currently advancing the value.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// IsCompleted reports whether the last run reached 1.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// AddListener registers fn to run after every value change.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener registers fn to run on every status change.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.stopTicker()
	c.listeners = nil
	c.statusListeners = nil
}
