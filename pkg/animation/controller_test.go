package animation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	drifttest "github.com/go-drift/ripple/pkg/testing"
)

func useFakeClock(t *testing.T) *drifttest.FakeClock {
	t.Helper()
	clk := drifttest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestAnimationController_LinearProgress(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewAnimationController(1500 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if c.Status() != animation.AnimationForward {
		t.Fatalf("status = %v, want forward", c.Status())
	}

	prev := 0.0
	for i := 0; i < 15; i++ {
		clk.Advance(100 * time.Millisecond)
		animation.StepTickers()
		if c.Value < prev {
			t.Fatalf("value decreased from %v to %v", prev, c.Value)
		}
		prev = c.Value
	}
	if c.Value != 1 {
		t.Errorf("value at 1500ms = %v, want exactly 1", c.Value)
	}
	if c.Status() != animation.AnimationCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if c.IsAnimating() {
		t.Error("expected ticker to stop at completion")
	}
}

func TestAnimationController_HalfwayValue(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()

	c.Forward()
	clk.Advance(250 * time.Millisecond)
	animation.StepTickers()
	if c.Value != 0.25 {
		t.Errorf("value = %v, want 0.25", c.Value)
	}
}

func TestAnimationController_StopHaltsTicks(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()

	calls := 0
	c.AddListener(func() { calls++ })
	c.Forward()

	clk.Advance(100 * time.Millisecond)
	animation.StepTickers()
	c.Stop()
	frozen := c.Value

	clk.Advance(500 * time.Millisecond)
	animation.StepTickers()
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}
	if c.Value != frozen {
		t.Errorf("value moved after Stop: %v -> %v", frozen, c.Value)
	}
}

func TestAnimationController_ResetNotifies(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	clk.Advance(400 * time.Millisecond)
	animation.StepTickers()
	c.Reset()

	if c.Value != 0 {
		t.Errorf("value after Reset = %v", c.Value)
	}
	want := []animation.AnimationStatus{animation.AnimationForward, animation.AnimationDismissed}
	if fmt.Sprint(statuses) != fmt.Sprint(want) {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
}

func TestAnimationController_ForwardRestartsRun(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()

	c.Forward()
	clk.Advance(600 * time.Millisecond)
	animation.StepTickers()

	c.Reset()
	c.Forward()
	if got := animation.ActiveTickerCount(); got != 1 {
		t.Fatalf("active tickers = %d, want 1", got)
	}
	clk.Advance(100 * time.Millisecond)
	animation.StepTickers()
	if c.Value != 0.1 {
		t.Errorf("value = %v, want 0.1 measured from the restart", c.Value)
	}
}

func TestTicker_StoppedDuringStepIsSkipped(t *testing.T) {
	useFakeClock(t)
	var second *animation.Ticker
	secondCalls := 0
	first := animation.NewTicker(func(time.Duration) { second.Stop() })
	second = animation.NewTicker(func(time.Duration) { secondCalls++ })
	first.Start()
	second.Start()
	defer first.Stop()

	// Map iteration order is random: if second runs first it is called once
	// before being stopped, but never after.
	animation.StepTickers()
	animation.StepTickers()
	if secondCalls > 1 {
		t.Errorf("stopped ticker called %d times", secondCalls)
	}
	if second.IsActive() {
		t.Error("second ticker should be inactive")
	}
}

func ExampleAnimationController() {
	controller := animation.NewAnimationController(1500 * time.Millisecond)
	controller.AddStatusListener(func(s animation.AnimationStatus) {
		fmt.Println(s)
	})

	controller.Forward()
	controller.Reset()
	controller.Dispose()
	// Output:
	// forward
	// dismissed
}
