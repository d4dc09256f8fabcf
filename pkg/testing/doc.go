// Package testing drives render trees frame by frame for deterministic
// tests.
//
// A [Tester] owns an engine, installs a [FakeClock] as the animation clock
// and exposes pointer helpers and a serialized view of the last painted
// frame:
//
//	func TestRipple(t *testing.T) {
//	    tester := drifttest.NewTesterWithT(t)
//	    tester.SetSize(graphics.Size{Width: 300, Height: 200})
//	    tester.PumpRoot(r)
//
//	    tester.SendPointerDown(graphics.Offset{X: 50, Y: 50}, 1)
//	    tester.Advance(750 * time.Millisecond)
//
//	    ops := tester.DisplayOps()
//	    // ops contains a drawCircle with radius 700
//	}
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/ripple/pkg/testing"
package testing
