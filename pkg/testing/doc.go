// Package testing provides a render testing harness for circle layouts and
// other render boxes.
//
// # Quick Start
//
// Create a tester, pump a root, and make assertions:
//
//	func TestChart(t *testing.T) {
//	    tester := drifttest.NewRenderTesterWithT(t)
//	    tester.SetSize(graphics.Size{Width: 200, Height: 200})
//	    tester.PumpRoot(chart)
//
//	    // Simulate gestures in surface coordinates
//	    tester.TapAt(graphics.Offset{X: 190, Y: 100})
//	    tester.Pump()
//
//	    // Inspect pixels or the render tree
//	    if tester.PixelAt(150, 100) != graphics.RGB(255, 0, 0) {
//	        t.Error("expected the first sector to be red")
//	    }
//	    labels := tester.Find(drifttest.ByType[*widgets.Label]())
//	}
//
// The tester drives a real engine.Engine, so frames, hit testing and
// pointer capture behave as in production.
//
// # Snapshot Testing
//
// Capture and compare render tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/chart.snapshot.json")
//
// Update snapshots with:
//
//	CIRCLELAYOUT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// The tester installs a FakeClock as the animation clock:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/circlelayout/pkg/testing"
package testing
