package testing

import (
	"testing"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
	"github.com/go-drift/circlelayout/pkg/widgets"
)

func phases(events []gestures.PointerEvent) []gestures.PointerPhase {
	out := make([]gestures.PointerPhase, len(events))
	for i, e := range events {
		out[i] = e.Phase
	}
	return out
}

func TestTapAt_RoutesToSector(t *testing.T) {
	tester, chart, boxes := pumpChart(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	tester.Pump()

	var captures []bool
	chart.AddCaptureListener(func(_ circlelayout.ChildID, captured bool) {
		captures = append(captures, captured)
	})

	handled, err := tester.TapAt(graphics.Offset{X: 10, Y: 100})
	if err != nil {
		t.Fatal(err)
	}
	if !handled {
		t.Error("expected the tap to be handled")
	}
	if len(boxes[0].Events) != 0 {
		t.Errorf("right box got %d events, want 0", len(boxes[0].Events))
	}
	got := phases(boxes[1].Events)
	if len(got) != 2 || got[0] != gestures.PointerPhaseDown || got[1] != gestures.PointerPhaseUp {
		t.Errorf("left box phases = %v, want [down up]", got)
	}
	if len(captures) != 2 || !captures[0] || captures[1] {
		t.Errorf("captures = %v, want [true false]", captures)
	}
}

func TestTapAt_CenterHoleIsIgnored(t *testing.T) {
	tester, _, boxes := pumpChart(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	tester.Pump()

	handled, _ := tester.TapAt(graphics.Offset{X: 100, Y: 100})
	if handled {
		t.Error("a tap in the hole should not be handled")
	}
	for i, b := range boxes {
		if len(b.Events) != 0 {
			t.Errorf("box %d got events", i)
		}
	}
}

func TestTap_Finder(t *testing.T) {
	tester, _, _ := pumpChart(t)
	// Fill boxes are centered on the container, inside the hole.
	handled, err := tester.Tap(ByText("left"))
	if err != nil {
		t.Fatal(err)
	}
	if handled {
		t.Error("expected the tap at the center to fall in the hole")
	}

	if _, err := tester.Tap(ByText("missing")); err == nil {
		t.Error("expected an error for a finder matching nothing")
	}
}

func TestDragFrom_StaysWithCapturedChild(t *testing.T) {
	tester, _, boxes := pumpChart(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	tester.Pump()

	// Start on the right half and drag across to the left.
	if err := tester.DragFrom(graphics.Offset{X: 190, Y: 100}, graphics.Offset{X: -180}, 3); err != nil {
		t.Fatal(err)
	}
	got := phases(boxes[0].Events)
	want := []gestures.PointerPhase{
		gestures.PointerPhaseDown, gestures.PointerPhaseMove, gestures.PointerPhaseMove,
		gestures.PointerPhaseMove, gestures.PointerPhaseUp,
	}
	if len(got) != len(want) {
		t.Fatalf("phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phase %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(boxes[1].Events) != 0 {
		t.Error("the left box should not see a captured drag")
	}
}

func TestSendPointerCancel(t *testing.T) {
	tester, _, boxes := pumpChart(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	tester.Pump()

	tester.SendPointerDown(graphics.Offset{X: 190, Y: 100}, 7)
	tester.SendPointerCancel(7)

	got := phases(boxes[0].Events)
	if len(got) != 2 || got[1] != gestures.PointerPhaseCancel {
		t.Errorf("phases = %v, want [down cancel]", got)
	}
}

func TestSendPointer_NoRoot(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	if _, err := tester.TapAt(graphics.Offset{}); err == nil {
		t.Error("expected an error without a root")
	}
}

func TestRenderCenter(t *testing.T) {
	box := widgets.NewColoredBox(graphics.ColorBlack, 40, 20)
	label := widgets.NewLabel("x", graphics.ColorWhite)
	box.SetChild(label)
	box.Layout(layout.Tight(graphics.Size{Width: 40, Height: 20}), false)

	center := RenderCenter(label)
	want := graphics.Offset{X: 20, Y: 10}
	if center != want {
		t.Errorf("center = %v, want %v", center, want)
	}
}
