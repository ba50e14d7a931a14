package testing

import (
	"testing"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
	"github.com/go-drift/circlelayout/pkg/layout"
	"github.com/go-drift/circlelayout/pkg/widgets"
)

func pumpChart(t *testing.T) (*RenderTester, *circlelayout.CircleLayout, []*widgets.ColoredBox) {
	t.Helper()
	tester := NewRenderTesterWithT(t)
	chart, boxes := newChart()
	if err := tester.PumpRoot(chart); err != nil {
		t.Fatal(err)
	}
	return tester, chart, boxes
}

func TestByType(t *testing.T) {
	tester, chart, boxes := pumpChart(t)

	result := tester.Find(ByType[*widgets.ColoredBox]())
	if result.Count() != 2 {
		t.Fatalf("expected 2 boxes, got %d", result.Count())
	}
	if result.At(1) != boxes[1] {
		t.Error("expected boxes in child order")
	}
	if tester.Find(ByType[*circlelayout.CircleLayout]()).First() != chart {
		t.Error("expected to find the root")
	}
}

func TestByText(t *testing.T) {
	tester, _, _ := pumpChart(t)

	if !tester.Find(ByText("left")).Exists() {
		t.Error("expected to find label 'left'")
	}
	if tester.Find(ByText("lef")).Exists() {
		t.Error("ByText should not match partial text")
	}
	if tester.Find(ByTextContaining("igh")).Count() != 1 {
		t.Error("expected one label containing 'igh'")
	}
}

func TestByPredicate(t *testing.T) {
	tester, _, _ := pumpChart(t)

	wide := tester.Find(ByPredicate(func(o layout.RenderObject) bool {
		return o.Size().Width >= DefaultTestWidth
	}))
	// The root and both Fill boxes span the surface.
	if wide.Count() != 3 {
		t.Errorf("expected 3 full-width objects, got %d", wide.Count())
	}
}

func TestDescendant(t *testing.T) {
	tester, _, _ := pumpChart(t)

	labels := tester.Find(Descendant(ByType[*widgets.ColoredBox](), ByType[*widgets.Label]()))
	if labels.Count() != 2 {
		t.Fatalf("expected 2 labels under boxes, got %d", labels.Count())
	}

	self := tester.Find(Descendant(ByType[*widgets.ColoredBox](), ByType[*widgets.ColoredBox]()))
	if self.Exists() {
		t.Error("Descendant should not match the ancestor itself")
	}
}

func TestFinderResult_Empty(t *testing.T) {
	tester := NewRenderTesterWithT(t)
	result := tester.Find(ByText("nothing"))
	if result.Exists() || result.FirstOrNil() != nil || len(result.All()) != 0 {
		t.Error("expected an empty result without a root")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected First to panic on an empty result")
		}
	}()
	result.First()
}
