package engine

import (
	"testing"

	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// decorativeEntry has no interactive interfaces.
type decorativeEntry struct {
	layout.RenderBoxBase
}

func (d *decorativeEntry) PerformLayout()                 {}
func (d *decorativeEntry) Paint(ctx *layout.PaintContext) {}

// pointerHandlerEntry implements PointerHandler.
type pointerHandlerEntry struct {
	layout.RenderBoxBase
	name string
}

func (p *pointerHandlerEntry) PerformLayout()                                 {}
func (p *pointerHandlerEntry) Paint(ctx *layout.PaintContext)                 {}
func (p *pointerHandlerEntry) HandlePointer(event gestures.PointerEvent) bool { return true }

// hitTestRoot is a mock root render object that returns a pre-configured hit test result.
type hitTestRoot struct {
	layout.RenderBoxBase
	entries []layout.RenderObject
}

func (r *hitTestRoot) PerformLayout()                 {}
func (r *hitTestRoot) Paint(ctx *layout.PaintContext) {}
func (r *hitTestRoot) HitTest(pos graphics.Offset, result *layout.HitTestResult) bool {
	for _, e := range r.entries {
		result.Add(e)
	}
	return len(r.entries) > 0
}

func TestHitTest(t *testing.T) {
	a := &pointerHandlerEntry{name: "a"}
	b := &pointerHandlerEntry{name: "b"}

	tests := []struct {
		name    string
		entries []layout.RenderObject
		want    []string
	}{
		{
			name:    "single handler",
			entries: []layout.RenderObject{a},
			want:    []string{"a"},
		},
		{
			name:    "order preserved",
			entries: []layout.RenderObject{b, a},
			want:    []string{"b", "a"},
		},
		{
			name:    "decorative entries skipped",
			entries: []layout.RenderObject{&decorativeEntry{}, a, &decorativeEntry{}},
			want:    []string{"a"},
		},
		{
			name:    "duplicates collapsed",
			entries: []layout.RenderObject{a, b, a},
			want:    []string{"a", "b"},
		},
		{
			name:    "decorative entries only",
			entries: []layout.RenderObject{&decorativeEntry{}},
			want:    nil,
		},
		{
			name:    "no entries",
			entries: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &hitTestRoot{entries: tt.entries}
			root.SetSelf(root)

			got := HitTest(root, graphics.Offset{X: 50, Y: 50})
			if len(got) != len(tt.want) {
				t.Fatalf("HitTest() returned %d handlers, want %d", len(got), len(tt.want))
			}
			for i, h := range got {
				if name := h.(*pointerHandlerEntry).name; name != tt.want[i] {
					t.Errorf("handler %d = %q, want %q", i, name, tt.want[i])
				}
			}
		})
	}
}

func TestHitTest_NilRoot(t *testing.T) {
	if got := HitTest(nil, graphics.Offset{}); got != nil {
		t.Errorf("HitTest(nil) = %v, want nil", got)
	}
}
