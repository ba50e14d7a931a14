package engine

import (
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// HitTest returns the PointerHandlers under position, topmost first.
// Entries that do not handle pointers are skipped, so purely decorative
// boxes never absorb a gesture.
func HitTest(root layout.RenderObject, position graphics.Offset) []layout.PointerHandler {
	if root == nil {
		return nil
	}
	result := &layout.HitTestResult{}
	if !root.HitTest(position, result) || len(result.Entries) == 0 {
		return nil
	}
	return collectPointerHandlers(result.Entries)
}

// collectPointerHandlers extracts unique PointerHandler instances from
// hit test entries, preserving order.
func collectPointerHandlers(entries []layout.RenderObject) []layout.PointerHandler {
	handlers := make([]layout.PointerHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	for _, entry := range entries {
		h, ok := entry.(layout.PointerHandler)
		if !ok {
			continue
		}
		if _, exists := seen[h]; exists {
			continue
		}
		seen[h] = struct{}{}
		handlers = append(handlers, h)
	}
	return handlers
}
