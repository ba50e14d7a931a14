package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/circlelayout/pkg/layout"
)

// Finder locates render objects in the render tree.
type Finder interface {
	// Evaluate returns all matching objects under root (depth-first pre-order).
	Evaluate(root layout.RenderObject) []layout.RenderObject
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	objects []layout.RenderObject
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() layout.RenderObject {
	if len(r.objects) == 0 {
		panic(fmt.Sprintf("Finder found nothing: %s", r.description()))
	}
	return r.objects[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() layout.RenderObject {
	if len(r.objects) == 0 {
		return nil
	}
	return r.objects[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) layout.RenderObject {
	if index < 0 || index >= len(r.objects) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.objects), r.description()))
	}
	return r.objects[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []layout.RenderObject {
	return r.objects
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.objects)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.objects) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// typeFinder matches render objects of the specified dynamic type.
type typeFinder struct {
	objectType reflect.Type
}

func (f *typeFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	return collectMatches(root, func(o layout.RenderObject) bool {
		return reflect.TypeOf(o) == f.objectType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.objectType)
}

// ByType returns a finder that matches render objects of type T, usually a
// pointer type such as *widgets.ColoredBox.
func ByType[T layout.RenderObject]() Finder {
	return &typeFinder{objectType: reflect.TypeFor[T]()}
}

// texter is implemented by render objects that display a string.
type texter interface {
	Text() string
}

// textFinder matches objects whose Text equals or contains a string.
type textFinder struct {
	text    string
	partial bool
}

func (f *textFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	return collectMatches(root, func(o layout.RenderObject) bool {
		t, ok := o.(texter)
		if !ok {
			return false
		}
		if f.partial {
			return strings.Contains(t.Text(), f.text)
		}
		return t.Text() == f.text
	})
}

func (f *textFinder) Description() string {
	if f.partial {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches objects with a Text() method
// returning exactly text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches objects whose Text()
// contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, partial: true}
}

// predicateFinder matches objects satisfying a predicate.
type predicateFinder struct {
	fn   func(layout.RenderObject) bool
	desc string
}

func (f *predicateFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches objects satisfying fn.
func ByPredicate(fn func(layout.RenderObject) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds objects matching 'matching' below objects
// matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	var results []layout.RenderObject
	seen := make(map[layout.RenderObject]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		visitor, ok := ancestor.(layout.ChildVisitor)
		if !ok {
			continue
		}
		// Search each subtree, skipping the ancestor itself.
		visitor.VisitChildren(func(child layout.RenderObject) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches objects satisfying 'matching'
// that are descendants of objects matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// objects that satisfy the predicate.
func collectMatches(root layout.RenderObject, predicate func(layout.RenderObject) bool) []layout.RenderObject {
	var results []layout.RenderObject
	walkTree(root, func(o layout.RenderObject) {
		if predicate(o) {
			results = append(results, o)
		}
	})
	return results
}

// walkTree visits root and its descendants depth-first, pre-order.
func walkTree(root layout.RenderObject, visit func(layout.RenderObject)) {
	visit(root)
	if visitor, ok := root.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			walkTree(child, visit)
		})
	}
}
