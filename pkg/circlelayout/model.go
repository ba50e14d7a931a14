package circlelayout

// ChildID identifies a child added to a CircleLayout.
type ChildID int

// Model supplies the data a child's sector is built from.
type Model interface {
	// Percentage is the child's share of the angle range, in [0,100].
	Percentage() float64
	// NeedsHighlight reports whether the sector outline is stroked.
	NeedsHighlight() bool
}

// StaticModel is a Model with fixed values.
type StaticModel struct {
	Percent   float64
	Highlight bool
}

// Percentage returns m.Percent.
func (m StaticModel) Percentage() float64 { return m.Percent }

// NeedsHighlight returns m.Highlight.
func (m StaticModel) NeedsHighlight() bool { return m.Highlight }
