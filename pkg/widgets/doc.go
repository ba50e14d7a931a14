// Package widgets provides small render boxes that serve as circle layout
// children: a colored box that can take pointer input and a text label.
package widgets
