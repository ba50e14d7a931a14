package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/charmbracelet/log"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
	"github.com/go-drift/circlelayout/pkg/errors"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/widgets"
)

// Options converts the attributes into circlelayout options. Relative
// inner-circle image paths resolve against baseDir.
func (a *Attributes) Options(baseDir string) (circlelayout.Options, error) {
	const op = "config.Options"
	opts := circlelayout.DefaultOptions()
	opts.AngleOffset = a.AngleOffset
	opts.AngleRange = a.AngleRange
	opts.InnerRadius = a.InnerRadius
	opts.DividerWidth = a.DividerWidth
	opts.Padding = a.Padding
	opts.Mode = a.LayoutMode.Mode()
	opts.SweepIncrement = a.SweepIncrement
	opts.AnimationOnly = a.AnimationOnly

	divider, err := graphics.ParseColor(a.SliceDivider)
	if err != nil {
		return opts, errors.New(op, errors.KindConfig, err)
	}
	opts.DividerColor = divider

	if a.InnerCircle != "" {
		d, err := innerCircleDrawable(a.InnerCircle, baseDir)
		if err != nil {
			return opts, errors.New(op, errors.KindResource, err)
		}
		opts.InnerCircle = d
	}
	if a.Background != "" {
		bg, err := graphics.ParseColor(a.Background)
		if err != nil {
			return opts, errors.New(op, errors.KindConfig, err)
		}
		opts.Background = circlelayout.ColorDrawable{Color: bg}
	}
	return opts, nil
}

// innerCircleDrawable reads value as a "#" color or else as an image path.
func innerCircleDrawable(value, baseDir string) (circlelayout.Drawable, error) {
	if strings.HasPrefix(value, "#") {
		c, err := graphics.ParseColor(value)
		if err != nil {
			return nil, err
		}
		return circlelayout.ColorDrawable{Color: c}, nil
	}
	path := value
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("inner circle image: %w", err)
	}
	return circlelayout.ImageDrawable{Image: img}, nil
}

// Build creates a CircleLayout with one filled ColoredBox per slice, each
// carrying a centered label when the slice has one.
func (a *Attributes) Build(baseDir string, logger *log.Logger) (*circlelayout.CircleLayout, []circlelayout.ChildID, error) {
	opts, err := a.Options(baseDir)
	if err != nil {
		return nil, nil, err
	}
	opts.Logger = logger
	c := circlelayout.New(opts)

	params := circlelayout.DefaultLayoutParams()
	params.Width = circlelayout.Fill()
	params.Height = circlelayout.Fill()

	ids := make([]circlelayout.ChildID, 0, len(a.Slices))
	for _, s := range a.Slices {
		color, err := graphics.ParseColor(s.Color)
		if err != nil {
			return nil, nil, errors.New("config.Build", errors.KindConfig, err)
		}
		box := widgets.NewColoredBox(color, 0, 0)
		if s.Label != "" {
			box.SetChild(widgets.NewLabel(s.Label, labelColor(color)))
		}
		ids = append(ids, c.AddChild(box, params, circlelayout.StaticModel{Percent: s.Percent, Highlight: s.Highlight}))
	}
	return c, ids, nil
}

// labelColor picks black or white text, whichever reads better on bg.
func labelColor(bg graphics.Color) graphics.Color {
	n := bg.NRGBA()
	luma := 0.299*float64(n.R) + 0.587*float64(n.G) + 0.114*float64(n.B)
	if luma > 140 {
		return graphics.ColorBlack
	}
	return graphics.ColorWhite
}
