package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
	"github.com/go-drift/circlelayout/pkg/config"
	"github.com/go-drift/circlelayout/pkg/engine"
)

// maxSettleFrames bounds pumping when no frame count is given. The default
// half-degree reveal of a full turn needs 720 frames.
const maxSettleFrames = 10000

// chart is a loaded chart file running in an engine.
type chart struct {
	path   string
	attrs  *config.Attributes
	layout *circlelayout.CircleLayout
	ids    []circlelayout.ChildID
	engine *engine.Engine
}

// loadChart reads path, builds its layout and runs the first frame.
func loadChart(path string, logger *log.Logger, trace bool) (*chart, error) {
	attrs, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c, ids, err := attrs.Build(filepath.Dir(path), logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e := engine.New(c, engine.Options{Size: attrs.Size(), Logger: logger, Trace: trace})
	if _, err := e.StepFrame(); err != nil {
		return nil, err
	}
	logger.Debug("chart loaded", "path", path, "slices", len(ids), "mode", c.LayoutMode())
	return &chart{path: path, attrs: attrs, layout: c, ids: ids, engine: e}, nil
}

// pump steps up to frames more frames, or until idle when frames <= 0.
func (c *chart) pump(frames int) (int, error) {
	if frames <= 0 {
		frames = maxSettleFrames
	}
	return c.engine.PumpFrames(frames)
}

// slice returns the index into attrs.Slices for id.
func (c *chart) slice(id circlelayout.ChildID) int {
	for i, cid := range c.ids {
		if cid == id {
			return i
		}
	}
	return -1
}

// label names slice i for output.
func (c *chart) label(i int) string {
	if l := c.attrs.Slices[i].Label; l != "" {
		return l
	}
	return fmt.Sprintf("#%d", i)
}
