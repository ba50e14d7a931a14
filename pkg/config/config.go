// Package config loads circle layout attributes from YAML or TOML files
// and turns them into a ready-to-render CircleLayout.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
	"github.com/go-drift/circlelayout/pkg/errors"
	"github.com/go-drift/circlelayout/pkg/graphics"
)

// Format identifies the encoding of an attributes file.
type Format int

const (
	// FormatYAML is a .yaml or .yml file.
	FormatYAML Format = iota
	// FormatTOML is a .toml file.
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, errors.Errorf("config.FormatFromPath", errors.KindConfig, "unsupported config extension %q", filepath.Ext(path))
	}
}

// Slice is one child of the rendered circle.
type Slice struct {
	Label     string  `yaml:"label,omitempty" toml:"label,omitempty"`
	Percent   float64 `yaml:"percent" toml:"percent"`
	Color     string  `yaml:"color" toml:"color"`
	Highlight bool    `yaml:"highlight,omitempty" toml:"highlight,omitempty"`
}

// Attributes is the on-disk form of a circle layout.
type Attributes struct {
	SliceDivider   string     `yaml:"sliceDivider" toml:"sliceDivider"`
	DividerWidth   float64    `yaml:"dividerWidth" toml:"dividerWidth"`
	InnerCircle    string     `yaml:"innerCircle,omitempty" toml:"innerCircle,omitempty"`
	AngleOffset    float64    `yaml:"angleOffset" toml:"angleOffset"`
	AngleRange     float64    `yaml:"angleRange" toml:"angleRange"`
	InnerRadius    float64    `yaml:"innerRadius" toml:"innerRadius"`
	Padding        float64    `yaml:"padding" toml:"padding"`
	LayoutMode     LayoutMode `yaml:"layoutMode" toml:"layoutMode"`
	AnimationOnly  bool       `yaml:"animationOnly,omitempty" toml:"animationOnly,omitempty"`
	SweepIncrement float64    `yaml:"sweepIncrement" toml:"sweepIncrement"`
	Background     string     `yaml:"background,omitempty" toml:"background,omitempty"`
	Width          int        `yaml:"width" toml:"width"`
	Height         int        `yaml:"height" toml:"height"`
	Slices         []Slice    `yaml:"slices" toml:"slices"`
}

// Default returns attributes matching circlelayout.DefaultOptions on a
// 400x400 surface with no slices.
func Default() *Attributes {
	opts := circlelayout.DefaultOptions()
	return &Attributes{
		SliceDivider:   opts.DividerColor.String(),
		DividerWidth:   opts.DividerWidth,
		AngleOffset:    opts.AngleOffset,
		AngleRange:     opts.AngleRange,
		InnerRadius:    opts.InnerRadius,
		Padding:        opts.Padding,
		LayoutMode:     LayoutMode(opts.Mode),
		SweepIncrement: opts.SweepIncrement,
		Width:          400,
		Height:         400,
	}
}

// Load reads and validates the attributes file at path.
func Load(path string) (*Attributes, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	attrs, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return attrs, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (*Attributes, error) {
	const op = "config.Parse"
	attrs := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, attrs); err != nil {
			return nil, errors.New(op, errors.KindConfig, err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), attrs); err != nil {
			return nil, errors.New(op, errors.KindConfig, err)
		}
	default:
		return nil, errors.Errorf(op, errors.KindConfig, "unknown format %v", format)
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	return attrs, nil
}

// Encode writes the attributes to w.
func (a *Attributes) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(a)
	default:
		return fmt.Errorf("encode: unknown format %v", format)
	}
}

// Save writes the attributes to path in the format its extension names.
func (a *Attributes) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := a.Encode(&buf, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate rejects attributes no layout can be built from.
func (a *Attributes) Validate() error {
	const op = "config.Validate"
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return errors.Errorf(op, errors.KindConfig, "size %dx%d must be positive", a.Width, a.Height)
	case a.InnerRadius < 0:
		return errors.Errorf(op, errors.KindConfig, "innerRadius %v is negative", a.InnerRadius)
	case a.DividerWidth < 0:
		return errors.Errorf(op, errors.KindConfig, "dividerWidth %v is negative", a.DividerWidth)
	case a.AngleRange <= 0:
		return errors.Errorf(op, errors.KindConfig, "angleRange %v must be positive", a.AngleRange)
	case a.SweepIncrement <= 0:
		return errors.Errorf(op, errors.KindConfig, "sweepIncrement %v must be positive", a.SweepIncrement)
	}
	if _, err := graphics.ParseColor(a.SliceDivider); err != nil {
		return errors.New(op, errors.KindConfig, fmt.Errorf("sliceDivider: %w", err))
	}
	if a.Background != "" {
		if _, err := graphics.ParseColor(a.Background); err != nil {
			return errors.New(op, errors.KindConfig, fmt.Errorf("background: %w", err))
		}
	}
	for i, s := range a.Slices {
		if s.Percent < 0 {
			return errors.Errorf(op, errors.KindConfig, "slice %d: percent %v is negative", i, s.Percent)
		}
		if _, err := graphics.ParseColor(s.Color); err != nil {
			return errors.New(op, errors.KindConfig, fmt.Errorf("slice %d: %w", i, err))
		}
	}
	return nil
}

// Size returns the render surface size.
func (a *Attributes) Size() graphics.Size {
	return graphics.Size{Width: float64(a.Width), Height: float64(a.Height)}
}
