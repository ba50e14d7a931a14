package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
)

// LayoutMode accepts "normal"/"pie" or the numeric values 1/2.
type LayoutMode circlelayout.LayoutMode

// Mode returns the circlelayout value.
func (m LayoutMode) Mode() circlelayout.LayoutMode {
	return circlelayout.LayoutMode(m)
}

// MarshalText encodes the mode by name.
func (m LayoutMode) MarshalText() ([]byte, error) {
	switch circlelayout.LayoutMode(m) {
	case circlelayout.ModeNormal, circlelayout.ModePie:
		return []byte(circlelayout.LayoutMode(m).String()), nil
	default:
		return nil, fmt.Errorf("invalid layout mode %d", int(m))
	}
}

// UnmarshalYAML accepts a name or an integer scalar.
func (m *LayoutMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: layoutMode must be a scalar", value.Line)
	}
	var n int
	if err := value.Decode(&n); err == nil {
		return m.set(n)
	}
	return m.parse(value.Value)
}

// UnmarshalTOML accepts a string or an integer value.
func (m *LayoutMode) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		return m.set(int(v))
	case string:
		return m.parse(v)
	default:
		return fmt.Errorf("layoutMode: unexpected %T", data)
	}
}

func (m *LayoutMode) parse(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		*m = LayoutMode(circlelayout.ModeNormal)
	case "pie":
		*m = LayoutMode(circlelayout.ModePie)
	default:
		return fmt.Errorf("unknown layoutMode %q", s)
	}
	return nil
}

func (m *LayoutMode) set(n int) error {
	switch circlelayout.LayoutMode(n) {
	case circlelayout.ModeNormal, circlelayout.ModePie:
		*m = LayoutMode(n)
		return nil
	default:
		return fmt.Errorf("unknown layoutMode %d", n)
	}
}
