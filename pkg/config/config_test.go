package config

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/circlelayout/pkg/circlelayout"
	"github.com/go-drift/circlelayout/pkg/errors"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

const chartYAML = `
sliceDivider: "#FF000000"
dividerWidth: 2
innerCircle: "#FFFFFF"
angleOffset: 270
innerRadius: 40
layoutMode: pie
slices:
  - label: rent
    percent: 50
    color: "#E53935"
    highlight: true
  - label: food
    percent: 30
    color: "#43A047"
  - percent: 20
    color: "#1E88E5"
`

const chartTOML = `
sliceDivider = "#FF000000"
dividerWidth = 2
innerCircle = "#FFFFFF"
angleOffset = 270.0
innerRadius = 40.0
layoutMode = 2

[[slices]]
label = "rent"
percent = 50.0
color = "#E53935"
highlight = true

[[slices]]
label = "food"
percent = 30.0
color = "#43A047"

[[slices]]
percent = 20.0
color = "#1E88E5"
`

func TestParse_YAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := Parse([]byte(chartYAML), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(chartTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, LayoutMode(circlelayout.ModePie), fromYAML.LayoutMode)
	assert.Equal(t, 360.0, fromYAML.AngleRange, "unset fields keep defaults")
	assert.Equal(t, 7.5, fromYAML.Padding)
	assert.Equal(t, 400, fromYAML.Width)
	require.Len(t, fromYAML.Slices, 3)
	assert.Equal(t, Slice{Label: "rent", Percent: 50, Color: "#E53935", Highlight: true}, fromYAML.Slices[0])
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			want, err := Parse([]byte(chartYAML), FormatYAML)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, want.Encode(&buf, format))
			got, err := Parse(buf.Bytes(), format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncode_ModeByName(t *testing.T) {
	attrs := Default()
	attrs.LayoutMode = LayoutMode(circlelayout.ModePie)
	var buf bytes.Buffer
	require.NoError(t, attrs.Encode(&buf, FormatYAML))
	assert.Contains(t, buf.String(), "layoutMode: pie")
}

func TestLayoutMode_Parse(t *testing.T) {
	tests := []struct {
		src  string
		want circlelayout.LayoutMode
	}{
		{"layoutMode: normal", circlelayout.ModeNormal},
		{"layoutMode: PIE", circlelayout.ModePie},
		{"layoutMode: 1", circlelayout.ModeNormal},
		{"layoutMode: 2", circlelayout.ModePie},
	}
	for _, tt := range tests {
		attrs, err := Parse([]byte(tt.src), FormatYAML)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.want, attrs.LayoutMode.Mode(), tt.src)
	}

	attrs, err := Parse([]byte(`layoutMode = "normal"`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, circlelayout.ModeNormal, attrs.LayoutMode.Mode())

	for _, bad := range []string{"layoutMode: 3", "layoutMode: donut", "layoutMode: [1]"} {
		_, err := Parse([]byte(bad), FormatYAML)
		assert.Error(t, err, bad)
	}
	_, err = Parse([]byte(`layoutMode = 0`), FormatTOML)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero width", "width: 0"},
		{"negative radius", "innerRadius: -1"},
		{"negative divider", "dividerWidth: -2"},
		{"zero increment", "sweepIncrement: 0"},
		{"zero angle range", "angleRange: 0"},
		{"negative angle range", "angleRange: -90"},
		{"bad divider color", "sliceDivider: nope"},
		{"bad background", "background: '#12'"},
		{"negative percent", "slices: [{percent: -1, color: '#000000'}]"},
		{"bad slice color", "slices: [{percent: 1, color: red}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, errors.KindConfig, errors.KindOf(err))
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte("slices: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))

	_, err = Parse([]byte("angleOffset = "), FormatTOML)
	assert.Equal(t, errors.KindConfig, errors.KindOf(err))
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("chart.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	f, err = FormatFromPath("dir/chart.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)
	_, err = FormatFromPath("chart.json")
	assert.Error(t, err)
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(src, []byte(chartYAML), 0o644))

	attrs, err := Load(src)
	require.NoError(t, err)

	dst := filepath.Join(dir, "chart.toml")
	require.NoError(t, attrs.Save(dst))
	again, err := Load(dst)
	require.NoError(t, err)
	assert.Equal(t, attrs, again)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions(t *testing.T) {
	attrs, err := Parse([]byte(chartYAML+"background: '#101010'\nanimationOnly: true\n"), FormatYAML)
	require.NoError(t, err)

	opts, err := attrs.Options(".")
	require.NoError(t, err)
	assert.Equal(t, circlelayout.ModePie, opts.Mode)
	assert.Equal(t, 270.0, opts.AngleOffset)
	assert.Equal(t, 40.0, opts.InnerRadius)
	assert.Equal(t, 2.0, opts.DividerWidth)
	assert.Equal(t, graphics.ColorBlack, opts.DividerColor)
	assert.Equal(t, circlelayout.ColorDrawable{Color: graphics.ColorWhite}, opts.InnerCircle)
	assert.Equal(t, circlelayout.ColorDrawable{Color: graphics.RGB(0x10, 0x10, 0x10)}, opts.Background)
	assert.True(t, opts.AnimationOnly)
}

func TestOptions_InnerCircleImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	require.NoError(t, imgio.Save(filepath.Join(dir, "hole.png"), img, imgio.PNGEncoder()))

	attrs := Default()
	attrs.InnerCircle = "hole.png"
	opts, err := attrs.Options(dir)
	require.NoError(t, err)
	d, ok := opts.InnerCircle.(circlelayout.ImageDrawable)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 2, 2), d.Image.Bounds())

	attrs.InnerCircle = "missing.png"
	_, err = attrs.Options(dir)
	require.Error(t, err)
	assert.Equal(t, errors.KindResource, errors.KindOf(err))
}

func TestBuild(t *testing.T) {
	attrs, err := Parse([]byte(chartYAML), FormatYAML)
	require.NoError(t, err)

	c, ids, err := attrs.Build(".", log.New(bytes.NewBuffer(nil)))
	require.NoError(t, err)
	require.Len(t, ids, 3)

	c.Layout(layout.Tight(attrs.Size()), false)
	sectors := c.Sectors()
	require.Len(t, sectors, 3)
	assert.InDelta(t, 270, sectors[0].Start, 1e-9)
	assert.InDelta(t, 450, sectors[0].End, 1e-9)

	model, ok := c.Model(ids[0])
	require.True(t, ok)
	assert.True(t, model.NeedsHighlight())

	var labels int
	c.VisitChildren(func(o layout.RenderObject) {
		if v, ok := o.(layout.ChildVisitor); ok {
			v.VisitChildren(func(layout.RenderObject) { labels++ })
		}
	})
	assert.Equal(t, 2, labels, "the unlabeled slice has no child")
}

func TestLabelColor(t *testing.T) {
	assert.Equal(t, graphics.ColorBlack, labelColor(graphics.ColorWhite))
	assert.Equal(t, graphics.ColorWhite, labelColor(graphics.RGB(0x1E, 0x88, 0xE5)))
}
