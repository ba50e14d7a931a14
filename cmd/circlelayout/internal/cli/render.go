package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-drift/circlelayout/cmd/circlelayout/internal/project"
)

type renderOptions struct {
	out    string
	scale  float64
	frames int
	watch  bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <chart.yaml|chart.toml>",
		Short: "Render a chart file to PNG",
		Long: `Render lays out the chart, pumps frames until any sweep reveal has finished
and writes the surface as PNG. Use --frames to capture a reveal part way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			if err := runRender(args[0], opts, logger, out); err != nil {
				if !opts.watch {
					return err
				}
				logger.Error("render failed", "err", err)
			}
			if !opts.watch {
				return nil
			}
			return watchChart(ctx, args[0], logger, func() error {
				return runRender(args[0], opts, logger, out)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output PNG path (default <project>-<chart>.png next to the chart)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "scale factor applied to the rendered image")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "frames to pump after the first (0 pumps until idle)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render whenever the chart file changes")
	return cmd
}

func runRender(path string, opts renderOptions, logger *log.Logger, out io.Writer) error {
	if opts.scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", opts.scale)
	}
	prog := newProgress(logger)

	ch, err := loadChart(path, logger, false)
	if err != nil {
		return err
	}
	n, err := ch.pump(opts.frames)
	if err != nil {
		return err
	}
	logger.Debug("pumped frames", "frames", n, "revealing", ch.layout.Revealing())

	var img image.Image = ch.engine.Surface()
	if opts.scale != 1 {
		b := img.Bounds()
		w := max(1, int(math.Round(float64(b.Dx())*opts.scale)))
		h := max(1, int(math.Round(float64(b.Dy())*opts.scale)))
		img = transform.Resize(img, w, h, transform.Linear)
	}

	dst := opts.out
	if dst == "" {
		proj, err := project.Resolve(path)
		if err != nil {
			return err
		}
		dst = proj.OutputPath(path)
	}
	if err := imgio.Save(dst, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	prog.done("Rendered " + dst)
	printSuccess(out, "%s %s %s", path, iconArrow, dst)
	return nil
}

// watchChart calls rebuild whenever path is written or recreated, until
// ctx is done. The directory is watched because editors often replace
// files instead of writing them in place.
func watchChart(ctx context.Context, path string, logger *log.Logger, rebuild func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("Watching for changes", "file", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("chart changed", "op", event.Op.String())
			if err := rebuild(); err != nil {
				logger.Error("render failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
