package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/circlelayout/pkg/gestures"
	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/sector"
)

func newHitCmd() *cobra.Command {
	var tap bool

	cmd := &cobra.Command{
		Use:   "hit <chart> <x> <y>",
		Short: "Report the slice under a point",
		Long: `Hit resolves a surface point to the slice whose sector contains it. With
--tap it also sends a down/up pair through the engine and reports whether
the chart consumed it.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			logger := loggerFromContext(cmd.Context())
			ch, err := loadChart(args[0], logger, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			point := graphics.Offset{X: x, Y: y}
			radius, angle := sector.Polar(point, ch.layout.Size(), ch.layout.AngleRange())
			logger.Debug("polar", "radius", radius, "angle", angle)

			id, ok := ch.layout.ChildAt(point)
			if !ok {
				printWarning(out, "no slice at (%g, %g)", x, y)
			} else {
				i := ch.slice(id)
				s := ch.layout.Sectors()[i]
				printSuccess(out, "slice %d %s %s (%g%%, %s)", i, iconArrow, ch.label(i), ch.attrs.Slices[i].Percent, s)
			}

			if tap {
				down := gestures.PointerEvent{PointerID: 1, Position: point, Phase: gestures.PointerPhaseDown}
				handled := ch.engine.HandlePointer(down)
				ch.engine.HandlePointer(down.WithPhase(gestures.PointerPhaseUp))
				printKeyValue(out, "tap handled", handled)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tap, "tap", false, "send a tap through the engine")
	return cmd
}
