package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/circlelayout/pkg/engine"
)

func newServeCmd() *cobra.Command {
	var (
		addr string
		fps  int
	)

	cmd := &cobra.Command{
		Use:   "serve <chart>",
		Short: "Run a chart behind the HTTP debug server",
		Long: `Serve keeps the chart's engine running at --fps and exposes /health,
/render-tree, /frames, /frame.png and /hit?x=&y= until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			ch, err := loadChart(args[0], logger, true)
			if err != nil {
				return err
			}
			server := engine.NewDebugServer(ch.engine)
			port, err := server.Start(addr)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "serving %s on port %d", args[0], port)

			runFrames(ctx, ch.engine, time.Second/time.Duration(fps), func(err error) {
				logger.Error("frame failed", "err", err)
			})

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return server.Stop(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:0", "listen address")
	cmd.Flags().IntVar(&fps, "fps", 60, "frames per second")
	return cmd
}

// runFrames steps e whenever it needs a frame, once per interval, until ctx
// is done.
func runFrames(ctx context.Context, e *engine.Engine, interval time.Duration, onError func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.NeedsFrame() {
				continue
			}
			if _, err := e.StepFrame(); err != nil {
				onError(err)
			}
		}
	}
}
