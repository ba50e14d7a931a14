package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes through a charmbracelet logger.
type LogHandler struct {
	// Verbose adds stack traces to panic reports.
	Verbose bool

	logger *log.Logger
}

// NewLogHandler returns a handler writing to logger, or to a stderr logger
// prefixed "circlelayout" when logger is nil.
func NewLogHandler(logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "circlelayout"})
	}
	return &LogHandler{logger: logger}
}

// HandleError logs an Error at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	h.logger.Error(err.Err, "op", err.Op, "kind", err.Kind.String())
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if h.Verbose && err.StackTrace != "" {
		h.logger.Error("recovered panic", "op", err.Op, "value", err.Value, "stack", err.StackTrace)
		return
	}
	h.logger.Error("recovered panic", "op", err.Op, "value", err.Value)
}
