package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/go-drift/circlelayout/pkg/graphics"
	"github.com/go-drift/circlelayout/pkg/layout"
)

// maxTreeDepth limits recursion depth to prevent stack overflow from malformed trees.
const maxTreeDepth = 500

// DebugServer serves read-only views of an Engine over HTTP.
type DebugServer struct {
	engine *Engine

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// RenderTreeNode represents a node in the serialized render tree.
// Uses SafeFloat for dimensions that may contain Inf/NaN from layout issues.
type RenderTreeNode struct {
	Type        string           `json:"type"`
	Size        SafeSize         `json:"size"`
	Constraints *SafeConstraints `json:"constraints,omitempty"`
	Offset      SafeOffset       `json:"offset"`
	Depth       int              `json:"depth"`
	NeedsLayout bool             `json:"needsLayout"`
	NeedsPaint  bool             `json:"needsPaint"`
	Children    []RenderTreeNode `json:"children,omitempty"`
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeSize is a JSON-safe version of graphics.Size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeOffset is a JSON-safe version of graphics.Offset.
type SafeOffset struct {
	X SafeFloat `json:"x"`
	Y SafeFloat `json:"y"`
}

// SafeConstraints is a JSON-safe version of layout.Constraints.
type SafeConstraints struct {
	MinWidth  SafeFloat `json:"minWidth"`
	MaxWidth  SafeFloat `json:"maxWidth"`
	MinHeight SafeFloat `json:"minHeight"`
	MaxHeight SafeFloat `json:"maxHeight"`
}

// NewDebugServer returns a server for e. It does not listen until Start.
func NewDebugServer(e *Engine) *DebugServer {
	return &DebugServer{engine: e}
}

// Handler returns the HTTP handler with all debug endpoints.
func (d *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", d.handleHealth)
	mux.HandleFunc("/render-tree", d.handleRenderTree)
	mux.HandleFunc("/frames", d.handleFrameTimeline)
	mux.HandleFunc("/frame.png", d.handleFramePNG)
	mux.HandleFunc("/hit", d.handleHit)
	return mux
}

// Start listens on addr and serves in the background. It returns the bound
// port, which is useful when addr asks for an ephemeral one.
func (d *DebugServer) Start(addr string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.server != nil {
		return d.listener.Addr().(*net.TCPAddr).Port, nil
	}

	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}

	server := &http.Server{Handler: d.Handler(), ReadHeaderTimeout: 5 * time.Second}
	d.server = server
	d.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			d.mu.Lock()
			d.server = nil
			d.listener = nil
			d.mu.Unlock()
			d.engine.logger.Error("debug server stopped", "err", err)
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Stop gracefully shuts the server down.
func (d *DebugServer) Stop(ctx context.Context) error {
	d.mu.Lock()
	server := d.server
	d.server = nil
	d.listener = nil
	d.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (d *DebugServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleRenderTree returns the render tree as JSON.
func (d *DebugServer) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Recover from panics during serialization
	defer func() {
		if rec := recover(); rec != nil {
			http.Error(w, fmt.Sprintf("panic: %v", rec), http.StatusInternalServerError)
		}
	}()

	d.engine.frameLock.Lock()
	root := d.engine.root
	if root == nil {
		d.engine.frameLock.Unlock()
		http.Error(w, "no render tree", http.StatusServiceUnavailable)
		return
	}
	tree := serializeRenderTree(root, 0)
	d.engine.frameLock.Unlock()

	writeJSON(w, tree)
}

// handleFrameTimeline returns recent frame timing samples as JSON.
func (d *DebugServer) handleFrameTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	trace := d.engine.Trace()
	if trace == nil {
		http.Error(w, "frame tracing disabled", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, trace.Snapshot())
}

// handleFramePNG encodes the last painted surface.
func (d *DebugServer) handleFramePNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	d.engine.frameLock.Lock()
	defer d.engine.frameLock.Unlock()
	if d.engine.surface == nil {
		http.Error(w, "no surface", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := imgio.PNGEncoder()(w, d.engine.surface); err != nil {
		d.engine.logger.Error("encode frame", "err", err)
	}
}

// handleHit reports the pointer handlers under ?x=&y=.
func (d *DebugServer) handleHit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}

	d.engine.frameLock.Lock()
	handlers := HitTest(d.engine.root, graphics.Offset{X: x, Y: y})
	d.engine.frameLock.Unlock()

	types := make([]string, 0, len(handlers))
	for _, h := range handlers {
		types = append(types, reflect.TypeOf(h).String())
	}
	writeJSON(w, map[string]any{"x": x, "y": y, "handlers": types})
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to buffer first so we can catch errors
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// serializeRenderTree recursively converts a render object tree to JSON-serializable form.
// The depth parameter limits recursion to prevent stack overflow.
func serializeRenderTree(obj layout.RenderObject, depth int) RenderTreeNode {
	size := obj.Size()
	node := RenderTreeNode{
		Type: reflect.TypeOf(obj).String(),
		Size: SafeSize{
			Width:  SafeFloat(size.Width),
			Height: SafeFloat(size.Height),
		},
		NeedsLayout: getNeedsLayout(obj),
		NeedsPaint:  getNeedsPaint(obj),
	}

	if getter, ok := obj.(interface{ Constraints() layout.Constraints }); ok {
		c := getter.Constraints()
		node.Constraints = &SafeConstraints{
			MinWidth:  SafeFloat(c.MinWidth),
			MaxWidth:  SafeFloat(c.MaxWidth),
			MinHeight: SafeFloat(c.MinHeight),
			MaxHeight: SafeFloat(c.MaxHeight),
		}
	}
	if getter, ok := obj.(interface{ Depth() int }); ok {
		node.Depth = getter.Depth()
	}
	if pd, ok := obj.ParentData().(*layout.BoxParentData); ok {
		node.Offset = SafeOffset{
			X: SafeFloat(pd.Offset.X),
			Y: SafeFloat(pd.Offset.Y),
		}
	}

	if depth < maxTreeDepth {
		if cv, ok := obj.(layout.ChildVisitor); ok {
			cv.VisitChildren(func(child layout.RenderObject) {
				node.Children = append(node.Children, serializeRenderTree(child, depth+1))
			})
		}
	}
	return node
}

func getNeedsLayout(obj layout.RenderObject) bool {
	if getter, ok := obj.(interface{ NeedsLayout() bool }); ok {
		return getter.NeedsLayout()
	}
	return false
}

func getNeedsPaint(obj layout.RenderObject) bool {
	if getter, ok := obj.(interface{ NeedsPaint() bool }); ok {
		return getter.NeedsPaint()
	}
	return false
}
