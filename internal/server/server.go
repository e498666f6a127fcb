package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
)

// Options holds the optional collaborators of a Server.
type Options struct {
	// Hub tracks WebSocket sessions. A new hub is created when nil.
	Hub *Hub
	// Recorder, when set, captures every dispatched update.
	Recorder *recorder.Recorder
	// LoadedAt is reported by /api/info. Defaults to the server's creation time.
	LoadedAt time.Time
}

// Server is the launchdash HTTP server. It serves the dashboard page and
// answers its callbacks over HTTP and WebSocket.
type Server struct {
	httpServer *http.Server
	ctrl       *dashboard.Controller
	clock      clock.Clock
	logger     *zap.Logger
	hub        *Hub
	recorder   *recorder.Recorder
	loadedAt   time.Time
	mux        *http.ServeMux
}

// New creates a new launchdash server.
func New(addr string, ctrl *dashboard.Controller, clk clock.Clock, logger *zap.Logger, opts ...Options) *Server {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if o.Hub == nil {
		o.Hub = NewHub(logger)
	}
	if o.LoadedAt.IsZero() {
		o.LoadedAt = clk.Now()
	}

	s := &Server{
		ctrl:     ctrl,
		clock:    clk,
		logger:   logger,
		hub:      o.Hub,
		recorder: o.Recorder,
		loadedAt: o.LoadedAt,
		mux:      http.NewServeMux(),
	}
	s.routes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           AccessLog(s.mux, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /dashboard/{$}", s.handlePage)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/info", s.handleInfo)
	s.mux.HandleFunc("GET /api/layout", s.handleLayout)
	s.mux.HandleFunc("GET /api/figures/{id}", s.handleFigure)
	s.mux.HandleFunc("POST /api/update", s.handleUpdate)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler returns the server's root handler, access logging included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Hub returns the session hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, DashboardHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info describes the loaded dataset and the running service.
type Info struct {
	Service    string    `json:"service"`
	Status     string    `json:"status"`
	Records    int       `json:"records"`
	Sites      int       `json:"sites"`
	PayloadMin float64   `json:"payload_min"`
	PayloadMax float64   `json:"payload_max"`
	Sessions   int       `json:"sessions"`
	LoadedAt   time.Time `json:"loaded_at"`
	Time       time.Time `json:"time"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	ds := s.ctrl.Dataset()
	rng := s.ctrl.InitialRange()
	s.writeJSON(w, http.StatusOK, Info{
		Service:    "launchdash",
		Status:     "running",
		Records:    ds.Len(),
		Sites:      len(s.ctrl.Sites()) - 1,
		PayloadMin: rng.Low,
		PayloadMax: rng.High,
		Sessions:   s.hub.SessionCount(),
		LoadedAt:   s.loadedAt,
		Time:       s.clock.Now(),
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.ctrl.Layout())
}

// handleFigure renders a single output.
// Path: /api/figures/{id}?site=&low=&high=
func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	site := launch.AllSites
	if q.Has("site") {
		site = q.Get("site")
	}

	switch id := r.PathValue("id"); id {
	case dashboard.PieChartID:
		s.writeJSON(w, http.StatusOK, s.ctrl.Distribution(site))

	case dashboard.ScatterChartID:
		rng := s.ctrl.InitialRange()
		var err error
		if rng.Low, err = floatParam(q.Get("low"), rng.Low); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("low: %v", err))
			return
		}
		if rng.High, err = floatParam(q.Get("high"), rng.High); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("high: %v", err))
			return
		}
		s.writeJSON(w, http.StatusOK, s.ctrl.Correlation(site, rng))

	default:
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown figure %q", id))
	}
}

func floatParam(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dashboard.UpdateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid update request: %v", err))
		return
	}
	s.writeJSON(w, http.StatusOK, s.dispatch(RequestID(r.Context()), recorder.TransportHTTP, req))
}

// dispatch runs one update and records it when recording is enabled.
func (s *Server) dispatch(session, transport string, req dashboard.UpdateRequest) dashboard.UpdateResponse {
	if s.recorder != nil {
		in := recorder.FromRequest(s.clock.Now(), session, transport, req)
		if err := s.recorder.Record(in); err != nil {
			s.logger.Warn("record interaction", zap.String("session", session), zap.Error(err))
		}
	}
	resp := s.ctrl.Update(req)
	s.logger.Debug("update",
		zap.String("session", session),
		zap.String("transport", transport),
		zap.String("site", req.Inputs.Site),
		zap.Float64s("payload", req.Inputs.Payload[:]),
		zap.Strings("changed", req.Changed),
		zap.Int("outputs", len(resp.Outputs)),
	)
	return resp
}

// writeJSON encodes v before touching the response so an encoding failure
// still yields a 500 with a JSON error body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", zap.Int("status", status), zap.Error(err))
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error: response could not be encoded"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// Start begins listening. It blocks until the server is shut down.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.StartOnListener(ln)
}

// StartOnListener begins serving on the provided listener.
// Useful for tests that need to pick an ephemeral port.
func (s *Server) StartOnListener(ln net.Listener) error {
	s.logger.Info("launchdash server listening", zap.String("addr", ln.Addr().String()))
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown closes every WebSocket session and gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	return s.httpServer.Shutdown(ctx)
}
