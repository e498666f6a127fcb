package server

import (
	"net/http"

	"go.uber.org/zap"

	internalserver "github.com/Chamz87/IBM-Capstone-SCE/internal/server"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/dashboard"
)

// Server is the launchdash HTTP server.
type Server = internalserver.Server

// Options configures optional server features.
type Options = internalserver.Options

// Hub tracks WebSocket callback sessions.
type Hub = internalserver.Hub

// Info is the /api/info payload.
type Info = internalserver.Info

// DashboardHTML is the embedded single-page dashboard.
const DashboardHTML = internalserver.DashboardHTML

// New creates a new launchdash server. A nil logger discards logs.
func New(addr string, ctrl *dashboard.Controller, clk clock.Clock, logger *zap.Logger, opts ...Options) *Server {
	return internalserver.New(addr, ctrl, clk, logger, opts...)
}

// NewHub creates a new session hub.
func NewHub(logger *zap.Logger) *Hub {
	return internalserver.NewHub(logger)
}

// AccessLog wraps an http.Handler with request ids and access logging.
func AccessLog(next http.Handler, logger *zap.Logger) http.Handler {
	return internalserver.AccessLog(next, logger)
}
