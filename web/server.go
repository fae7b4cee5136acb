// Package web provides a small monitor endpoint for the pulse cam.
package web

import (
	"bytes"
	"image/jpeg"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/ui/model"
)

// statusResponse is the JSON shape of GET /api/status.
type statusResponse struct {
	Status         string  `json:"status"`
	BPM            float64 `json:"bpm"`
	Brightness     float64 `json:"brightness"`
	Beats          uint64  `json:"beats"`
	Frames         uint64  `json:"frames"`
	DecodeFailures uint64  `json:"decode_failures"`
	AvgDecodeUs    float64 `json:"avg_decode_us"`
	LastFrameAgeMs int64   `json:"last_frame_age_ms"`
	LastError      string  `json:"last_error,omitempty"`
}

// CaptureSource narrows what the server reads from the capture layer.
type CaptureSource interface {
	Status() capture.Status
	Stats() capture.Stats
	LastError() error
}

// Server exposes the live readings over HTTP for phones or dashboards on
// the local network.
type Server struct {
	app    *fiber.App
	addr   string
	logger *slog.Logger

	source   CaptureSource
	pulse    *model.PulseModel
	capModel *model.CaptureModel
}

// NewServer wires the routes. Call Start to begin listening.
func NewServer(addr string, logger *slog.Logger, source CaptureSource, pulse *model.PulseModel, capModel *model.CaptureModel) *Server {
	s := &Server{
		addr:     addr,
		logger:   logger,
		source:   source,
		pulse:    pulse,
		capModel: capModel,
	}
	app := fiber.New(fiber.Config{
		AppName:               "Pulse Cam Monitor",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/frame.jpg", s.handleFrame)

	s.app = app
	return s
}

// StartAsync starts listening in a goroutine. Listen errors are logged, not
// fatal: the desktop app keeps working without the monitor.
func (s *Server) StartAsync() {
	go func() {
		s.logger.Info("monitor endpoint listening", "addr", s.addr)
		if err := s.app.Listen(s.addr); err != nil {
			s.logger.Error("monitor endpoint stopped", "error", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	if s == nil || s.app == nil {
		return nil
	}
	return s.app.Shutdown()
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	stats := s.source.Stats()
	resp := statusResponse{
		Status:         s.source.Status().String(),
		BPM:            s.pulse.BPM(),
		Brightness:     s.pulse.Brightness(),
		Beats:          s.pulse.Beats(),
		Frames:         stats.Frames,
		DecodeFailures: stats.DecodeFailures,
		AvgDecodeUs:    stats.AvgDecodeMicros,
		LastFrameAgeMs: stats.LastFrameAge.Milliseconds(),
	}
	if err := s.source.LastError(); err != nil {
		resp.LastError = err.Error()
	}
	return c.JSON(resp)
}

func (s *Server) handleFrame(c *fiber.Ctx) error {
	frame := s.capModel.Frame()
	if frame == nil {
		return fiber.NewError(fiber.StatusNotFound, "no frame captured yet")
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: 80}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "frame encode failed")
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(buf.Bytes())
}

// shutdownTimeout bounds how long Close waits for in-flight requests.
const shutdownTimeout = 2 * time.Second

// Close shuts the server down with a deadline.
func (s *Server) Close() error {
	if s == nil || s.app == nil {
		return nil
	}
	return s.app.ShutdownWithTimeout(shutdownTimeout)
}
