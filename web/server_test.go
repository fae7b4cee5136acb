package web

import (
	"encoding/json"
	"image"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/ui/model"
)

type stubSource struct {
	status capture.Status
	stats  capture.Stats
	err    error
}

func (s *stubSource) Status() capture.Status { return s.status }
func (s *stubSource) Stats() capture.Stats   { return s.stats }
func (s *stubSource) LastError() error       { return s.err }

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHandleStatus(t *testing.T) {
	pulse := &model.PulseModel{}
	pulse.SetBPM(71.5)
	pulse.SetBrightness(188)
	src := &stubSource{
		status: capture.StatusRunning,
		stats:  capture.Stats{Frames: 42, LastFrameAge: 33 * time.Millisecond},
	}
	s := NewServer(":0", testLogger, src, pulse, &model.CaptureModel{})

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/status", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status code = %d", resp.StatusCode)
	}
	var got statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "running" || got.BPM != 71.5 || got.Frames != 42 {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got.LastError != "" {
		t.Errorf("last_error = %q, want empty", got.LastError)
	}
}

func TestHandleFrame(t *testing.T) {
	capModel := &model.CaptureModel{}
	s := NewServer(":0", testLogger, &stubSource{}, &model.PulseModel{}, capModel)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/frame.jpg", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Fatalf("no frame yet: status = %d, want 404", resp.StatusCode)
	}

	capModel.SetFrame(image.NewRGBA(image.Rect(0, 0, 16, 16)))
	resp, err = s.app.Test(httptest.NewRequest("GET", "/api/frame.jpg", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status code = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		t.Error("empty jpeg body")
	}
}
