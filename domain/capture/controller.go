package capture

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Sentinel causes recorded in the LastError side channel. Start/Stop never
// return them; they exist so tests and diagnostics can assert on why a
// degradation happened instead of inferring it from the status enum.
var (
	ErrNoDevice       = errors.New("capture: no eligible capture device")
	ErrNoUsableFormat = errors.New("capture: device has no format with a frame rate range")
	ErrNotConfigured  = errors.New("capture: device input was never attached")
	ErrUnauthorized   = errors.New("capture: camera use not authorized")
)

const statsLogInterval = 5 * time.Second

// Controller owns the capture device and its delivery session. It selects a
// device at construction, configures it transactionally on a dedicated
// session queue, and exposes Start/Stop, a status observable and a
// single-consumer frame stream.
//
// All session and status mutation happens on the session queue: a single
// goroutine draining a command channel. Start and Stop enqueue their work
// and block the caller until it ran; concurrent callers are linearized in
// queue arrival order. Failures never propagate to callers. They degrade the
// status (MissingDevice, Unauthorized) or are logged and absorbed, with the
// cause recorded in LastError.
type Controller struct {
	logger  *slog.Logger
	auth    Authorizer
	makeDec DecoderFactory

	cmds   chan func()
	sendMu sync.Mutex
	done   bool

	// Session-queue-owned state. Only the queue goroutine touches these.
	dev           Device
	decoder       Decoder
	format        Format
	inputAttached bool
	running       bool
	sessionID     string
	listeners     []StatusListener

	// Observable state.
	status  atomic.Int32
	lastErr atomic.Pointer[error]

	stream *Stream
	seq    atomic.Uint64

	// Instrumentation.
	frames         atomic.Uint64
	decodeFailures atomic.Uint64
	decodeNanos    atomic.Uint64
	lastFrameNanos atomic.Int64
	lastStatsLog   atomic.Int64
}

// NewController enumerates devices, picks the first eligible one and
// schedules its configuration. A controller is always returned; when no
// device is usable it stays unconfigured and Start later reports
// MissingDevice.
func NewController(logger *slog.Logger, enum Enumerator, auth Authorizer, makeDec DecoderFactory) *Controller {
	if makeDec == nil {
		makeDec = func(f Format) Decoder { return NewYUYVDecoder(f.Width, f.Height) }
	}
	c := &Controller{
		logger:  logger,
		auth:    auth,
		makeDec: makeDec,
		cmds:    make(chan func(), 64),
		stream:  NewStream(),
	}
	c.status.Store(int32(StatusUninitialized))
	go c.loop()

	c.dev = pickDevice(enum)
	if c.dev == nil {
		c.fail(ErrNoDevice)
		c.log().Warn("no eligible capture device found")
		return c
	}
	if err := c.dev.Open(); err != nil {
		c.fail(err)
		c.log().Warn("capture device open failed", "device", c.dev.Info().Path, "error", err)
		c.dev = nil
		return c
	}
	// Best-effort, asynchronous: configuration failures surface later as
	// MissingDevice on Start.
	c.enqueue(c.configure)
	return c
}

// pickDevice returns the first enumerated device that is connected, not
// suspended and has a controllable torch. Platform enumeration order makes
// the pick deterministic.
func pickDevice(enum Enumerator) Device {
	if enum == nil {
		return nil
	}
	for _, d := range enum.Devices() {
		if d.Connected() && !d.Suspended() && d.HasTorch() {
			return d
		}
	}
	return nil
}

// configure runs on the session queue. Any failure logs, records LastError
// and leaves the session without an attached input.
func (c *Controller) configure() {
	dev := c.dev
	if dev == nil {
		return
	}
	sel, ok := SelectFormat(dev.Formats())
	if !ok {
		c.fail(ErrNoUsableFormat)
		c.log().Warn("no usable capture format", "device", dev.Info().Path)
		return
	}
	if err := dev.BeginConfiguration(); err != nil {
		c.fail(err)
		c.log().Warn("begin configuration failed", "error", err)
		return
	}
	defer func() {
		if err := dev.CommitConfiguration(); err != nil {
			c.log().Warn("commit configuration failed", "error", err)
		}
	}()
	if err := dev.SetActiveFormat(sel); err != nil {
		c.fail(err)
		c.log().Warn("set active format failed", "format", formatAttr(sel), "error", err)
		return
	}
	if err := dev.SetZoom(dev.MaxZoom()); err != nil {
		// Best effort: a fixed-lens camera still yields a usable signal.
		c.log().Warn("set zoom failed", "error", err)
	}
	if r, has := sel.BestRange(); has {
		if err := dev.SetFrameRate(r.Min, r.Max); err != nil {
			c.log().Warn("set frame rate failed", "min", r.Min, "max", r.Max, "error", err)
		}
	}
	c.format = sel
	c.decoder = c.makeDec(sel)
	c.inputAttached = true
	c.log().Info("capture configured",
		"device", dev.Info().Path,
		"card", dev.Info().Name,
		"format", formatAttr(sel),
	)
}

// Start begins capture. It blocks until the session queue executed the
// request and returns nothing: the outcome is observable via Status. An
// undetermined authorization triggers a blocking request during which the
// session queue itself is suspended, so no configuration work can race the
// prompt.
func (c *Controller) Start() {
	switch c.auth.Status() {
	case AuthAuthorized:
	case AuthUndetermined:
		resume, ok := c.suspendQueue()
		if !ok {
			return
		}
		granted := c.auth.Request()
		resume()
		if !granted {
			c.denied()
			return
		}
	default: // denied, restricted, unknown
		c.denied()
		return
	}
	c.run(c.startOnQueue)
}

// Stop ends capture. Like Start it blocks until the queue ran the request
// and surfaces nothing but a status change.
func (c *Controller) Stop() {
	c.run(c.stopOnQueue)
}

func (c *Controller) startOnQueue() {
	if !c.inputAttached {
		c.fail(ErrNotConfigured)
		c.setStatus(StatusMissingDevice)
		return
	}
	if c.running {
		return
	}
	if err := c.dev.Start(c.onFrame); err != nil {
		c.fail(err)
		c.log().Error("session start failed", "error", err)
		c.setStatus(StatusMissingDevice)
		return
	}
	if err := c.dev.SetTorch(true); err != nil {
		// Non-fatal: measuring without illumination is degraded, not broken.
		c.log().Warn("torch on failed", "error", err)
	}
	c.sessionID = uuid.NewString()
	c.running = true
	c.log().Info("capture started", "session_id", c.sessionID)
	c.setStatus(StatusRunning)
}

func (c *Controller) stopOnQueue() {
	if !c.running {
		return
	}
	if err := c.dev.SetTorch(false); err != nil {
		c.log().Warn("torch off failed", "error", err)
	}
	if err := c.dev.Stop(); err != nil {
		c.log().Warn("session stop failed", "error", err)
	}
	c.running = false
	c.log().Info("capture stopped", "session_id", c.sessionID)
	c.setStatus(StatusStopped)
}

// denied records an authorization failure. The status write still goes
// through the session queue to preserve the single-mutator invariant; no
// device or session work happens.
func (c *Controller) denied() {
	c.run(func() {
		c.fail(ErrUnauthorized)
		c.setStatus(StatusUnauthorized)
	})
}

// onFrame runs on the device's delivery goroutine. It only reads the
// immutable buffer, decodes and pushes; no shared session state is touched.
func (c *Controller) onFrame(buf []byte, capturedAt time.Time) {
	start := time.Now()
	img, err := c.decoder.Decode(buf)
	if err != nil {
		c.decodeFailures.Add(1)
		c.log().Debug("frame decode failed", "error", err)
		return
	}
	c.decodeNanos.Add(uint64(time.Since(start).Nanoseconds()))
	c.frames.Add(1)
	c.lastFrameNanos.Store(capturedAt.UnixNano())
	c.stream.Push(FrameSample{
		Image:      img,
		CapturedAt: capturedAt,
		Sequence:   c.seq.Add(1),
	})
	c.maybeLogStats()
}

// Frames exposes the converted-frame stream. Single consumer only.
func (c *Controller) Frames() <-chan FrameSample { return c.stream.Frames() }

// Status returns the current capture status.
func (c *Controller) Status() Status { return Status(c.status.Load()) }

// LastError reports the cause of the most recent absorbed failure, or nil.
func (c *Controller) LastError() error {
	if p := c.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}

// AddStatusListener registers a transition listener on the session queue.
func (c *Controller) AddStatusListener(l StatusListener) {
	if l == nil {
		return
	}
	c.enqueue(func() { c.listeners = append(c.listeners, l) })
}

// Stats returns frame delivery instrumentation.
func (c *Controller) Stats() Stats {
	frames := c.frames.Load()
	total := c.decodeNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	var last time.Time
	age := time.Duration(0)
	if ns := c.lastFrameNanos.Load(); ns != 0 {
		last = time.Unix(0, ns)
		age = time.Since(last)
	}
	return Stats{
		Frames:          frames,
		DecodeFailures:  c.decodeFailures.Load(),
		AvgDecode:       avg,
		AvgDecodeMicros: avgMicros,
		LastFrame:       last,
		LastFrameAge:    age,
		Sequence:        c.seq.Load(),
	}
}

// Close stops capture and shuts the session queue and frame stream down.
// The controller is unusable afterwards.
func (c *Controller) Close() {
	c.run(c.stopOnQueue)
	c.sendMu.Lock()
	if !c.done {
		c.done = true
		close(c.cmds)
	}
	c.sendMu.Unlock()
	c.stream.Close()
}

// --- session queue plumbing ---

func (c *Controller) loop() {
	for cmd := range c.cmds {
		cmd()
	}
}

// enqueue submits work without waiting. Returns false once closed.
func (c *Controller) enqueue(f func()) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.done {
		return false
	}
	c.cmds <- f
	return true
}

// run submits work and blocks until the queue executed it.
func (c *Controller) run(f func()) {
	done := make(chan struct{})
	if !c.enqueue(func() {
		defer close(done)
		f()
	}) {
		return
	}
	<-done
}

// suspendQueue parks the session queue and returns a resume func. It blocks
// until the queue is actually parked, which guarantees no configuration
// mutation can overlap whatever the caller does before resuming.
func (c *Controller) suspendQueue() (resume func(), ok bool) {
	gate := make(chan struct{})
	parked := make(chan struct{})
	if !c.enqueue(func() {
		close(parked)
		<-gate
	}) {
		return nil, false
	}
	<-parked
	return func() { close(gate) }, true
}

// setStatus runs on the session queue only.
func (c *Controller) setStatus(next Status) {
	prev := Status(c.status.Load())
	if prev == next {
		return
	}
	c.status.Store(int32(next))
	c.log().Debug("capture status transition", "from", prev.String(), "to", next.String())
	for _, l := range c.listeners {
		l(prev, next)
	}
}

func (c *Controller) fail(err error) {
	if err == nil {
		return
	}
	c.lastErr.Store(&err)
}

func (c *Controller) maybeLogStats() {
	now := time.Now().UnixNano()
	last := c.lastStatsLog.Load()
	if now-last < int64(statsLogInterval) {
		return
	}
	if !c.lastStatsLog.CompareAndSwap(last, now) {
		return
	}
	stats := c.Stats()
	c.log().Debug("capture.stats",
		"frames", stats.Frames,
		"decode_failures", stats.DecodeFailures,
		"avg_decode", stats.AvgDecode,
		"age", stats.LastFrameAge,
	)
}

func (c *Controller) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

func formatAttr(f Format) string { return f.String() }
