//go:build linux

package capture

import (
	"errors"
	"fmt"
	"sync"
	"time"

	v4l2 "github.com/thinkski/go-v4l2"
	"golang.org/x/sys/unix"
)

// v4l2Device adapts one /dev/video* node to the Device contract. The
// control fd stays open for the device's lifetime; the streaming handle is
// opened per delivery session because go-v4l2 couples streaming to the
// handle itself.
type v4l2Device struct {
	path  string
	card  string
	ctlFd int

	torch   bool
	maxZoom float64

	mu          sync.Mutex
	configuring bool
	active      Format
	rate        float64
	stream      *v4l2.Device
	deliverDone chan struct{}
}

// openV4L2Device probes the node and returns a Device, or an error when the
// node is not a streaming video capture device.
func openV4L2Device(path string) (*v4l2Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	caps, err := queryCapability(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("capture: querycap %s: %w", path, err)
	}
	capMask := caps.Capabilities
	if caps.DeviceCaps != 0 {
		capMask = caps.DeviceCaps
	}
	if capMask&capVideoCapture == 0 || capMask&capStreaming == 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("capture: %s is not a streaming capture device", path)
	}
	if !supportsYUYV(fd) {
		unix.Close(fd)
		return nil, fmt.Errorf("capture: %s does not offer YUYV", path)
	}
	d := &v4l2Device{path: path, card: cString(caps.Card[:]), ctlFd: fd}
	if qc, ok := queryControl(fd, ctrlFlashLEDMode); ok {
		// The control exists; enabling requires the torch value in range.
		d.torch = qc.Minimum <= flashLEDModeTorch && flashLEDModeTorch <= qc.Maximum
	}
	if qc, ok := queryControl(fd, ctrlZoomAbsolute); ok {
		d.maxZoom = float64(qc.Maximum)
	}
	return d, nil
}

func (d *v4l2Device) Info() DeviceInfo { return DeviceInfo{Path: d.path, Name: d.card} }

// Connected re-probes the node; an unplugged camera fails querycap.
func (d *v4l2Device) Connected() bool {
	_, err := queryCapability(d.ctlFd)
	return err == nil
}

// Suspended is always false: V4L2 exposes no suspended state, an in-use or
// powered-down node simply fails to open or stream.
func (d *v4l2Device) Suspended() bool { return false }

func (d *v4l2Device) HasTorch() bool { return d.torch }

func (d *v4l2Device) Formats() []Format { return enumFormats(d.ctlFd) }

func (d *v4l2Device) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stream != nil {
		return nil
	}
	s, err := v4l2.Open(d.path)
	if err != nil {
		return fmt.Errorf("capture: open stream %s: %w", d.path, err)
	}
	d.stream = s
	return nil
}

func (d *v4l2Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var err error
	if d.stream != nil {
		err = d.stream.Close()
		d.stream = nil
	}
	unix.Close(d.ctlFd)
	return err
}

// BeginConfiguration / CommitConfiguration bracket configuration calls.
// V4L2 applies settings immediately, so the bracket only enforces call
// discipline.
func (d *v4l2Device) BeginConfiguration() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.configuring {
		return errors.New("capture: configuration already open")
	}
	d.configuring = true
	return nil
}

func (d *v4l2Device) CommitConfiguration() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.configuring {
		return errors.New("capture: no open configuration")
	}
	d.configuring = false
	return nil
}

func (d *v4l2Device) SetActiveFormat(f Format) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stream == nil {
		return errors.New("capture: device not open")
	}
	d.stream.SetPixelFormat(f.Width, f.Height, pixFmtYUYV)
	d.active = f
	return nil
}

func (d *v4l2Device) SetFrameRate(min, max float64) error {
	d.mu.Lock()
	d.rate = max
	d.mu.Unlock()
	return setFrameInterval(d.ctlFd, max)
}

func (d *v4l2Device) MaxZoom() float64 { return d.maxZoom }

func (d *v4l2Device) SetZoom(factor float64) error {
	if d.maxZoom == 0 {
		return errors.New("capture: device has no zoom control")
	}
	return setControl(d.ctlFd, ctrlZoomAbsolute, int32(factor))
}

func (d *v4l2Device) SetTorch(on bool) error {
	if !d.torch {
		return errors.New("capture: device has no torch control")
	}
	mode := int32(flashLEDModeNone)
	if on {
		mode = flashLEDModeTorch
	}
	return setControl(d.ctlFd, ctrlFlashLEDMode, mode)
}

// Start begins streaming and spawns the delivery goroutine. Buffers are
// copied out before release: go-v4l2 hands out mmap'd memory that must be
// returned to the driver promptly.
func (d *v4l2Device) Start(cb FrameCallback) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stream == nil {
		// A previous Stop closed the streaming handle; reopen and re-apply
		// the committed format.
		s, err := v4l2.Open(d.path)
		if err != nil {
			return fmt.Errorf("capture: reopen stream %s: %w", d.path, err)
		}
		s.SetPixelFormat(d.active.Width, d.active.Height, pixFmtYUYV)
		d.stream = s
	}
	if err := d.stream.Start(); err != nil {
		return fmt.Errorf("capture: start stream %s: %w", d.path, err)
	}
	done := make(chan struct{})
	d.deliverDone = done
	go deliver(d.stream.C, done, cb)
	return nil
}

func deliver(frames <-chan v4l2.Buffer, done <-chan struct{}, cb FrameCallback) {
	for {
		select {
		case <-done:
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if len(frame.Data) == 0 {
				// Nothing mapped; releasing a zero-value buffer is unsafe.
				continue
			}
			buf := make([]byte, len(frame.Data))
			copy(buf, frame.Data)
			frame.Release()
			cb(buf, time.Now())
		}
	}
}

// Stop ends delivery and closes the streaming handle; the control fd and
// the committed configuration survive for the next Start.
func (d *v4l2Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.deliverDone != nil {
		close(d.deliverDone)
		d.deliverDone = nil
	}
	if d.stream == nil {
		return nil
	}
	err := d.stream.Close()
	d.stream = nil
	return err
}
