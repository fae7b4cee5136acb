//go:build linux

package capture

// Control-plane V4L2 plumbing. Frame streaming goes through the go-v4l2
// device handle; everything else (capability and format queries, frame
// interval bounds, zoom, torch) is raw ioctl traffic on a second fd opened
// on the same node, which V4L2 explicitly permits.

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request codes, from videodev2.h.
const (
	vidiocQuerycap           = 0x80685600
	vidiocEnumFmt            = 0xc0405602
	vidiocGCtrl              = 0xc008561b
	vidiocSCtrl              = 0xc008561c
	vidiocSParm              = 0xc0cc5616
	vidiocQueryctrl          = 0xc0445624
	vidiocEnumFramesizes     = 0xc02c564a
	vidiocEnumFrameintervals = 0xc034564b
)

const (
	pixFmtYUYV = 0x56595559 // v4l2_fourcc('Y','U','Y','V')

	capVideoCapture = 0x00000001
	capStreaming    = 0x04000000

	bufTypeVideoCapture = 1

	frmsizeTypeDiscrete = 1
	frmivalTypeDiscrete = 1

	ctrlFlagDisabled = 0x0001

	// Camera and flash control classes.
	ctrlZoomAbsolute = 0x009a090d
	ctrlFlashLEDMode = 0x009c0901

	flashLEDModeNone  = 0
	flashLEDModeTorch = 2
)

type v4l2Capability struct {
	Driver       [16]byte
	Card         [32]byte
	BusInfo      [32]byte
	Version      uint32
	Capabilities uint32
	DeviceCaps   uint32
	Reserved     [3]uint32
}

type v4l2Fmtdesc struct {
	Index       uint32
	Type        uint32
	Flags       uint32
	Description [32]byte
	PixelFormat uint32
	Reserved    [4]uint32
}

type v4l2Frmsizeenum struct {
	Index       uint32
	PixelFormat uint32
	Type        uint32
	union       [6]uint32 // discrete {w,h} or stepwise bounds
	Reserved    [2]uint32
}

func (e *v4l2Frmsizeenum) discrete() (w, h uint32) { return e.union[0], e.union[1] }

type v4l2Frmivalenum struct {
	Index       uint32
	PixelFormat uint32
	Width       uint32
	Height      uint32
	Type        uint32
	union       [6]uint32 // discrete fract or stepwise {min,max,step} fracts
	Reserved    [2]uint32
}

type v4l2Queryctrl struct {
	ID           uint32
	Type         uint32
	Name         [32]byte
	Minimum      int32
	Maximum      int32
	Step         int32
	DefaultValue int32
	Flags        uint32
	Reserved     [2]uint32
}

type v4l2Control struct {
	ID    uint32
	Value int32
}

type v4l2Captureparm struct {
	Capability    uint32
	CaptureMode   uint32
	TimePerFrameN uint32
	TimePerFrameD uint32
	ExtendedMode  uint32
	ReadBuffers   uint32
	Reserved      [4]uint32
}

type v4l2Streamparm struct {
	Type    uint32
	Capture v4l2Captureparm
	pad     [160]byte // union is 200 bytes; captureparm covers 40
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func queryCapability(fd int) (v4l2Capability, error) {
	var caps v4l2Capability
	err := ioctl(fd, vidiocQuerycap, unsafe.Pointer(&caps))
	return caps, err
}

// queryControl reports whether the control exists and is not disabled,
// along with its range.
func queryControl(fd int, id uint32) (qc v4l2Queryctrl, ok bool) {
	qc.ID = id
	if err := ioctl(fd, vidiocQueryctrl, unsafe.Pointer(&qc)); err != nil {
		return qc, false
	}
	return qc, qc.Flags&ctrlFlagDisabled == 0
}

func setControl(fd int, id uint32, value int32) error {
	ctrl := v4l2Control{ID: id, Value: value}
	return ioctl(fd, vidiocSCtrl, unsafe.Pointer(&ctrl))
}

// supportsYUYV walks the format descriptors looking for packed YUYV.
func supportsYUYV(fd int) bool {
	for index := uint32(0); ; index++ {
		desc := v4l2Fmtdesc{Index: index, Type: bufTypeVideoCapture}
		if err := ioctl(fd, vidiocEnumFmt, unsafe.Pointer(&desc)); err != nil {
			return false
		}
		if desc.PixelFormat == pixFmtYUYV {
			return true
		}
	}
}

// enumFormats builds the Format list for YUYV capture: every discrete frame
// size with its supported frame intervals converted to rate ranges.
func enumFormats(fd int) []Format {
	var formats []Format
	for index := uint32(0); ; index++ {
		size := v4l2Frmsizeenum{Index: index, PixelFormat: pixFmtYUYV}
		if err := ioctl(fd, vidiocEnumFramesizes, unsafe.Pointer(&size)); err != nil {
			break
		}
		if size.Type != frmsizeTypeDiscrete {
			// Stepwise sensors advertise a continuum; take the minimum size,
			// which is what the selection heuristic would converge to anyway.
			// Stepwise union layout is {min_w, max_w, step_w, min_h, max_h, step_h}.
			w, h := size.union[0], size.union[3]
			formats = append(formats, Format{
				Width:  int(w),
				Height: int(h),
				Ranges: enumIntervals(fd, w, h),
			})
			break
		}
		w, h := size.discrete()
		formats = append(formats, Format{
			Width:  int(w),
			Height: int(h),
			Ranges: enumIntervals(fd, w, h),
		})
	}
	return formats
}

// enumIntervals converts frame intervals for one size into rate ranges.
// A discrete interval n/d seconds is the single rate d/n; stepwise and
// continuous intervals span [d_max/n_max, d_min/n_min].
func enumIntervals(fd int, width, height uint32) []FrameRateRange {
	var ranges []FrameRateRange
	for index := uint32(0); ; index++ {
		ival := v4l2Frmivalenum{
			Index:       index,
			PixelFormat: pixFmtYUYV,
			Width:       width,
			Height:      height,
		}
		if err := ioctl(fd, vidiocEnumFrameintervals, unsafe.Pointer(&ival)); err != nil {
			break
		}
		if ival.Type == frmivalTypeDiscrete {
			n, d := ival.union[0], ival.union[1]
			if n == 0 || d == 0 {
				continue
			}
			rate := float64(d) / float64(n)
			ranges = append(ranges, FrameRateRange{Min: rate, Max: rate})
			continue
		}
		// Stepwise or continuous: union holds min and max interval fracts.
		minN, minD := ival.union[0], ival.union[1]
		maxN, maxD := ival.union[2], ival.union[3]
		if minN == 0 || minD == 0 || maxN == 0 || maxD == 0 {
			break
		}
		ranges = append(ranges, FrameRateRange{
			Min: float64(maxD) / float64(maxN),
			Max: float64(minD) / float64(minN),
		})
		break
	}
	return ranges
}

// setFrameInterval asks the driver for 1/rate seconds per frame. Rates close
// to the NTSC family are expressed over 1001 to stay exact.
func setFrameInterval(fd int, rate float64) error {
	if rate <= 0 {
		return unix.EINVAL
	}
	var n, d uint32
	if rate == float64(int(rate)) {
		n, d = 1, uint32(rate)
	} else {
		n, d = 1001, uint32(rate*1001+0.5)
	}
	parm := v4l2Streamparm{Type: bufTypeVideoCapture}
	parm.Capture.TimePerFrameN = n
	parm.Capture.TimePerFrameD = d
	return ioctl(fd, vidiocSParm, unsafe.Pointer(&parm))
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
