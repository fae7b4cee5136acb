//go:build linux

package capture

import (
	"testing"
	"time"

	v4l2 "github.com/thinkski/go-v4l2"
)

func TestDeliverSkipsEmptyBuffersAndStopsOnClose(t *testing.T) {
	frames := make(chan v4l2.Buffer)
	done := make(chan struct{})
	exited := make(chan struct{})
	delivered := make(chan []byte, 1)
	go func() {
		deliver(frames, done, func(buf []byte, _ time.Time) { delivered <- buf })
		close(exited)
	}()

	// A zero-value buffer carries no mapped data and must not reach the
	// callback.
	frames <- v4l2.Buffer{}
	select {
	case buf := <-delivered:
		t.Fatalf("empty buffer was forwarded: %v", buf)
	case <-time.After(20 * time.Millisecond):
	}

	close(frames)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("delivery goroutine did not exit when the frame channel closed")
	}
}

func TestDeliverStopsOnDone(t *testing.T) {
	frames := make(chan v4l2.Buffer)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		deliver(frames, done, func([]byte, time.Time) {})
		close(exited)
	}()

	close(done)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("delivery goroutine did not exit on stop")
	}
}
