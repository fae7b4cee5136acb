package capture

import (
	"testing"
	"time"
)

func TestStream_PreservesOrder(t *testing.T) {
	s := NewStream()
	defer s.Close()
	const n = 1000
	for i := 1; i <= n; i++ {
		s.Push(FrameSample{Sequence: uint64(i)})
	}
	for i := 1; i <= n; i++ {
		select {
		case got := <-s.Frames():
			if got.Sequence != uint64(i) {
				t.Fatalf("position %d carries sequence %d", i, got.Sequence)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout at position %d", i)
		}
	}
}

func TestStream_PushNeverBlocks(t *testing.T) {
	s := NewStream()
	defer s.Close()
	// No consumer attached; a bounded channel would stall here.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			s.Push(FrameSample{Sequence: uint64(i)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer blocked without a consumer")
	}
}

func TestStream_CloseDrainsThenCloses(t *testing.T) {
	s := NewStream()
	for i := 1; i <= 5; i++ {
		s.Push(FrameSample{Sequence: uint64(i)})
	}
	s.Close()
	var got []uint64
	for f := range s.Frames() {
		got = append(got, f.Sequence)
	}
	if len(got) != 5 {
		t.Fatalf("received %d frames after close, want 5", len(got))
	}
	for i, seq := range got {
		if seq != uint64(i+1) {
			t.Fatalf("drained out of order: %v", got)
		}
	}
}

func TestStream_PushAfterCloseDropped(t *testing.T) {
	s := NewStream()
	s.Close()
	s.Push(FrameSample{Sequence: 1}) // must not panic
	if _, ok := <-s.Frames(); ok {
		t.Error("frame delivered after close")
	}
}
