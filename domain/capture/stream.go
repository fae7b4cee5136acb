package capture

import "sync"

// Stream is the single-producer, single-consumer frame pipeline between the
// device callback and the presentation layer. Pushes never block the
// producer: samples queue without bound and the consumer sees them strictly
// in production order, at whatever pace it can sustain. There is no drop
// policy and no drop accounting; a persistently slow consumer grows the
// queue. The stream is not safe for multiple consumers.
type Stream struct {
	mu     sync.Mutex
	queue  []FrameSample
	wake   chan struct{}
	out    chan FrameSample
	closed bool
}

// NewStream returns a started stream ready for Push and Frames.
func NewStream() *Stream {
	s := &Stream{
		wake: make(chan struct{}, 1),
		out:  make(chan FrameSample),
	}
	go s.pump()
	return s
}

// Push appends a sample and returns immediately. Pushing after Close is a
// no-op.
func (s *Stream) Push(f FrameSample) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, f)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Frames returns the consumer side. The channel is closed after Close once
// all queued samples were delivered.
func (s *Stream) Frames() <-chan FrameSample { return s.out }

// Close ends the stream. Queued samples are still delivered.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Stream) pump() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			if s.closed {
				s.mu.Unlock()
				close(s.out)
				return
			}
			s.mu.Unlock()
			<-s.wake
			continue
		}
		f := s.queue[0]
		s.queue = s.queue[1:]
		if len(s.queue) == 0 {
			s.queue = nil // release the backing array once drained
		}
		s.mu.Unlock()
		s.out <- f
	}
}
