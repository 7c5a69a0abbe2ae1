package cyclic

import (
	"context"
	"iter"
	"math"

	"github.com/ccoveille/go-safecast/v2"
)

// Stream reads elements from a cyclic cursor one at a time through the
// Iterator interface.  A stream without a limit never runs out of elements
// (unless the domain is empty) and ends only when the context passed to Next
// is cancelled.
//
// A Stream works on its own copy of the cursor it was created from.  It is
// not safe for concurrent use.
type Stream[T any] struct {
	get     func() T
	step    func()
	empty   bool
	started bool
	done    bool
	limit   uint
	count   uint
	err     error
	t       tracer
}

type streamOptions struct {
	limit   uint
	rounds  uint
	tracer  TraceFunc
	tracing bool
}

// StreamOption customizes how a Stream reads its cursor.
type StreamOption func(o *streamOptions)

// Limit caps the number of elements a stream returns.  Zero, the default,
// means no limit.
func Limit(n uint) StreamOption {
	return func(o *streamOptions) {
		o.limit = n
	}
}

// Rounds makes the stream return n full laps of the cursor's domain, starting
// from the cursor's position.  The domain is measured once when the stream
// is created, by walking it for cursors that are not random access.
//
// If both Rounds and Limit are given, the smaller count wins.
func Rounds(n uint) StreamOption {
	return func(o *streamOptions) {
		o.rounds = n
	}
}

// WithTraceFunc sets the trace function for the stream.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) StreamOption {
	return func(o *streamOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the stream.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to stderr.
func WithTracing(enable bool) StreamOption {
	return func(o *streamOptions) {
		o.tracing = enable
	}
}

func newStream[T any](get func() T, step func(), length func() int, empty bool, opts ...StreamOption) *Stream[T] {
	var o streamOptions
	for _, f := range opts {
		f(&o)
	}

	s := &Stream[T]{
		get:   get,
		step:  step,
		empty: empty,
		limit: o.limit,
		t:     nullTracer{},
	}

	if o.tracing {
		var zero T
		s.t = newTracer(streamCounter.Add(1), "(%T) Stream", o.tracer, zero)
	}

	if o.rounds > 0 && !empty {
		if r := roundsLimit(s.t, o.rounds, length()); r > 0 {
			if s.limit == 0 || r < s.limit {
				s.limit = r
			}
			s.t.msg("limited to %d elements (%d rounds)", s.limit, o.rounds)
		}
	}

	return s
}

// roundsLimit returns the number of elements in n laps of a domain of the
// given length, or 0 (no limit) if that cannot be represented.
func roundsLimit(t tracer, n uint, length int) uint {
	lap, err := safecast.Convert[uint](length)
	if err != nil {
		t.msg("cannot use domain length %d: %s", length, err)
		return 0
	}

	if lap > math.MaxUint/n {
		t.msg("%d rounds of %d elements overflow, stream is unbounded", n, lap)
		return 0
	}

	return lap * n
}

// Next advances the stream.  The first call leaves the cursor where it was
// so that Get returns the element the cursor started on; later calls step
// the cursor forward.
//
// Next returns false when the limit has been reached, the domain is empty or
// ctx has been cancelled.  In the last case Error returns the context's
// error.
func (s *Stream[T]) Next(ctx context.Context) bool {
	if s.done {
		return false
	}

	if s.empty || (s.limit > 0 && s.count >= s.limit) {
		s.finish("done after %d elements", s.count)
		return false
	}

	select {
	case <-ctx.Done():
		s.err = ctx.Err()
		s.finish("cancelled after %d elements: %s", s.count, s.err)
		return false
	default:
	}

	if s.started {
		s.step()
	}
	s.started = true
	s.count++

	return true
}

// Get returns the element the stream is positioned on, or the zero value of
// T if Next has not returned true yet.
func (s *Stream[T]) Get() T {
	if !s.started {
		var ret T
		return ret
	}

	return s.get()
}

// Error returns the context's error if the context was cancelled during a
// call to Next, otherwise nil.
func (s *Stream[T]) Error() error {
	return s.err
}

// Size returns the total number of elements the stream returns, or zero if
// the stream is unbounded or the domain is empty.  It implements the Size
// interface.
func (s *Stream[T]) Size() uint {
	if s.empty {
		return 0
	}

	return s.limit
}

// All returns an iterator over the remaining elements of the stream, for use
// with range.  Breaking out of the loop leaves the stream where it stopped.
func (s *Stream[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.Next(ctx) {
			if !yield(s.Get()) {
				return
			}
		}
	}
}

// Chan starts a goroutine that writes the remaining elements of the stream
// to the returned channel.  The channel is closed when the stream ends or
// ctx is cancelled, after which the goroutine exits.  The stream must not be
// used by the caller while the goroutine runs; Error may be called once the
// channel is closed.
//
// A caller that stops receiving before the channel is closed must cancel ctx,
// otherwise the goroutine stays blocked on its next send.
func (s *Stream[T]) Chan(ctx context.Context) <-chan T {
	ch := make(chan T)

	go func() {
		t := s.t.subTracer("feeder")
		defer t.end()
		defer close(ch)

		for s.Next(ctx) {
			select {
			case ch <- s.Get():
			case <-ctx.Done():
				s.err = ctx.Err()
				s.finish("cancelled while sending: %s", s.err)
				return
			}
		}
	}()

	return ch
}

func (s *Stream[T]) finish(format string, v ...any) {
	s.done = true
	s.t.msg(format, v...)
	s.t.end()
}
