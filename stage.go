// Package itertools provides lazy, composable sequence processing for Go.
//
// A pipeline is a chain of stages.  Each stage pulls elements one at a time
// from the stage before it, transforms them, and hands them on through the
// Iterator protocol.  Nothing is read from a source until a terminal
// operation such as Collect or Sum asks for it, and no stage holds more than
// the single element it is currently working on.
//
// Pipelines are strictly sequential: a Stage, and the iterators it wraps,
// must not be used from more than one goroutine at a time.
package itertools

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jake-scott/go-itertools/iter/channel"
	"github.com/jake-scott/go-itertools/iter/maps"
	"github.com/jake-scott/go-itertools/iter/scanner"
	"github.com/jake-scott/go-itertools/iter/seq"
	"github.com/jake-scott/go-itertools/iter/slice"
	"github.com/jake-scott/go-itertools/pair"
)

// DefaultSizeHint is used by Collect for the initial allocation when the
// underlying iterator cannot provide size information and a stage specific
// size hint has not been provided.
var DefaultSizeHint uint = 100

var stageCounter atomic.Uint32

// Stage is the fluent handle on one step of a pipeline.  It owns the
// Iterator that produces its elements.
//
// Building a new stage from a Stage, or draining it with a terminal
// operation, transfers ownership of that Iterator; the old Stage is then
// consumed and any further use of it panics with ErrStageConsumed.
type Stage[T any] struct {
	i    Iterator[T]
	id   uint32
	opts stageOptions
}

type stageOptions struct {
	sizeHint       uint
	inheritOptions bool
	tracer         TraceFunc
	tracing        bool
	logger         *zerolog.Logger
}

func defaultStageOptions() stageOptions {
	return stageOptions{
		sizeHint: DefaultSizeHint,
	}
}

// StageOptions provide a mechanism to customize how the processing functions
// of a stage opterate.
type StageOption func(g *stageOptions)

// The SizeHint option provides Collect with a guideline regarding the number
// of elements there are to process.  This is only used with iterators that
// cannot provide the information themselves.
//
// If not specified and the iterator cannot provide the information, the default
// value DefaultSizeHint is used.
func SizeHint(hint uint) StageOption {
	return func(o *stageOptions) {
		o.sizeHint = hint
	}
}

// WithTraceFunc sets the trace function for the stage.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) StageOption {
	return func(o *stageOptions) {
		o.tracer = f
	}
}

// WithLogger sends the stage's trace events to logger as structured debug
// events.  A trace function set with WithTraceFunc takes precedence.  Use
// WithTracing to enable/disable tracing.
func WithLogger(logger zerolog.Logger) StageOption {
	return func(o *stageOptions) {
		o.logger = &logger
	}
}

// WithTracing enables tracing for the stage.  If neither a trace function nor
// a logger has been set, trace events are written to DefaultLogger.
func WithTracing(enable bool) StageOption {
	return func(o *stageOptions) {
		o.tracing = enable
	}
}

// InheritOptions causes this stage's options to be inherited by the next
// stage.  The next stage can override these inherited options.  Further
// inheritence can be disabled by passing this option with a false value.
//
// The default is no inheritence.
func InheritOptions(inherit bool) StageOption {
	return func(o *stageOptions) {
		o.inheritOptions = inherit
	}
}

func (o *stageOptions) processOptions(opts ...StageOption) {
	for _, f := range opts {
		f(o)
	}
}

func newStage[T any](i Iterator[T], opts ...StageOption) *Stage[T] {
	s := &Stage[T]{
		i:    i,
		opts: defaultStageOptions(),
		id:   stageCounter.Add(1),
	}
	s.opts.processOptions(opts...)

	t := s.tracer("Source %T", i)
	t.End()

	return s
}

// NewStage instantiates a pipeline stage from an Iterator and optional
// set of processing options.  The iterator is fused (see Fuse) so that the
// stage never reads from it again once it has reported exhaustion.
func NewStage[T any](i Iterator[T], opts ...StageOption) *Stage[T] {
	return newStage(Fuse(i), opts...)
}

// From instantiates a pipeline stage over the elements of s.  It is a
// shorthand for NewSliceStage.
func From[T any](s []T, opts ...StageOption) *Stage[T] {
	return NewSliceStage(s, opts...)
}

// NewSliceStage instantiates a pipeline stage using a slice iterator backed by
// the provided slice.  The slice is not copied and must not be modified
// while the pipeline is in use.
func NewSliceStage[T any](s []T, opts ...StageOption) *Stage[T] {
	iter := slice.New(s)
	return newStage[T](&iter, opts...)
}

// NewMapStage instantiates a pipeline stage producing the entries of m as
// key/value pairs, in unspecified order.
func NewMapStage[K comparable, V any](m map[K]V, opts ...StageOption) *Stage[pair.Pair[K, V]] {
	iter := maps.New(m)
	return newStage[pair.Pair[K, V]](&iter, opts...)
}

// NewSortedMapStage is like NewMapStage but produces the entries in
// ascending key order.
func NewSortedMapStage[K cmp.Ordered, V any](m map[K]V, opts ...StageOption) *Stage[pair.Pair[K, V]] {
	iter := maps.NewSorted(m)
	return newStage[pair.Pair[K, V]](&iter, opts...)
}

// NewChannelStage instantiates a pipeline stage using a channel iterator
// backed by the provided channel.  The stage ends when ch is closed or ctx
// is done.
func NewChannelStage[T any](ctx context.Context, ch <-chan T, opts ...StageOption) *Stage[T] {
	iter := channel.New(ctx, ch)
	return newStage[T](&iter, opts...)
}

// NewScannerStage instantiates a pipeline stage using a scanner iterator,
// backed by the provided scanner.
func NewScannerStage(s scanner.Scanner, opts ...StageOption) *Stage[string] {
	iter := scanner.New(s)
	return newStage[string](&iter, opts...)
}

// NewSeqStage instantiates a pipeline stage that pulls from a standard
// library iter.Seq.  The sequence is released when it is exhausted; if the
// pipeline may be abandoned early, use seq.New and NewStage directly so that
// Stop can be called.
func NewSeqStage[T any](s iter.Seq[T], opts ...StageOption) *Stage[T] {
	return newStage[T](seq.New(s), opts...)
}

// Iterator hands over the underlying iterator of the stage.  It is most
// useful as a mechanism for retrieving the result from the last stage of a
// pipeline by the caller of the pipeline.
//
// The stage is consumed and must not be used again.
func (s *Stage[T]) Iterator() Iterator[T] {
	return s.release()
}

// release transfers ownership of the stage's iterator to the caller
func (s *Stage[T]) release() Iterator[T] {
	if s.i == nil {
		panic(errors.WithStack(ErrStageConsumed))
	}

	i := s.i
	s.i = nil
	return i
}

func (s *Stage[T]) tracer(description string, v ...any) Tracer {
	if !s.opts.tracing {
		return NullTracer{}
	}

	var t T
	description = fmt.Sprintf("(%T) %s", t, fmt.Sprintf(description, v...))

	switch {
	case s.opts.tracer != nil:
		return NewTracer(s.id, "%s", s.opts.tracer, description)
	case s.opts.logger != nil:
		return NewLogTracer(s.id, *s.opts.logger, "%s", description)
	default:
		return NewLogTracer(s.id, DefaultLogger, "%s", description)
	}
}

// nextStage builds the stage that follows s.  If s has option inheritence
// enabled, the new stage starts from s's options; otherwise it starts from
// the defaults.  Either way opts are applied on top.
func nextStage[T, U any](s *Stage[T], i Iterator[U], description string, opts ...StageOption) *Stage[U] {
	next := &Stage[U]{
		i:  i,
		id: stageCounter.Add(1),
	}

	if s.opts.inheritOptions {
		next.opts = s.opts
	} else {
		next.opts = defaultStageOptions()
	}
	next.opts.processOptions(opts...)

	t := next.tracer(description)
	t.Msg("reads from stage #%d", s.id)
	t.End()

	return next
}
