package itertools

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Tracer records the progress of a stage's work.  Stages create a Tracer
// when they are built and when a terminal operation drains them.
type Tracer interface {
	Msg(format string, v ...any)
	End()
}

// TraceFunc defines the function prototype of a tracing function
// Per stage functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

// DefaultLogger receives trace events from stages that have tracing enabled
// but neither a trace function nor a logger of their own.  It writes JSON
// lines to stderr and can be replaced to affect all such stages.
var DefaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// tracer formats trace lines and hands them to a TraceFunc
type tracer struct {
	begin       time.Time
	description string
	id          uint32
	traceFunc   TraceFunc
}

// NewTracer returns a Tracer for stage id that writes lines through f.  If
// f is nil, events are written to DefaultLogger instead.
func NewTracer(id uint32, description string, f TraceFunc, v ...any) Tracer {
	if f == nil {
		return NewLogTracer(id, DefaultLogger, description, v...)
	}

	t := &tracer{
		description: fmt.Sprintf(description, v...),
		id:          id,
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [stage #%d] %s", t.begin.Format(time.RFC3339), t.id, t.description)
}

func (t *tracer) Msg(format string, v ...any) {
	var args []any = []any{
		time.Now().Format(time.RFC3339), t.id, t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [stage #%d] %s: "+format, args...)
}

func (t *tracer) End() {
	t.traceFunc("%s: END [stage #%d] %s (%s)", time.Now().Format(time.RFC3339), t.id,
		t.description, time.Since(t.begin))
}

// logTracer writes trace events as structured zerolog debug events
type logTracer struct {
	logger      zerolog.Logger
	begin       time.Time
	description string
	id          uint32
}

// NewLogTracer returns a Tracer for stage id that writes debug events to
// logger.  Each event carries the stage id and description as fields.
func NewLogTracer(id uint32, logger zerolog.Logger, description string, v ...any) Tracer {
	t := &logTracer{
		logger:      logger,
		description: fmt.Sprintf(description, v...),
		id:          id,
	}

	t.start()
	return t
}

func (t *logTracer) event() *zerolog.Event {
	return t.logger.Debug().
		Uint32("stage", t.id).
		Str("description", t.description)
}

func (t *logTracer) start() {
	t.begin = time.Now()
	t.event().Msg("start")
}

func (t *logTracer) Msg(format string, v ...any) {
	t.event().Msgf(format, v...)
}

func (t *logTracer) End() {
	t.event().Dur("elapsed", time.Since(t.begin)).Msg("end")
}

// NullTracer discards everything; it is used when tracing is disabled.
type NullTracer struct{}

func (t NullTracer) Msg(string, ...any) {}
func (t NullTracer) End()              {}
