package queryable

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/CarterLi/queryable/logger"
	"github.com/CarterLi/queryable/observability"
)

// Logged passes elements through unchanged, logging each pull at debug
// level and any fault at error level. name tags the stage in the log output.
func Logged[T any](q *Query[T], log *logger.Logger, name string) *Query[T] {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return newQuery[T](&loggedIter[T]{source: q, log: log, name: name})
}

type loggedIter[T any] struct {
	source Iterator[T]
	log    *logger.Logger
	name   string
	idx    int
}

func (it *loggedIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		it.log.Error("pull failed", logger.Fields(
			logger.FieldStage, it.name,
			logger.FieldIndex, it.idx,
			logger.FieldError, err.Error(),
		))
	case !ok:
		it.log.Debug("sequence exhausted", logger.Fields(
			logger.FieldStage, it.name,
			logger.FieldCount, it.idx,
		))
	default:
		it.log.Debug("element pulled", logger.Fields(
			logger.FieldStage, it.name,
			logger.FieldIndex, it.idx,
			logger.FieldElement, val,
		))
		it.idx++
	}
	return val, ok, err
}

func (it *loggedIter[T]) Close() error { return it.source.Close() }

// Traced wraps a traversal in an OpenTelemetry span. The span opens on the
// first pull, records the element count, and ends at exhaustion, fault, or
// Close — whichever happens first. With no tracer provider installed the
// spans are no-ops.
func Traced[T any](q *Query[T], name string) *Query[T] {
	return newQuery[T](&tracedIter[T]{source: q, name: name})
}

type tracedIter[T any] struct {
	source Iterator[T]
	name   string
	span   trace.Span
	count  int
	ended  bool
}

func (it *tracedIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.span == nil && !it.ended {
		_, it.span = observability.StartSpan(ctx, observability.SpanTraversal)
		observability.SetSpanAttribute(it.span, observability.AttrSequenceName, it.name)
	}
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		observability.SetSpanError(it.span, err)
		it.end("error")
	case !ok:
		it.end("ok")
	default:
		it.count++
	}
	return val, ok, err
}

func (it *tracedIter[T]) end(status string) {
	if it.ended || it.span == nil {
		it.ended = true
		return
	}
	observability.SetSpanAttribute(it.span, observability.AttrElementCount, it.count)
	observability.SetSpanAttribute(it.span, observability.AttrStatus, status)
	it.span.End()
	it.ended = true
}

func (it *tracedIter[T]) Close() error {
	it.end("abandoned")
	return it.source.Close()
}
