// Package observability provides OpenTelemetry tracing helpers for the
// queryable engine.
//
// The engine is a library, so this package depends on the OpenTelemetry API
// only: spans are created through the globally registered tracer provider,
// and hosts that never install one get no-op spans for free.
//
//	ctx, span := observability.StartSpan(ctx, "queryable.traversal")
//	defer span.End()
package observability
