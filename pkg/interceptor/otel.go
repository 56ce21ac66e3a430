package interceptor

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfare-dev/wayfare/pkg/nav"
)

// Default tracer name for Wayfare applications.
const defaultTracerName = "wayfare"

// OTelConfig configures the OpenTelemetry queue.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "wayfare").
	TracerName string

	// Filter determines which navigations to trace. Return true to
	// trace, false to skip. If nil, all navigations are traced.
	Filter func(prev, next *nav.State) bool

	// AttributeExtractor extracts custom attributes from the pending
	// State. Called for each traced navigation.
	AttributeExtractor func(next *nav.State) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry queue.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithFilter sets a filter function for navigations.
func WithFilter(filter func(prev, next *nav.State) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(next *nav.State) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates a queue that traces every navigation.
//
// The queue:
//   - Creates a span per navigation with path and match attributes
//   - Propagates the span context to downstream queues and the handler
//   - Records errors and sets span status
//
// The tracer uses the global OpenTelemetry tracer provider; configure it
// in main() before constructing the pipeline.
func OpenTelemetry(opts ...OTelOption) nav.Queue {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	config.tracer = otel.Tracer(config.TracerName)

	return nav.QueueFunc(func(ctx context.Context, prev, next *nav.State, remaining nav.Remaining) (*nav.State, error) {
		if config.Filter != nil && !config.Filter(prev, next) {
			return remaining.Handle(ctx, next)
		}

		attrs := []attribute.KeyValue{
			attribute.String("wayfare.path", next.Path),
			attribute.Bool("wayfare.matched", next.Matched()),
		}
		if prev != nil {
			attrs = append(attrs, attribute.String("wayfare.previous_path", prev.Path))
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(next)...)
		}

		spanCtx, span := config.tracer.Start(
			ctx,
			"wayfare.navigate",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		state, err := remaining.Handle(spanCtx, next)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		span.SetStatus(codes.Ok, "")
		span.SetAttributes(attribute.String("wayfare.committed_path", state.Path))
		return state, nil
	})
}
