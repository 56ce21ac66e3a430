package interceptor

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wayfare-dev/wayfare/pkg/nav"
)

func TestOpenTelemetryPassesThrough(t *testing.T) {
	q := OpenTelemetry()

	state := &nav.State{Path: "users"}
	got, err := q.Handle(context.Background(), nil, state, terminal)
	if err != nil {
		t.Fatalf("Handle error: %v", err)
	}
	if got != state {
		t.Error("tracing queue must pass the resolved state through")
	}
}

func TestOpenTelemetryFilter(t *testing.T) {
	var extracted bool
	q := OpenTelemetry(
		WithFilter(func(prev, next *nav.State) bool { return next.Path != "health" }),
		WithAttributeExtractor(func(next *nav.State) []attribute.KeyValue {
			extracted = true
			return nil
		}),
	)

	if _, err := q.Handle(context.Background(), nil, &nav.State{Path: "health"}, terminal); err != nil {
		t.Fatalf("Handle error: %v", err)
	}
	if extracted {
		t.Error("filtered navigation must skip span creation")
	}

	if _, err := q.Handle(context.Background(), nil, &nav.State{Path: "users"}, terminal); err != nil {
		t.Fatalf("Handle error: %v", err)
	}
	if !extracted {
		t.Error("unfiltered navigation should extract attributes")
	}
}
