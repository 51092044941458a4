package telemetry

import (
	"context"
	"testing"
)

func TestDisabledTracerRecordsNothing(t *testing.T) {
	Disable()

	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()

	if span.IsRecording() {
		t.Error("span should not record once telemetry is disabled")
	}
	if span.SpanContext().IsValid() {
		t.Error("no-op span should have an invalid span context")
	}
}
