package events

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/itemregistry/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

// newTestBus returns a bus with millisecond retry backoff, closed on cleanup.
func newTestBus(t *testing.T) *EventBus {
	t.Helper()
	bus := NewEventBus(nopLogger())
	bus.retryDelay = time.Millisecond
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, nopLogger())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestOTelPropagation_InjectExtract verifies that trace context injected via
// the same propagation path used by Publish/Subscribe round-trips correctly.
func TestOTelPropagation_InjectExtract(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	// Simulate Publish: inject trace context into message metadata.
	msg := message.NewMessage("id", nil)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	// Simulate Subscribe: extract trace context from message metadata.
	extractCarrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		extractCarrier[k] = v
	}
	msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), extractCarrier)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}

// TestPublishSubscribe_DeliversPayloadAndTrace publishes through the real
// GoChannel transport and checks the handler sees the payload and the
// publisher's trace id.
func TestPublishSubscribe_DeliversPayloadAndTrace(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type delivery struct {
		payload string
		traceID trace.TraceID
	}
	got := make(chan delivery, 1)
	errCh, err := bus.Subscribe(ctx, "test.topic", func(ctx context.Context, msg *message.Message) error {
		got <- delivery{
			payload: string(msg.Payload),
			traceID: trace.SpanFromContext(ctx).SpanContext().TraceID(),
		}
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	pubCtx, span := otel.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	msg, err := NewJSONMessage(map[string]int{"item_id": 1})
	if err != nil {
		t.Fatalf("new message: %v", err)
	}
	if err := bus.Publish(pubCtx, "test.topic", msg); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case d := <-got:
		if d.payload != `{"item_id":1}` {
			t.Errorf("payload: got %s", d.payload)
		}
		if d.traceID != span.SpanContext().TraceID() {
			t.Errorf("trace id: got %s, want %s", d.traceID, span.SpanContext().TraceID())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

// TestSubscribe_ExhaustedRetriesReportedOnce verifies a permanently failing
// handler is called maxRetries times, reported on the error channel, and not
// redelivered afterwards.
func TestSubscribe_ExhaustedRetriesReportedOnce(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	errCh, err := bus.Subscribe(ctx, "failing.topic", func(context.Context, *message.Message) error {
		calls.Add(1)
		return errors.New("permanent")
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	msg, _ := NewJSONMessage("x")
	if err := bus.Publish(context.Background(), "failing.topic", msg); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected non-nil error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscriber error")
	}

	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != maxRetries {
		t.Errorf("expected %d handler calls, got %d", maxRetries, got)
	}
}

// TestPublish_NoSubscribers verifies publishing to an unwatched topic succeeds.
func TestPublish_NoSubscribers(t *testing.T) {
	bus := newTestBus(t)
	msg, _ := NewJSONMessage("x")
	if err := bus.Publish(context.Background(), "nobody.listens", msg); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

// TestClose_RejectsFurtherUse verifies Publish and Subscribe fail after Close
// and that Close is idempotent.
func TestClose_RejectsFurtherUse(t *testing.T) {
	bus := NewEventBus(nopLogger())
	if err := bus.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	msg, _ := NewJSONMessage("x")
	if err := bus.Publish(context.Background(), "t", msg); !errors.Is(err, ErrClosed) {
		t.Errorf("Publish after close: got %v, want ErrClosed", err)
	}
	if _, err := bus.Subscribe(context.Background(), "t", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Subscribe after close: got %v, want ErrClosed", err)
	}
}

// TestClose_EndsSubscriptions verifies the error channel is closed once the
// bus shuts down.
func TestClose_EndsSubscriptions(t *testing.T) {
	bus := NewEventBus(nopLogger())
	errCh, err := bus.Subscribe(context.Background(), "t", func(context.Context, *message.Message) error { return nil })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case _, ok := <-errCh:
		if ok {
			t.Fatal("expected closed error channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("error channel not closed after Close")
	}
}

func TestNewJSONMessage_UnsupportedPayload(t *testing.T) {
	if _, err := NewJSONMessage(make(chan int)); err == nil {
		t.Fatal("expected marshal error for channel payload")
	}
}
