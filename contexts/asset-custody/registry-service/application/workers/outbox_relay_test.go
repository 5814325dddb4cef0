package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"cartulary/contexts/asset-custody/registry-service/adapters/memory"
	"cartulary/contexts/asset-custody/registry-service/ports"
	"cartulary/internal/platform/messaging"
)

type recordingPublisher struct {
	published []ports.EventEnvelope
	fail      bool
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func appendEvents(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		envelope := ports.EventEnvelope{
			EventID:    fmt.Sprintf("evt-%d", i),
			EventType:  "asset.registered",
			EntityType: "asset_record",
		}
		if err := store.AppendOutbox(context.Background(), envelope); err != nil {
			t.Fatalf("append outbox: %v", err)
		}
	}
}

func TestRunOnceDrainsPendingMessages(t *testing.T) {
	store := memory.NewStore()
	publisher := &recordingPublisher{}
	appendEvents(t, store, 3)

	relay := OutboxRelay{
		Outbox:    store,
		Publisher: publisher,
		Logger:    slog.Default(),
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.published) != 3 {
		t.Fatalf("expected 3 published events, got %d", len(publisher.published))
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("relayed messages must leave the pending set, %d remain", len(pending))
	}

	// A second run finds nothing to do.
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("empty relay run failed: %v", err)
	}
	if len(publisher.published) != 3 {
		t.Fatalf("empty run must not republish, got %d", len(publisher.published))
	}
}

func TestRunOncePublishFailureKeepsMessagesPending(t *testing.T) {
	store := memory.NewStore()
	publisher := &recordingPublisher{fail: true}
	appendEvents(t, store, 2)

	relay := OutboxRelay{
		Outbox:    store,
		Publisher: publisher,
		Logger:    slog.Default(),
	}
	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected publish failure to surface")
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("failed publishes must stay pending, got %d", len(pending))
	}
}

func TestRunOnceHonorsBatchSize(t *testing.T) {
	store := memory.NewStore()
	publisher := &recordingPublisher{}
	appendEvents(t, store, 5)

	relay := OutboxRelay{
		Outbox:    store,
		Publisher: publisher,
		BatchSize: 2,
		Logger:    slog.Default(),
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.published) != 2 {
		t.Fatalf("expected batch of 2, got %d", len(publisher.published))
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 still pending, got %d", len(pending))
	}
}

func TestRunOnceDeliversThroughBus(t *testing.T) {
	store := memory.NewStore()
	bus := messaging.NewBus(slog.Default())
	appendEvents(t, store, 1)

	received := make(chan ports.EventEnvelope, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := bus.Subscribe(ctx, "asset.events", "test-consumer",
		func(_ context.Context, event ports.EventEnvelope) error {
			received <- event
			return nil
		})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	relay := OutboxRelay{
		Outbox:    store,
		Publisher: bus,
		Topic:     "asset.events",
		Logger:    slog.Default(),
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	select {
	case event := <-received:
		if event.EventType != "asset.registered" {
			t.Fatalf("unexpected event type: %s", event.EventType)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the bus delivery")
	}
}
