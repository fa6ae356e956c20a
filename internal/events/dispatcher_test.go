package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var got []string
	dispatcher.Subscribe(EventInstallationMoved, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.InstallationID)
		return nil
	})
	dispatcher.Subscribe(EventInstallationMoved, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.InstallationID)
		return nil
	})
	dispatcher.Subscribe(EventInstallationDeleted, func(_ context.Context, _ Event) error {
		t.Error("handler for a different event type must not fire")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		Type:           EventInstallationMoved,
		InstallationID: "inst-1",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(got) != 2 || got[0] != "first:inst-1" || got[1] != "second:inst-1" {
		t.Fatalf("deliveries: %v", got)
	}
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondRan bool
	dispatcher.Subscribe(EventInstallationFinalized, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventInstallationFinalized, func(_ context.Context, _ Event) error {
		secondRan = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventInstallationFinalized})
	if err != nil {
		t.Fatalf("handler error leaked: %v", err)
	}
	if !secondRan {
		t.Fatal("later handlers must still run after an earlier failure")
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	if err := dispatcher.Publish(context.Background(), Event{Type: EventInstallationCreated}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}
