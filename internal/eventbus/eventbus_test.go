package eventbus

import (
	"context"
	"testing"
)

type ping struct{ N int }
type pong struct{ N int }

func TestPublishDispatchesByType(t *testing.T) {
	Use(New())
	defer Use(nil)

	var pings, pongs []int
	Subscribe(func(_ context.Context, e ping) { pings = append(pings, e.N) })
	Subscribe(func(_ context.Context, e pong) { pongs = append(pongs, e.N) })

	Publish(context.Background(), ping{N: 1})
	Publish(context.Background(), ping{N: 2})
	Publish(context.Background(), pong{N: 3})

	if len(pings) != 2 || pings[0] != 1 || pings[1] != 2 {
		t.Fatalf("unexpected ping deliveries: %v", pings)
	}
	if len(pongs) != 1 || pongs[0] != 3 {
		t.Fatalf("unexpected pong deliveries: %v", pongs)
	}
}

func TestUnsubscribe(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got int
	unsub := Subscribe(func(_ context.Context, e ping) { got += e.N })

	Publish(context.Background(), ping{N: 1})
	unsub()
	Publish(context.Background(), ping{N: 1})

	if got != 1 {
		t.Fatalf("expected one delivery, got %d", got)
	}
}

func TestNilBusIsQuiet(t *testing.T) {
	Use(nil)
	unsub := Subscribe(func(_ context.Context, e ping) { t.Fatal("should not deliver") })
	Publish(context.Background(), ping{N: 1})
	unsub()
}
