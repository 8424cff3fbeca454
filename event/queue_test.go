package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/parameter"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventVolleySpawned, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("Expected 5 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("Event %d out of order: frame %d", i, ev.Frame)
		}
	}

	if q.Consume() != nil || q.Len() != 0 {
		t.Error("Queue not empty after consume")
	}
}

func TestEventQueue_OverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventVolleyExpired, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("Expected frames 10..%d, got %d..%d", total-1, got[0].Frame, got[len(got)-1].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestEventQueue_ConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventEnemyKilled, Frame: int64(p*perProducer + i)})
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, ev := range q.Consume() {
		seen[ev.Frame] = true
	}
	if len(seen) != producers*perProducer {
		t.Fatalf("Expected %d distinct events, got %d", producers*perProducer, len(seen))
	}
}

func TestEmitBatch(t *testing.T) {
	q := NewEventQueue()

	EmitBatch(q, KillBatchPool, EventEnemyKilled, nil, 1)
	if q.Len() != 0 {
		t.Fatal("Empty batch was pushed")
	}

	impacts := []component.Impact{{EnemyIndex: 2}, {EnemyIndex: 5}}
	EmitBatch(q, KillBatchPool, EventEnemyKilled, impacts, 7)

	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != EventEnemyKilled || evs[0].Frame != 7 {
		t.Fatalf("Unexpected events %+v", evs)
	}
	p, ok := evs[0].Payload.(*BatchPayload[component.Impact])
	if !ok {
		t.Fatalf("Unexpected payload %T", evs[0].Payload)
	}
	if len(p.Entries) != 2 || p.Entries[1].EnemyIndex != 5 {
		t.Errorf("Unexpected entries %+v", p.Entries)
	}

	// Payload owns a copy
	impacts[0].EnemyIndex = 99
	if p.Entries[0].EnemyIndex != 2 {
		t.Error("Payload aliases caller slice")
	}
	KillBatchPool.Release(p)
}

func TestEventType_String(t *testing.T) {
	if EventEnemyKilled.String() != "EnemyKilled" {
		t.Errorf("Unexpected name %q", EventEnemyKilled.String())
	}
	if EventType(999).String() != "EventType(999)" {
		t.Errorf("Unexpected fallback %q", EventType(999).String())
	}
}
