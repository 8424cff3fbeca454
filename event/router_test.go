package event

import (
	"testing"

	"github.com/lixenwraith/vi-volley/component"
)

type recordingHandler struct {
	types []EventType
	seen  []EventType
	kills int
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if p, ok := ev.Payload.(*BatchPayload[component.Impact]); ok {
		h.kills += len(p.Entries)
	}
}

func TestRouter_DispatchAll(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	kills := &recordingHandler{types: []EventType{EventEnemyKilled}}
	all := &recordingHandler{types: []EventType{EventEnemyKilled, EventVolleySpawned}}
	r.Register(kills)
	r.Register(all)

	if r.HandlerCount(EventEnemyKilled) != 2 || r.HandlerCount(EventVolleyExpired) != 0 {
		t.Fatal("Registration counts wrong")
	}

	q.Push(GameEvent{Type: EventVolleySpawned})
	EmitBatch(q, KillBatchPool, EventEnemyKilled, []component.Impact{{EnemyIndex: 1}, {EnemyIndex: 2}}, 1)
	q.Push(GameEvent{Type: EventVolleyExpired})

	if n := r.DispatchAll(); n != 3 {
		t.Fatalf("Expected 3 dispatched, got %d", n)
	}

	if len(kills.seen) != 1 || kills.kills != 2 {
		t.Errorf("Kill handler saw %v with %d kills", kills.seen, kills.kills)
	}
	if len(all.seen) != 2 || all.seen[0] != EventVolleySpawned || all.seen[1] != EventEnemyKilled {
		t.Errorf("Expected FIFO [spawned killed], got %v", all.seen)
	}
	if all.kills != 2 {
		t.Errorf("Second handler should see the same batch before release, got %d kills", all.kills)
	}

	if r.DispatchAll() != 0 {
		t.Error("Queue should be drained")
	}
}
