package event

import (
	"sync"

	"github.com/lixenwraith/vi-volley/component"
)

// BatchPayload is a pooled slice payload for per-frame batch events
// Consumers call the owning pool's Release after handling
type BatchPayload[T any] struct {
	Entries []T
}

// BatchPool recycles batch payloads of one entry type
type BatchPool[T any] struct {
	pool sync.Pool
}

func NewBatchPool[T any](defaultCap int) *BatchPool[T] {
	return &BatchPool[T]{
		pool: sync.Pool{
			New: func() any {
				return &BatchPayload[T]{
					Entries: make([]T, 0, defaultCap),
				}
			},
		},
	}
}

// Acquire returns a payload with an empty slice of retained capacity
func (p *BatchPool[T]) Acquire() *BatchPayload[T] {
	bp := p.pool.Get().(*BatchPayload[T])
	bp.Entries = bp.Entries[:0]
	return bp
}

func (p *BatchPool[T]) Release(bp *BatchPayload[T]) {
	if bp == nil {
		return
	}
	bp.Entries = bp.Entries[:0]
	p.pool.Put(bp)
}

// Pusher accepts events; EventQueue is the production implementation
type Pusher interface {
	Push(GameEvent)
}

// EmitBatch copies entries into a pooled payload and pushes one event; empty batches are dropped
func EmitBatch[T any](q Pusher, pool *BatchPool[T], eventType EventType, entries []T, frame int64) {
	if len(entries) == 0 {
		return
	}
	p := pool.Acquire()
	p.Entries = append(p.Entries, entries...)
	q.Push(GameEvent{
		Type:    eventType,
		Payload: p,
		Frame:   frame,
	})
}

// KillBatchPool backs EventEnemyKilled payloads
var KillBatchPool = NewBatchPool[component.Impact](64)

// Release returns a pooled payload once every consumer has handled the event
func Release(ev GameEvent) {
	if p, ok := ev.Payload.(*BatchPayload[component.Impact]); ok {
		KillBatchPool.Release(p)
	}
}
