package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-volley/parameter"
)

// EventQueue is a lock-free MPSC ring buffer between the frame systems and their consumers
// Push may be called from any goroutine; Consume only from the game loop
// A slot is readable once its published flag is set, so partial writes are never observed
// When full, the oldest unread events are overwritten
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Next slot to read
	tail      atomic.Uint64 // Next slot to claim
	dropped   atomic.Uint64 // Events lost to overwrite
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot by CAS on tail, writes it, then publishes
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true) // after the write

		// Overwrote an unread slot: drag head forward
		head := eq.head.Load()
		if next-head > parameter.EventQueueSize {
			if eq.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				eq.dropped.Add(1)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order, stopping at the first unpublished slot
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.events[idx])
			eq.events[idx] = GameEvent{}
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is an approximate pending count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
