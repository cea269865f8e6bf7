package event

import (
	"sync"

	"github.com/seltf/shape-game/parameter"
)

// Queue is a bounded ring buffer for game events. Producers are the
// systems and the input thread; the game loop drains it once per tick.
// When full, the oldest unread event is dropped
type Queue struct {
	mu    sync.Mutex
	buf   [parameter.EventQueueSize]GameEvent
	head  int // oldest unread event
	count int
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, overwriting the oldest one when full
func (q *Queue) Push(event GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == len(q.buf) {
		q.buf[q.head] = event
		q.head = (q.head + 1) % len(q.buf)
		return
	}
	q.buf[(q.head+q.count)%len(q.buf)] = event
	q.count++
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	result := make([]GameEvent, q.count)
	for i := range result {
		idx := (q.head + i) % len(q.buf)
		result[i] = q.buf[idx]
		q.buf[idx] = GameEvent{} // release payload references
	}
	q.head = 0
	q.count = 0
	return result
}
