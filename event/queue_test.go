package event

import (
	"sync"
	"testing"

	"github.com/seltf/shape-game/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventType(i)})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Type != EventType(i) {
			t.Errorf("Position %d: expected type %d, got %d", i, i, ev.Type)
		}
	}

	if extra := q.Consume(); extra != nil {
		t.Errorf("Expected drained queue, got %d events", len(extra))
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 20

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(GameEvent{Type: EventSoundRequest})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()

	const extra = 5
	for i := 0; i < parameter.EventQueueSize+extra; i++ {
		q.Push(GameEvent{Type: EventSoundRequest, Payload: i})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events at capacity, got %d", parameter.EventQueueSize, len(events))
	}
	// The oldest pushes are gone; the survivors stay in order
	for i, ev := range events {
		if ev.Payload != i+extra {
			t.Errorf("Position %d: expected payload %d, got %v", i, i+extra, ev.Payload)
		}
	}
}

type recordingHandler struct {
	types    []EventType
	received []GameEvent
}

func (h *recordingHandler) EventTypes() []EventType  { return h.types }
func (h *recordingHandler) HandleEvent(ev GameEvent) { h.received = append(h.received, ev) }

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	sound := &recordingHandler{types: []EventType{EventSoundRequest}}
	combat := &recordingHandler{types: []EventType{EventFireRequest, EventEnemyKilled}}
	r.Register(sound)
	r.Register(combat)

	q.Push(GameEvent{Type: EventSoundRequest})
	q.Push(GameEvent{Type: EventFireRequest})
	q.Push(GameEvent{Type: EventEnemyKilled})
	q.Push(GameEvent{Type: EventGameReset}) // no handler registered

	r.DispatchAll()

	if len(sound.received) != 1 {
		t.Errorf("Expected 1 sound event, got %d", len(sound.received))
	}
	if len(combat.received) != 2 {
		t.Errorf("Expected 2 combat events, got %d", len(combat.received))
	}
	if combat.received[0].Type != EventFireRequest {
		t.Errorf("Expected FIFO dispatch, got type %d first", combat.received[0].Type)
	}

	// Dispatch drains the queue
	r.DispatchAll()
	if len(sound.received) != 1 {
		t.Errorf("Expected no re-delivery, got %d", len(sound.received))
	}
}

func TestRouterMultipleHandlersSameType(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	first := &recordingHandler{types: []EventType{EventLevelUp}}
	second := &recordingHandler{types: []EventType{EventLevelUp}}
	r.Register(first)
	r.Register(second)

	if r.HandlerCount(EventLevelUp) != 2 {
		t.Errorf("Expected 2 handlers, got %d", r.HandlerCount(EventLevelUp))
	}

	q.Push(GameEvent{Type: EventLevelUp})
	r.DispatchAll()

	if len(first.received) != 1 || len(second.received) != 1 {
		t.Errorf("Expected both handlers to receive the event, got %d and %d",
			len(first.received), len(second.received))
	}
}
