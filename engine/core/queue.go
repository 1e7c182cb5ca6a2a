package core

// EventQueue holds one frame's ordered events. Consumers remove what they handle
// so later consumers in the same frame do not see it again.
type EventQueue struct{ list []Event }

func (q *EventQueue) Push(ev Event) { q.list = append(q.list, ev) }
func (q *EventQueue) Len() int      { return len(q.list) }
func (q *EventQueue) At(i int) Event { return q.list[i] }

// Events returns the pending events. Valid until the next mutation.
func (q *EventQueue) Events() []Event { return q.list }

// Remove drops the event at index i keeping the order of the rest.
func (q *EventQueue) Remove(i int) {
	copy(q.list[i:], q.list[i+1:])
	q.list[len(q.list)-1] = nil
	q.list = q.list[:len(q.list)-1]
}

// Consume calls fn for every pending event in order and removes the ones it reports handled.
func (q *EventQueue) Consume(fn func(Event) bool) {
	kept := q.list[:0]
	for _, ev := range q.list {
		if !fn(ev) {
			kept = append(kept, ev)
		}
	}
	for i := len(kept); i < len(q.list); i++ {
		q.list[i] = nil
	}
	q.list = kept
}

// Reset empties the queue keeping its storage.
func (q *EventQueue) Reset() {
	clear(q.list)
	q.list = q.list[:0]
}
