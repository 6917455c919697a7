package geometry

const (
	OVERLAP_ENTER EventType = iota
	OVERLAP_STAY
	OVERLAP_EXIT
)

type EventType uint8

// Event is delivered to the listeners subscribed to its Type.
type Event interface {
	Type() EventType
}

// OverlapEnterEvent reports a pair overlapping now but not at the previous
// flush.
type OverlapEnterEvent struct {
	Pair Pair
}

func (e OverlapEnterEvent) Type() EventType { return OVERLAP_ENTER }

// OverlapStayEvent reports a pair overlapping at both flushes.
type OverlapStayEvent struct {
	Pair Pair
}

func (e OverlapStayEvent) Type() EventType { return OVERLAP_STAY }

// OverlapExitEvent reports a pair that stopped overlapping.
type OverlapExitEvent struct {
	Pair Pair
}

func (e OverlapExitEvent) Type() EventType { return OVERLAP_EXIT }

type EventListener func(event Event)

// Events turns successive sets of overlapping pairs into enter, stay and
// exit notifications. Pairs are recorded between two calls to Flush, usually
// straight from Grid.FindPairs.
type Events struct {
	listeners map[EventType][]EventListener
	buffer    []Event

	previousPairs map[Pair]bool
	currentPairs  map[Pair]bool
}

func NewEvents() Events {
	return Events{
		listeners:     make(map[EventType][]EventListener),
		buffer:        make([]Event, 0, 256),
		previousPairs: make(map[Pair]bool),
		currentPairs:  make(map[Pair]bool),
	}
}

func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// Record marks pairs as overlapping for the current flush. (A, B) and
// (B, A) are the same pair; a box never pairs with itself.
func (e *Events) Record(pairs ...Pair) {
	for _, p := range pairs {
		if p.A == p.B {
			continue
		}
		if p.B < p.A {
			p.A, p.B = p.B, p.A
		}
		e.currentPairs[p] = true
	}
}

// processPairs compares current and previous pairs, enter and stay events
// first then exit events, each group sorted by pair.
func (e *Events) processPairs() {
	current := make([]Pair, 0, len(e.currentPairs))
	for p := range e.currentPairs {
		current = append(current, p)
	}
	sortPairs(current)

	for _, p := range current {
		if e.previousPairs[p] {
			e.buffer = append(e.buffer, OverlapStayEvent{Pair: p})
		} else {
			e.buffer = append(e.buffer, OverlapEnterEvent{Pair: p})
		}
	}

	var exited []Pair
	for p := range e.previousPairs {
		if !e.currentPairs[p] {
			exited = append(exited, p)
		}
	}
	sortPairs(exited)
	for _, p := range exited {
		e.buffer = append(e.buffer, OverlapExitEvent{Pair: p})
	}

	// swap for the next flush
	e.previousPairs, e.currentPairs = e.currentPairs, e.previousPairs
	clear(e.currentPairs)
}

// Flush sends every pending event to its listeners and starts a new frame.
func (e *Events) Flush() {
	e.processPairs()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
