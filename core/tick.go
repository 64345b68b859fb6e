package core

// EventKind classifies what happened during a tick
type EventKind uint8

const (
	EventTouch      EventKind = iota // registered slime contact, touch consumed
	EventTouchLimit                  // contact with no touches left, rally lost
	EventContact                     // impulse applied while touch debounce was active
	EventNet                         // ball bounced off the net
	EventWall                        // ball bounced off a side wall or the ceiling
	EventFloor                       // ball reached the floor, rally lost
	EventSideChange                  // ball crossed to the other half, touches refreshed
	EventJump
)

var eventKindNames = [...]string{
	EventTouch:      "touch",
	EventTouchLimit: "touch_limit",
	EventContact:    "contact",
	EventNet:        "net",
	EventWall:       "wall",
	EventFloor:      "floor",
	EventSideChange: "side_change",
	EventJump:       "jump",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is one notable physics occurrence
// Slime is meaningful for touch, contact and jump events
type Event struct {
	Kind  EventKind
	Step  int
	Slime SlimeID
	Side  Side
}

// TickContext carries cross-cutting per-tick data through the pipeline
// One context spans a Step call; Tick and Actions are refreshed per tick
type TickContext struct {
	Tick    int
	Actions Actions
	Events  []Event
}

// Emit records an event for the current tick
func (c *TickContext) Emit(kind EventKind, slime SlimeID, side Side) {
	if c == nil {
		return
	}
	c.Events = append(c.Events, Event{Kind: kind, Step: c.Tick, Slime: slime, Side: side})
}

// Reset clears events while keeping capacity
func (c *TickContext) Reset() {
	c.Tick = 0
	c.Actions = nil
	c.Events = c.Events[:0]
}
