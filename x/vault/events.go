package vault

import (
	"sync"

	"github.com/google/uuid"
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
)

const (
	pathLockedEvent  = "vault/locked"
	pathClaimedEvent = "vault/claimed"
)

// Event is a notification produced by a successful ledger transition.
type Event interface {
	// Path names the event kind for routing by observers.
	Path() string
}

var _ Event = LockedEvent{}
var _ Event = ClaimedEvent{}

// LockedEvent is emitted once per successful Lock call.
type LockedEvent struct {
	// LockID identifies the lock cycle. The matching ClaimedEvent
	// carries the same id.
	LockID   uuid.UUID
	Source   vesting.Address
	Receiver vesting.Address
	Amount   coin.Coin
	Expiry   vesting.UnixTime
}

func (LockedEvent) Path() string {
	return pathLockedEvent
}

// ClaimedEvent is emitted once per successful Claim call.
type ClaimedEvent struct {
	LockID   uuid.UUID
	Receiver vesting.Address
	Amount   coin.Coin
}

func (ClaimedEvent) Path() string {
	return pathClaimedEvent
}

// Emitter receives ledger notifications. The ledger calls Emit while
// holding its lock, so implementations must not call back into the ledger.
type Emitter interface {
	Emit(ev Event)
}

// NopEmitter discards all events.
type NopEmitter struct{}

var _ Emitter = NopEmitter{}

func (NopEmitter) Emit(Event) {}

// Recorder is an Emitter keeping all events in memory, in emission order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ Emitter = (*Recorder)(nil)

func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of all events recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event{}, r.events...)
}
