package usecase

import (
	"sync"
	"time"
)

type transferState int

const (
	transferIdle transferState = iota
	transferInFlight
	transferCooldown
)

// TransferGuard is the one-shot guard around a cart transfer. It is a small
// state machine {idle, transferring, cooldown} with a monotonic generation
// counter: TryBegin only succeeds from idle (or after the cooldown window has
// elapsed), so a transfer re-triggered by observing the same cart update twice
// cannot re-apply before its own clearing of the source cart is visible.
type TransferGuard struct {
	mu         sync.Mutex
	state      transferState
	generation uint64
	cooldown   time.Duration
	armedUntil time.Time
	now        func() time.Time
}

func NewTransferGuard(cooldown time.Duration) *TransferGuard {
	return &TransferGuard{cooldown: cooldown, now: time.Now}
}

// TryBegin moves idle -> transferring and returns the generation of the
// attempt. It returns false while a transfer is in flight or cooling down.
func (g *TransferGuard) TryBegin() (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == transferCooldown && !g.now().Before(g.armedUntil) {
		g.state = transferIdle
	}
	if g.state != transferIdle {
		return 0, false
	}
	g.generation++
	g.state = transferInFlight
	return g.generation, true
}

// Finish moves transferring -> cooldown for the attempt that began with gen.
// Stale generations are ignored.
func (g *TransferGuard) Finish(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != transferInFlight || gen != g.generation {
		return
	}
	g.state = transferCooldown
	g.armedUntil = g.now().Add(g.cooldown)
}

// Abort returns transferring -> idle without arming the cooldown, for
// attempts that moved no data (empty cart, infrastructure error).
func (g *TransferGuard) Abort(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != transferInFlight || gen != g.generation {
		return
	}
	g.state = transferIdle
}

// transferGuards hands out one guard per table.
type transferGuards struct {
	mu       sync.Mutex
	cooldown time.Duration
	byTable  map[string]*TransferGuard
}

func newTransferGuards(cooldown time.Duration) *transferGuards {
	return &transferGuards{cooldown: cooldown, byTable: make(map[string]*TransferGuard)}
}

func (r *transferGuards) forTable(tableID string) *TransferGuard {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.byTable[tableID]
	if !ok {
		g = NewTransferGuard(r.cooldown)
		r.byTable[tableID] = g
	}
	return g
}
