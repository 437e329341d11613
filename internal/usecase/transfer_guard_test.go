package usecase

import (
	"testing"
	"time"
)

func TestTransferGuard_OneShot(t *testing.T) {
	g := NewTransferGuard(2 * time.Second)

	gen, ok := g.TryBegin()
	if !ok {
		t.Fatal("first TryBegin must succeed")
	}
	if _, ok := g.TryBegin(); ok {
		t.Fatal("TryBegin must fail while a transfer is in flight")
	}

	g.Finish(gen)
	if _, ok := g.TryBegin(); ok {
		t.Fatal("TryBegin must fail during cooldown")
	}
}

func TestTransferGuard_CooldownExpires(t *testing.T) {
	g := NewTransferGuard(2 * time.Second)
	now := time.Now()
	g.now = func() time.Time { return now }

	gen, _ := g.TryBegin()
	g.Finish(gen)

	now = now.Add(time.Second)
	if _, ok := g.TryBegin(); ok {
		t.Fatal("cooldown must still hold after 1s")
	}

	now = now.Add(1500 * time.Millisecond)
	gen2, ok := g.TryBegin()
	if !ok {
		t.Fatal("TryBegin must succeed once the cooldown window elapsed")
	}
	if gen2 <= gen {
		t.Fatalf("generation must be monotonic: %d then %d", gen, gen2)
	}
}

func TestTransferGuard_AbortSkipsCooldown(t *testing.T) {
	g := NewTransferGuard(time.Minute)

	gen, _ := g.TryBegin()
	g.Abort(gen)

	if _, ok := g.TryBegin(); !ok {
		t.Fatal("TryBegin must succeed immediately after an abort")
	}
}

func TestTransferGuard_StaleGenerationIgnored(t *testing.T) {
	g := NewTransferGuard(time.Minute)

	gen, _ := g.TryBegin()
	g.Abort(gen)
	gen2, _ := g.TryBegin()

	// Finishing or aborting with the stale generation must not touch the
	// in-flight attempt.
	g.Finish(gen)
	g.Abort(gen)
	if g.state != transferInFlight {
		t.Fatalf("stale generation mutated guard state: %v", g.state)
	}

	g.Finish(gen2)
	if g.state != transferCooldown {
		t.Fatalf("expected cooldown after finishing current generation, got %v", g.state)
	}
}
