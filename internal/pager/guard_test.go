package pager

import "testing"

func TestGuardEngageOnce(t *testing.T) {
	var g Guard
	if g.Active() {
		t.Fatalf("new guard should be idle")
	}
	if !g.Engage() {
		t.Fatalf("first engage should succeed")
	}
	if !g.Active() {
		t.Fatalf("guard should be active after engage")
	}
	if g.Engage() {
		t.Fatalf("second engage must be rejected while active")
	}
	g.Settle()
	if g.Active() {
		t.Fatalf("guard should be idle after settle")
	}
	if !g.Engage() {
		t.Fatalf("engage should succeed again after settle")
	}
}

func TestGuardSettleIdempotent(t *testing.T) {
	var g Guard
	g.Settle()
	g.Settle()
	if g.Active() {
		t.Fatalf("settling an idle guard should keep it idle")
	}
}
