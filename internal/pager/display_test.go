package pager

import "testing"

func TestChannelSharedInstance(t *testing.T) {
	Shared().Reset()
	defer Shared().Reset()

	first := Shared()
	second := Shared()
	if first != second {
		t.Fatalf("Shared must return one instance, got distinct pointers")
	}
	first.Set("Genesis", "3")
	got := second.Current()
	if got.Primary != "Genesis" || got.Secondary != "3" {
		t.Fatalf("second reader observed %+v", got)
	}
}

func TestChannelLastWriteWins(t *testing.T) {
	ch := &Channel{}
	ch.Set("Genesis", "1")
	ch.Set("Revelation", "20")
	got := ch.Current()
	if got.Primary != "Revelation" || got.Secondary != "20" {
		t.Fatalf("got %+v, want last write", got)
	}
}

func TestChannelReset(t *testing.T) {
	ch := &Channel{}
	ch.Set("John", "3")
	ch.Reset()
	if got := ch.Current(); got != (Position{}) {
		t.Fatalf("reset left %+v", got)
	}
}
