package register

import (
	"testing"

	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/word"
)

func TestSequenceRegisterSplit(t *testing.T) {
	// 6-bit opcode 0b111_011 splits into order code (bits 5:3) = 0b111
	// and extended code (bits 2:0) = 0b011.
	sq := NewSequenceRegister(word.W6(0b111_011), true)
	if got, want := sq.OrderCode().AsU16(), uint16(0b111); got != want {
		t.Errorf("order code: got %o want %o", got, want)
	}
	if got, want := sq.ExtendedCode().AsU16(), uint16(0b011); got != want {
		t.Errorf("extended code: got %o want %o", got, want)
	}
	if !sq.IsExtended() {
		t.Error("expected extend latch set")
	}
}

func TestSequenceRegisterSetExtended(t *testing.T) {
	sq := NewSequenceRegister(word.W6(0), false)
	sq = sq.SetExtended(true)
	if !sq.IsExtended() {
		t.Error("SetExtended(true) should set the latch")
	}
	sq = sq.SetExtended(false)
	if sq.IsExtended() {
		t.Error("SetExtended(false) should clear the latch")
	}
}

func TestAddressRegisterDecode(t *testing.T) {
	s := NewAddressRegister(word.W12(0o0005))
	addr := s.Address()
	if addr.Category != memory.CategoryRegister {
		t.Fatalf("got category %v want Register", addr.Category)
	}
}

func TestBranchRegisterLatches(t *testing.T) {
	br := NewBranchRegister(word.W2(0))
	if br.BR1() || br.BR2() {
		t.Fatal("latches should start clear")
	}
	br = br.SetBR1(true)
	if !br.BR1() || br.BR2() {
		t.Errorf("expected BR1 set, BR2 clear: %v", br)
	}
	br = br.SetBR2(true)
	if !br.BR1() || !br.BR2() {
		t.Errorf("expected both set: %v", br)
	}
	br = br.Reset()
	if br.BR1() || br.BR2() {
		t.Error("Reset should clear both latches")
	}
}
