package cpu

import (
	"testing"

	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/memword"
	"github.com/agc-core/agc/register"
	"github.com/agc-core/agc/word"
)

func TestBootSubinstructionIsGOJ1(t *testing.T) {
	cpu := New(memory.NewFixed())
	if got := cpu.CurrentSubinstructionName(); got != "GOJ1" {
		t.Fatalf("boot subinstruction = %s, want GOJ1", got)
	}
}

// TestBootMCTRunsGOJAM replays the boot MCT: starting from a fresh CPU
// (ST=001, CI=1), GOJ1's T8 pulse loads both S and B with the reset
// constant 04000. GOJ1 never sets next_st, so the stage counter falls
// back to 0 and the following subinstruction is TC0 (order code 000,
// st 000), not a freshly fetched instruction.
func TestBootMCTRunsGOJAM(t *testing.T) {
	cpu := New(memory.NewFixed())

	cpu.StepSubinstruction()

	if got := cpu.S.AsU16(); got != 0o4000 {
		t.Errorf("S = %o, want 04000", got)
	}
	if got := cpu.B.AsU16(); got != 0o4000 {
		t.Errorf("B = %o, want 04000", got)
	}
	if got := cpu.CurrentSubinstructionName(); got != "TC0" {
		t.Errorf("next subinstruction = %s, want TC0", got)
	}
}

func TestReadErasableUnswitchedAtT4(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.Erasable.Set(1, 5, memword.WithProperParity(word.W15(0o12345)))
	cpu.CurrentS = word.W12(0o405) // bits 10:8 = 001 -> unswitched bank 1, offset 5

	cpu.T = 4
	cpu.readErasable()

	if got := cpu.G.AsU16(); got != 0o12345 {
		t.Errorf("G = %o, want 012345", got)
	}
}

func TestReadErasableSwitchedUsesEBank(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.EBank = word.W3(5)
	cpu.Erasable.Set(5, 9, memword.WithProperParity(word.W15(0o777)))
	cpu.CurrentS = word.W12(0o1411) // bits 9:8 = 11 -> switched erasable, offset 9

	cpu.readErasable()

	if got := cpu.G.AsU16(); got != 0o777 {
		t.Errorf("G = %o, want 0777", got)
	}
}

func TestReadFixedSwitchedUsesFBankNotEBank(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.EBank = word.W3(1)
	cpu.FBank = word.W5(7)
	cpu.Fixed.Set(7, 42, memword.WithProperParity(word.W15(0o54321)))
	cpu.CurrentS = word.W12(0o2052) // top 2 bits 0b01 -> switched fixed, offset 052

	cpu.readFixed()

	// 054321 has bit 14 set, so the register load sign-extends it.
	if got := cpu.G.AsU16(); got != 0o154321 {
		t.Errorf("G = %o, want 0154321 (read via FBank)", got)
	}
}

func TestReadFixedUnswitchedUsesRawBank(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.Fixed.Set(2, 1, memword.WithProperParity(word.W15(0o1111)))
	cpu.CurrentS = word.W12(0o4001) // top 2 bits 0b10 -> unswitched fixed bank 2

	cpu.readFixed()

	if got := cpu.G.AsU16(); got != 0o1111 {
		t.Errorf("G = %o, want 01111", got)
	}
}

func TestWriteErasableUnswitchedAtT10(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.CurrentS = word.W12(0o405) // unswitched bank 1, offset 5
	cpu.G = word.W16(0o6000)

	cpu.writeErasable()

	got := cpu.Erasable.Get(1, 5)
	if got.Value().AsU16() != 0o6000 {
		t.Errorf("stored value = %o, want 06000", got.Value().AsU16())
	}
	if !got.IsValid() {
		t.Error("erasable write must carry proper parity")
	}
}

func TestWriteErasableIgnoresNonErasableAddress(t *testing.T) {
	cpu := New(memory.NewFixed())
	before := cpu.Fixed.Get(2, 1)
	cpu.CurrentS = word.W12(0o4001) // unswitched fixed: not writable via this path
	cpu.G = word.W16(0o1234)

	cpu.writeErasable()

	if got := cpu.Fixed.Get(2, 1); got != before {
		t.Error("writeErasable must not touch fixed memory")
	}
}

func TestT12HousekeepingReloadsSQAndClearsExt(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.Nisq = true
	cpu.Ext = true
	cpu.B = word.W16(0b111_011 << 9)
	cpu.NextST = word.W3(0o2)
	cpu.S = word.W12(0o1234)

	cpu.t12Housekeeping()

	if cpu.Nisq {
		t.Error("Nisq should be cleared")
	}
	if cpu.Ext {
		t.Error("Ext should be cleared after an NISQ-triggered reload")
	}
	if got := cpu.SQ.OrderCode().AsU16(); got != 0b111 {
		t.Errorf("reloaded order code = %o, want 111", got)
	}
	if got := cpu.SQ.ExtendedCode().AsU16(); got != 0b011 {
		t.Errorf("reloaded extended code = %o, want 011", got)
	}
	if got := cpu.CurrentS.AsU16(); got != 0o1234 {
		t.Errorf("CurrentS = %o, want 01234", got)
	}
	if got := cpu.ST.AsU16(); got != 0o2 {
		t.Errorf("ST = %o, want 2", got)
	}
	if cpu.NextST.AsU16() != 0 {
		t.Error("NextST should be cleared after being applied")
	}
}

func TestT12HousekeepingWithoutNisqLeavesSQAlone(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.SQ = register.NewSequenceRegister(word.W6(0o17), false)
	cpu.Nisq = false

	cpu.t12Housekeeping()

	if got := cpu.SQ.Inner().AsU16(); got != 0o17 {
		t.Errorf("SQ should be unchanged, got %o", got)
	}
}

func TestStepControlPulseAdvancesAndWraps(t *testing.T) {
	cpu := New(memory.NewFixed())
	cpu.T = 12
	cpu.StepControlPulse()
	if cpu.T != 1 {
		t.Errorf("T after wraparound = %d, want 1", cpu.T)
	}
}
