package pulse

import (
	"github.com/agc-core/agc/adder"
	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/register"
	"github.com/agc-core/agc/word"
)

// Pulse is a named microcode primitive. WriteWL runs in phase A and
// returns a contribution OR'd into the write-line bus; ReadWL runs in
// phase B and observes the aggregated bus. A nil field is that phase's
// identity: a nil WriteWL contributes zero, a nil ReadWL does nothing.
type Pulse struct {
	Name    string
	WriteWL func(c *Cpu) word.Word
	ReadWL  func(c *Cpu, wl word.Word)
}

// WriteContribution runs p's write phase, treating a nil WriteWL as a
// zero contribution. Called by the step-function engine in package
// cpu during phase A.
func (p Pulse) WriteContribution(c *Cpu) word.Word {
	if p.WriteWL == nil {
		return word.W16(0)
	}
	return p.WriteWL(c)
}

// Observe runs p's read phase, treating a nil ReadWL as a no-op.
// Called by the step-function engine during phase B.
func (p Pulse) Observe(c *Cpu, wl word.Word) {
	if p.ReadWL == nil {
		return
	}
	p.ReadWL(c, wl)
}

// registerSelect reports whether s addresses one of the low central
// registers (S in 0..7), and if so its low 3 bits.
func registerSelect(s word.Word) (low3 word.Word, ok bool) {
	addr := memory.Addr(s)
	if addr.Category != memory.CategoryRegister {
		return word.W3(0), false
	}
	return addr.Register, true
}

var (
	// CI sets the carry-in latch. Write-only.
	CI = Pulse{
		Name: "CI",
		WriteWL: func(c *Cpu) word.Word {
			c.CI = true
			return word.W16(0)
		},
	}

	// NISQ requests a reload of SQ at the next T12. Write-only.
	NISQ = Pulse{
		Name: "NISQ",
		WriteWL: func(c *Cpu) word.Word {
			c.Nisq = true
			return word.W16(0)
		},
	}

	// PONEX sets X to 1. Read-only.
	PONEX = Pulse{
		Name: "PONEX",
		ReadWL: func(c *Cpu, _ word.Word) {
			c.X = word.W16(1)
		},
	}

	// RAD reads a branch argument from G and optionally mutates
	// framework flags, requesting the ST2 stage on a match.
	RAD = Pulse{
		Name: "RAD",
		WriteWL: func(c *Cpu) word.Word {
			switch c.G.AsU16() {
			case 0o3:
				c.InhibitInterrupts = false
			case 0o4:
				c.InhibitInterrupts = true
			case 0o6:
				c.Ext = true
			default:
				return c.G
			}
			c.NextST = c.NextST.OrU16(0b010)
			return c.Z
		},
	}

	// R1C returns the fixed constant 0o177776. Write-only.
	R1C = Pulse{Name: "R1C", WriteWL: func(c *Cpu) word.Word { return word.W16(0o177776) }}

	// RB1 returns the constant 1. Write-only.
	RB1 = Pulse{Name: "RB1", WriteWL: func(c *Cpu) word.Word { return word.W16(1) }}

	// RA returns A. Write-only.
	RA = Pulse{Name: "RA", WriteWL: func(c *Cpu) word.Word { return c.A }}

	// RB returns B. Write-only.
	RB = Pulse{Name: "RB", WriteWL: func(c *Cpu) word.Word { return c.B }}

	// RC returns the one's complement of B. Write-only.
	RC = Pulse{Name: "RC", WriteWL: func(c *Cpu) word.Word { return word.W16(^c.B.AsU16() & 0xffff) }}

	// RG returns G. Write-only.
	RG = Pulse{Name: "RG", WriteWL: func(c *Cpu) word.Word { return c.G }}

	// RZ returns Z. Write-only.
	RZ = Pulse{Name: "RZ", WriteWL: func(c *Cpu) word.Word { return c.Z }}

	// RL10BB returns the low 10 bits of B. Write-only.
	RL10BB = Pulse{Name: "RL10BB", WriteWL: func(c *Cpu) word.Word { return word.W16(c.B.AsU16() & 0x3ff) }}

	// RSC returns a central register selected by S's low 3 bits,
	// zero if S does not address a central register.
	RSC = Pulse{
		Name: "RSC",
		WriteWL: func(c *Cpu) word.Word {
			low3, ok := registerSelect(c.S)
			if !ok {
				return word.W16(0)
			}
			switch low3.AsU16() {
			case 0:
				return c.A
			case 1:
				return c.L
			case 2:
				return c.Q
			case 3:
				return word.W16(c.EBank.AsU16() << 8)
			case 4:
				return word.W16(c.FBank.AsU16() << 10)
			case 5:
				return c.Z
			case 6:
				return word.W16((c.EBank.AsU16()) | (c.FBank.AsU16() << 10))
			default:
				return word.W16(0)
			}
		},
	}

	// RSTRT returns the fixed constant 0o4000. Write-only.
	RSTRT = Pulse{Name: "RSTRT", WriteWL: func(c *Cpu) word.Word { return word.W16(0o4000) }}

	// RU returns the adder's output, U = X + Y + CI.
	RU = Pulse{
		Name: "RU",
		WriteWL: func(c *Cpu) word.Word {
			sum, _ := adder.Add(c.X, c.Y, c.CI)
			return sum
		},
	}

	// ST1 requests stage 001 at the next T12. Read-only: it ORs into
	// next_st during phase B like the other stage-request pulses.
	ST1 = Pulse{Name: "ST1", ReadWL: func(c *Cpu, _ word.Word) { c.NextST = c.NextST.OrU16(0o001) }}

	// ST2 requests stage 010 at the next T12.
	ST2 = Pulse{Name: "ST2", ReadWL: func(c *Cpu, _ word.Word) { c.NextST = c.NextST.OrU16(0b010) }}

	// TMZ sets BR2 when wl is all 16 ones, the AGC's "minus zero" test.
	TMZ = Pulse{
		Name: "TMZ",
		ReadWL: func(c *Cpu, wl word.Word) {
			if wl.AsU16() == 0o177777 {
				c.BR = c.BR.SetBR2(true)
			}
		},
	}

	// TOV sets BR from wl's top two bits when they disagree (the
	// overflow pattern), else clears BR.
	TOV = Pulse{
		Name: "TOV",
		ReadWL: func(c *Cpu, wl word.Word) {
			hi2 := (wl.AsU16() >> 14) & 0b11
			if hi2 == 0b01 || hi2 == 0b10 {
				c.BR = register.NewBranchRegister(word.W2(hi2))
			} else {
				c.BR = register.NewBranchRegister(word.W2(0))
			}
		},
	}

	// TPZG sets BR2 when G is zero; it never clears BR2.
	TPZG = Pulse{
		Name: "TPZG",
		ReadWL: func(c *Cpu, _ word.Word) {
			if c.G.AsU16() == 0 {
				c.BR = c.BR.SetBR2(true)
			}
		},
	}

	// TSGN sets BR1 from wl's sign bit (bit 15).
	TSGN = Pulse{
		Name: "TSGN",
		ReadWL: func(c *Cpu, wl word.Word) {
			c.BR = c.BR.SetBR1(wl.Get(15))
		},
	}

	// WA loads A from wl.
	WA = Pulse{Name: "WA", ReadWL: func(c *Cpu, wl word.Word) { c.A = wl }}

	// WB loads B from wl.
	WB = Pulse{Name: "WB", ReadWL: func(c *Cpu, wl word.Word) { c.B = wl }}

	// WG loads G from wl.
	WG = Pulse{Name: "WG", ReadWL: func(c *Cpu, wl word.Word) { c.G = wl }}

	// WQ loads Q from wl.
	WQ = Pulse{Name: "WQ", ReadWL: func(c *Cpu, wl word.Word) { c.Q = wl }}

	// WZ loads Z from wl.
	WZ = Pulse{Name: "WZ", ReadWL: func(c *Cpu, wl word.Word) { c.Z = wl }}

	// WY clears X and loads Y from wl.
	WY = Pulse{
		Name: "WY",
		ReadWL: func(c *Cpu, wl word.Word) {
			c.X = word.W16(0)
			c.Y = wl
		},
	}

	// WY12 clears X, Y and CI in its write phase, then loads the low
	// 12 bits of wl into Y in its read phase.
	WY12 = Pulse{
		Name: "WY12",
		WriteWL: func(c *Cpu) word.Word {
			c.X = word.W16(0)
			c.Y = word.W16(0)
			c.CI = false
			return word.W16(0)
		},
		ReadWL: func(c *Cpu, wl word.Word) {
			c.Y = word.W16(wl.AsU16() & 0o7777)
		},
	}

	// WS loads the low 12 bits of wl into S.
	WS = Pulse{Name: "WS", ReadWL: func(c *Cpu, wl word.Word) { c.S = word.W12(wl.AsU16() & 0xfff) }}

	// WSC writes a central register selected by S's low 3 bits,
	// a no-op if S does not address a central register.
	WSC = Pulse{
		Name: "WSC",
		ReadWL: func(c *Cpu, wl word.Word) {
			low3, ok := registerSelect(c.S)
			if !ok {
				return
			}
			v := wl.AsU16()
			switch low3.AsU16() {
			case 0:
				c.A = wl
			case 1:
				c.L = wl
			case 2:
				c.Q = wl
			case 3:
				c.EBank = word.W3((v >> 8) & 0b111)
			case 4:
				c.FBank = word.W5((v >> 10) & 0b11111)
			case 5:
				c.Z = wl
			case 6:
				c.EBank = word.W3(v & 0b111)
				c.FBank = word.W5((v >> 10) & 0b11111)
			default:
				// 7: no-op.
			}
		},
	}

	// WOVR requests an overflow interrupt on a limited set of
	// addresses when wl's top two bits read 01; the request itself is
	// a stub, recorded only as an observable flag.
	WOVR = Pulse{
		Name: "WOVR",
		ReadWL: func(c *Cpu, wl word.Word) {
			hi2 := (wl.AsU16() >> 14) & 0b11
			if hi2 != 0b01 {
				return
			}
			switch c.S.AsU16() {
			case 0o26, 0o27, 0o30:
				c.RuptRequested = true
			}
		},
	}

	// RCH is an unimplemented I/O channel read; it contributes nothing.
	RCH = Pulse{Name: "RCH"}

	// WCH is an unimplemented I/O channel write; it observes nothing.
	WCH = Pulse{Name: "WCH"}
)
