// Package pulse implements the control-pulse engine: the named
// microcode primitives that read and write the CPU's write-line bus,
// and the aggregate register file they operate on.
//
// The Cpu type lives here, rather than in an outer orchestration
// package, because both the control pulses and the subinstruction
// tables built on top of them (package subinst) need a concrete type
// to operate on; putting it at this level of the dependency graph
// keeps pulse and subinst free of any import of the stepping logic
// that wraps them.
package pulse

import (
	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/register"
	"github.com/agc-core/agc/word"
)

// Cpu is the AGC's complete register file plus its erasable and fixed
// memory. Every control pulse receives a *Cpu and mutates it directly.
type Cpu struct {
	// Visible registers.
	A, L, Q, Z word.Word // W16
	EBank      word.Word // W3
	FBank      word.Word // W5

	// Hidden registers.
	B, G word.Word // W16
	S    word.Word // W12
	SQ   register.SequenceRegister
	ST   word.Word // W3
	X, Y word.Word // W16
	CI   bool
	BR   register.BranchRegister

	// Framework flags.
	Ext               bool
	Nisq              bool
	InhibitInterrupts bool
	NextST            word.Word // W3, OR-accumulator for the next MCT's ST
	CurrentS          word.Word // W12, T1 snapshot of S

	// RuptRequested records WOVR's stubbed interrupt request so callers
	// can observe it; no interrupt subsystem consumes it yet.
	RuptRequested bool

	// T is the current time pulse, 1..12.
	T int

	Erasable *memory.Erasable
	Fixed    *memory.Fixed
}

// NewCpu builds a Cpu booted against fixed, with ST = 001(2) (the stage
// that selects GOJ1 under opcode 000), CI = 1, and every other register
// zero, per the documented boot sequence.
func NewCpu(fixed *memory.Fixed) *Cpu {
	return &Cpu{
		A: word.W16(0), L: word.W16(0), Q: word.W16(0), Z: word.W16(0),
		EBank: word.W3(0), FBank: word.W5(0),
		B: word.W16(0), G: word.W16(0),
		S:  word.W12(0),
		SQ: register.NewSequenceRegister(word.W6(0), false),
		ST: word.W3(0o1),
		X:  word.W16(0), Y: word.W16(0),
		CI: true,
		BR: register.NewBranchRegister(word.W2(0)),

		NextST:   word.W3(0),
		CurrentS: word.W12(0),

		T: 1,

		Erasable: memory.NewErasable(),
		Fixed:    fixed,
	}
}
