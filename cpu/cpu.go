// Package cpu wires the control-pulse engine (package pulse) and the
// static subinstruction table (package subinst) into the two stepping
// operations that advance the machine: one time pulse at a time, or one
// full subinstruction (MCT) at a time.
package cpu

import (
	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/memword"
	"github.com/agc-core/agc/pulse"
	"github.com/agc-core/agc/register"
	"github.com/agc-core/agc/subinst"
	"github.com/agc-core/agc/word"
)

// Cpu is the complete stepping machine: the register file and memory
// from package pulse, plus the decode/dispatch loop that drives it.
type Cpu struct {
	*pulse.Cpu
}

// New builds a Cpu booted against fixed, ready to execute a GOJAM.
func New(fixed *memory.Fixed) *Cpu {
	return &Cpu{Cpu: pulse.NewCpu(fixed)}
}

// CurrentSubinstruction decodes the subinstruction selected by the
// current stage counter and sequence register.
func (c *Cpu) CurrentSubinstruction() *subinst.Subinstruction {
	return subinst.Decode(c.ST, c.SQ)
}

// CurrentSubinstructionName returns the name of the subinstruction the
// machine is currently executing.
func (c *Cpu) CurrentSubinstructionName() string {
	return c.CurrentSubinstruction().Name
}

// executeControlPulses runs every gated action for the given time
// pulse's action list: all write phases first, OR'd onto a local
// write-line bus, then all read phases observing that bus, both in
// list order and both skipping actions whose guard doesn't fire under
// the branch register as of step entry. The guard is evaluated once
// against that snapshot, not reread per phase, so a read-phase pulse
// that mutates BR (TSGN, TOV, TMZ, TPZG) never changes which actions
// fire later in the same time pulse.
func executeControlPulses(c *Cpu, actions subinst.Actions) {
	br := c.BR
	fire := make([]bool, len(actions))
	for i, a := range actions {
		fire[i] = a.Guard.Evaluate(br)
	}

	wl := word.W16(0)
	for i, a := range actions {
		if fire[i] {
			wl = wl.Or(a.Pulse.WriteContribution(c.Cpu))
		}
	}
	for i, a := range actions {
		if fire[i] {
			a.Pulse.Observe(c.Cpu, wl)
		}
	}
}

// StepControlPulse advances the machine by exactly one time pulse: it
// runs the current subinstruction's action list for the current T,
// performs that pulse's memory side effect if any, applies T12
// housekeeping, and advances T (T12 wraps to T1).
func (c *Cpu) StepControlPulse() {
	executeControlPulses(c, c.CurrentSubinstruction().Actions(c.T))

	switch c.T {
	case 4:
		c.readErasable()
	case 6:
		c.readFixed()
	case 10:
		c.writeErasable()
	case 12:
		c.t12Housekeeping()
	}

	c.T = c.T%12 + 1
}

// StepSubinstruction runs at least one control pulse, then continues
// until the machine returns to T1: one full MCT.
func (c *Cpu) StepSubinstruction() {
	c.StepControlPulse()
	for c.T != 1 {
		c.StepControlPulse()
	}
}

// readErasable performs T4's erasable memory read into G, addressed by
// current_s (the S value latched at the start of this MCT): unswitched
// addresses use their own bank, switched addresses use EBank. Any other
// address category leaves G untouched.
func (c *Cpu) readErasable() {
	addr := memory.Addr(c.CurrentS)
	switch addr.Category {
	case memory.CategoryUnswitchedErasable:
		c.G = c.Erasable.Get(int(addr.Bank.AsU16()), int(addr.Offset.AsU16())).AsRegisterValue()
	case memory.CategorySwitchedErasable:
		c.G = c.Erasable.Get(int(c.EBank.AsU16()), int(addr.Offset.AsU16())).AsRegisterValue()
	}
}

// readFixed performs T6's fixed memory read into G, addressed by
// current_s. Switched addresses use FBank, not EBank: the reference
// engine reads EBank here, a bug this implementation does not
// reproduce.
func (c *Cpu) readFixed() {
	addr := memory.Addr(c.CurrentS)
	switch addr.Category {
	case memory.CategoryUnswitchedFixed:
		c.G = c.Fixed.Get(int(addr.Bank.AsU16()), int(addr.Offset.AsU16())).AsRegisterValue()
	case memory.CategorySwitchedFixed:
		c.G = c.Fixed.Get(int(c.FBank.AsU16()), int(addr.Offset.AsU16())).AsRegisterValue()
	}
}

// writeErasable performs T10's erasable memory write from G, addressed
// by current_s. Any other category (a register or fixed-memory
// address) is silently ignored: fixed memory is read-only and the
// central registers are written through WSC, not this path.
func (c *Cpu) writeErasable() {
	addr := memory.Addr(c.CurrentS)
	switch addr.Category {
	case memory.CategoryUnswitchedErasable:
		c.Erasable.Set(int(addr.Bank.AsU16()), int(addr.Offset.AsU16()), memword.WithProperParity(c.G.Narrow(15)))
	case memory.CategorySwitchedErasable:
		c.Erasable.Set(int(c.EBank.AsU16()), int(addr.Offset.AsU16()), memword.WithProperParity(c.G.Narrow(15)))
	}
}

// t12Housekeeping runs the T12 end-of-MCT bookkeeping: reloading SQ
// when NISQ was requested, snapshotting current_s for the next MCT,
// and applying the next stage counter.
func (c *Cpu) t12Housekeeping() {
	if c.Nisq {
		c.SQ = register.NewSequenceRegister(c.B.Shr(9).Narrow(6), c.Ext)
		c.Nisq = false
		c.Ext = false
	}

	c.CurrentS = c.S
	c.ST = c.NextST
	c.NextST = word.W3(0)
}
