// Package register implements the CPU's special-purpose registers: the
// sequence register, the address register (with its memory-category
// decode), and the branch latch pair.
package register

import (
	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/word"
)

// SequenceRegister is the 7-bit instruction register: the low 6 bits
// hold the order code (opcode), bit 6 is the extend latch.
type SequenceRegister struct {
	inner word.Word // W7
}

// NewSequenceRegister builds a SequenceRegister from a 6-bit order code
// and an extend flag.
func NewSequenceRegister(order word.Word, extend bool) SequenceRegister {
	v := order.Widen(7)
	if extend {
		v = v.Set(6, true)
	}
	return SequenceRegister{inner: v}
}

// Inner returns the raw 7-bit register value.
func (sq SequenceRegister) Inner() word.Word { return sq.inner }

// OrderCode returns bits 5:3 of the register: the major opcode group.
func (sq SequenceRegister) OrderCode() word.Word {
	return sq.inner.Shr(3).Narrow(3)
}

// ExtendedCode returns bits 2:0 of the register: the sub-opcode used
// to distinguish instructions within an order code (e.g. opcode 101's
// XCH/variant split).
func (sq SequenceRegister) ExtendedCode() word.Word {
	return sq.inner.Narrow(3)
}

// IsExtended reports whether the extend latch (bit 6) is set.
func (sq SequenceRegister) IsExtended() bool { return sq.inner.Get(6) }

// SetExtended returns a copy of sq with the extend latch set or cleared.
func (sq SequenceRegister) SetExtended(extend bool) SequenceRegister {
	return SequenceRegister{inner: sq.inner.Set(6, extend)}
}

// AddressRegister is the 12-bit S register.
type AddressRegister struct {
	inner word.Word // W12
}

// NewAddressRegister builds an AddressRegister from a 12-bit value.
func NewAddressRegister(v word.Word) AddressRegister {
	return AddressRegister{inner: v.Widen(12).Narrow(12)}
}

// Inner returns the raw 12-bit register value.
func (s AddressRegister) Inner() word.Word { return s.inner }

// Address decodes the register into its memory category, delegating to
// memory.Addr.
func (s AddressRegister) Address() memory.Address { return memory.Addr(s.inner) }

// BranchRegister holds the two branch-condition latches, BR1 (bit 0)
// and BR2 (bit 1).
type BranchRegister struct {
	inner word.Word // W2
}

// NewBranchRegister builds a BranchRegister from a 2-bit value.
func NewBranchRegister(v word.Word) BranchRegister {
	return BranchRegister{inner: v.Widen(2).Narrow(2)}
}

// Inner returns the raw 2-bit register value.
func (br BranchRegister) Inner() word.Word { return br.inner }

// BR1 returns the bit-0 latch.
func (br BranchRegister) BR1() bool { return br.inner.Get(0) }

// BR2 returns the bit-1 latch.
func (br BranchRegister) BR2() bool { return br.inner.Get(1) }

// SetBR1 returns a copy of br with BR1 set or cleared.
func (br BranchRegister) SetBR1(v bool) BranchRegister {
	return BranchRegister{inner: br.inner.Set(0, v)}
}

// SetBR2 returns a copy of br with BR2 set or cleared.
func (br BranchRegister) SetBR2(v bool) BranchRegister {
	return BranchRegister{inner: br.inner.Set(1, v)}
}

// Reset clears both latches.
func (br BranchRegister) Reset() BranchRegister {
	return BranchRegister{inner: word.W2(0)}
}
