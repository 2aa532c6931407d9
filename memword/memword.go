// Package memword implements the AGC's 16-bit memory word: a 15-bit value
// plus a parity bit, with the sign-extension rule memory applies when a
// word is latched into a 16-bit register.
package memword

import (
	"fmt"

	"github.com/agc-core/agc/word"
)

// MemoryWord is a word as it is actually stored in erasable or fixed
// memory: 15 value bits (bit1..bit15, 1-indexed in AGC convention) plus a
// parity bit (bit16). The in-memory value never carries a sign-extended
// bit16; that extension happens only when the word is read into a
// register, via AsRegisterValue.
type MemoryWord struct {
	value  word.Word // W15: bits 1..15
	parity bool
}

// New builds a MemoryWord from a 15-bit value and an explicit parity bit,
// making no attempt to correct it. Use WithProperParity when the parity
// bit should be computed instead of supplied.
func New(value word.Word, parity bool) MemoryWord {
	if value.Bits() != 15 {
		panic(fmt.Sprintf("memword: New requires a W15 value, got W%d", value.Bits()))
	}
	return MemoryWord{value: value, parity: parity}
}

// properParity returns the parity bit that makes the word's total bit
// count (value bits plus parity) odd, per the AGC's odd-parity convention.
func properParity(value word.Word) bool {
	return value.CountOnes()%2 == 0
}

// WithProperParity builds a MemoryWord with a correct (odd) parity bit.
func WithProperParity(value word.Word) MemoryWord {
	return MemoryWord{value: value, parity: properParity(value)}
}

// WithWrongParity builds a MemoryWord whose parity bit is deliberately
// incorrect, for exercising parity-fault handling.
func WithWrongParity(value word.Word) MemoryWord {
	return MemoryWord{value: value, parity: !properParity(value)}
}

// Value returns the 15-bit stored value.
func (m MemoryWord) Value() word.Word { return m.value }

// Parity returns the stored parity bit, whether or not it is correct.
func (m MemoryWord) Parity() bool { return m.parity }

// IsValid reports whether the stored parity bit is the correct odd-parity
// bit for the stored value.
func (m MemoryWord) IsValid() bool { return m.parity == properParity(m.value) }

// AsRegisterValue widens the 15-bit value to 16 bits for loading into a
// register, sign-extending bit14 (the AGC's sign bit) into bit15.
func (m MemoryWord) AsRegisterValue() word.Word {
	w := m.value.Widen(16)
	if m.value.Get(14) {
		w = w.Set(15, true)
	}
	return w
}

// String renders the word as "<parity>|<octal value>" when valid, or
// "<parity>!<octal value>" when the stored parity bit is wrong, e.g.
// "0|12346" or "1!12346".
func (m MemoryWord) String() string {
	sep := "|"
	if !m.IsValid() {
		sep = "!"
	}
	p := 0
	if m.parity {
		p = 1
	}
	return fmt.Sprintf("%d%s%s", p, sep, m.value.String())
}
