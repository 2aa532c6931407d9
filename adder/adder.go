// Package adder implements the CPU's ones'-complement adder with
// end-around carry, the "U" unit referenced throughout the control
// pulse table.
package adder

import "github.com/agc-core/agc/word"

// Add computes U = X + Y + CI using ones'-complement arithmetic with
// end-around carry: the sum is formed in 17 bits, and if bit 16 is set
// the carry is folded back into the low 16 bits rather than discarded,
// matching the AGC's adder (a plain two's-complement X+Y+CI is not
// sufficient: it drops exactly this carry-out).
//
// overflow reports the raw bit15/bit14 disagreement of the unfolded
// 17-bit sum. RU, the only pulse that calls Add, doesn't consume it:
// TOV independently rederives the same bit15/bit14 pattern from the
// write line it observes, so overflow exists for callers that want the
// sum and its overflow together without going through a pulse.
func Add(x, y word.Word, ci bool) (sum word.Word, overflow bool) {
	cin := uint32(0)
	if ci {
		cin = 1
	}
	raw := uint32(x.AsU16()) + uint32(y.AsU16()) + cin

	folded := raw & 0xffff
	if raw&0x10000 != 0 {
		folded = (folded + 1) & 0xffff
	}

	bit15 := (raw >> 15) & 1
	bit14 := (raw >> 14) & 1

	return word.W16(uint16(folded)), bit15 != bit14
}
