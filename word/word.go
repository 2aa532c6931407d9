// Package word implements the AGC's fixed-width bit containers.
//
// A Word always carries its declared bit width alongside its value, and
// every constructor and mutator re-masks the value so bits above the
// declared width are zero at rest. Widths run from 1 to 16 bits; the
// underlying storage is always a 16-bit container, matching the AGC's
// 16-bit read/write buses (registers narrower than 16 bits still ride
// the full write line).
package word

import "fmt"

// Word is an N-bit unsigned value, 1 <= N <= 16, backed by a 16-bit
// container. Bits at or above the declared width are always zero.
type Word struct {
	value uint16
	bits  uint8
}

func mask(bits uint8) uint16 {
	if bits >= 16 {
		return 0xffff
	}
	return uint16(1<<bits) - 1
}

// New builds a Word of the given width, masking value to fit.
func New(bits uint8, value uint16) Word {
	if bits < 1 || bits > 16 {
		panic(fmt.Sprintf("word: invalid width %d", bits))
	}
	return Word{value: value & mask(bits), bits: bits}
}

// Typed constructors, one per width, mirroring the W1..W16 call sites
// used throughout the CPU core.
func W1(v uint16) Word  { return New(1, v) }
func W2(v uint16) Word  { return New(2, v) }
func W3(v uint16) Word  { return New(3, v) }
func W4(v uint16) Word  { return New(4, v) }
func W5(v uint16) Word  { return New(5, v) }
func W6(v uint16) Word  { return New(6, v) }
func W7(v uint16) Word  { return New(7, v) }
func W8(v uint16) Word  { return New(8, v) }
func W9(v uint16) Word  { return New(9, v) }
func W10(v uint16) Word { return New(10, v) }
func W11(v uint16) Word { return New(11, v) }
func W12(v uint16) Word { return New(12, v) }
func W13(v uint16) Word { return New(13, v) }
func W14(v uint16) Word { return New(14, v) }
func W15(v uint16) Word { return New(15, v) }
func W16(v uint16) Word { return New(16, v) }

// Bits returns the declared width.
func (w Word) Bits() uint8 { return w.bits }

// Mask returns the bitmask for this word's width.
func (w Word) Mask() uint16 { return mask(w.bits) }

// AsU16 returns the raw value.
func (w Word) AsU16() uint16 { return w.value }

// CountOnes returns the number of set bits.
func (w Word) CountOnes() uint8 {
	c := uint8(0)
	for v := w.value; v != 0; v &= v - 1 {
		c++
	}
	return c
}

// Get returns bit index (0 is the least-significant bit). index must be
// less than Bits; an out-of-range index is a programmer error.
func (w Word) Get(index uint8) bool {
	if index >= w.bits {
		panic(fmt.Sprintf("word: bit index %d out of range for W%d", index, w.bits))
	}
	return w.value&(1<<index) != 0
}

// Set returns a copy of w with bit index set to value. index must be
// less than Bits; an out-of-range index is a programmer error.
func (w Word) Set(index uint8, value bool) Word {
	if index >= w.bits {
		panic(fmt.Sprintf("word: bit index %d out of range for W%d", index, w.bits))
	}
	m := uint16(1) << index
	if value {
		w.value |= m
	} else {
		w.value &^= m
	}
	return w
}

// Shl shifts left by n bits, remasking to this word's width.
func (w Word) Shl(n uint) Word {
	return New(w.bits, w.value<<n)
}

// Shr shifts right by n bits, remasking to this word's width.
func (w Word) Shr(n uint) Word {
	return New(w.bits, w.value>>n)
}

// Or returns the bitwise OR of w and other, remasked to w's width.
func (w Word) Or(other Word) Word {
	return New(w.bits, w.value|other.value)
}

// And returns the bitwise AND of w and other, remasked to w's width.
func (w Word) And(other Word) Word {
	return New(w.bits, w.value&other.value)
}

// OrU16 ORs a raw uint16 contribution into w, remasked to w's width.
func (w Word) OrU16(v uint16) Word {
	return New(w.bits, w.value|v)
}

// Widen reinterprets w at a wider width, zero-extending. bits must be
// greater than or equal to w.Bits().
func (w Word) Widen(bits uint8) Word {
	if bits < w.bits {
		panic(fmt.Sprintf("word: Widen to narrower width %d < %d", bits, w.bits))
	}
	return New(bits, w.value)
}

// Narrow reinterprets w at a narrower width, truncating. bits must be
// less than or equal to w.Bits().
func (w Word) Narrow(bits uint8) Word {
	if bits > w.bits {
		panic(fmt.Sprintf("word: Narrow to wider width %d > %d", bits, w.bits))
	}
	return New(bits, w.value)
}

// octalDigits returns the number of octal digits needed to represent a
// value of the given bit width without truncation.
func octalDigits(bits uint8) int { return int((bits-1)/3 + 1) }

func hexDigits(bits uint8) int { return int((bits-1)/4 + 1) }

// String formats w in zero-padded octal, the AGC's native radix.
func (w Word) String() string {
	return fmt.Sprintf("%0*o", octalDigits(w.bits), w.value)
}

// Format implements fmt.Formatter for 'b' (binary), 'o' (octal), 'x'
// (lower hex) and 'X' (upper hex), all zero-padded to the word's width.
func (w Word) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b':
		fmt.Fprintf(f, "%0*b", int(w.bits), w.value)
	case 'o':
		fmt.Fprintf(f, "%0*o", octalDigits(w.bits), w.value)
	case 'x':
		fmt.Fprintf(f, "%0*x", hexDigits(w.bits), w.value)
	case 'X':
		fmt.Fprintf(f, "%0*X", hexDigits(w.bits), w.value)
	case 'v', 's':
		fmt.Fprint(f, w.String())
	default:
		fmt.Fprintf(f, "%%!%c(word.Word=%s)", verb, w.String())
	}
}
